// Libretto: A read-only catalog adapter for Kavita-style media servers.
// Copyright (C) 2025 The Libretto Authors
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program. If not, see <http://www.gnu.org/licenses/>.

package kavita

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"Libretto/pkg/core"
	"Libretto/pkg/errors"
	"Libretto/pkg/util"
)

// readingListIDPrefix marks catalog ids that point at a reading list
// instead of a series
const readingListIDPrefix = "list:"

func readingListSeriesID(listID int) string {
	return readingListIDPrefix + strconv.Itoa(listID)
}

func parseReadingListID(id string) (int, bool) {
	raw, ok := strings.CutPrefix(id, readingListIDPrefix)
	if !ok {
		return 0, false
	}
	listID, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return listID, true
}

// listReadingLists renders the server's curated reading lists as
// pseudo-series. A failed request degrades to an empty page, matching
// the search degradation contract.
func (a *Adapter) listReadingLists(ctx context.Context) (*core.SeriesPage, error) {
	lists, err := a.fetchReadingLists(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		a.logger.Error("Reading list request failed: %v", err)
		return &core.SeriesPage{Series: []core.Series{}}, nil
	}

	page := &core.SeriesPage{Series: make([]core.Series, 0, len(lists))}
	for i := range lists {
		list := &lists[i]
		title := list.Title
		if list.Promoted {
			title = "\U0001F53A " + title
		}
		page.Series = append(page.Series, core.Series{
			ID:       readingListSeriesID(list.ID),
			Title:    title,
			CoverURL: a.readingListCoverURL(list),
			Status:   readingListStatus(list, time.Now()),
		})
	}
	return page, nil
}

// fetchReadingLists loads the reading lists, memoized in the adapter
// cache so an info lookup after a listing reuses the same response
func (a *Adapter) fetchReadingLists(ctx context.Context) ([]RawReadingList, error) {
	const key = "reading-lists"
	if a.cache != nil {
		if v, ok := a.cache.Get(key); ok {
			if lists, ok := v.([]RawReadingList); ok {
				return lists, nil
			}
		}
	}

	url := fmt.Sprintf("%s/ReadingList/lists?includePromoted=true&sortByLastModified=true", a.cfg.Address)
	var lists []RawReadingList
	if err := a.client.PostJSON(ctx, url, struct{}{}, &lists); err != nil {
		return nil, &errors.APIError{Endpoint: "/ReadingList/lists", URL: url, Message: "reading list fetch failed", Err: err}
	}

	if a.cache != nil {
		a.cache.Set(key, lists)
	}
	return lists, nil
}

// readingListInfo builds the detail view of one reading list
func (a *Adapter) readingListInfo(ctx context.Context, listID int) (*core.SeriesInfo, error) {
	lists, err := a.fetchReadingLists(ctx)
	if err != nil {
		return nil, err
	}

	for i := range lists {
		list := &lists[i]
		if list.ID != listID {
			continue
		}

		summary := strings.TrimSpace(list.Summary)
		if summary == "" {
			summary = "Reading List"
		}

		info := &core.SeriesInfo{
			Series: core.Series{
				ID:       readingListSeriesID(list.ID),
				Title:    list.Title,
				CoverURL: a.readingListCoverURL(list),
				Status:   readingListStatus(list, time.Now()),
			},
			Summary: summary,
		}
		if list.OwnerUserName != "" {
			info.Authors = []string{list.OwnerUserName}
		}
		return info, nil
	}
	return nil, fmt.Errorf("%w: reading list %d", errors.ErrNotFound, listID)
}

func (a *Adapter) readingListCoverURL(list *RawReadingList) string {
	if list.CoverImage != "" {
		return fmt.Sprintf("%s/image/%s?apiKey=%s", a.cfg.Address, list.CoverImage, a.cfg.APIKey)
	}
	return fmt.Sprintf("%s/Image/readinglist-cover?readingListId=%d&apiKey=%s", a.cfg.Address, list.ID, a.cfg.APIKey)
}

// readingListStatus maps a list's publication window to a series
// status. A list without dates is a closed, completed collection; a
// dated list stays ongoing until its end month has passed.
func readingListStatus(list *RawReadingList, now time.Time) core.SeriesStatus {
	if list.StartingYear <= 0 || list.EndingYear <= 0 {
		return core.StatusCompleted
	}
	end := time.Date(list.EndingYear, time.Month(list.EndingMonth), 1, 0, 0, 0, 0, time.UTC)
	if now.After(end) {
		return core.StatusEnded
	}
	return core.StatusOngoing
}

// readingListChapters lists a reading list's entries in their curated
// order. The first entry gets the highest sort key so the normal
// highest-first ordering plays the list front to back.
func (a *Adapter) readingListChapters(ctx context.Context, listID int) ([]core.Chapter, error) {
	url := fmt.Sprintf("%s/ReadingList/items?readingListId=%d", a.cfg.Address, listID)
	var items []RawReadingListItem
	if err := a.client.GetJSON(ctx, url, &items); err != nil {
		return nil, err
	}

	chapters := make([]core.Chapter, 0, len(items))
	for i := range items {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		item := &items[i]
		kind := a.classifyReadingListItem(ctx, item)
		chapters = append(chapters, a.buildReadingListChapter(kind, item))
	}

	sort.SliceStable(chapters, func(i, j int) bool {
		return chapters[i].SortKey > chapters[j].SortKey
	})
	return chapters, nil
}

// classifyReadingListItem derives the chapter kind from which ids the
// entry carries. Volume entries follow the same sentinel rules as a
// series chapter list; an entry with neither chapter nor volume reads
// as a special.
func (a *Adapter) classifyReadingListItem(ctx context.Context, item *RawReadingListItem) ChapterKind {
	switch {
	case item.VolumeID > 0 && item.VolumeNumber != "":
		switch {
		case item.VolumeNumber == UnnumberedVolumeStr:
			if a.seriesLibraryType(ctx, item.SeriesID).IsComic() {
				return KindIssue
			}
			return KindChapter
		case item.ChapterNumber == UnnumberedVolumeStr:
			return KindSingleFileVolume
		default:
			return KindRegular
		}
	case item.ChapterID > 0 && item.ChapterNumber != "":
		if a.seriesLibraryType(ctx, item.SeriesID).IsComic() {
			return KindIssue
		}
		return KindChapter
	default:
		return KindSpecial
	}
}

// seriesLibraryType resolves a series' library type, memoized per
// series id. Reading list entries only carry a series id, so the
// library id comes from the series record.
func (a *Adapter) seriesLibraryType(ctx context.Context, seriesID int) LibraryType {
	key := "series-library-type:" + strconv.Itoa(seriesID)
	if a.cache != nil {
		if v, ok := a.cache.Get(key); ok {
			if t, ok := v.(LibraryType); ok {
				return t
			}
		}
	}

	libType := LibraryManga
	var series RawSeries
	if err := a.client.GetJSON(ctx, fmt.Sprintf("%s/Series/%d", a.cfg.Address, seriesID), &series); err == nil {
		libType = a.libraryType(ctx, series.LibraryID)
	} else {
		a.logger.Warn("Library type lookup failed for series %d: %v", seriesID, err)
	}

	if a.cache != nil {
		a.cache.Set(key, libType)
	}
	return libType
}

// buildReadingListChapter renders one entry. Names carry the curated
// position prefix so lists read in order even when sorted by name.
func (a *Adapter) buildReadingListChapter(kind ChapterKind, item *RawReadingListItem) core.Chapter {
	webtoon := IsWebtoon(item.LibraryName)
	title := strings.TrimSpace(item.ChapterTitleName)

	var label string
	switch kind {
	case KindRegular:
		num := padListNumber(item.ChapterNumber, 2)
		if title != "" {
			label = num + " - " + title
		} else {
			label = "Vol. " + item.VolumeNumber + " Ch. " + num
		}
	case KindChapter:
		num := padListNumber(item.ChapterNumber, 2)
		switch {
		case title != "":
			label = num + " - " + title
		case webtoon:
			label = "Episode " + num
		default:
			label = "Chapter " + num
		}
	case KindSingleFileVolume:
		if title != "" {
			label = "v" + item.VolumeNumber + " - " + title
		} else {
			label = "Volume " + item.VolumeNumber
		}
	case KindIssue:
		num := padListNumber(item.ChapterNumber, 3)
		if title != "" {
			label = title + " (#" + num + ")"
		} else {
			label = "Issue #" + num
		}
	default:
		label = title
		if label == "" {
			label = fmt.Sprintf("Item %d", item.Order+1)
		}
	}

	var date *time.Time
	if a.cfg.UseReleaseDate {
		date = util.ParseNullableDate(item.ReleaseDate)
	}

	return core.Chapter{
		ID:        strconv.Itoa(item.ID),
		SeriesID:  strconv.Itoa(item.SeriesID),
		Name:      fmt.Sprintf("%d. %s", item.Order+1, label),
		Scanlator: item.SeriesName,
		SortKey:   -float64(item.Order),
		Date:      date,
	}
}

// padListNumber zero-pads whole chapter numbers; ranges and decimals
// pass through untouched
func padListNumber(raw string, width int) string {
	if _, err := strconv.Atoi(raw); err == nil {
		return util.PadNumber(raw, width)
	}
	return raw
}
