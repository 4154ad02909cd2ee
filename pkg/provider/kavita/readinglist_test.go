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
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"Libretto/pkg/core"
	"Libretto/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readingListServer(t *testing.T) *httptest.Server {
	t.Helper()

	var mux http.ServeMux
	writeJSON := func(w http.ResponseWriter, v interface{}) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(v)
	}

	mux.HandleFunc("/ReadingList/lists", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, []RawReadingList{
			{ID: 1, Title: "Best Arcs", Promoted: true, CoverImage: "covers/arcs.png",
				ItemCount: 4, OwnerUserName: "admin", Summary: "Hand-picked arcs"},
			{ID: 2, Title: "2019 Event", StartingYear: 2019, StartingMonth: 3,
				EndingYear: 2019, EndingMonth: 9},
		})
	})
	mux.HandleFunc("/ReadingList/items", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, []RawReadingListItem{
			{ID: 50, Order: 0, ChapterID: 21, SeriesID: 5, SeriesName: "Spawn",
				ChapterNumber: "1", LibraryName: "Comics", ReadingListID: 1,
				ReleaseDate: "2019-03-01T00:00:00"},
			{ID: 51, Order: 1, VolumeID: 31, SeriesID: 6, SeriesName: "Tower",
				VolumeNumber: "2", ChapterNumber: UnnumberedVolumeStr,
				LibraryName: "Webtoons", ReadingListID: 1},
			{ID: 52, Order: 2, SeriesID: 6, SeriesName: "Tower",
				ChapterTitleName: "Omake", LibraryName: "Webtoons", ReadingListID: 1},
			{ID: 53, Order: 3, ChapterID: 22, SeriesID: 6, SeriesName: "Tower",
				ChapterNumber: "4", LibraryName: "Webtoons", ReadingListID: 1},
		})
	})
	mux.HandleFunc("/Series/", func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/5") {
			writeJSON(w, RawSeries{ID: 5, Name: "Spawn", LibraryID: 2, LibraryName: "Comics"})
			return
		}
		writeJSON(w, RawSeries{ID: 6, Name: "Tower", LibraryID: 3, LibraryName: "Webtoons"})
	})
	mux.HandleFunc("/Library/libraries", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, []LibraryEntry{
			{ID: 2, Name: "Comics", Type: int(LibraryComic)},
			{ID: 3, Name: "Webtoons", Type: int(LibraryManga)},
		})
	})
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	return httptest.NewServer(&mux)
}

func TestSearchListsReadingLists(t *testing.T) {
	server := readingListServer(t)
	defer server.Close()

	a := testAdapter(server.URL)

	page, err := a.Search(context.Background(), core.SearchOptions{
		Filters: map[string]string{"reading_lists": "true"},
	})
	require.NoError(t, err)
	require.Len(t, page.Series, 2)

	assert.Equal(t, "list:1", page.Series[0].ID)
	assert.Equal(t, "\U0001F53A Best Arcs", page.Series[0].Title)
	assert.Contains(t, page.Series[0].CoverURL, "covers/arcs.png")
	assert.Equal(t, core.StatusCompleted, page.Series[0].Status)

	assert.Equal(t, "list:2", page.Series[1].ID)
	assert.Equal(t, "2019 Event", page.Series[1].Title)
	assert.Contains(t, page.Series[1].CoverURL, "readingListId=2")
	assert.Equal(t, core.StatusEnded, page.Series[1].Status)
	assert.False(t, page.HasNext)
}

func TestSearchReadingListsFailureDegradesToEmpty(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	a := testAdapter(server.URL)

	page, err := a.Search(context.Background(), core.SearchOptions{
		Filters: map[string]string{"reading_lists": "true"},
	})
	require.NoError(t, err)
	assert.Empty(t, page.Series)
}

func TestGetSeriesReadingListInfo(t *testing.T) {
	server := readingListServer(t)
	defer server.Close()

	a := testAdapter(server.URL)

	info, err := a.GetSeries(context.Background(), "list:1")
	require.NoError(t, err)

	assert.Equal(t, "Best Arcs", info.Title)
	assert.Equal(t, "Hand-picked arcs", info.Summary)
	assert.Equal(t, []string{"admin"}, info.Authors)

	_, err = a.GetSeries(context.Background(), "list:99")
	assert.ErrorIs(t, err, errors.ErrNotFound)
}

func TestGetChaptersReadingListOrder(t *testing.T) {
	server := readingListServer(t)
	defer server.Close()

	a := testAdapter(server.URL)

	chapters, err := a.GetChapters(context.Background(), "list:1")
	require.NoError(t, err)
	require.Len(t, chapters, 4)

	// Curated order front to back, names carry the position prefix
	assert.Equal(t, "1. Issue #001", chapters[0].Name)
	assert.Equal(t, "Spawn", chapters[0].Scanlator)
	assert.Equal(t, "2. Volume 2", chapters[1].Name)
	assert.Equal(t, "3. Omake", chapters[2].Name)
	assert.Equal(t, "4. Episode 04", chapters[3].Name)

	assert.Greater(t, chapters[0].SortKey, chapters[1].SortKey)
	assert.Nil(t, chapters[0].Date)
}

func TestGetChaptersReadingListReleaseDates(t *testing.T) {
	server := readingListServer(t)
	defer server.Close()

	a := testAdapter(server.URL)
	a.cfg.UseReleaseDate = true

	chapters, err := a.GetChapters(context.Background(), "list:1")
	require.NoError(t, err)
	require.Len(t, chapters, 4)

	require.NotNil(t, chapters[0].Date)
	assert.Equal(t, "2019-03-01", chapters[0].Date.Format("2006-01-02"))
	assert.Nil(t, chapters[1].Date)
}

func TestReadingListStatus(t *testing.T) {
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	undated := &RawReadingList{ID: 1}
	assert.Equal(t, core.StatusCompleted, readingListStatus(undated, now))

	past := &RawReadingList{ID: 2, StartingYear: 2019, StartingMonth: 3, EndingYear: 2019, EndingMonth: 9}
	assert.Equal(t, core.StatusEnded, readingListStatus(past, now))

	open := &RawReadingList{ID: 3, StartingYear: 2024, StartingMonth: 1, EndingYear: 2025, EndingMonth: 1}
	assert.Equal(t, core.StatusOngoing, readingListStatus(open, now))
}

func TestParseReadingListID(t *testing.T) {
	id, ok := parseReadingListID("list:7")
	assert.True(t, ok)
	assert.Equal(t, 7, id)

	_, ok = parseReadingListID("7")
	assert.False(t, ok)

	_, ok = parseReadingListID("list:abc")
	assert.False(t, ok)
}
