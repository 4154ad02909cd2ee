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

	"Libretto/pkg/config"
	"Libretto/pkg/core"
	"Libretto/pkg/engine"
	"Libretto/pkg/engine/cache"
	"Libretto/pkg/engine/logger"
	"Libretto/pkg/engine/network"
	"Libretto/pkg/errors"
	"Libretto/pkg/util"
)

// Adapter exposes a media server's library as a normalized, read-only
// series catalog
type Adapter struct {
	cfg      *config.Config
	client   *network.Client
	logger   logger.Logger
	cache    *cache.Memory
	session  *Session
	metadata *MetadataRepository
	resolver *SmartFilterResolver
	compiler *Compiler
}

// NewAdapter wires an adapter into the engine's network client. The
// session becomes the client's token source, so every request carries
// a fresh bearer token.
func NewAdapter(e *engine.Engine, cfg *config.Config) *Adapter {
	session := &Session{
		HTTP:   e.Network.HTTP,
		Logger: e.Logger,
		APIURL: cfg.Address,
		APIKey: cfg.APIKey,
	}
	e.Network.Token = session.Token

	return &Adapter{
		cfg:      cfg,
		client:   e.Network,
		logger:   e.Logger,
		cache:    e.Cache,
		session:  session,
		metadata: NewMetadataRepository(e.Network, e.Logger, cfg.Address, 0),
		resolver: &SmartFilterResolver{Client: e.Network, Logger: e.Logger, APIURL: cfg.Address},
		compiler: &Compiler{Logger: e.Logger, ShowEpub: cfg.ShowEpub},
	}
}

func (a *Adapter) ID() string {
	return "kavita"
}

func (a *Adapter) Name() string {
	return "Kavita"
}

func (a *Adapter) Description() string {
	return "Self-hosted media server catalog"
}

// SiteURL is the server's web UI address, the API suffix stripped
func (a *Adapter) SiteURL() string {
	return strings.TrimSuffix(a.cfg.Address, "/api")
}

// Initialize authenticates and warms the metadata dictionaries. A
// failed metadata load is not fatal here; searches report it when they
// actually need the dictionaries.
func (a *Adapter) Initialize(ctx context.Context) error {
	if err := a.cfg.Validate(); err != nil {
		return err
	}
	if _, err := a.session.Token(ctx); err != nil {
		return err
	}
	if _, err := a.metadata.Reload(ctx); err != nil {
		a.logger.Warn("Metadata preload failed: %v", err)
	}
	return nil
}

// Dictionaries exposes the current metadata snapshot, loading it when
// needed. Callers get the available facet names and smart filters.
func (a *Adapter) Dictionaries(ctx context.Context) (*Dictionaries, error) {
	return a.metadata.Snapshot(ctx)
}

// Popular lists series by average rating, best first
func (a *Adapter) Popular(ctx context.Context, page int) (*core.SeriesPage, error) {
	filter := NewSeriesFilter(SortAverageRating, false)
	if !a.cfg.ShowEpub {
		filter.ExcludeEpub()
	}
	return a.listPage(ctx, filter, page, false)
}

// Latest lists series by most recently added chapter
func (a *Adapter) Latest(ctx context.Context, page int) (*core.SeriesPage, error) {
	filter := NewSeriesFilter(SortLastChapterAdded, false)
	if !a.cfg.ShowEpub {
		filter.ExcludeEpub()
	}
	return a.listPage(ctx, filter, page, false)
}

// Search compiles the query and facet selections into a structured
// server query. A smart filter selection replaces compilation entirely;
// its decode failure aborts the search.
func (a *Adapter) Search(ctx context.Context, options core.SearchOptions) (*core.SeriesPage, error) {
	sel, smartName := parseSearchFilters(options.Filters)

	// Reading lists are their own listing, not a compiled query
	if sel.ReadingLists {
		return a.listReadingLists(ctx)
	}

	meta, err := a.metadata.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	var filter *SeriesFilter
	if smartName != "" {
		sf, ok := findSmartFilter(meta.SmartFilters, smartName)
		if !ok {
			return nil, fmt.Errorf("%w: smart filter %q", errors.ErrNotFound, smartName)
		}
		filter, err = a.resolver.Resolve(ctx, sf)
		if err != nil {
			return nil, err
		}
	} else {
		filter, err = a.compiler.Compile(ModeSearch, options.Query, sel, meta)
		if err != nil {
			return nil, err
		}
	}

	// A failed search request degrades to an empty result; compile and
	// smart filter errors above stay fatal
	page, err := a.listPage(ctx, filter, options.Page, sel.WantToRead)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		a.logger.Error("Search request failed: %v", err)
		return &core.SeriesPage{Series: []core.Series{}}, nil
	}
	return page, nil
}

// listPage posts a structured query to the paginated listing endpoint
func (a *Adapter) listPage(ctx context.Context, filter *SeriesFilter, page int, wantToRead bool) (*core.SeriesPage, error) {
	if page < 1 {
		page = 1
	}

	endpoint := "/Series/all-v2"
	if wantToRead {
		endpoint = "/want-to-read/v2"
	}
	url := fmt.Sprintf("%s%s?pageNumber=%d&pageSize=%d", a.cfg.Address, endpoint, page, a.cfg.PageSize)

	var raw []RawSeries
	pagination, err := a.client.PostJSONPaged(ctx, url, filter, &raw)
	if err != nil {
		return nil, &errors.APIError{Endpoint: endpoint, URL: url, Message: "series listing failed", Err: err}
	}

	result := &core.SeriesPage{
		Series:  make([]core.Series, 0, len(raw)),
		HasNext: pagination.HasNext(),
	}
	for _, s := range raw {
		result.Series = append(result.Series, core.Series{
			ID:       strconv.Itoa(s.ID),
			Title:    s.Name,
			CoverURL: a.coverURL(s.ID),
		})
	}
	return result, nil
}

func (a *Adapter) coverURL(seriesID int) string {
	return fmt.Sprintf("%s/image/series-cover?seriesId=%d&apiKey=%s", a.cfg.Address, seriesID, a.cfg.APIKey)
}

// GetSeries fetches the series record and its metadata and folds them
// into one detail view
func (a *Adapter) GetSeries(ctx context.Context, id string) (*core.SeriesInfo, error) {
	if listID, ok := parseReadingListID(id); ok {
		return a.readingListInfo(ctx, listID)
	}

	sid, err := strconv.Atoi(id)
	if err != nil {
		return nil, fmt.Errorf("%w: series id %q", errors.ErrInvalidInput, id)
	}

	var series RawSeries
	if err := a.client.GetJSON(ctx, fmt.Sprintf("%s/Series/%d", a.cfg.Address, sid), &series); err != nil {
		return nil, err
	}

	var meta RawSeriesMetadata
	if err := a.client.GetJSON(ctx, fmt.Sprintf("%s/series/metadata?seriesId=%d", a.cfg.Address, sid), &meta); err != nil {
		return nil, err
	}

	genres := descriptorTitles(meta.Genres)
	tags := descriptorTitles(meta.Tags)
	demographic, formats, filteredGenres, filteredTags := ExtractDemographicAndFormat(genres, tags)

	libraryName := meta.LibraryName
	if libraryName == "" {
		libraryName = series.LibraryName
	}

	genreLine := BuildGenreString(libraryName, demographic, formats, filteredGenres, filteredTags, a.cfg.GroupTags)

	info := &core.SeriesInfo{
		Series: core.Series{
			ID:       id,
			Title:    series.Name,
			CoverURL: a.coverURL(sid),
			Status:   statusFromPublication(meta.PublicationStatus),
		},
		Summary:     util.StripHTML(meta.Summary),
		Authors:     personNames(meta.Writers),
		Artists:     personNames(meta.CoverArtists),
		LibraryName: libraryName,
	}
	if genreLine != "" {
		info.Genres = strings.Split(genreLine, ", ")
	}
	return info, nil
}

// GetChapters builds the normalized, display-ready chapter list of a
// series: every raw chapter is classified, keyed, titled through the
// configured templates, and the whole list is ordered newest first.
// A canceled context discards any partial list.
func (a *Adapter) GetChapters(ctx context.Context, seriesID string) ([]core.Chapter, error) {
	if listID, ok := parseReadingListID(seriesID); ok {
		return a.readingListChapters(ctx, listID)
	}

	sid, err := strconv.Atoi(seriesID)
	if err != nil {
		return nil, fmt.Errorf("%w: series id %q", errors.ErrInvalidInput, seriesID)
	}

	var series RawSeries
	if err := a.client.GetJSON(ctx, fmt.Sprintf("%s/Series/%d", a.cfg.Address, sid), &series); err != nil {
		return nil, err
	}

	var meta RawSeriesMetadata
	if err := a.client.GetJSON(ctx, fmt.Sprintf("%s/series/metadata?seriesId=%d", a.cfg.Address, sid), &meta); err != nil {
		return nil, err
	}

	var volumes []RawVolume
	if err := a.client.GetJSON(ctx, fmt.Sprintf("%s/Series/volumes?seriesId=%d", a.cfg.Address, sid), &volumes); err != nil {
		return nil, err
	}

	libraryName := meta.LibraryName
	if libraryName == "" {
		libraryName = series.LibraryName
	}
	libType := a.libraryType(ctx, series.LibraryID)

	genres := descriptorTitles(meta.Genres)
	tags := descriptorTitles(meta.Tags)
	demographic, formats, _, _ := ExtractDemographicAndFormat(genres, tags)

	webtoonFields := make([]string, 0, len(genres)+len(tags)+len(formats)+2)
	webtoonFields = append(webtoonFields, genres...)
	webtoonFields = append(webtoonFields, tags...)
	webtoonFields = append(webtoonFields, formats...)
	webtoonFields = append(webtoonFields, libraryName, demographic)
	webtoon := IsWebtoon(webtoonFields...)

	var chapters []core.Chapter
	for vi := range volumes {
		vol := &volumes[vi]
		for ci := range vol.Chapters {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			ch := &vol.Chapters[ci]
			kind := Classify(ch.Number, vol.MinNumber, libType)
			chapters = append(chapters, a.buildChapter(kind, ch, vol, series.Name, libraryName, webtoon, seriesID))
		}
	}

	sort.SliceStable(chapters, func(i, j int) bool {
		return chapters[i].SortKey > chapters[j].SortKey
	})
	return chapters, nil
}

// libraryType resolves a library's type through the dictionaries,
// memoized per library id. An unknown library reads as a manga
// library, which selects the chapter vocabulary.
func (a *Adapter) libraryType(ctx context.Context, libraryID int) LibraryType {
	key := "library-type:" + strconv.Itoa(libraryID)
	if a.cache != nil {
		if v, ok := a.cache.Get(key); ok {
			if t, ok := v.(LibraryType); ok {
				return t
			}
		}
	}

	libType := LibraryManga
	if meta, err := a.metadata.Snapshot(ctx); err == nil {
		if t, ok := meta.LibraryTypeByID(libraryID); ok {
			libType = t
		}
	} else {
		a.logger.Warn("Library type lookup failed for library %d: %v", libraryID, err)
	}

	if a.cache != nil {
		a.cache.Set(key, libType)
	}
	return libType
}

// buildChapter renders one raw chapter into its normalized form
func (a *Adapter) buildChapter(kind ChapterKind, ch *RawChapter, vol *RawVolume, seriesName, libraryName string, webtoon bool, seriesID string) core.Chapter {
	vars := a.buildVariables(kind, ch, vol, seriesName, libraryName, webtoon)

	name := RenderTemplate(a.cfg.ChapterTemplate, vars)
	if name == "" {
		// Raw title first, default label when the chapter has none
		name = vars.Title
	}
	if name == "" {
		name = vars.CleanTitle
	}
	scanlator := RenderTemplate(a.cfg.ScanlatorTemplate, vars)

	date := util.ParseNullableDate(ch.Created)
	if a.cfg.UseReleaseDate {
		if release := util.ParseNullableDate(ch.ReleaseDate); release != nil {
			date = release
		}
	}

	return core.Chapter{
		ID:        strconv.Itoa(ch.ID),
		SeriesID:  seriesID,
		Name:      name,
		Scanlator: scanlator,
		SortKey:   EncodeSortKey(kind, ch, vol),
		Date:      date,
	}
}

// buildVariables derives the template variable set for one chapter
func (a *Adapter) buildVariables(kind ChapterKind, ch *RawChapter, vol *RawVolume, seriesName, libraryName string, webtoon bool) TemplateVariables {
	volumeNumber := "0"
	if vol.MinNumber != UnnumberedVolume && vol.MinNumber != SpecialVolumeNumber {
		volumeNumber = FormatVolumeNumber(vol)
	}

	// Comic issues pad to three digits, everything else to two
	padLength := 2
	if kind == KindIssue {
		padLength = 3
	}

	var number string
	switch kind {
	case KindSingleFileVolume:
		number = FormatVolumeNumber(vol)
	case KindSpecial:
		number = FormatChapterNumber(ch, padLength)
		if ch.Number == UnnumberedVolumeStr {
			number = ""
		}
	default:
		number = FormatChapterNumber(ch, padLength)
	}

	title := strings.TrimSpace(ch.TitleName)
	if title == "" && kind == KindSingleFileVolume {
		title = strings.TrimSpace(vol.Name)
	}

	var clean string
	if title != "" {
		clean = CleanTitle(title, TitleContext{
			SeriesName:    seriesName,
			ChapterNumber: number,
			VolumeNumber:  volumeNumber,
			VolumeName:    vol.Name,
			IsWebtoon:     webtoon,
		})
	}
	if clean == "" || isDigits(clean) {
		clean = DefaultCleanTitle(kind, number, volumeNumber, webtoon)
	}

	fileBytes := ch.TotalFileBytes()
	format := ch.FirstExtension()
	if kind == KindSingleFileVolume {
		fileBytes = vol.TotalFileBytes()
		if format == "" {
			format = vol.FirstExtension()
		}
	}

	return TemplateVariables{
		Type:         typeDisplay(kind, webtoon),
		Number:       number,
		Title:        title,
		CleanTitle:   clean,
		Pages:        ch.Pages,
		FileSize:     float64(fileBytes),
		VolumeNumber: volumeNumber,
		SeriesName:   seriesName,
		LibraryName:  libraryName,
		Format:       format,
		Created:      displayDate(ch.Created),
		ReleaseDate:  displayDate(ch.ReleaseDate),
	}
}

// typeDisplay is the vocabulary label of a chapter kind, adjusted for
// webtoon series
func typeDisplay(kind ChapterKind, webtoon bool) string {
	switch kind {
	case KindRegular, KindChapter:
		if webtoon {
			return "Episode"
		}
		return "Chapter"
	case KindSingleFileVolume:
		if webtoon {
			return "Season"
		}
		return "Volume"
	case KindSpecial:
		return "Special"
	case KindIssue:
		return "Issue"
	default:
		return "Chapter"
	}
}

func displayDate(raw string) string {
	t := util.ParseServerDate(raw)
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02")
}

func statusFromPublication(status int) core.SeriesStatus {
	switch status {
	case 0:
		return core.StatusOngoing
	case 1:
		return core.StatusHiatus
	case 2:
		return core.StatusCompleted
	case 3:
		return core.StatusCancelled
	case 4:
		return core.StatusEnded
	default:
		return core.StatusUnknown
	}
}

func descriptorTitles(descriptors []Descriptor) []string {
	titles := make([]string, 0, len(descriptors))
	for _, d := range descriptors {
		titles = append(titles, d.Title)
	}
	return titles
}

func personNames(people []PersonEntry) []string {
	names := make([]string, 0, len(people))
	for _, p := range people {
		names = append(names, p.Name)
	}
	return names
}

func findSmartFilter(filters []SmartFilter, name string) (SmartFilter, bool) {
	for _, sf := range filters {
		if strings.EqualFold(sf.Name, name) {
			return sf, true
		}
	}
	return SmartFilter{}, false
}

// roleKeys maps search filter keys to person roles
var roleKeys = map[string]PersonRole{
	"writer":       RoleWriter,
	"penciller":    RolePenciller,
	"inker":        RoleInker,
	"colorist":     RoleColorist,
	"letterer":     RoleLetterer,
	"cover_artist": RoleCoverArtist,
	"editor":       RoleEditor,
	"publisher":    RolePublisher,
	"character":    RoleCharacter,
	"translator":   RoleTranslator,
}

// parseSearchFilters translates the generic filter map into facet
// selections. Include keys take a comma-separated list of display
// names; "exclude_" prefixed keys mark the same facet as excluded.
// A "smart_filter" key bypasses compilation entirely.
func parseSearchFilters(filters map[string]string) (*Selections, string) {
	sel := &Selections{
		Genres:      map[string]TriState{},
		Tags:        map[string]TriState{},
		AgeRatings:  map[string]TriState{},
		Collections: map[string]TriState{},
		Languages:   map[string]TriState{},
		Libraries:   map[string]TriState{},
		People:      map[PersonRole][]string{},
	}
	smartName := ""

	facetTargets := map[string]map[string]TriState{
		"genres":      sel.Genres,
		"tags":        sel.Tags,
		"age_ratings": sel.AgeRatings,
		"collections": sel.Collections,
		"languages":   sel.Languages,
		"libraries":   sel.Libraries,
	}

	for key, value := range filters {
		value = strings.TrimSpace(value)
		if value == "" {
			continue
		}

		state := TriInclude
		facet := key
		if strings.HasPrefix(key, "exclude_") {
			state = TriExclude
			facet = strings.TrimPrefix(key, "exclude_")
		}
		if target, ok := facetTargets[facet]; ok {
			for _, name := range splitCSV(value) {
				target[name] = state
			}
			continue
		}
		if role, ok := roleKeys[key]; ok {
			sel.People[role] = append(sel.People[role], splitCSV(value)...)
			continue
		}

		switch key {
		case "smart_filter":
			smartName = value
		case "want_to_read":
			sel.WantToRead = value == "true"
		case "reading_lists":
			sel.ReadingLists = value == "true"
		case "formats":
			sel.Formats = splitCSV(value)
		case "status":
			sel.PubStatuses = splitCSV(value)
		case "year_min":
			sel.YearMin = value
		case "year_max":
			sel.YearMax = value
		case "rating":
			if n, err := strconv.Atoi(value); err == nil {
				sel.UserRating = n
			}
		case "read_progress":
			switch strings.ToLower(value) {
			case "unread":
				sel.ReadProgress = ReadUnread
			case "in_progress":
				sel.ReadProgress = ReadInProgress
			case "read":
				sel.ReadProgress = ReadFinished
			}
		case "sort":
			if n, err := strconv.Atoi(value); err == nil {
				asc := filters["sort_dir"] != "desc"
				sel.Sort = &SortSelection{Index: n, Ascending: asc}
			}
		}
	}

	return sel, smartName
}

func splitCSV(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
