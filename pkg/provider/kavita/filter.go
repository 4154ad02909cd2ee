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
	"sort"
	"strconv"
	"strings"

	"Libretto/pkg/engine/logger"
	"Libretto/pkg/errors"
)

// TriState is the include/exclude/ignore state of one facet option
type TriState int

const (
	TriIgnore TriState = iota
	TriInclude
	TriExclude
)

// ReadProgress selects series by how much of them has been read
type ReadProgress int

const (
	ReadAny ReadProgress = iota
	ReadUnread
	ReadInProgress
	ReadFinished
)

// PersonRole is one of the creator roles a person filter can target
type PersonRole int

const (
	RoleWriter PersonRole = iota
	RolePenciller
	RoleInker
	RoleColorist
	RoleLetterer
	RoleCoverArtist
	RoleEditor
	RolePublisher
	RoleCharacter
	RoleTranslator
)

// roleFields maps every person role to its filter field, in a stable
// emission order
var roleFields = []struct {
	role  PersonRole
	field FilterField
}{
	{RoleWriter, FieldWriters},
	{RolePenciller, FieldPenciller},
	{RoleInker, FieldInker},
	{RoleColorist, FieldColorist},
	{RoleLetterer, FieldLetterer},
	{RoleCoverArtist, FieldCoverArtist},
	{RoleEditor, FieldEditor},
	{RolePublisher, FieldPublisher},
	{RoleCharacter, FieldCharacters},
	{RoleTranslator, FieldTranslators},
}

// artistFields is the field group behind the "artist:" search prefix
var artistFields = []FilterField{
	FieldCoverArtist, FieldPenciller, FieldInker, FieldColorist,
}

// peopleFields is the field group behind the "people:" search prefix
var peopleFields = []FilterField{
	FieldWriters, FieldPenciller, FieldInker, FieldColorist,
	FieldLetterer, FieldCoverArtist, FieldEditor, FieldPublisher,
	FieldCharacters, FieldTranslators,
}

// formatValues maps format display labels to wire values
var formatValues = map[string]Format{
	"Image":   FormatImage,
	"Archive": FormatArchive,
	"Unknown": FormatUnknown,
	"Epub":    FormatEpub,
	"Pdf":     FormatPdf,
}

// pubStatusValues maps publication status labels to wire values
var pubStatusValues = map[string]int{
	"Ongoing":   0,
	"Hiatus":    1,
	"Completed": 2,
	"Cancelled": 3,
	"Ended":     4,
}

// SortSelection is an explicit user sort choice; Index is the position
// in the sort option list, mapping to the server enum at index+1
type SortSelection struct {
	Index     int
	Ascending bool
}

// Selections is the full set of active facet choices for one search.
// Facet maps key display names to their tri-state; absent names are
// ignored.
type Selections struct {
	Genres      map[string]TriState
	Tags        map[string]TriState
	AgeRatings  map[string]TriState
	Collections map[string]TriState
	Languages   map[string]TriState
	Libraries   map[string]TriState

	Formats     []string
	PubStatuses []string

	ReadProgress ReadProgress
	YearMin      string
	YearMax      string
	UserRating   int

	People map[PersonRole][]string

	Sort         *SortSelection
	WantToRead   bool
	ReadingLists bool
}

// ListMode distinguishes the three listing entry points; it picks the
// default sort when the user chose none
type ListMode int

const (
	ModeSearch ListMode = iota
	ModePopular
	ModeLatest
)

func defaultSort(mode ListMode) SortOptions {
	switch mode {
	case ModePopular:
		return SortOptions{SortField: SortAverageRating, IsAscending: false}
	case ModeLatest:
		return SortOptions{SortField: SortLastChapterAdded, IsAscending: false}
	default:
		return SortOptions{SortField: SortName, IsAscending: true}
	}
}

// Compiler turns facet selections into a server query
type Compiler struct {
	Logger   logger.Logger
	ShowEpub bool
}

// Compile builds the structured query for one search. The metadata
// dictionaries must be loaded; compiling against empty data returns
// ErrMetadataNotReady so the caller reloads first. Display names with
// no dictionary match are logged and dropped, never fatal.
func (c *Compiler) Compile(mode ListMode, freeText string, sel *Selections, meta *Dictionaries) (*SeriesFilter, error) {
	if meta == nil || meta.Empty() {
		return nil, errors.ErrMetadataNotReady
	}
	if sel == nil {
		sel = &Selections{}
	}

	sortOpts := defaultSort(mode)
	if sel.Sort != nil {
		sortOpts = SortOptions{
			SortField:   SortField(sel.Sort.Index + 1),
			IsAscending: sel.Sort.Ascending,
		}
	}
	filter := NewSeriesFilter(sortOpts.SortField, sortOpts.IsAscending)

	c.compileFreeText(filter, freeText)

	c.compileTriState(filter, FieldGenres, sel.Genres, meta.GenreID, "genre")
	c.compileTriState(filter, FieldTags, sel.Tags, meta.TagID, "tag")
	c.compileTriState(filter, FieldAgeRating, sel.AgeRatings, meta.AgeRatingValue, "age rating")
	c.compileTriState(filter, FieldCollectionTags, sel.Collections, meta.CollectionID, "collection")
	c.compileTriStateStr(filter, FieldLanguages, sel.Languages, meta.LanguageCode, "language")
	c.compileTriState(filter, FieldLibraries, sel.Libraries, meta.LibraryID, "library")

	for _, label := range sel.Formats {
		if format, ok := formatValues[label]; ok {
			filter.AddStatement(CompareContains, FieldFormats, strconv.Itoa(int(format)))
		}
	}
	for _, label := range sel.PubStatuses {
		if value, ok := pubStatusValues[label]; ok {
			filter.AddStatement(CompareEqual, FieldPublicationStatus, strconv.Itoa(value))
		}
	}

	if sel.YearMin != "" {
		filter.AddStatement(CompareGreaterThanEqual, FieldReleaseYear, sel.YearMin)
	}
	if sel.YearMax != "" {
		filter.AddStatement(CompareLessThanEqual, FieldReleaseYear, sel.YearMax)
	}

	switch sel.ReadProgress {
	case ReadUnread:
		filter.AddStatement(CompareEqual, FieldReadProgress, "0")
	case ReadInProgress:
		filter.AddStatement(CompareGreaterThanEqual, FieldReadProgress, "1")
		filter.AddStatement(CompareLessThanEqual, FieldReadProgress, "99")
	case ReadFinished:
		filter.AddStatement(CompareEqual, FieldReadProgress, "100")
	}

	if sel.UserRating > 0 {
		filter.AddStatement(CompareGreaterThanEqual, FieldUserRating, strconv.Itoa(sel.UserRating))
	}

	// Matches is an exact-name operator, so person selections go out
	// one statement per name rather than batched
	for _, rf := range roleFields {
		for _, name := range sel.People[rf.role] {
			filter.AddStatement(CompareMatches, rf.field, name)
		}
	}

	if !c.ShowEpub {
		filter.ExcludeEpub()
	}

	return filter, nil
}

// compileFreeText dispatches the text query: a role prefix fans out
// Contains statements over its field group plus the aggregate People
// field, anything else matches the series name
func (c *Compiler) compileFreeText(filter *SeriesFilter, freeText string) {
	query := strings.TrimSpace(freeText)
	if query == "" {
		return
	}

	lower := strings.ToLower(query)
	switch {
	case strings.HasPrefix(lower, "artist:"):
		name := strings.TrimSpace(query[len("artist:"):])
		if name == "" {
			return
		}
		for _, field := range artistFields {
			filter.AddStatement(CompareContains, field, name)
		}
		filter.AddStatement(CompareContains, FieldPeople, name)
	case strings.HasPrefix(lower, "people:"):
		name := strings.TrimSpace(query[len("people:"):])
		if name == "" {
			return
		}
		for _, field := range peopleFields {
			filter.AddStatement(CompareContains, field, name)
		}
		filter.AddStatement(CompareContains, FieldPeople, name)
	default:
		filter.AddStatement(CompareMatches, FieldSeriesName, query)
	}
}

// compileTriState resolves an int-id facet and batches included and
// excluded ids into at most one Contains and one NotContains
// statement. Batching is load-bearing: one statement per id changes
// the server's AND/OR semantics.
func (c *Compiler) compileTriState(filter *SeriesFilter, field FilterField, states map[string]TriState, resolve func(string) (int, bool), facet string) {
	if len(states) == 0 {
		return
	}

	var included, excluded []int
	for _, name := range sortedKeys(states) {
		state := states[name]
		if state == TriIgnore {
			continue
		}
		id, ok := resolve(name)
		if !ok {
			if c.Logger != nil {
				c.Logger.Warn("Dropping unresolved %s %q", facet, name)
			}
			continue
		}
		if state == TriInclude {
			included = append(included, id)
		} else {
			excluded = append(excluded, id)
		}
	}

	filter.AddIntCSV(CompareContains, field, included)
	filter.AddIntCSV(CompareNotContains, field, excluded)
}

// compileTriStateStr is compileTriState for facets whose ids are
// strings (language ISO codes)
func (c *Compiler) compileTriStateStr(filter *SeriesFilter, field FilterField, states map[string]TriState, resolve func(string) (string, bool), facet string) {
	if len(states) == 0 {
		return
	}

	var included, excluded []string
	for _, name := range sortedKeys(states) {
		state := states[name]
		if state == TriIgnore {
			continue
		}
		code, ok := resolve(name)
		if !ok {
			if c.Logger != nil {
				c.Logger.Warn("Dropping unresolved %s %q", facet, name)
			}
			continue
		}
		if state == TriInclude {
			included = append(included, code)
		} else {
			excluded = append(excluded, code)
		}
	}

	filter.AddStringCSV(CompareContains, field, included)
	filter.AddStringCSV(CompareNotContains, field, excluded)
}

// sortedKeys keeps statement emission order independent of map
// iteration order
func sortedKeys(m map[string]TriState) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
