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
	"strconv"
	"strings"
)

// FilterField identifies a queryable series attribute on the server
type FilterField int

const (
	FieldSummary           FilterField = 0
	FieldSeriesName        FilterField = 1
	FieldPublicationStatus FilterField = 2
	FieldLanguages         FilterField = 3
	FieldAgeRating         FilterField = 4
	FieldUserRating        FilterField = 5
	FieldTags              FilterField = 6
	FieldCollectionTags    FilterField = 7
	FieldTranslators       FilterField = 8
	FieldCharacters        FilterField = 9
	FieldPublisher         FilterField = 10
	FieldEditor            FilterField = 11
	FieldCoverArtist       FilterField = 12
	FieldLetterer          FilterField = 13
	FieldColorist          FilterField = 14
	FieldInker             FilterField = 15
	FieldPenciller         FilterField = 16
	FieldWriters           FilterField = 17
	FieldGenres            FilterField = 18
	FieldLibraries         FilterField = 19
	FieldReadProgress      FilterField = 20
	FieldFormats           FilterField = 21
	FieldReleaseYear       FilterField = 22
	FieldPeople            FilterField = 33
)

// Comparison is the operator of a filter statement
type Comparison int

const (
	CompareEqual            Comparison = 0
	CompareGreaterThan      Comparison = 1
	CompareGreaterThanEqual Comparison = 2
	CompareLessThan         Comparison = 3
	CompareLessThanEqual    Comparison = 4
	CompareContains         Comparison = 5
	CompareMustContains     Comparison = 6
	CompareMatches          Comparison = 7
	CompareNotContains      Comparison = 8
	CompareNotEqual         Comparison = 9
)

// SortField identifies a server-side sort order
type SortField int

const (
	SortName             SortField = 1
	SortCreatedDate      SortField = 2
	SortLastModifiedDate SortField = 3
	SortLastChapterAdded SortField = 4
	SortTimeToRead       SortField = 5
	SortReleaseYear      SortField = 6
	SortReadProgress     SortField = 7
	SortAverageRating    SortField = 8
	SortRandom           SortField = 9
)

// combinationAnd is the only statement combination mode the adapter
// emits; the server ANDs all statements together
const combinationAnd = 1

// Statement is one field/comparison/value condition of a query
type Statement struct {
	Comparison Comparison  `json:"comparison"`
	Field      FilterField `json:"field"`
	Value      string      `json:"value"`
}

// SortOptions is the sort clause attached to a query
type SortOptions struct {
	SortField   SortField `json:"sortField"`
	IsAscending bool      `json:"isAscending"`
}

// SeriesFilter is the structured query posted to series listing
// endpoints. Statement order does not change semantics but stays
// stable for testability.
type SeriesFilter struct {
	ID          int         `json:"id,omitempty"`
	Name        string      `json:"name,omitempty"`
	Statements  []Statement `json:"statements"`
	Combination int         `json:"combination"`
	SortOptions SortOptions `json:"sortOptions"`
	LimitTo     int         `json:"limitTo"`
}

// NewSeriesFilter creates an empty query with the given sort
func NewSeriesFilter(field SortField, ascending bool) *SeriesFilter {
	return &SeriesFilter{
		Statements:  []Statement{},
		Combination: combinationAnd,
		SortOptions: SortOptions{SortField: field, IsAscending: ascending},
	}
}

// AddStatement appends one condition; blank values are dropped
func (f *SeriesFilter) AddStatement(cmp Comparison, field FilterField, value string) {
	if strings.TrimSpace(value) == "" {
		return
	}
	f.Statements = append(f.Statements, Statement{Comparison: cmp, Field: field, Value: value})
}

// AddIntCSV appends one condition whose value is a comma-joined id
// list; empty lists are dropped
func (f *SeriesFilter) AddIntCSV(cmp Comparison, field FilterField, ids []int) {
	if len(ids) == 0 {
		return
	}
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(id)
	}
	f.AddStatement(cmp, field, strings.Join(parts, ","))
}

// AddStringCSV appends one condition whose value is a comma-joined
// string list; empty lists are dropped
func (f *SeriesFilter) AddStringCSV(cmp Comparison, field FilterField, values []string) {
	if len(values) == 0 {
		return
	}
	f.AddStatement(cmp, field, strings.Join(values, ","))
}

// ExcludeEpub appends the statement that hides EPUB-format series
func (f *SeriesFilter) ExcludeEpub() {
	f.AddStatement(CompareNotContains, FieldFormats, strconv.Itoa(int(FormatEpub)))
}
