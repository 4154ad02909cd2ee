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
	"testing"

	"Libretto/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDictionaries() *Dictionaries {
	return &Dictionaries{
		Genres: []Descriptor{
			{ID: 5, Title: "Action"},
			{ID: 7, Title: "Drama"},
			{ID: 9, Title: "Horror"},
		},
		Tags: []Descriptor{
			{ID: 11, Title: "Tournament"},
		},
		AgeRatings: []ValueDescriptor{
			{Value: 8, Title: "Mature"},
		},
		Collections: []Descriptor{
			{ID: 3, Title: "Favorites"},
		},
		Languages: []LanguageEntry{
			{ISOCode: "en", Title: "English"},
			{ISOCode: "ja", Title: "Japanese"},
		},
		Libraries: []LibraryEntry{
			{ID: 1, Name: "Manga", Type: int(LibraryManga)},
			{ID: 2, Name: "Comics", Type: int(LibraryComic)},
		},
	}
}

func findStatements(f *SeriesFilter, field FilterField) []Statement {
	var out []Statement
	for _, s := range f.Statements {
		if s.Field == field {
			out = append(out, s)
		}
	}
	return out
}

func TestCompileRequiresMetadata(t *testing.T) {
	c := &Compiler{}

	_, err := c.Compile(ModeSearch, "naruto", nil, nil)
	assert.ErrorIs(t, err, errors.ErrMetadataNotReady)

	_, err = c.Compile(ModeSearch, "naruto", nil, &Dictionaries{})
	assert.ErrorIs(t, err, errors.ErrMetadataNotReady)
}

func TestCompileFreeTextSeriesName(t *testing.T) {
	c := &Compiler{}

	filter, err := c.Compile(ModeSearch, "one piece", nil, testDictionaries())
	require.NoError(t, err)

	stmts := findStatements(filter, FieldSeriesName)
	require.Len(t, stmts, 1)
	assert.Equal(t, CompareMatches, stmts[0].Comparison)
	assert.Equal(t, "one piece", stmts[0].Value)
}

func TestCompileFreeTextArtistPrefix(t *testing.T) {
	c := &Compiler{ShowEpub: true}

	filter, err := c.Compile(ModeSearch, "artist: Oda", nil, testDictionaries())
	require.NoError(t, err)

	for _, field := range []FilterField{FieldCoverArtist, FieldPenciller, FieldInker, FieldColorist, FieldPeople} {
		stmts := findStatements(filter, field)
		require.Len(t, stmts, 1, "field %d", field)
		assert.Equal(t, CompareContains, stmts[0].Comparison)
		assert.Equal(t, "Oda", stmts[0].Value)
	}
	assert.Len(t, filter.Statements, 5)
}

func TestCompileFreeTextPeoplePrefix(t *testing.T) {
	c := &Compiler{ShowEpub: true}

	filter, err := c.Compile(ModeSearch, "people:Urasawa", nil, testDictionaries())
	require.NoError(t, err)

	// Ten role fields plus the aggregate people field
	assert.Len(t, filter.Statements, 11)
}

func TestCompileTriStateBatching(t *testing.T) {
	c := &Compiler{}
	sel := &Selections{
		Genres: map[string]TriState{
			"Action": TriInclude,
			"Drama":  TriInclude,
			"Horror": TriExclude,
		},
	}

	filter, err := c.Compile(ModeSearch, "", sel, testDictionaries())
	require.NoError(t, err)

	stmts := findStatements(filter, FieldGenres)
	require.Len(t, stmts, 2)
	assert.Equal(t, CompareContains, stmts[0].Comparison)
	assert.Equal(t, "5,7", stmts[0].Value)
	assert.Equal(t, CompareNotContains, stmts[1].Comparison)
	assert.Equal(t, "9", stmts[1].Value)
}

func TestCompileUnresolvedNamesAreDropped(t *testing.T) {
	c := &Compiler{}
	sel := &Selections{
		Genres: map[string]TriState{
			"Action":  TriInclude,
			"Unknown": TriInclude,
		},
	}

	filter, err := c.Compile(ModeSearch, "", sel, testDictionaries())
	require.NoError(t, err)

	stmts := findStatements(filter, FieldGenres)
	require.Len(t, stmts, 1)
	assert.Equal(t, "5", stmts[0].Value)
}

func TestCompileLanguagesUseISOCodes(t *testing.T) {
	c := &Compiler{}
	sel := &Selections{
		Languages: map[string]TriState{
			"English":  TriInclude,
			"Japanese": TriExclude,
		},
	}

	filter, err := c.Compile(ModeSearch, "", sel, testDictionaries())
	require.NoError(t, err)

	stmts := findStatements(filter, FieldLanguages)
	require.Len(t, stmts, 2)
	assert.Equal(t, "en", stmts[0].Value)
	assert.Equal(t, "ja", stmts[1].Value)
}

func TestCompileFormatsAndStatus(t *testing.T) {
	c := &Compiler{ShowEpub: true}
	sel := &Selections{
		Formats:     []string{"Archive", "Pdf"},
		PubStatuses: []string{"Completed"},
	}

	filter, err := c.Compile(ModeSearch, "", sel, testDictionaries())
	require.NoError(t, err)

	formats := findStatements(filter, FieldFormats)
	require.Len(t, formats, 2)
	assert.Equal(t, Statement{CompareContains, FieldFormats, "1"}, formats[0])
	assert.Equal(t, Statement{CompareContains, FieldFormats, "4"}, formats[1])

	statuses := findStatements(filter, FieldPublicationStatus)
	require.Len(t, statuses, 1)
	assert.Equal(t, Statement{CompareEqual, FieldPublicationStatus, "2"}, statuses[0])
}

func TestCompileYearRange(t *testing.T) {
	c := &Compiler{ShowEpub: true}
	sel := &Selections{YearMin: "2000", YearMax: "2010"}

	filter, err := c.Compile(ModeSearch, "", sel, testDictionaries())
	require.NoError(t, err)

	stmts := findStatements(filter, FieldReleaseYear)
	require.Len(t, stmts, 2)
	assert.Equal(t, Statement{CompareGreaterThanEqual, FieldReleaseYear, "2000"}, stmts[0])
	assert.Equal(t, Statement{CompareLessThanEqual, FieldReleaseYear, "2010"}, stmts[1])
}

func TestCompileReadProgress(t *testing.T) {
	c := &Compiler{ShowEpub: true}

	unread, err := c.Compile(ModeSearch, "", &Selections{ReadProgress: ReadUnread}, testDictionaries())
	require.NoError(t, err)
	assert.Equal(t, []Statement{{CompareEqual, FieldReadProgress, "0"}}, findStatements(unread, FieldReadProgress))

	inProgress, err := c.Compile(ModeSearch, "", &Selections{ReadProgress: ReadInProgress}, testDictionaries())
	require.NoError(t, err)
	assert.Equal(t, []Statement{
		{CompareGreaterThanEqual, FieldReadProgress, "1"},
		{CompareLessThanEqual, FieldReadProgress, "99"},
	}, findStatements(inProgress, FieldReadProgress))

	finished, err := c.Compile(ModeSearch, "", &Selections{ReadProgress: ReadFinished}, testDictionaries())
	require.NoError(t, err)
	assert.Equal(t, []Statement{{CompareEqual, FieldReadProgress, "100"}}, findStatements(finished, FieldReadProgress))

	noFilter, err := c.Compile(ModeSearch, "", &Selections{ReadProgress: ReadAny}, testDictionaries())
	require.NoError(t, err)
	assert.Empty(t, findStatements(noFilter, FieldReadProgress))
}

func TestCompilePersonRolesOnePerName(t *testing.T) {
	c := &Compiler{ShowEpub: true}
	sel := &Selections{
		People: map[PersonRole][]string{
			RoleWriter:     {"Oda", "Kishimoto"},
			RoleTranslator: {"Smith"},
		},
	}

	filter, err := c.Compile(ModeSearch, "", sel, testDictionaries())
	require.NoError(t, err)

	writers := findStatements(filter, FieldWriters)
	require.Len(t, writers, 2)
	assert.Equal(t, CompareMatches, writers[0].Comparison)

	translators := findStatements(filter, FieldTranslators)
	require.Len(t, translators, 1)
	assert.Equal(t, "Smith", translators[0].Value)
}

func TestCompileEpubExclusionIsLast(t *testing.T) {
	c := &Compiler{}
	sel := &Selections{
		Genres: map[string]TriState{"Action": TriInclude},
	}

	filter, err := c.Compile(ModeSearch, "naruto", sel, testDictionaries())
	require.NoError(t, err)

	require.NotEmpty(t, filter.Statements)
	last := filter.Statements[len(filter.Statements)-1]
	assert.Equal(t, Statement{CompareNotContains, FieldFormats, "3"}, last)
}

func TestCompileShowEpubSkipsExclusion(t *testing.T) {
	c := &Compiler{ShowEpub: true}

	filter, err := c.Compile(ModeSearch, "naruto", nil, testDictionaries())
	require.NoError(t, err)

	for _, s := range filter.Statements {
		assert.NotEqual(t, CompareNotContains, s.Comparison)
	}
}

func TestCompileDefaultSorts(t *testing.T) {
	c := &Compiler{ShowEpub: true}
	meta := testDictionaries()

	search, err := c.Compile(ModeSearch, "", nil, meta)
	require.NoError(t, err)
	assert.Equal(t, SortOptions{SortField: SortName, IsAscending: true}, search.SortOptions)

	popular, err := c.Compile(ModePopular, "", nil, meta)
	require.NoError(t, err)
	assert.Equal(t, SortOptions{SortField: SortAverageRating, IsAscending: false}, popular.SortOptions)

	latest, err := c.Compile(ModeLatest, "", nil, meta)
	require.NoError(t, err)
	assert.Equal(t, SortOptions{SortField: SortLastChapterAdded, IsAscending: false}, latest.SortOptions)
}

func TestCompileExplicitSort(t *testing.T) {
	c := &Compiler{ShowEpub: true}
	sel := &Selections{Sort: &SortSelection{Index: 5, Ascending: false}}

	filter, err := c.Compile(ModeSearch, "", sel, testDictionaries())
	require.NoError(t, err)

	// Index is offset by one against the server enum
	assert.Equal(t, SortOptions{SortField: SortReleaseYear, IsAscending: false}, filter.SortOptions)
}

func TestCompileCombinationIsAlwaysAnd(t *testing.T) {
	c := &Compiler{ShowEpub: true}

	filter, err := c.Compile(ModeSearch, "x", nil, testDictionaries())
	require.NoError(t, err)
	assert.Equal(t, 1, filter.Combination)
}
