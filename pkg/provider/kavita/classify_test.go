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

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name          string
		chapterNumber string
		volumeMin     float64
		libraryType   LibraryType
		want          ChapterKind
	}{
		{"special container", "1", SpecialVolumeNumber, LibraryManga, KindSpecial},
		{"special container wins over comic", "5", SpecialVolumeNumber, LibraryComic, KindSpecial},
		{"loose chapter in manga", "12", UnnumberedVolume, LibraryManga, KindChapter},
		{"loose chapter in light novel", "12", UnnumberedVolume, LibraryLightNovel, KindChapter},
		{"loose chapter in comic is an issue", "12", UnnumberedVolume, LibraryComic, KindIssue},
		{"loose chapter in comicvine is an issue", "12", UnnumberedVolume, LibraryComicVine, KindIssue},
		{"single file volume", UnnumberedVolumeStr, 3, LibraryManga, KindSingleFileVolume},
		{"single file volume in comic library", UnnumberedVolumeStr, 3, LibraryComic, KindSingleFileVolume},
		{"regular chapter in a volume", "4", 1, LibraryManga, KindRegular},
		{"regular chapter in a book library", "4", 1, LibraryBook, KindRegular},
		{"numbered issue in a comic volume", "4", 1, LibraryComic, KindIssue},
		{"volume zero still holds regular chapters", "7", 0, LibraryManga, KindRegular},
		{"unknown library type falls back to manga rules", "9", UnnumberedVolume, LibraryType(42), KindChapter},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.chapterNumber, tt.volumeMin, tt.libraryType)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestChapterKindString(t *testing.T) {
	assert.Equal(t, "Regular", KindRegular.String())
	assert.Equal(t, "SingleFileVolume", KindSingleFileVolume.String())
	assert.Equal(t, "Unknown", ChapterKind(99).String())
}
