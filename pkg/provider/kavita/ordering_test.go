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

func TestEncodeSortKeyRegular(t *testing.T) {
	ch := &RawChapter{MinNumber: 12, Files: []RawFile{{ID: 1}}}
	vol := &RawVolume{MinNumber: 1}

	assert.Equal(t, 12.0, EncodeSortKey(KindRegular, ch, vol))
}

func TestEncodeSortKeyFileCountSalt(t *testing.T) {
	single := &RawChapter{MinNumber: 12, Files: []RawFile{{ID: 1}}}
	split := &RawChapter{MinNumber: 12, Files: []RawFile{{ID: 1}, {ID: 2}, {ID: 3}}}
	vol := &RawVolume{MinNumber: 1}

	assert.Equal(t, 12.0, EncodeSortKey(KindChapter, single, vol))
	assert.InDelta(t, 12.003, EncodeSortKey(KindChapter, split, vol), 1e-9)

	// Salt shifts the key without reordering against neighbors
	next := &RawChapter{MinNumber: 13, Files: []RawFile{{ID: 1}}}
	assert.Less(t, EncodeSortKey(KindChapter, split, vol), EncodeSortKey(KindChapter, next, vol))
}

func TestEncodeSortKeySaltNeverAppliesToVolumesOrSpecials(t *testing.T) {
	ch := &RawChapter{Number: UnnumberedVolumeStr, MinNumber: UnnumberedVolume,
		Files: []RawFile{{ID: 1}, {ID: 2}}}
	vol := &RawVolume{MinNumber: 2}

	assert.Equal(t, 2.0/VolumeNumberOffset, EncodeSortKey(KindSingleFileVolume, ch, vol))

	specials := &RawVolume{MinNumber: SpecialVolumeNumber}
	assert.Equal(t, SpecialVolumeNumber/SpecialNumberOffset, EncodeSortKey(KindSpecial, ch, specials))
}

func TestEncodeSortKeyZeroVolume(t *testing.T) {
	ch := &RawChapter{Number: UnnumberedVolumeStr}
	vol := &RawVolume{MinNumber: 0}

	assert.Equal(t, 0.0, EncodeSortKey(KindSingleFileVolume, ch, vol))
}

// The three populations must interleave correctly: real chapters above
// single-file volumes, single-file volumes above specials.
func TestEncodeSortKeyBandSeparation(t *testing.T) {
	chapterOne := EncodeSortKey(KindChapter,
		&RawChapter{MinNumber: 1, Files: []RawFile{{ID: 1}}},
		&RawVolume{MinNumber: UnnumberedVolume})
	volumeOne := EncodeSortKey(KindSingleFileVolume,
		&RawChapter{Number: UnnumberedVolumeStr},
		&RawVolume{MinNumber: 1})
	special := EncodeSortKey(KindSpecial,
		&RawChapter{IsSpecial: true},
		&RawVolume{MinNumber: SpecialVolumeNumber})

	assert.Equal(t, 1.0, chapterOne)
	assert.Equal(t, 0.0001, volumeOne)
	assert.InDelta(t, 0.00001, special, 1e-12)

	assert.Greater(t, chapterOne, volumeOne)
	assert.Greater(t, volumeOne, special)
}

func TestFormatVolumeNumber(t *testing.T) {
	assert.Equal(t, "3", FormatVolumeNumber(&RawVolume{MinNumber: 3, MaxNumber: 3}))
	assert.Equal(t, "1-3", FormatVolumeNumber(&RawVolume{MinNumber: 1, MaxNumber: 3}))
	assert.Equal(t, "2.5", FormatVolumeNumber(&RawVolume{MinNumber: 2.5, MaxNumber: 2.5}))
}

func TestFormatChapterNumber(t *testing.T) {
	assert.Equal(t, "05", FormatChapterNumber(&RawChapter{MinNumber: 5, MaxNumber: 5}, 2))
	assert.Equal(t, "5-7", FormatChapterNumber(&RawChapter{MinNumber: 5, MaxNumber: 7}, 2))
	assert.Equal(t, "5.5", FormatChapterNumber(&RawChapter{MinNumber: 5.5, MaxNumber: 5.5}, 2))
	assert.Equal(t, "123", FormatChapterNumber(&RawChapter{MinNumber: 123, MaxNumber: 123}, 2))
}
