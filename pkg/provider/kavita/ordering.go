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

// EncodeSortKey maps a classified chapter to a single float key that
// totally orders a series' chapters. Regular, loose and issue chapters
// occupy the positive range by their own number; single-file volumes
// and specials land in a sub-unit band below them, volumes above
// specials for equal nominal numbers.
//
// A chapter split into several files receives a fractional salt so a
// re-split shows up as a changed key without disturbing relative
// order. The salt never applies to single-file volumes or specials as
// it would corrupt their sub-unit placement.
//
// A volume number of zero still produces a valid (zero) key.
func EncodeSortKey(kind ChapterKind, chapter *RawChapter, volume *RawVolume) float64 {
	switch kind {
	case KindRegular, KindChapter, KindIssue:
		key := chapter.MinNumber
		if n := chapter.FileCount(); n > 1 {
			key += 0.001 * float64(n)
		}
		return key
	case KindSingleFileVolume:
		return volume.MinNumber / VolumeNumberOffset
	case KindSpecial:
		return volume.MinNumber / SpecialNumberOffset
	default:
		return chapter.MinNumber
	}
}
