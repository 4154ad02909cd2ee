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

// Classify determines the semantic kind of a chapter from its raw
// number string, the containing volume's minimum number and the
// library type. Total and side-effect free: every input maps to
// exactly one kind.
//
// Rules, in order:
//  1. the specials container volume holds Specials
//  2. the unnumbered container volume holds loose Chapters
//     (Issues in comic libraries)
//  3. a chapter carrying the unnumbered sentinel inside a real
//     volume is the volume itself, readable as one unit
//  4. anything else is a Regular chapter (Issue in comic libraries)
func Classify(chapterNumber string, volumeMinNumber float64, libraryType LibraryType) ChapterKind {
	switch {
	case volumeMinNumber == SpecialVolumeNumber:
		return KindSpecial
	case volumeMinNumber == UnnumberedVolume:
		if libraryType.IsComic() {
			return KindIssue
		}
		return KindChapter
	case chapterNumber == UnnumberedVolumeStr:
		return KindSingleFileVolume
	default:
		if libraryType.IsComic() {
			return KindIssue
		}
		return KindRegular
	}
}
