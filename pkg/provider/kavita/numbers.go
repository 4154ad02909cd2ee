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

	"Libretto/pkg/util"
)

// FormatVolumeNumber renders a volume's number, as a "min-max" range
// when the bounds differ
func FormatVolumeNumber(volume *RawVolume) string {
	if volume.MaxNumber > volume.MinNumber {
		return util.FormatNumber(volume.MinNumber) + "-" + util.FormatNumber(volume.MaxNumber)
	}
	return util.FormatNumber(volume.MinNumber)
}

// FormatChapterNumber renders a chapter's number, as a "min-max" range
// when the bounds differ. Single whole numbers are zero-padded to
// padLength digits; ranges and decimals are left as-is.
func FormatChapterNumber(chapter *RawChapter, padLength int) string {
	num := util.FormatNumber(chapter.MinNumber)
	if chapter.MaxNumber > chapter.MinNumber {
		num = num + "-" + util.FormatNumber(chapter.MaxNumber)
	}

	if !strings.ContainsAny(num, "-.") {
		if _, err := strconv.Atoi(num); err == nil {
			return util.PadNumber(num, padLength)
		}
	}
	return num
}

// isDigits reports whether s is non-empty and all ASCII digits
func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
