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

package util

import (
	"strconv"
	"strings"
)

// FormatNumber renders a float without trailing zeros ("5", "5.5", "5.12")
func FormatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// PadNumber left-pads the integer part of a rendered number with zeros
// up to width digits. Fractional parts are preserved untouched.
func PadNumber(numStr string, width int) string {
	intPart := numStr
	fracPart := ""
	if i := strings.IndexByte(numStr, '.'); i >= 0 {
		intPart, fracPart = numStr[:i], numStr[i:]
	}
	for len(intPart) < width {
		intPart = "0" + intPart
	}
	return intPart + fracPart
}

// IsWholeNumber reports whether a rendered number has no fractional part
func IsWholeNumber(numStr string) bool {
	return !strings.ContainsRune(numStr, '.')
}
