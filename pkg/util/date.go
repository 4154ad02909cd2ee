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
	"strings"
	"time"
)

// serverDateLayout is the timestamp format the server emits, without a
// timezone suffix. Values are interpreted as UTC.
const serverDateLayout = "2006-01-02T15:04:05"

// ParseServerDate parses a server timestamp, returning the zero time
// when the value is empty or malformed
func ParseServerDate(dateStr string) time.Time {
	dateStr = strings.TrimSpace(dateStr)
	if dateStr == "" {
		return time.Time{}
	}

	// Fractional seconds vary between server versions
	if i := strings.IndexByte(dateStr, '.'); i >= 0 {
		dateStr = dateStr[:i]
	}

	t, err := time.ParseInLocation(serverDateLayout, dateStr, time.UTC)
	if err != nil {
		return time.Time{}
	}
	return t
}

// ParseNullableDate parses a server timestamp, returning nil if empty or invalid
func ParseNullableDate(dateStr string) *time.Time {
	t := ParseServerDate(dateStr)
	if t.IsZero() {
		return nil
	}
	return &t
}
