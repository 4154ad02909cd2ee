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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseServerDate(t *testing.T) {
	got := ParseServerDate("2023-04-05T10:20:30")
	assert.Equal(t, time.Date(2023, 4, 5, 10, 20, 30, 0, time.UTC), got)
}

func TestParseServerDateFractionalSeconds(t *testing.T) {
	got := ParseServerDate("2023-04-05T10:20:30.1234567")
	assert.Equal(t, time.Date(2023, 4, 5, 10, 20, 30, 0, time.UTC), got)
}

func TestParseServerDateInvalid(t *testing.T) {
	assert.True(t, ParseServerDate("").IsZero())
	assert.True(t, ParseServerDate("not a date").IsZero())
	assert.True(t, ParseServerDate("  ").IsZero())
}

func TestParseNullableDate(t *testing.T) {
	got := ParseNullableDate("2023-04-05T10:20:30")
	require.NotNil(t, got)
	assert.Equal(t, 2023, got.Year())

	assert.Nil(t, ParseNullableDate(""))
	assert.Nil(t, ParseNullableDate("0001-01-01T00:00:00"))
}
