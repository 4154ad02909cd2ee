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

package core

import "time"

// SeriesStatus is the normalized publication status of a series
type SeriesStatus string

const (
	StatusUnknown   SeriesStatus = ""
	StatusOngoing   SeriesStatus = "ongoing"
	StatusHiatus    SeriesStatus = "hiatus"
	StatusCompleted SeriesStatus = "completed"
	StatusCancelled SeriesStatus = "cancelled"
	StatusEnded     SeriesStatus = "ended"
)

// Series represents basic series information
type Series struct {
	ID       string       `json:"id"`
	Title    string       `json:"title"`
	CoverURL string       `json:"cover_url,omitempty"`
	Status   SeriesStatus `json:"status,omitempty"`
}

// SeriesInfo represents detailed series information
type SeriesInfo struct {
	Series
	Summary     string   `json:"summary,omitempty"`
	Authors     []string `json:"authors,omitempty"`
	Artists     []string `json:"artists,omitempty"`
	Genres      []string `json:"genres,omitempty"`
	LibraryName string   `json:"library_name,omitempty"`
}

// SeriesPage is one page of a paginated series listing
type SeriesPage struct {
	Series  []Series `json:"series"`
	HasNext bool     `json:"has_next"`
}

// Chapter is a normalized, display-ready chapter entry.
// SortKey encodes the chapter's position within its series; higher
// keys come first in reading-order lists.
type Chapter struct {
	ID        string     `json:"id"`
	SeriesID  string     `json:"series_id"`
	Name      string     `json:"name"`
	Scanlator string     `json:"scanlator,omitempty"`
	SortKey   float64    `json:"sort_key"`
	Date      *time.Time `json:"date,omitempty"`
}

// SearchOptions configures search behavior
type SearchOptions struct {
	Query   string            `json:"query"`
	Page    int               `json:"page"`
	Filters map[string]string `json:"filters,omitempty"`
}
