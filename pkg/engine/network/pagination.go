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

package network

import (
	"encoding/json"
	"net/http"
)

// Pagination mirrors the JSON object the server places in the
// "Pagination" response header of paged endpoints
type Pagination struct {
	CurrentPage  int `json:"currentPage"`
	ItemsPerPage int `json:"itemsPerPage"`
	TotalItems   int `json:"totalItems"`
	TotalPages   int `json:"totalPages"`
}

// HasNext reports whether more pages follow the current one
func (p *Pagination) HasNext() bool {
	if p == nil {
		return false
	}
	return p.CurrentPage < p.TotalPages
}

// ParsePaginationHeader extracts pagination info from response headers,
// returning nil when the header is absent or malformed
func ParsePaginationHeader(headers http.Header) *Pagination {
	raw := headers.Get("Pagination")
	if raw == "" {
		return nil
	}
	var p Pagination
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return nil
	}
	return &p
}
