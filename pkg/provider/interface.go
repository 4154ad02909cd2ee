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

package provider

import (
	"Libretto/pkg/core"
	"context"
)

// Provider defines the interface all catalog providers must implement
type Provider interface {
	ID() string
	Name() string
	Description() string
	SiteURL() string

	Initialize(ctx context.Context) error

	Popular(ctx context.Context, page int) (*core.SeriesPage, error)
	Latest(ctx context.Context, page int) (*core.SeriesPage, error)
	Search(ctx context.Context, options core.SearchOptions) (*core.SeriesPage, error)
	GetSeries(ctx context.Context, id string) (*core.SeriesInfo, error)
	GetChapters(ctx context.Context, seriesID string) ([]core.Chapter, error)
}
