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
	"context"
	"sync"
	"time"

	"Libretto/pkg/engine/logger"
	"Libretto/pkg/engine/network"
)

// Dictionaries is a read-only snapshot of the server's filter
// metadata. The compiler resolves display names against it and must
// never observe a snapshot mutating mid-compile.
type Dictionaries struct {
	Genres       []Descriptor
	Tags         []Descriptor
	AgeRatings   []ValueDescriptor
	Collections  []Descriptor
	Languages    []LanguageEntry
	Libraries    []LibraryEntry
	People       []PersonEntry
	PubStatuses  []ValueDescriptor
	SmartFilters []SmartFilter
}

// Empty reports whether the snapshot carries no facet data at all
func (d *Dictionaries) Empty() bool {
	return len(d.Genres) == 0 && len(d.Tags) == 0 && len(d.Libraries) == 0
}

// GenreID resolves a genre display title to its id
func (d *Dictionaries) GenreID(title string) (int, bool) {
	for _, g := range d.Genres {
		if g.Title == title {
			return g.ID, true
		}
	}
	return 0, false
}

// TagID resolves a tag display title to its id
func (d *Dictionaries) TagID(title string) (int, bool) {
	for _, t := range d.Tags {
		if t.Title == title {
			return t.ID, true
		}
	}
	return 0, false
}

// AgeRatingValue resolves an age rating title to its wire value
func (d *Dictionaries) AgeRatingValue(title string) (int, bool) {
	for _, a := range d.AgeRatings {
		if a.Title == title {
			return a.Value, true
		}
	}
	return 0, false
}

// CollectionID resolves a collection title to its id
func (d *Dictionaries) CollectionID(title string) (int, bool) {
	for _, c := range d.Collections {
		if c.Title == title {
			return c.ID, true
		}
	}
	return 0, false
}

// LanguageCode resolves a language display title to its ISO code
func (d *Dictionaries) LanguageCode(title string) (string, bool) {
	for _, l := range d.Languages {
		if l.Title == title {
			return l.ISOCode, true
		}
	}
	return "", false
}

// LibraryID resolves a library name to its id
func (d *Dictionaries) LibraryID(name string) (int, bool) {
	for _, l := range d.Libraries {
		if l.Name == name {
			return l.ID, true
		}
	}
	return 0, false
}

// LibraryTypeByID returns the type of the library with the given id
func (d *Dictionaries) LibraryTypeByID(id int) (LibraryType, bool) {
	for _, l := range d.Libraries {
		if l.ID == id {
			return LibraryType(l.Type), true
		}
	}
	return LibraryManga, false
}

// MetadataRepository owns the dictionary snapshot and its TTL. Loads
// fan out concurrently; a single failed facet degrades that facet to
// empty rather than failing the snapshot.
type MetadataRepository struct {
	client *network.Client
	logger logger.Logger
	apiURL string
	ttl    time.Duration

	mu       sync.RWMutex
	snapshot *Dictionaries
	loadedAt time.Time
}

// NewMetadataRepository creates a repository with the given TTL; zero
// means the reference 30 minutes
func NewMetadataRepository(client *network.Client, log logger.Logger, apiURL string, ttl time.Duration) *MetadataRepository {
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	return &MetadataRepository{
		client: client,
		logger: log,
		apiURL: apiURL,
		ttl:    ttl,
	}
}

// Snapshot returns the current dictionaries, reloading when the
// snapshot is missing, empty or older than the TTL
func (r *MetadataRepository) Snapshot(ctx context.Context) (*Dictionaries, error) {
	r.mu.RLock()
	snap := r.snapshot
	fresh := snap != nil && !snap.Empty() && time.Since(r.loadedAt) < r.ttl
	r.mu.RUnlock()

	if fresh {
		return snap, nil
	}
	return r.Reload(ctx)
}

// Reload fetches every dictionary concurrently and swaps in a new
// snapshot. Individual facet failures are logged and leave that facet
// empty; only a fully empty result is an error for the caller to
// surface.
func (r *MetadataRepository) Reload(ctx context.Context) (*Dictionaries, error) {
	dict := &Dictionaries{}

	var wg sync.WaitGroup
	load := func(name, url string, target interface{}) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := r.client.GetJSON(ctx, url, target); err != nil {
				r.logger.Warn("Failed to load %s: %v", name, err)
			}
		}()
	}

	load("genres", r.apiURL+"/Metadata/genres", &dict.Genres)
	load("tags", r.apiURL+"/Metadata/tags", &dict.Tags)
	load("age ratings", r.apiURL+"/Metadata/age-ratings", &dict.AgeRatings)
	load("collections", r.apiURL+"/Collection", &dict.Collections)
	load("languages", r.apiURL+"/Metadata/languages", &dict.Languages)
	load("libraries", r.apiURL+"/Library/libraries", &dict.Libraries)
	load("people", r.apiURL+"/Metadata/people", &dict.People)
	load("publication statuses", r.apiURL+"/Metadata/publication-status", &dict.PubStatuses)
	load("smart filters", r.apiURL+"/filter", &dict.SmartFilters)
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	r.snapshot = dict
	r.loadedAt = time.Now()
	r.mu.Unlock()

	r.logger.Info("Metadata loaded: %d genres, %d tags, %d libraries, %d people, %d smart filters",
		len(dict.Genres), len(dict.Tags), len(dict.Libraries), len(dict.People), len(dict.SmartFilters))

	return dict, nil
}

// Invalidate drops the current snapshot so the next Snapshot reloads
func (r *MetadataRepository) Invalidate() {
	r.mu.Lock()
	r.snapshot = nil
	r.loadedAt = time.Time{}
	r.mu.Unlock()
}
