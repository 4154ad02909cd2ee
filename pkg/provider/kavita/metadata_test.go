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
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"Libretto/pkg/engine/logger"
	"Libretto/pkg/engine/network"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func metadataServer(t *testing.T, hits *int64) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(hits, 1)
		w.Header().Set("Content-Type", "application/json")

		switch r.URL.Path {
		case "/Metadata/genres":
			_ = json.NewEncoder(w).Encode([]Descriptor{{ID: 5, Title: "Action"}})
		case "/Metadata/tags":
			_ = json.NewEncoder(w).Encode([]Descriptor{{ID: 11, Title: "Tournament"}})
		case "/Metadata/age-ratings":
			_ = json.NewEncoder(w).Encode([]ValueDescriptor{{Value: 8, Title: "Mature"}})
		case "/Collection":
			_ = json.NewEncoder(w).Encode([]Descriptor{{ID: 3, Title: "Favorites"}})
		case "/Metadata/languages":
			_ = json.NewEncoder(w).Encode([]LanguageEntry{{ISOCode: "en", Title: "English"}})
		case "/Library/libraries":
			_ = json.NewEncoder(w).Encode([]LibraryEntry{{ID: 1, Name: "Manga", Type: int(LibraryManga)}})
		case "/Metadata/people":
			_ = json.NewEncoder(w).Encode([]PersonEntry{{ID: 2, Name: "Oda", Role: 1}})
		case "/Metadata/publication-status":
			_ = json.NewEncoder(w).Encode([]ValueDescriptor{{Value: 0, Title: "Ongoing"}})
		case "/filter":
			_ = json.NewEncoder(w).Encode([]SmartFilter{{ID: 1, Name: "Backlog", Filter: "blob"}})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
}

func TestMetadataReload(t *testing.T) {
	var hits int64
	server := metadataServer(t, &hits)
	defer server.Close()

	repo := NewMetadataRepository(network.NewClient(nil, 0), logger.NewService(""), server.URL, time.Minute)

	dict, err := repo.Reload(context.Background())
	require.NoError(t, err)

	assert.False(t, dict.Empty())
	assert.Len(t, dict.Genres, 1)
	assert.Len(t, dict.SmartFilters, 1)

	id, ok := dict.GenreID("Action")
	assert.True(t, ok)
	assert.Equal(t, 5, id)

	code, ok := dict.LanguageCode("English")
	assert.True(t, ok)
	assert.Equal(t, "en", code)

	libType, ok := dict.LibraryTypeByID(1)
	assert.True(t, ok)
	assert.Equal(t, LibraryManga, libType)

	_, ok = dict.LibraryTypeByID(99)
	assert.False(t, ok)
}

func TestMetadataSnapshotCachesWithinTTL(t *testing.T) {
	var hits int64
	server := metadataServer(t, &hits)
	defer server.Close()

	repo := NewMetadataRepository(network.NewClient(nil, 0), logger.NewService(""), server.URL, time.Minute)

	_, err := repo.Snapshot(context.Background())
	require.NoError(t, err)
	loaded := atomic.LoadInt64(&hits)

	_, err = repo.Snapshot(context.Background())
	require.NoError(t, err)
	assert.Equal(t, loaded, atomic.LoadInt64(&hits))
}

func TestMetadataInvalidateForcesReload(t *testing.T) {
	var hits int64
	server := metadataServer(t, &hits)
	defer server.Close()

	repo := NewMetadataRepository(network.NewClient(nil, 0), logger.NewService(""), server.URL, time.Minute)

	_, err := repo.Snapshot(context.Background())
	require.NoError(t, err)
	loaded := atomic.LoadInt64(&hits)

	repo.Invalidate()

	_, err = repo.Snapshot(context.Background())
	require.NoError(t, err)
	assert.Greater(t, atomic.LoadInt64(&hits), loaded)
}

func TestMetadataPartialFailureDegrades(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/Metadata/genres" {
			_ = json.NewEncoder(w).Encode([]Descriptor{{ID: 5, Title: "Action"}})
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	repo := NewMetadataRepository(network.NewClient(nil, 0), logger.NewService(""), server.URL, time.Minute)

	dict, err := repo.Reload(context.Background())
	require.NoError(t, err)
	assert.Len(t, dict.Genres, 1)
	assert.Empty(t, dict.Tags)
}
