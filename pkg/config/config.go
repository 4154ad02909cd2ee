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

package config

import (
	"strings"

	"Libretto/pkg/errors"

	"github.com/caarlos0/env/v11"
)

// Config holds the adapter settings, sourced from the environment
type Config struct {
	// Address is the server base URL including the /api suffix,
	// e.g. "http://demo.kavita.example/api"
	Address string `env:"LIBRETTO_ADDRESS"`

	// APIKey is the OPDS API key used to authenticate
	APIKey string `env:"LIBRETTO_API_KEY"`

	// ChapterTemplate renders chapter display names
	ChapterTemplate string `env:"LIBRETTO_CHAPTER_TEMPLATE" envDefault:"$CleanTitle"`

	// ScanlatorTemplate renders the scanlator label shown per chapter
	ScanlatorTemplate string `env:"LIBRETTO_SCANLATOR_TEMPLATE" envDefault:"$Type"`

	// ShowEpub includes EPUB-format series in listings
	ShowEpub bool `env:"LIBRETTO_SHOW_EPUB" envDefault:"false"`

	// UseReleaseDate prefers a chapter's release date over its
	// server-created date when both exist
	UseReleaseDate bool `env:"LIBRETTO_USE_RELEASE_DATE" envDefault:"false"`

	// GroupTags renders series genre strings grouped by category
	// instead of one flat sorted list
	GroupTags bool `env:"LIBRETTO_GROUP_TAGS" envDefault:"false"`

	// PageSize is the page size requested from series listings
	PageSize int `env:"LIBRETTO_PAGE_SIZE" envDefault:"20"`

	// RequestsPerSecond caps outgoing request throughput
	RequestsPerSecond float64 `env:"LIBRETTO_REQUESTS_PER_SECOND" envDefault:"4"`

	// LogFile overrides the default log file location
	LogFile string `env:"LIBRETTO_LOG_FILE"`
}

// Load parses the configuration from the environment
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	cfg.Address = strings.TrimRight(cfg.Address, "/")
	return &cfg, nil
}

// Validate checks that the settings needed to talk to a server are present
func (c *Config) Validate() error {
	if c.Address == "" {
		return errors.New("server address is not configured")
	}
	if c.APIKey == "" {
		return errors.New("API key is not configured")
	}
	return nil
}
