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

package engine

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"Libretto/pkg/engine/cache"
	"Libretto/pkg/engine/logger"
	"Libretto/pkg/engine/network"
	"Libretto/pkg/errors"
	"Libretto/pkg/provider"
)

// Options configures engine construction
type Options struct {
	LogFile           string
	RequestsPerSecond float64
	CacheTTL          time.Duration
}

// Engine is the central component providing services to providers
type Engine struct {
	Network *network.Client
	Logger  logger.Logger
	Cache   *cache.Memory

	providers     map[string]provider.Provider
	providerMutex sync.RWMutex

	verboseMode bool
}

// New creates a new Engine with default configuration
func New(opts Options) *Engine {
	logFile := opts.LogFile
	if logFile == "" {
		if homeDir, err := os.UserHomeDir(); err == nil {
			logFile = filepath.Join(homeDir, ".libretto", "logs", "libretto.log")
		}
	}

	log := logger.NewService(logFile)

	ttl := opts.CacheTTL
	if ttl == 0 {
		ttl = 30 * time.Minute
	}

	e := &Engine{
		Network:   network.NewClient(log, opts.RequestsPerSecond),
		Logger:    log,
		Cache:     cache.NewMemory(ttl),
		providers: make(map[string]provider.Provider),
	}

	log.Info("Engine initialized")
	return e
}

// RegisterProvider adds a provider to the registry
func (e *Engine) RegisterProvider(p provider.Provider) error {
	if p == nil {
		return errors.New("provider is nil")
	}

	e.providerMutex.Lock()
	defer e.providerMutex.Unlock()

	id := p.ID()
	if id == "" {
		return errors.New("provider has empty ID")
	}
	if _, exists := e.providers[id]; exists {
		return fmt.Errorf("provider with ID '%s' already registered", id)
	}

	e.providers[id] = p
	e.Logger.Info("Registered provider: %s (%s)", p.Name(), id)
	return nil
}

// GetProvider retrieves a registered provider by ID
func (e *Engine) GetProvider(id string) (provider.Provider, error) {
	e.providerMutex.RLock()
	defer e.providerMutex.RUnlock()

	p, exists := e.providers[id]
	if !exists {
		return nil, fmt.Errorf("provider '%s' not found: %w", id, errors.ErrNotFound)
	}
	return p, nil
}

// AllProviders returns all registered providers
func (e *Engine) AllProviders() []provider.Provider {
	e.providerMutex.RLock()
	defer e.providerMutex.RUnlock()

	providers := make([]provider.Provider, 0, len(e.providers))
	for _, p := range e.providers {
		providers = append(providers, p)
	}
	return providers
}

// ProviderCount returns the number of registered providers
func (e *Engine) ProviderCount() int {
	e.providerMutex.RLock()
	defer e.providerMutex.RUnlock()
	return len(e.providers)
}

// SetVerboseMode lowers the log level to debug and mirrors log output
// to the console
func (e *Engine) SetVerboseMode(enabled bool) {
	e.verboseMode = enabled
	if enabled {
		e.Logger.SetLevel(logger.LevelDebug)
	} else {
		e.Logger.SetLevel(logger.LevelInfo)
	}
	if s, ok := e.Logger.(*logger.Service); ok {
		s.SetConsoleOutput(enabled)
	}
}

// Shutdown gracefully shuts down the engine
func (e *Engine) Shutdown() error {
	e.Logger.Info("Shutting down engine...")
	if closer, ok := e.Logger.(interface{ Close() error }); ok {
		return closer.Close()
	}
	return nil
}
