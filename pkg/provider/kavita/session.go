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
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"Libretto/pkg/engine/logger"
	"Libretto/pkg/errors"

	"github.com/golang-jwt/jwt/v5"
)

// authResponse is the body of a successful plugin authentication
type authResponse struct {
	Username string `json:"username"`
	Token    string `json:"token"`
	APIKey   string `json:"apiKey"`
}

// Session exchanges the configured API key for a JWT bearer token and
// keeps it fresh, re-authenticating shortly before the token's exp
// claim runs out
type Session struct {
	HTTP   *http.Client
	Logger logger.Logger
	APIURL string
	APIKey string

	mu        sync.Mutex
	token     string
	expiresAt time.Time
}

// expiryMargin renews the token this long before it actually expires
const expiryMargin = 5 * time.Minute

// Token returns a valid bearer token, logging in when none is held or
// the held one is close to expiry
func (s *Session) Token(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.token != "" && (s.expiresAt.IsZero() || time.Until(s.expiresAt) > expiryMargin) {
		return s.token, nil
	}
	if err := s.login(ctx); err != nil {
		return "", err
	}
	return s.token, nil
}

// login authenticates with the API key. Holds s.mu.
func (s *Session) login(ctx context.Context) error {
	url := fmt.Sprintf("%s/Plugin/authenticate?apiKey=%s&pluginName=Libretto", s.APIURL, s.APIKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader([]byte("{}")))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	client := s.HTTP
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", errors.ErrLoginFailed, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: %v", errors.ErrLoginFailed, err)
	}
	if resp.StatusCode != http.StatusOK {
		if s.Logger != nil {
			s.Logger.Error("Login failed with status %d", resp.StatusCode)
		}
		return fmt.Errorf("%w: status %d", errors.ErrLoginFailed, resp.StatusCode)
	}

	var auth authResponse
	if err := json.Unmarshal(body, &auth); err != nil || auth.Token == "" {
		return fmt.Errorf("%w: unexpected response", errors.ErrLoginFailed)
	}

	s.token = auth.Token
	s.expiresAt = tokenExpiry(auth.Token)

	if s.Logger != nil {
		s.Logger.Info("Authenticated as %s", auth.Username)
	}
	return nil
}

// tokenExpiry reads the exp claim without verifying the signature;
// the server is the trust anchor here, the claim only schedules the
// re-login. Zero when the claim is absent or unreadable.
func tokenExpiry(token string) time.Time {
	parser := jwt.NewParser()
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return time.Time{}
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}
	}
	return exp.Time
}

// Invalidate discards the held token so the next call re-authenticates
func (s *Session) Invalidate() {
	s.mu.Lock()
	s.token = ""
	s.expiresAt = time.Time{}
	s.mu.Unlock()
}
