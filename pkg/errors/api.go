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

package errors

import (
	"fmt"
	"net/http"
)

// HTTPError carries the status code of a failed HTTP request
type HTTPError struct {
	StatusCode int
	URL        string
	Message    string
	Err        error
}

func (e *HTTPError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("HTTP %d for %s", e.StatusCode, e.URL)
}

func (e *HTTPError) Unwrap() error { return e.Err }

// FromStatusCode maps an HTTP status code to a sentinel error
func FromStatusCode(code int) error {
	switch {
	case code == http.StatusNotFound:
		return ErrNotFound
	case code == http.StatusUnauthorized || code == http.StatusForbidden:
		return ErrUnauthorized
	case code == http.StatusTooManyRequests:
		return ErrRateLimit
	case code >= 500:
		return ErrServerError
	case code >= 400:
		return ErrBadRequest
	default:
		return nil
	}
}

// APIError wraps an error with the endpoint that produced it
type APIError struct {
	Endpoint   string
	URL        string
	StatusCode int
	Message    string
	Err        error
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s: %s", e.Endpoint, e.Message)
	}
	return fmt.Sprintf("API request to %s failed", e.Endpoint)
}

func (e *APIError) Unwrap() error { return e.Err }

// IsServerError checks if the error came from a 5xx response
func IsServerError(err error) bool {
	var httpErr *HTTPError
	if As(err, &httpErr) {
		return httpErr.StatusCode >= 500
	}
	return Is(err, ErrServerError)
}
