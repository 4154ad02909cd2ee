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

import stderrors "errors"

var (
	As     = stderrors.As
	Is     = stderrors.Is
	New    = stderrors.New
	Unwrap = stderrors.Unwrap
)

var (
	ErrNotFound     = stderrors.New("resource not found")
	ErrUnauthorized = stderrors.New("unauthorized")
	ErrBadRequest   = stderrors.New("bad request")
	ErrServerError  = stderrors.New("server error")
	ErrTimeout      = stderrors.New("operation timed out")
	ErrRateLimit    = stderrors.New("rate limit exceeded")
	ErrInvalidInput = stderrors.New("invalid input")
	ErrNetworkIssue = stderrors.New("network connection issue")

	// ErrMetadataNotReady signals that the metadata dictionaries are empty or
	// stale and must be reloaded before a filter can be compiled against them.
	ErrMetadataNotReady = stderrors.New("filter metadata not loaded")

	// ErrSmartFilterDecode is fatal for the request that triggered it; smart
	// filter decoding is never retried.
	ErrSmartFilterDecode = stderrors.New("smart filter decode failed")

	ErrLoginFailed = stderrors.New("login failed")
)

func IsNotFound(err error) bool         { return Is(err, ErrNotFound) }
func IsUnauthorized(err error) bool     { return Is(err, ErrUnauthorized) }
func IsTimeouted(err error) bool        { return Is(err, ErrTimeout) }
func IsRateLimited(err error) bool      { return Is(err, ErrRateLimit) }
func IsMetadataNotReady(err error) bool { return Is(err, ErrMetadataNotReady) }
