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
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"Libretto/pkg/engine/logger"
	"Libretto/pkg/errors"

	"golang.org/x/time/rate"
)

// TokenSource supplies the current bearer token for outgoing requests.
// An empty return means the request goes out unauthenticated.
type TokenSource func(ctx context.Context) (string, error)

// Client is a JSON HTTP client with rate limiting and bearer-token
// header injection
type Client struct {
	HTTP    *http.Client
	Logger  logger.Logger
	Token   TokenSource
	limiter *rate.Limiter
}

// NewClient creates a network client. requestsPerSecond caps outgoing
// throughput; a non-positive value disables the limiter.
func NewClient(log logger.Logger, requestsPerSecond float64) *Client {
	var limiter *rate.Limiter
	if requestsPerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(requestsPerSecond), 1)
	}
	return &Client{
		HTTP:    &http.Client{Timeout: 30 * time.Second},
		Logger:  log,
		limiter: limiter,
	}
}

// Response carries the decoded body's raw bytes plus the pagination
// info the server attaches as a response header
type Response struct {
	StatusCode int
	Body       []byte
	Pagination *Pagination
}

// Do performs a request with rate limiting, auth and standard headers
// applied, and maps error status codes to sentinel errors
func (c *Client) Do(ctx context.Context, method, url string, body interface{}) (*Response, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if c.Token != nil {
		token, err := c.Token(ctx)
		if err != nil {
			return nil, err
		}
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	if c.Logger != nil {
		c.Logger.Debug("[HTTP] %s %s", method, url)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, errors.ErrNetworkIssue
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if c.Logger != nil {
		c.Logger.Debug("[HTTP] %s returned %d (%d bytes)", url, resp.StatusCode, len(data))
	}

	if sentinel := errors.FromStatusCode(resp.StatusCode); sentinel != nil {
		return nil, &errors.HTTPError{
			StatusCode: resp.StatusCode,
			URL:        url,
			Err:        sentinel,
		}
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Body:       data,
		Pagination: ParsePaginationHeader(resp.Header),
	}, nil
}

// GetJSON fetches url and decodes the JSON body into result
func (c *Client) GetJSON(ctx context.Context, url string, result interface{}) error {
	resp, err := c.Do(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	return decode(resp.Body, result)
}

// PostJSON posts body as JSON and decodes the response into result.
// A nil result discards the response body.
func (c *Client) PostJSON(ctx context.Context, url string, body, result interface{}) error {
	resp, err := c.Do(ctx, http.MethodPost, url, body)
	if err != nil {
		return err
	}
	if result == nil {
		return nil
	}
	return decode(resp.Body, result)
}

// PostJSONPaged posts body as JSON and additionally returns the
// pagination info from the response headers
func (c *Client) PostJSONPaged(ctx context.Context, url string, body, result interface{}) (*Pagination, error) {
	resp, err := c.Do(ctx, http.MethodPost, url, body)
	if err != nil {
		return nil, err
	}
	if err := decode(resp.Body, result); err != nil {
		return nil, err
	}
	return resp.Pagination, nil
}

func decode(data []byte, result interface{}) error {
	if len(data) == 0 {
		return errors.New("empty response body")
	}
	return json.Unmarshal(data, result)
}
