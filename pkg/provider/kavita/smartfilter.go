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
	"fmt"

	"Libretto/pkg/engine/logger"
	"Libretto/pkg/engine/network"
	"Libretto/pkg/errors"
)

// SmartFilterResolver turns a server-stored opaque filter blob into a
// usable structured query via the server's decode endpoint
type SmartFilterResolver struct {
	Client *network.Client
	Logger logger.Logger
	APIURL string
}

// Resolve decodes a smart filter. A failed decode is fatal for the
// request that selected it and is never retried. The EPUB exclusion
// is appended unconditionally, even when the decoded filter already
// constrains formats.
func (r *SmartFilterResolver) Resolve(ctx context.Context, sf SmartFilter) (*SeriesFilter, error) {
	payload := map[string]string{"EncodedFilter": sf.Filter}

	var decoded SeriesFilter
	if err := r.Client.PostJSON(ctx, r.APIURL+"/filter/decode", payload, &decoded); err != nil {
		if r.Logger != nil {
			r.Logger.Error("Failed to decode smart filter %q: %v", sf.Name, err)
		}
		return nil, fmt.Errorf("%w: %s", errors.ErrSmartFilterDecode, sf.Name)
	}

	decoded.ExcludeEpub()
	return &decoded, nil
}
