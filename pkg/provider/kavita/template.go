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
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// TemplateVariables is the per-chapter variable set a display template
// renders against. Everything is derived, recomputed per chapter and
// never persisted.
type TemplateVariables struct {
	Type         string
	Number       string
	Title        string
	CleanTitle   string
	Pages        int
	FileSize     float64
	VolumeNumber string
	SeriesName   string
	LibraryName  string
	Format       string
	Created      string
	ReleaseDate  string
}

// escapedDollar stands in for a backslash-escaped dollar sign while
// tokens are substituted
const escapedDollar = "\x00ESCAPED_DOLLAR\x00"

var templateTokenRe = regexp.MustCompile(`\$\w+`)

// RenderTemplate expands a chapter display template. Recognized tokens
// ($Type, $No, $Title, $CleanTitle, $Pages, $Size, $Volume,
// $SeriesName, $LibraryName, $Format, $Created, $ReleaseDate) are
// substituted in a single pass; unknown $Word tokens vanish. A literal
// dollar sign is written as \$. Runs of whitespace collapse to single
// spaces. Never errors; a blank template yields an empty string.
func RenderTemplate(template string, vars TemplateVariables) string {
	if strings.TrimSpace(template) == "" {
		return ""
	}

	size := ""
	if vars.FileSize > 0 {
		size = fmt.Sprintf("%.1f MB", vars.FileSize/(1024.0*1024.0))
	}
	pages := ""
	if vars.Pages > 0 {
		pages = strconv.Itoa(vars.Pages)
	}

	tokens := map[string]string{
		"Type":        vars.Type,
		"No":          vars.Number,
		"Title":       vars.Title,
		"CleanTitle":  vars.CleanTitle,
		"Pages":       pages,
		"Size":        size,
		"Volume":      vars.VolumeNumber,
		"SeriesName":  vars.SeriesName,
		"LibraryName": vars.LibraryName,
		"Format":      vars.Format,
		"Created":     vars.Created,
		"ReleaseDate": vars.ReleaseDate,
	}

	result := strings.ReplaceAll(template, `\$`, escapedDollar)

	// Single pass over maximal $Word tokens keeps word-boundary
	// semantics and guarantees no double substitution
	result = templateTokenRe.ReplaceAllStringFunc(result, func(match string) string {
		return tokens[match[1:]]
	})

	result = strings.TrimSpace(whitespaceRe.ReplaceAllString(result, " "))
	return strings.ReplaceAll(result, escapedDollar, "$")
}
