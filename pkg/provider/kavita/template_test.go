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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderTemplateTokens(t *testing.T) {
	vars := TemplateVariables{
		Type:       "Chapter",
		Number:     "05",
		Title:      "The Beginning",
		CleanTitle: "Chapter 5",
		SeriesName: "Naruto",
	}

	assert.Equal(t, "Naruto - 05", RenderTemplate("$SeriesName - $No", vars))
	assert.Equal(t, "Chapter: The Beginning", RenderTemplate("$Type: $Title", vars))
	assert.Equal(t, "Chapter 5", RenderTemplate("$CleanTitle", vars))
}

func TestRenderTemplateUnknownTokenVanishes(t *testing.T) {
	vars := TemplateVariables{Title: "Title"}

	assert.Equal(t, "Title", RenderTemplate("$Bogus $Title", vars))
}

func TestRenderTemplateEscapedDollar(t *testing.T) {
	vars := TemplateVariables{Number: "03"}

	assert.Equal(t, "$Size 03", RenderTemplate(`\$Size $No`, vars))
}

func TestRenderTemplateWhitespaceCollapse(t *testing.T) {
	vars := TemplateVariables{Number: "01"}

	// Empty substitutions leave runs of spaces behind
	assert.Equal(t, "01", RenderTemplate("$Type   $No  $Title", vars))
}

func TestRenderTemplateSizeAndPages(t *testing.T) {
	withData := TemplateVariables{Pages: 42, FileSize: 3 * 1024 * 1024}
	assert.Equal(t, "3.0 MB / 42", RenderTemplate("$Size / $Pages", withData))

	empty := TemplateVariables{}
	assert.Equal(t, "/", RenderTemplate("$Size / $Pages", empty))
}

func TestRenderTemplateBlank(t *testing.T) {
	assert.Equal(t, "", RenderTemplate("", TemplateVariables{Title: "x"}))
	assert.Equal(t, "", RenderTemplate("   ", TemplateVariables{Title: "x"}))
}
