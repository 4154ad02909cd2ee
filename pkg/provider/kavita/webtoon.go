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
	"sort"
	"strings"
)

// IsWebtoon reports whether any of the given fields marks the series
// as a webtoon or long-strip title. Callers assemble fields from genre
// titles, tag titles, library name, detected format and demographic;
// the union decides, not any single field.
func IsWebtoon(fields ...string) bool {
	for _, field := range fields {
		normalized := strings.ToLower(strings.TrimSpace(field))
		if strings.Contains(normalized, "webtoon") || strings.Contains(normalized, "long strip") {
			return true
		}
	}
	return false
}

var demographicKeywords = []string{
	"Shounen", "Seinen", "Josei", "Shoujo", "Hentai", "Doujinshi",
}

var formatKeywords = []string{
	"Long Strip", "4-koma", "4 Koma", "Full Color", "Full Colour",
	"Color", "Colour", "Graphic Novel", "Manga", "Manhua", "Manhwa",
}

// ExtractDemographicAndFormat pulls demographic and format keywords
// out of a series' genres and tags, preserving the original casing of
// the matched entries. Returns the found demographic (empty when
// none), all matched formats, and the genre/tag lists with the
// matches removed.
func ExtractDemographicAndFormat(genres, tags []string) (demographic string, formats, filteredGenres, filteredTags []string) {
	findMatch := func(keyword string) string {
		for _, g := range genres {
			if strings.EqualFold(g, keyword) {
				return g
			}
		}
		for _, t := range tags {
			if strings.EqualFold(t, keyword) {
				return t
			}
		}
		return ""
	}

	for _, keyword := range demographicKeywords {
		if match := findMatch(keyword); match != "" {
			demographic = match
			break
		}
	}

	seen := make(map[string]bool)
	for _, keyword := range formatKeywords {
		match := findMatch(keyword)
		if match == "" || seen[strings.ToLower(match)] {
			continue
		}
		seen[strings.ToLower(match)] = true
		formats = append(formats, match)
	}

	isExtracted := func(value string) bool {
		if demographic != "" && strings.EqualFold(value, demographic) {
			return true
		}
		for _, f := range formats {
			if strings.EqualFold(value, f) {
				return true
			}
		}
		return false
	}

	filteredGenres = make([]string, 0, len(genres))
	for _, g := range genres {
		if !isExtracted(g) {
			filteredGenres = append(filteredGenres, g)
		}
	}

	filteredTags = make([]string, 0, len(tags))
	for _, t := range tags {
		if isExtracted(t) {
			continue
		}
		duplicate := false
		for _, g := range filteredGenres {
			if strings.EqualFold(t, g) {
				duplicate = true
				break
			}
		}
		if !duplicate {
			filteredTags = append(filteredTags, t)
		}
	}

	return demographic, formats, filteredGenres, filteredTags
}

// BuildGenreString renders the display genre line for a series.
// Grouped mode prefixes each entry with its category; flat mode emits
// one sorted, deduplicated list.
func BuildGenreString(libraryName, demographic string, formats, genres, tags []string, grouped bool) string {
	if grouped {
		parts := make([]string, 0, 2+len(formats)+len(genres)+len(tags))
		if libraryName != "" {
			parts = append(parts, "Type:"+libraryName)
		}
		if demographic != "" {
			parts = append(parts, "Demographic:"+demographic)
		}
		for _, f := range formats {
			if f != "" {
				parts = append(parts, "Formats:"+f)
			}
		}
		for _, g := range genres {
			parts = append(parts, "Genres:"+g)
		}
		for _, t := range tags {
			parts = append(parts, "Tags:"+t)
		}
		return strings.Join(parts, ", ")
	}

	set := make(map[string]bool)
	flat := make([]string, 0, len(genres)+len(tags)+len(formats))
	for _, group := range [][]string{genres, tags, formats} {
		for _, v := range group {
			if v != "" && !set[v] {
				set[v] = true
				flat = append(flat, v)
			}
		}
	}
	sort.Strings(flat)
	return strings.Join(flat, ", ")
}
