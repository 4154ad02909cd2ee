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
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// TitleContext carries the surrounding information CleanTitle needs to
// normalize a chapter title
type TitleContext struct {
	SeriesName    string
	ChapterNumber string
	VolumeNumber  string
	VolumeName    string
	IsWebtoon     bool
}

var (
	numberedPrefixRe = regexp.MustCompile(`^\d+\.\s+.*`)
	volumeTokenRe    = regexp.MustCompile(`(?i)\bvolume\s+(\d+)`)
	volTokenRe       = regexp.MustCompile(`(?i)\bvol\s+(\d+)`)
	chapterTokenRe   = regexp.MustCompile(`(?i)\bchapter\s+(\d+)`)
	chTokenRe        = regexp.MustCompile(`(?i)\bch\s+(\d+)`)
	episodeTokenRe   = regexp.MustCompile(`(?i)\bepisode\s+(\d+)`)
	epTokenRe        = regexp.MustCompile(`(?i)\bep\s+(\d+)`)
	cNumTokenRe      = regexp.MustCompile(`(?i)\bc(\d+)\b`)
	whitespaceRe     = regexp.MustCompile(`\s+`)
	bareNumberedRe   = regexp.MustCompile(`(?i)^(Ch|Ep|Vol|S)\. (\d{2})$`)
	anyNumberingRe   = regexp.MustCompile(`(?i)(vol|volume|ch|chapter|ep|episode|c\d+)`)
	leadingNumberRe  = regexp.MustCompile(`^\d+(\s*-\s*)?`)
)

// CleanTitle normalizes a raw chapter title: strips an embedded series
// name, canonicalizes volume/chapter/episode numbering tokens with
// two-digit padding, and picks webtoon vocabulary (Season/Episode)
// when the context says so. A recognized token is only abbreviated
// when other content remains in the title, so a numbering-only title
// keeps its long form. Cleaning that would yield a blank string
// returns the original title instead.
func CleanTitle(original string, ctx TitleContext) string {
	title := strings.TrimSpace(original)
	webtoon := ctx.IsWebtoon

	// Titles like "12. It's my fate" pass through untouched
	if numberedPrefixRe.MatchString(title) {
		return title
	}

	if ctx.SeriesName != "" {
		seriesRe, err := regexp.Compile(`(?i)\b` + regexp.QuoteMeta(ctx.SeriesName) + `\b[\s\-:]*`)
		if err == nil {
			title = strings.TrimSpace(seriesRe.ReplaceAllString(title, ""))
		}
	}

	title = replaceNumbered(title, volumeTokenRe, func(number string, hasMore bool) string {
		if webtoon {
			if hasMore {
				return "S. " + number
			}
			return "Season " + number
		}
		if hasMore {
			return "Vol. " + number
		}
		return "Volume " + number
	})

	title = replaceNumbered(title, volTokenRe, func(number string, hasMore bool) string {
		if webtoon {
			if hasMore {
				return "S. " + number
			}
			return "Season " + number
		}
		return "Vol. " + number
	})

	title = replaceNumbered(title, chapterTokenRe, func(number string, hasMore bool) string {
		if webtoon {
			if hasMore {
				return "Ep. " + number
			}
			return "Episode " + number
		}
		if hasMore {
			return "Ch. " + number
		}
		return "Chapter " + number
	})

	title = replaceNumbered(title, chTokenRe, func(number string, hasMore bool) string {
		switch {
		case webtoon && hasMore:
			return "Ep. " + number
		case webtoon:
			return "Episode " + number
		default:
			return "Ch. " + number
		}
	})

	title = replaceNumbered(title, episodeTokenRe, func(number string, hasMore bool) string {
		if hasMore {
			return "Ep. " + number
		}
		return "Episode " + number
	})

	title = replaceNumbered(title, epTokenRe, func(number string, hasMore bool) string {
		return "Ep. " + number
	})

	title = replaceNumbered(title, cNumTokenRe, func(number string, hasMore bool) string {
		term := "Ch."
		if webtoon {
			term = "Ep."
		}
		if hasMore {
			return term + " " + number
		}
		return "c" + number
	})

	title = strings.TrimSpace(whitespaceRe.ReplaceAllString(title, " "))

	// A title that is nothing but "Ch. 08" reads better expanded
	if m := bareNumberedRe.FindStringSubmatch(title); m != nil {
		title = expandBareNumbered(strings.ToLower(m[1]), m[2], webtoon)
	}

	if !anyNumberingRe.MatchString(title) {
		title = strings.TrimSpace(leadingNumberRe.ReplaceAllString(title, ""))
	}

	if title == "" {
		return original
	}
	return title
}

// replaceNumbered rewrites every match of re, handing the callback the
// zero-padded captured number and whether letter/digit content exists
// outside the match. Positions are judged against the string as it was
// before this replacement pass.
func replaceNumbered(title string, re *regexp.Regexp, repl func(number string, hasMore bool) string) string {
	matches := re.FindAllStringSubmatchIndex(title, -1)
	if matches == nil {
		return title
	}

	var sb strings.Builder
	last := 0
	for _, m := range matches {
		start, end := m[0], m[1]
		number := padTwo(title[m[2]:m[3]])
		sb.WriteString(title[last:start])
		sb.WriteString(repl(number, hasMoreContent(title, start, end)))
		last = end
	}
	sb.WriteString(title[last:])
	return sb.String()
}

func padTwo(number string) string {
	for len(number) < 2 {
		number = "0" + number
	}
	return number
}

// hasMoreContent reports whether any letter or digit exists outside
// the [start,end) match range
func hasMoreContent(title string, start, end int) bool {
	containsAlnum := func(s string) bool {
		for _, r := range s {
			if unicode.IsLetter(r) || unicode.IsDigit(r) {
				return true
			}
		}
		return false
	}
	return containsAlnum(strings.TrimSpace(title[:start])) ||
		containsAlnum(strings.TrimSpace(title[end:]))
}

func expandBareNumbered(kind, number string, webtoon bool) string {
	n, err := strconv.Atoi(number)
	if err != nil {
		n = 0
	}
	num := strconv.Itoa(n)

	if webtoon {
		switch kind {
		case "vol", "s":
			return "Season " + num
		default:
			return "Episode " + num
		}
	}
	switch kind {
	case "ep":
		return "Episode " + num
	case "vol":
		return "Volume " + num
	case "s":
		return "Season " + num
	default:
		return "Chapter " + num
	}
}

// DefaultCleanTitle builds the fallback label used when cleaning a
// title yields nothing usable
func DefaultCleanTitle(kind ChapterKind, number, volumeNumber string, webtoon bool) string {
	safeNumber := number
	if safeNumber == "" {
		safeNumber = "01"
	}
	safeVolume := volumeNumber
	if safeVolume == "" {
		safeVolume = "0"
	}

	switch kind {
	case KindRegular:
		switch {
		case webtoon:
			return "Episode " + safeNumber
		case safeVolume != "0":
			return "Volume " + safeVolume + " Chapter " + safeNumber
		default:
			return "Chapter " + safeNumber
		}
	case KindChapter:
		if webtoon {
			return "Episode " + safeNumber
		}
		return "Chapter " + safeNumber
	case KindIssue:
		return "Issue #" + padThree(safeNumber)
	case KindSingleFileVolume:
		if webtoon {
			return "Season " + safeVolume
		}
		return "Volume " + safeVolume
	case KindSpecial:
		if number != "" {
			return "Special " + number
		}
		return "Special " + padTwo(safeVolume)
	default:
		return "Chapter " + safeNumber
	}
}

func padThree(number string) string {
	for len(number) < 3 {
		number = "0" + number
	}
	return number
}
