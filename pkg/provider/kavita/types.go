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

// Server sentinel numbers. The server models "no real volume" and
// "specials container" as volumes with reserved numbers, and a
// single-file volume as a volume whose only chapter carries the
// unnumbered sentinel as its number string.
const (
	UnnumberedVolume    = -100000.0
	UnnumberedVolumeStr = "-100000"
	SpecialVolumeNumber = 100000.0
)

// Sort key offsets. Single-file volumes and specials must land in a
// sub-unit band below any real chapter number while keeping their own
// relative order: Volume 1 -> 0.0001, Special 100000 -> 0.00001.
const (
	VolumeNumberOffset  = 10000.0
	SpecialNumberOffset = 1e10
)

// LibraryType mirrors the server's library type enum
type LibraryType int

const (
	LibraryManga LibraryType = iota
	LibraryComic
	LibraryBook
	LibraryImage
	LibraryLightNovel
	LibraryComicVine
)

// IsComic reports whether the library holds western-style comics,
// which use "Issue" vocabulary instead of "Chapter"
func (t LibraryType) IsComic() bool {
	return t == LibraryComic || t == LibraryComicVine
}

// Format mirrors the server's media format enum
type Format int

const (
	FormatImage Format = iota
	FormatArchive
	FormatUnknown
	FormatEpub
	FormatPdf
)

// ChapterKind is the semantic classification of a raw chapter record
type ChapterKind int

const (
	// KindRegular is a chapter inside a real numbered volume
	KindRegular ChapterKind = iota
	// KindChapter is a loose chapter without a real volume
	KindChapter
	// KindSingleFileVolume is a volume readable as one unit
	KindSingleFileVolume
	// KindSpecial lives in the specials container volume
	KindSpecial
	// KindIssue is the comic-library counterpart of Regular/Chapter
	KindIssue
)

func (k ChapterKind) String() string {
	switch k {
	case KindRegular:
		return "Regular"
	case KindChapter:
		return "Chapter"
	case KindSingleFileVolume:
		return "SingleFileVolume"
	case KindSpecial:
		return "Special"
	case KindIssue:
		return "Issue"
	default:
		return "Unknown"
	}
}

// RawFile is one underlying file of a chapter
type RawFile struct {
	ID        int    `json:"id"`
	Bytes     int64  `json:"bytes"`
	Extension string `json:"extension"`
}

// RawChapter is a chapter record as the server returns it
type RawChapter struct {
	ID          int       `json:"id"`
	Range       string    `json:"range"`
	Number      string    `json:"number"`
	MinNumber   float64   `json:"minNumber"`
	MaxNumber   float64   `json:"maxNumber"`
	Pages       int       `json:"pages"`
	IsSpecial   bool      `json:"isSpecial"`
	Title       string    `json:"title"`
	TitleName   string    `json:"titleName"`
	VolumeID    int       `json:"volumeId"`
	Created     string    `json:"created"`
	ReleaseDate string    `json:"releaseDate"`
	Files       []RawFile `json:"files"`
}

// FileCount returns the number of underlying files
func (c *RawChapter) FileCount() int {
	return len(c.Files)
}

// TotalFileBytes sums the sizes of all underlying files
func (c *RawChapter) TotalFileBytes() int64 {
	var total int64
	for _, f := range c.Files {
		total += f.Bytes
	}
	return total
}

// FirstExtension returns the uppercased extension of the first file
func (c *RawChapter) FirstExtension() string {
	if len(c.Files) == 0 {
		return ""
	}
	return upperExt(c.Files[0].Extension)
}

// RawVolume is a volume record as the server returns it
type RawVolume struct {
	ID        int          `json:"id"`
	MinNumber float64      `json:"minNumber"`
	MaxNumber float64      `json:"maxNumber"`
	Name      string       `json:"name"`
	Pages     int          `json:"pages"`
	Created   string       `json:"created"`
	SeriesID  int          `json:"seriesId"`
	Chapters  []RawChapter `json:"chapters"`
}

// IsSingleFile reports whether this volume is a single readable unit:
// exactly one chapter carrying the unnumbered sentinel as its number
func (v *RawVolume) IsSingleFile() bool {
	return len(v.Chapters) == 1 && v.Chapters[0].Number == UnnumberedVolumeStr
}

// TotalFileBytes sums the sizes of every file in every chapter
func (v *RawVolume) TotalFileBytes() int64 {
	var total int64
	for i := range v.Chapters {
		total += v.Chapters[i].TotalFileBytes()
	}
	return total
}

// FirstExtension returns the uppercased extension of the first file
// found in the volume's chapters
func (v *RawVolume) FirstExtension() string {
	for i := range v.Chapters {
		if ext := v.Chapters[i].FirstExtension(); ext != "" {
			return ext
		}
	}
	return ""
}

// RawSeries is a series record as the server returns it
type RawSeries struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	SortName    string  `json:"sortName"`
	Pages       int     `json:"pages"`
	UserRating  float64 `json:"userRating"`
	Format      int     `json:"format"`
	Created     string  `json:"created"`
	LibraryID   int     `json:"libraryId"`
	LibraryName string  `json:"libraryName"`
}

// RawSeriesMetadata is the series metadata record backing detail views
type RawSeriesMetadata struct {
	SeriesID          int           `json:"seriesId"`
	Summary           string        `json:"summary"`
	LibraryID         int           `json:"libraryId"`
	LibraryName       string        `json:"libraryName"`
	Genres            []Descriptor  `json:"genres"`
	Tags              []Descriptor  `json:"tags"`
	Writers           []PersonEntry `json:"writers"`
	CoverArtists      []PersonEntry `json:"coverArtists"`
	PublicationStatus int           `json:"publicationStatus"`
}

// Descriptor is the common {id,title} metadata shape used by genres,
// tags and collections
type Descriptor struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
}

// ValueDescriptor is the {value,title} shape used by age ratings and
// publication statuses
type ValueDescriptor struct {
	Value int    `json:"value"`
	Title string `json:"title"`
}

// LanguageEntry is the {isoCode,title} language shape
type LanguageEntry struct {
	ISOCode string `json:"isoCode"`
	Title   string `json:"title"`
}

// LibraryEntry is the {id,name,type} library shape
type LibraryEntry struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Type int    `json:"type"`
}

// PersonEntry is the {id,name,role} person shape
type PersonEntry struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Role int    `json:"role"`
}

// SmartFilter is a server-stored, opaque pre-built query
type SmartFilter struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Filter string `json:"filter"`
}

// RawReadingList is a server-side curated reading list
type RawReadingList struct {
	ID            int    `json:"id"`
	Title         string `json:"title"`
	Summary       string `json:"summary"`
	Promoted      bool   `json:"promoted"`
	CoverImage    string `json:"coverImage"`
	ItemCount     int    `json:"itemCount"`
	StartingYear  int    `json:"startingYear"`
	StartingMonth int    `json:"startingMonth"`
	EndingYear    int    `json:"endingYear"`
	EndingMonth   int    `json:"endingMonth"`
	OwnerUserName string `json:"ownerUserName"`
}

// RawReadingListItem is one ordered entry of a reading list. A chapter
// entry carries ChapterID, a volume entry VolumeID; both zero means the
// entry points at the series itself.
type RawReadingListItem struct {
	ID               int    `json:"id"`
	Order            int    `json:"order"`
	ChapterID        int    `json:"chapterId"`
	SeriesID         int    `json:"seriesId"`
	SeriesName       string `json:"seriesName"`
	ChapterNumber    string `json:"chapterNumber"`
	VolumeNumber     string `json:"volumeNumber"`
	ChapterTitleName string `json:"chapterTitleName"`
	VolumeID         int    `json:"volumeId"`
	Title            string `json:"title"`
	ReleaseDate      string `json:"releaseDate"`
	LibraryName      string `json:"libraryName"`
	ReadingListID    int    `json:"readingListId"`
}

func upperExt(ext string) string {
	out := make([]byte, 0, len(ext))
	for i := 0; i < len(ext); i++ {
		ch := ext[i]
		if ch == '.' {
			continue
		}
		if 'a' <= ch && ch <= 'z' {
			ch -= 'a' - 'A'
		}
		out = append(out, ch)
	}
	return string(out)
}
