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

package commands

import (
	"fmt"

	"Libretto/pkg/provider/kavita"
	"Libretto/pkg/util"

	"github.com/spf13/cobra"
)

// filtersCmd represents the filters command
var filtersCmd = &cobra.Command{
	Use:   "filters",
	Short: "Show the filter options the server offers",
	Long:  "Show the facet names (genres, tags, libraries, languages and more) and server-stored smart filters usable with search --filter.",
	Run: func(cmd *cobra.Command, args []string) {
		p, ctx, cancel, err := catalogContext()
		if err != nil {
			reportError(err)
			return
		}
		defer cancel()

		adapter, ok := p.(*kavita.Adapter)
		if !ok {
			reportError(fmt.Errorf("provider %s does not expose filter options", p.ID()))
			return
		}

		dict, err := adapter.Dictionaries(ctx)
		if err != nil {
			reportError(err)
			return
		}

		if apiMode {
			util.OutputJSON("success", map[string]interface{}{
				"genres":        titlesOf(dict.Genres),
				"tags":          titlesOf(dict.Tags),
				"collections":   titlesOf(dict.Collections),
				"age_ratings":   valueTitlesOf(dict.AgeRatings),
				"languages":     languageTitlesOf(dict.Languages),
				"libraries":     libraryNamesOf(dict.Libraries),
				"smart_filters": smartFilterNamesOf(dict.SmartFilters),
			}, nil)
			return
		}

		formatter.PrintHeader("Available filter options")
		printNameList("Genres", titlesOf(dict.Genres))
		printNameList("Tags", titlesOf(dict.Tags))
		printNameList("Collections", titlesOf(dict.Collections))
		printNameList("Age ratings", valueTitlesOf(dict.AgeRatings))
		printNameList("Languages", languageTitlesOf(dict.Languages))
		printNameList("Libraries", libraryNamesOf(dict.Libraries))
		printNameList("Smart filters", smartFilterNamesOf(dict.SmartFilters))
	},
}

func printNameList(header string, names []string) {
	if len(names) == 0 {
		return
	}
	rows := make([][]string, 0, len(names))
	for _, n := range names {
		rows = append(rows, []string{n})
	}
	formatter.PrintTable([]string{header}, rows)
}

func titlesOf(descriptors []kavita.Descriptor) []string {
	names := make([]string, 0, len(descriptors))
	for _, d := range descriptors {
		names = append(names, d.Title)
	}
	return names
}

func valueTitlesOf(descriptors []kavita.ValueDescriptor) []string {
	names := make([]string, 0, len(descriptors))
	for _, d := range descriptors {
		names = append(names, d.Title)
	}
	return names
}

func languageTitlesOf(languages []kavita.LanguageEntry) []string {
	names := make([]string, 0, len(languages))
	for _, l := range languages {
		names = append(names, l.Title)
	}
	return names
}

func libraryNamesOf(libraries []kavita.LibraryEntry) []string {
	names := make([]string, 0, len(libraries))
	for _, l := range libraries {
		names = append(names, l.Name)
	}
	return names
}

func smartFilterNamesOf(filters []kavita.SmartFilter) []string {
	names := make([]string, 0, len(filters))
	for _, f := range filters {
		names = append(names, f.Name)
	}
	return names
}

func init() {
	rootCmd.AddCommand(filtersCmd)
}
