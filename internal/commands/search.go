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

	"Libretto/pkg/core"
	"Libretto/pkg/util"

	"github.com/spf13/cobra"
)

var (
	searchPage    int
	searchFilters map[string]string
)

// searchCmd represents the search command
var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search the catalog",
	Long: `Search series by name, or by role with a prefix ("artist:Name",
"people:Name"). Facet filters narrow the results; a smart filter
replaces the query entirely. The filters "want_to_read=true" and
"reading_lists=true" browse those server-side lists instead.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		query := ""
		if len(args) == 1 {
			query = args[0]
		}

		p, ctx, cancel, err := catalogContext()
		if err != nil {
			reportError(err)
			return
		}
		defer cancel()

		page, err := p.Search(ctx, core.SearchOptions{
			Query:   query,
			Page:    searchPage,
			Filters: searchFilters,
		})
		if err != nil {
			reportError(err)
			return
		}

		if apiMode {
			util.OutputJSON("success", map[string]interface{}{
				"query":    query,
				"page":     searchPage,
				"results":  page.Series,
				"count":    len(page.Series),
				"has_next": page.HasNext,
			}, nil)
			return
		}

		printSeriesPage(fmt.Sprintf("Search results for %q", query), page)
	},
}

// printSeriesPage renders one listing page as a table
func printSeriesPage(header string, page *core.SeriesPage) {
	formatter.PrintHeader(header)
	if len(page.Series) == 0 {
		formatter.PrintWarning("No series found.")
		return
	}

	rows := make([][]string, 0, len(page.Series))
	for _, s := range page.Series {
		rows = append(rows, []string{s.ID, s.Title})
	}
	formatter.PrintTable([]string{"ID", "Title"}, rows)

	if page.HasNext {
		formatter.PrintDetail("More", "additional pages available, use --page")
	}
}

// reportError prints an error in the active output mode
func reportError(err error) {
	if apiMode {
		util.OutputJSON("error", nil, err)
		return
	}
	formatter.HandleError(err)
}

func init() {
	rootCmd.AddCommand(searchCmd)

	searchCmd.Flags().IntVar(&searchPage, "page", 1, "Result page to fetch")

	searchFilters = make(map[string]string)
	searchCmd.Flags().StringToStringVar(&searchFilters, "filter", nil,
		"Facet filters (e.g. --filter genres=Action,status=Completed,smart_filter=Backlog)")
}
