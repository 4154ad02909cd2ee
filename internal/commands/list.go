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

var listPage int

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list [popular|latest]",
	Short: "List series by popularity or recency",
	Long:  "List series ordered by average rating (popular) or by most recently added chapter (latest).",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		mode := args[0]
		if mode != "popular" && mode != "latest" {
			reportError(fmt.Errorf("unknown listing %q, expected popular or latest", mode))
			return
		}

		p, ctx, cancel, err := catalogContext()
		if err != nil {
			reportError(err)
			return
		}
		defer cancel()

		var page *core.SeriesPage
		if mode == "popular" {
			page, err = p.Popular(ctx, listPage)
		} else {
			page, err = p.Latest(ctx, listPage)
		}
		if err != nil {
			reportError(err)
			return
		}

		if apiMode {
			util.OutputJSON("success", map[string]interface{}{
				"listing":  mode,
				"page":     listPage,
				"results":  page.Series,
				"count":    len(page.Series),
				"has_next": page.HasNext,
			}, nil)
			return
		}

		header := "Popular series"
		if mode == "latest" {
			header = "Recently updated series"
		}
		printSeriesPage(header, page)
	},
}

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().IntVar(&listPage, "page", 1, "Result page to fetch")
}
