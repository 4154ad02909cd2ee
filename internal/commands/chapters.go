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

	"Libretto/pkg/util"

	"github.com/spf13/cobra"
)

// chaptersCmd represents the chapters command
var chaptersCmd = &cobra.Command{
	Use:   "chapters [series-id]",
	Short: "List the chapters of a series",
	Long:  "List a series' chapters newest first, with volumes, specials and loose chapters folded into one reading order.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		p, ctx, cancel, err := catalogContext()
		if err != nil {
			reportError(err)
			return
		}
		defer cancel()

		chapters, err := p.GetChapters(ctx, args[0])
		if err != nil {
			reportError(err)
			return
		}

		if apiMode {
			util.OutputJSON("success", map[string]interface{}{
				"series_id": args[0],
				"chapters":  chapters,
				"count":     len(chapters),
			}, nil)
			return
		}

		formatter.PrintHeader(fmt.Sprintf("Chapters of series %s", args[0]))
		if len(chapters) == 0 {
			formatter.PrintWarning("No chapters found.")
			return
		}

		rows := make([][]string, 0, len(chapters))
		for _, ch := range chapters {
			date := ""
			if ch.Date != nil {
				date = ch.Date.Format("2006-01-02")
			}
			rows = append(rows, []string{ch.ID, ch.Name, ch.Scanlator, date})
		}
		formatter.PrintTable([]string{"ID", "Name", "Group", "Date"}, rows)
	},
}

func init() {
	rootCmd.AddCommand(chaptersCmd)
}
