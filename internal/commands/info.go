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
	"strings"

	"Libretto/pkg/util"

	"github.com/spf13/cobra"
)

// infoCmd represents the info command
var infoCmd = &cobra.Command{
	Use:   "info [series-id]",
	Short: "Show details for a series",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		p, ctx, cancel, err := catalogContext()
		if err != nil {
			reportError(err)
			return
		}
		defer cancel()

		info, err := p.GetSeries(ctx, args[0])
		if err != nil {
			reportError(err)
			return
		}

		if apiMode {
			util.OutputJSON("success", info, nil)
			return
		}

		formatter.PrintHeader(info.Title)
		formatter.PrintDetail("ID", formatter.FormatID(info.ID))
		if info.Status != "" {
			formatter.PrintDetail("Status", string(info.Status))
		}
		if info.LibraryName != "" {
			formatter.PrintDetail("Library", info.LibraryName)
		}
		if len(info.Authors) > 0 {
			formatter.PrintDetail("Authors", strings.Join(info.Authors, ", "))
		}
		if len(info.Artists) > 0 {
			formatter.PrintDetail("Artists", strings.Join(info.Artists, ", "))
		}
		if len(info.Genres) > 0 {
			formatter.PrintDetail("Genres", strings.Join(info.Genres, ", "))
		}
		if info.Summary != "" {
			formatter.PrintDetail("Summary", info.Summary)
		}
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
}
