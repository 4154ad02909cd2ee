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
	"runtime"

	"Libretto/pkg/engine/logger"
	"Libretto/pkg/util"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Long:  `Display version information for Libretto, including the log file location.`,
	Run: func(cmd *cobra.Command, args []string) {
		logFile := ""
		if appEngine != nil {
			if s, ok := appEngine.Logger.(*logger.Service); ok {
				logFile = s.LogFile()
			}
		}

		if apiMode {
			versionData := map[string]interface{}{
				"version":    version,
				"go_version": runtime.Version(),
				"os":         runtime.GOOS,
				"arch":       runtime.GOARCH,
			}
			if logFile != "" {
				versionData["log_file"] = logFile
			} else {
				versionData["log_file"] = "disabled"
			}
			util.OutputJSON("success", versionData, nil)
			return
		}

		fmt.Printf("Libretto version: %s\n", version)
		fmt.Printf("Go version: %s\n", runtime.Version())
		fmt.Printf("OS/Arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
		if logFile != "" {
			fmt.Printf("Log file: %s\n", logFile)
		} else {
			fmt.Println("Logging to file: disabled")
		}
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
