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
	"context"
	"fmt"
	"os"
	"time"

	"Libretto/pkg/cli"
	"Libretto/pkg/config"
	"Libretto/pkg/engine"
	"Libretto/pkg/provider"
	"Libretto/pkg/provider/kavita"

	"github.com/spf13/cobra"
)

var (
	appEngine *engine.Engine
	appConfig *config.Config
	formatter *cli.Formatter
	version   string
	apiMode   bool
	debugMode bool
	noColor   bool
)

var rootCmd = &cobra.Command{
	Use:   "libretto",
	Short: "Libretto browses a self-hosted media server as a manga catalog.",
	Long:  "Libretto is a read-only catalog client for self-hosted media servers. It lists, searches and inspects series and renders normalized chapter lists without ever modifying the server.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if appConfig == nil {
			cfg, err := config.Load()
			if err != nil {
				fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
				os.Exit(1)
			}
			appConfig = cfg
		}

		if appEngine == nil {
			appEngine = engine.New(engine.Options{
				LogFile:           appConfig.LogFile,
				RequestsPerSecond: appConfig.RequestsPerSecond,
			})
			if err := appEngine.RegisterProvider(kavita.NewAdapter(appEngine, appConfig)); err != nil {
				fmt.Fprintf(os.Stderr, "Failed to register provider: %v\n", err)
				os.Exit(1)
			}
		}
		appEngine.SetVerboseMode(debugMode)

		formatter = cli.NewFormatter()
		formatter.SetDisableColor(noColor || apiMode)
	},
	Run: func(cmd *cobra.Command, args []string) {
		if err := cmd.Help(); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

// Execute runs the root command
func Execute() {
	defer func() {
		if appEngine != nil {
			_ = appEngine.Shutdown()
		}
	}()
	if err := rootCmd.Execute(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error executing libretto: %s\n", err)
		os.Exit(1)
	}
}

// SetVersion injects the build version before Execute
func SetVersion(v string) {
	version = v
}

// catalogContext returns the catalog provider, initialized and ready,
// plus a bounded context for one command invocation
func catalogContext() (provider.Provider, context.Context, context.CancelFunc, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)

	p, err := appEngine.GetProvider("kavita")
	if err != nil {
		cancel()
		return nil, nil, nil, err
	}
	if err := p.Initialize(ctx); err != nil {
		cancel()
		return nil, nil, nil, err
	}
	return p, ctx, cancel, nil
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&apiMode, "api", false, "Output machine-readable JSON instead of formatted text")
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging to the console")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colorized output")
}
