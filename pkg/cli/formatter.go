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

package cli

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// Formatter handles console output styling
type Formatter struct {
	Writer       io.Writer
	DisableColor bool

	HeaderStyle    *color.Color
	TitleStyle     *color.Color
	SuccessStyle   *color.Color
	ErrorStyle     *color.Color
	WarningStyle   *color.Color
	SecondaryStyle *color.Color
	LabelStyle     *color.Color
	IDStyle        *color.Color
	DateStyle      *color.Color
}

// NewFormatter creates a formatter writing to stdout
func NewFormatter() *Formatter {
	f := &Formatter{
		Writer: os.Stdout,
	}
	f.initStyles()
	return f
}

// SetDisableColor toggles color output. The styles capture the color
// state when built, so they are rebuilt here.
func (f *Formatter) SetDisableColor(disable bool) {
	f.DisableColor = disable
	color.NoColor = disable
	f.initStyles()
}

func (f *Formatter) initStyles() {
	if f.DisableColor {
		color.NoColor = true
	}

	f.HeaderStyle = color.New(color.Bold, color.FgCyan)
	f.TitleStyle = color.New(color.Bold, color.FgWhite)
	f.SuccessStyle = color.New(color.FgGreen)
	f.ErrorStyle = color.New(color.FgRed)
	f.WarningStyle = color.New(color.FgYellow)
	f.SecondaryStyle = color.New(color.FgHiBlack)
	f.LabelStyle = color.New(color.FgHiBlue)
	f.IDStyle = color.New(color.FgHiMagenta)
	f.DateStyle = color.New(color.FgHiBlue)
}

// PrintHeader prints a section header
func (f *Formatter) PrintHeader(text string) {
	_, _ = f.HeaderStyle.Fprintln(f.Writer, text)
}

// PrintError prints an error line
func (f *Formatter) PrintError(text string) {
	_, _ = f.ErrorStyle.Fprintln(f.Writer, text)
}

// PrintWarning prints a warning line
func (f *Formatter) PrintWarning(text string) {
	_, _ = f.WarningStyle.Fprintln(f.Writer, text)
}

// PrintSuccess prints a success line
func (f *Formatter) PrintSuccess(text string) {
	_, _ = f.SuccessStyle.Fprintln(f.Writer, text)
}

// PrintDetail prints a labeled detail line
func (f *Formatter) PrintDetail(label, value string) {
	_, _ = fmt.Fprintf(f.Writer, "%s %s\n", f.LabelStyle.Sprint(label+":"), value)
}

// FormatID styles an identifier
func (f *Formatter) FormatID(id string) string {
	return f.IDStyle.Sprint(id)
}

// FormatDate styles a date, with a placeholder for missing values
func (f *Formatter) FormatDate(date *time.Time) string {
	if date == nil {
		return f.SecondaryStyle.Sprint("Not specified")
	}
	return f.DateStyle.Sprint(date.Format("2006-01-02"))
}

// PrintTable prints data in a table format
func (f *Formatter) PrintTable(headers []string, data [][]string) {
	table := tablewriter.NewTable(f.Writer)
	table.Configure(func(tableConfig *tablewriter.Config) {
		tableConfig.Header.Alignment.Global = tw.AlignLeft
		tableConfig.Row.Alignment.Global = tw.AlignLeft
		tableConfig.Header.Padding.Global = tw.Padding{
			Left:  " ",
			Right: " ",
		}
		tableConfig.Row.Padding.Global = tw.Padding{
			Left:  " ",
			Right: " ",
		}
	})

	table.Header(headers)
	if err := table.Bulk(data); err != nil {
		return
	}
	_ = table.Render()
}

// HandleError prints an error in a consistent way, returning whether an
// error was present
func (f *Formatter) HandleError(err error) bool {
	if err == nil {
		return false
	}
	f.PrintError(fmt.Sprintf("[ERROR] %s", err.Error()))
	return true
}
