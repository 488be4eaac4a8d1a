// Package ui holds the terminal printers used by the nodegraph CLI.
package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
)

// Printers
var (
	Brand  = color.New(color.FgHiGreen, color.Bold)
	Subtle = color.New(color.FgHiBlack)
	Warn   = color.New(color.FgYellow)
	Info   = color.New(color.FgCyan)
	Good   = color.New(color.FgGreen)
	Bad    = color.New(color.FgRed)
)

// Out is where Banner and Table write.
var Out io.Writer = os.Stdout

// Banner prints the command banner.
func Banner(subtitle string) {
	fmt.Fprintf(Out, "%s %s\n\n", Brand.Sprint("nodegraph"), Subtle.Sprint(subtitle))
}

// Table prints a simple aligned table. Cells may be pre-colored with
// paint, which keeps alignment because widths come from the plain text.
func Table(headers []string, rows [][]string, paint func(row, col int, cell string) string) {
	if len(rows) == 0 {
		return
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	headerLine := "  "
	sepLine := "  "
	for i, h := range headers {
		headerLine += fmt.Sprintf("%-*s  ", widths[i], h)
		sepLine += strings.Repeat("─", widths[i]) + "  "
	}
	fmt.Fprintln(Out, Subtle.Sprint(headerLine))
	fmt.Fprintln(Out, Subtle.Sprint(sepLine))

	for r, row := range rows {
		line := "  "
		for i, cell := range row {
			if i >= len(widths) {
				break
			}
			padded := fmt.Sprintf("%-*s", widths[i], cell)
			if paint != nil {
				padded = paint(r, i, padded)
			}
			line += padded + "  "
		}
		fmt.Fprintln(Out, strings.TrimRight(line, " "))
	}
}
