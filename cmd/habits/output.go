// ABOUTME: Uniform result rendering for all commands.
// ABOUTME: Aligned text tables, or {"result": ...} JSON with --json.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
)

// resultWriter is swapped out by tests to capture output.
var resultWriter io.Writer = os.Stdout

// printRows renders tabular results: a header with dashed underline and
// two-space separated columns, or a list of column-keyed objects under
// "result" in JSON mode. An empty result renders "no results".
func printRows(columns []string, rows [][]string) error {
	if len(rows) == 0 {
		return printMessage("no results")
	}

	if jsonOutput {
		result := make([]map[string]string, 0, len(rows))
		for _, row := range rows {
			obj := make(map[string]string, len(columns))
			for i, col := range columns {
				obj[col] = row[i]
			}
			result = append(result, obj)
		}
		return json.NewEncoder(resultWriter).Encode(map[string]any{"result": result})
	}

	w := tabwriter.NewWriter(resultWriter, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, strings.Join(columns, "\t"))
	dashes := make([]string, len(columns))
	for i, col := range columns {
		dashes[i] = strings.Repeat("-", len(col))
	}
	fmt.Fprintln(w, strings.Join(dashes, "\t"))
	for _, row := range rows {
		fmt.Fprintln(w, strings.Join(row, "\t"))
	}
	return w.Flush()
}

// printMessage renders a plain response line, wrapped as {"result": msg}
// in JSON mode.
func printMessage(msg string) error {
	if jsonOutput {
		return json.NewEncoder(resultWriter).Encode(map[string]any{"result": msg})
	}
	_, err := fmt.Fprintln(resultWriter, msg)
	return err
}

// success confirms a mutation, green on a terminal, plain in JSON mode.
func success(format string, args ...any) error {
	if jsonOutput {
		return printMessage(fmt.Sprintf(format, args...))
	}
	if resultWriter == os.Stdout {
		color.Green("✓ "+format, args...)
		return nil
	}
	_, err := fmt.Fprintf(resultWriter, "✓ "+format+"\n", args...)
	return err
}
