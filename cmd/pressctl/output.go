package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"press-maintenance-backend/internal/report"
)

func printOutput(w io.Writer, format string, v any) error {
	switch format {
	case "json":
		return printJSON(w, v)
	case "yaml":
		return printYAML(w, v)
	default:
		return fmt.Errorf("unsupported output format: %s (use table, json or yaml)", format)
	}
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printYAML(w io.Writer, v any) error {
	// Round-trip through JSON so yaml keys follow the json tags.
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	var m any
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	return enc.Encode(m)
}

// printTable writes left-aligned columns two spaces apart. Widths are
// measured in terminal columns so Japanese text lines up.
func printTable(out io.Writer, headers []string, rows [][]string) {
	upper := make([]string, len(headers))
	for i, h := range headers {
		upper[i] = strings.ToUpper(h)
	}

	widths := make([]int, len(headers))
	for _, row := range append([][]string{upper}, rows...) {
		for i, v := range row {
			if i < len(widths) {
				widths[i] = max(widths[i], report.DisplayWidth(v))
			}
		}
	}

	writeRow := func(row []string) {
		cells := make([]string, len(row))
		for i, v := range row {
			if i == len(row)-1 || i >= len(widths) {
				cells[i] = v
			} else {
				cells[i] = report.Pad(v, widths[i])
			}
		}
		fmt.Fprintln(out, strings.Join(cells, "  "))
	}

	writeRow(upper)
	for _, row := range rows {
		writeRow(row)
	}
}

// truncate shortens s to n terminal columns, ending in "..." when cut.
func truncate(s string, n int) string {
	if report.DisplayWidth(s) <= n {
		return s
	}
	if n <= 3 {
		return report.Truncate(s, n)
	}
	return report.Truncate(s, n-3) + "..."
}
