// Package report renders the printable machine, maintenance and statistics
// listings as fixed-width text, ready to hand to a print spooler.
package report

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"press-maintenance-backend/internal/model"
	"press-maintenance-backend/internal/store"
)

const ruleWidth = 100

// Options controls the banner of every report.
type Options struct {
	Title       string
	GeneratedAt time.Time
}

type column struct {
	title string
	width int
	right bool
}

type table struct {
	w    *bufio.Writer
	cols []column
}

func (t table) header() {
	cells := make([]string, len(t.cols))
	for i, c := range t.cols {
		cells[i] = cell(c.title, c.width)
	}
	fmt.Fprintln(t.w, strings.TrimRight(strings.Join(cells, " | "), " "))
	fmt.Fprintln(t.w, strings.Repeat("-", ruleWidth))
}

func (t table) row(values ...string) {
	cells := make([]string, len(t.cols))
	for i, c := range t.cols {
		if c.right {
			cells[i] = rcell(values[i], c.width)
		} else {
			cells[i] = cell(values[i], c.width)
		}
	}
	fmt.Fprintln(t.w, strings.TrimRight(strings.Join(cells, " | "), " "))
}

func banner(w *bufio.Writer, opts Options, subtitle string) {
	fmt.Fprintln(w, strings.Repeat("=", ruleWidth))
	fmt.Fprintf(w, "%s - %s\n", opts.Title, subtitle)
	fmt.Fprintf(w, "Generated: %s\n", opts.GeneratedAt.Format("2006-01-02 15:04"))
	fmt.Fprintln(w, strings.Repeat("=", ruleWidth))
	fmt.Fprintln(w)
}

// MachineList writes the machine list followed by the per group and type
// summary. machines must already be in display order.
func MachineList(out io.Writer, opts Options, machines []model.Machine, st store.Statistics) error {
	w := bufio.NewWriter(out)
	banner(w, opts, "Machine List")

	t := table{w: w, cols: []column{
		{"ID", 4, true},
		{"Machine No", 10, false},
		{"Equip No", 8, false},
		{"Manufacturer", 18, false},
		{"Model", 16, false},
		{"Serial No", 16, false},
		{"Type", 8, false},
		{"G", 2, true},
		{"Tonnage", 7, true},
		{"Spec", 5, true},
		{"Registered", 10, false},
	}}
	t.header()
	for _, m := range machines {
		tonnage := unset
		if m.Tonnage != nil {
			tonnage = strconv.Itoa(*m.Tonnage) + "t"
		}
		filled, total := m.Specification.Completeness()
		t.row(
			strconv.FormatInt(m.ID, 10),
			m.MachineNumber,
			orUnset(m.EquipmentNumber),
			orUnset(m.Manufacturer),
			orUnset(m.ModelType),
			orUnset(m.SerialNumber),
			string(m.MachineType),
			strconv.Itoa(m.ProductionGroup),
			tonnage,
			fmt.Sprintf("%d/%d", filled, total),
			m.CreatedAt.Format("2006-01-02"),
		)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, strings.Repeat("=", ruleWidth))
	fmt.Fprintln(w, "Summary")
	fmt.Fprintln(w, strings.Repeat("=", ruleWidth))
	fmt.Fprintln(w)
	fmt.Fprintln(w, "[By production group and type]")
	for _, gt := range st.ByGroupAndType {
		fmt.Fprintf(w, "  Group %d %s: %d\n", gt.ProductionGroup, gt.MachineType, gt.Count)
	}
	fmt.Fprintf(w, "\nTotal machines: %d\n", st.TotalMachines)
	fmt.Fprintln(w, strings.Repeat("=", ruleWidth))

	return w.Flush()
}

// MaintenanceList writes maintenance records newest first, as returned by
// the ledger, with a record count at the end.
func MaintenanceList(out io.Writer, opts Options, entries []store.MaintenanceEntry) error {
	w := bufio.NewWriter(out)
	banner(w, opts, "Maintenance Records")

	t := table{w: w, cols: []column{
		{"Record", 6, true},
		{"Machine No", 10, false},
		{"Maintenance Date", 16, false},
		{"Judgment", 12, false},
		{"Clutch Valve", 13, false},
		{"Brake Valve", 13, false},
		{"Remarks", 20, false},
	}}
	t.header()
	for _, e := range entries {
		remarks := ""
		if e.Remarks != nil {
			remarks = *e.Remarks
		}
		t.row(
			strconv.FormatInt(e.ID, 10),
			e.MachineNumber,
			e.MaintenanceDatetime,
			string(e.OverallJudgment),
			string(e.ClutchValveReplacement),
			string(e.BrakeValveReplacement),
			remarks,
		)
	}

	fmt.Fprintf(w, "\nTotal maintenance records: %d\n", len(entries))
	fmt.Fprintln(w, strings.Repeat("=", ruleWidth))
	return w.Flush()
}

// Statistics writes the analysis summary.
func Statistics(out io.Writer, opts Options, st store.Statistics) error {
	w := bufio.NewWriter(out)
	banner(w, opts, "Statistics")

	fmt.Fprintf(w, "Total machines: %d\n\n", st.TotalMachines)

	fmt.Fprintln(w, "By machine type")
	fmt.Fprintln(w, strings.Repeat("-", 30))
	for _, tc := range st.ByType {
		fmt.Fprintf(w, "  %s: %d\n", tc.MachineType, tc.Count)
	}

	fmt.Fprintln(w, "\nBy production group")
	fmt.Fprintln(w, strings.Repeat("-", 30))
	for _, gc := range st.ByGroup {
		fmt.Fprintf(w, "  Group %d: %d\n", gc.ProductionGroup, gc.Count)
	}

	fmt.Fprintf(w, "\nTotal maintenance records: %d\n\n", st.TotalMaintenance)

	fmt.Fprintln(w, "Latest maintenance")
	fmt.Fprintln(w, strings.Repeat("-", 50))
	for _, l := range st.LatestMaintenance {
		latest := l.Display()
		if l.Latest != nil {
			latest = Truncate(*l.Latest, 16)
		}
		fmt.Fprintf(w, "  %s: %s\n", rcell(l.MachineNumber, 8), latest)
	}

	fmt.Fprintln(w, "\nValve replacements")
	fmt.Fprintln(w, strings.Repeat("-", 30))
	fmt.Fprintf(w, "  Clutch valve: %d\n", st.ClutchValveReplace)
	fmt.Fprintf(w, "  Brake valve: %d\n", st.BrakeValveReplace)

	return w.Flush()
}
