package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"press-maintenance-backend/internal/report"
	"press-maintenance-backend/internal/store"
)

func newReportCmd(opts *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print fixed-width text reports",
		Long: `Write a printable report to stdout. The same text is served by pressd
under /api/reports/.`,
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "machines",
		Short: "Machine list with the per group and type summary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(cmd, opts, func(s store.Store, ro report.Options) error {
				machines, err := s.ListMachines(cmd.Context(), "")
				if err != nil {
					return err
				}
				st, err := s.Statistics(cmd.Context())
				if err != nil {
					return err
				}
				return report.MachineList(cmd.OutOrStdout(), ro, machines, st)
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "maintenance",
		Short: "Maintenance history, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(cmd, opts, func(s store.Store, ro report.Options) error {
				entries, err := s.ListMaintenance(cmd.Context())
				if err != nil {
					return err
				}
				return report.MaintenanceList(cmd.OutOrStdout(), ro, entries)
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:     "stats",
		Aliases: []string{"statistics"},
		Short:   "Totals, latest maintenance per machine and valve replacements",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(cmd, opts, func(s store.Store, ro report.Options) error {
				st, err := s.Statistics(cmd.Context())
				if err != nil {
					return err
				}
				if opts.output != "table" {
					return printOutput(cmd.OutOrStdout(), opts.output, st)
				}
				return report.Statistics(cmd.OutOrStdout(), ro, st)
			})
		},
	})

	return cmd
}

func runReport(cmd *cobra.Command, opts *globalOptions, render func(store.Store, report.Options) error) error {
	gormDB, cfg, closeDB, err := opts.openDB()
	if err != nil {
		return err
	}
	defer closeDB()

	ro := report.Options{
		Title:       cfg.Report.Title,
		GeneratedAt: time.Now().In(cfg.Report.Location),
	}
	if err := render(store.NewGormStore(gormDB), ro); err != nil {
		return fmt.Errorf("rendering report: %w", err)
	}
	return nil
}
