package main

import (
	"strconv"

	"github.com/spf13/cobra"

	"press-maintenance-backend/internal/store"
)

func newMachinesCmd(opts *globalOptions) *cobra.Command {
	var filter string

	cmd := &cobra.Command{
		Use:     "machines",
		Aliases: []string{"machine", "m"},
		Short:   "List machines in machine-number order",
		Long: `List machines in display order: numeric machine numbers ascending,
then reserved (R-) numbers, then the "-" placeholder last. --filter keeps
machines whose number, manufacturer or model contains the text.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			gormDB, _, closeDB, err := opts.openDB()
			if err != nil {
				return err
			}
			defer closeDB()

			machines, err := store.NewGormStore(gormDB).ListMachines(cmd.Context(), filter)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if opts.output != "table" {
				return printOutput(out, opts.output, machines)
			}

			headers := []string{"ID", "Machine No", "Type", "Group", "Manufacturer", "Model", "Tonnage"}
			rows := make([][]string, 0, len(machines))
			for _, m := range machines {
				tonnage := ""
				if m.Tonnage != nil {
					tonnage = strconv.Itoa(*m.Tonnage)
				}
				rows = append(rows, []string{
					strconv.FormatInt(m.ID, 10),
					m.MachineNumber,
					string(m.MachineType),
					strconv.Itoa(m.ProductionGroup),
					deref(m.Manufacturer),
					deref(m.ModelType),
					tonnage,
				})
			}
			printTable(out, headers, rows)
			return nil
		},
	}

	cmd.Flags().StringVar(&filter, "filter", "", "Case-insensitive substring to match")
	return cmd
}

func newMaintenanceCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "maintenance",
		Aliases: []string{"mnt"},
		Short:   "List maintenance records, newest first",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			gormDB, _, closeDB, err := opts.openDB()
			if err != nil {
				return err
			}
			defer closeDB()

			entries, err := store.NewGormStore(gormDB).ListMaintenance(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if opts.output != "table" {
				return printOutput(out, opts.output, entries)
			}

			headers := []string{"ID", "Datetime", "Machine No", "Judgment", "Clutch Valve", "Brake Valve", "Remarks"}
			rows := make([][]string, 0, len(entries))
			for _, e := range entries {
				rows = append(rows, []string{
					strconv.FormatInt(e.ID, 10),
					e.MaintenanceDatetime,
					e.MachineNumber,
					string(e.OverallJudgment),
					string(e.ClutchValveReplacement),
					string(e.BrakeValveReplacement),
					truncate(deref(e.Remarks), 40),
				})
			}
			printTable(out, headers, rows)
			return nil
		},
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
