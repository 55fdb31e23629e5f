package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"press-maintenance-backend/internal/db"
)

func newSetupCmd(opts *globalOptions) *cobra.Command {
	var seed bool

	cmd := &cobra.Command{
		Use:   "setup",
		Short: "Create the store schema, optionally with example data",
		Long: `Create press_machines and maintenance_records if they do not exist.
Running setup on a provisioned store changes nothing. With --seed (or
database.seed in the configuration) the example presses and maintenance
records are inserted when the machine table is empty.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			gormDB, cfg, closeDB, err := opts.openDB()
			if err != nil {
				return err
			}
			defer closeDB()

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Store ready (%s target).\n", opts.target)

			dbCfg, err := opts.databaseConfig(cfg)
			if err != nil {
				return err
			}
			if !seed && !dbCfg.Seed {
				return nil
			}
			seeded, err := db.Seed(cmd.Context(), gormDB)
			if err != nil {
				return err
			}
			if seeded {
				fmt.Fprintln(out, "Example data inserted.")
			} else {
				fmt.Fprintln(out, "Machines already present; example data skipped.")
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&seed, "seed", false, "Insert example machines and maintenance records into an empty store")
	return cmd
}
