package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"press-maintenance-backend/config"
	"press-maintenance-backend/internal/db"
)

const (
	targetLocal  = "local"
	targetRemote = "remote"
)

// globalOptions are the persistent flags shared by every subcommand.
type globalOptions struct {
	configPath string
	target     string
	output     string
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}

	cmd := &cobra.Command{
		Use:   "pressctl",
		Short: "Manage press machines and their maintenance history",
		Long: `pressctl provisions the press machine store and prints listings and reports.

The local store is the SQLite file named in the database section of the
configuration. With --target remote the same commands run against the
Postgres store of the remote section.

Reports are plain text on stdout; pipe them to lp or lpr to print.`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "Configuration file (default: $CONFIG_PATH or ./config/config.yaml)")
	cmd.PersistentFlags().StringVar(&opts.target, "target", targetLocal, "Store to use: local or remote")
	cmd.PersistentFlags().StringVarP(&opts.output, "output", "o", "table", "Output format: table, json, yaml")

	cmd.AddCommand(newSetupCmd(opts))
	cmd.AddCommand(newMachinesCmd(opts))
	cmd.AddCommand(newMaintenanceCmd(opts))
	cmd.AddCommand(newReportCmd(opts))
	return cmd
}

// loadConfig resolves the configuration file. A missing file at the default
// location is not an error; defaults are used instead.
func (o *globalOptions) loadConfig() (*config.Config, error) {
	path := o.configPath
	explicit := path != ""
	if !explicit {
		path = os.Getenv("CONFIG_PATH")
		explicit = path != ""
	}
	if !explicit {
		path = "./config/config.yaml"
	}

	cfg, err := config.Load(path)
	if errors.Is(err, os.ErrNotExist) && !explicit {
		return config.Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading configuration from %s: %w", path, err)
	}
	return cfg, nil
}

// databaseConfig picks the store settings for --target.
func (o *globalOptions) databaseConfig(cfg *config.Config) (*config.DatabaseConfig, error) {
	switch o.target {
	case targetLocal, "":
		return &cfg.Database, nil
	case targetRemote:
		if cfg.Remote == nil {
			return nil, fmt.Errorf("no remote store configured (add a remote section to the configuration)")
		}
		return cfg.Remote, nil
	default:
		return nil, fmt.Errorf("unknown target %q (use local or remote)", o.target)
	}
}

// openDB opens and provisions the selected store. The caller closes it.
func (o *globalOptions) openDB() (*gorm.DB, *config.Config, func(), error) {
	cfg, err := o.loadConfig()
	if err != nil {
		return nil, nil, nil, err
	}
	dbCfg, err := o.databaseConfig(cfg)
	if err != nil {
		return nil, nil, nil, err
	}
	gormDB, err := db.Open(dbCfg)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("opening %s store: %w", o.target, err)
	}
	closeFn := func() {
		if sqlDB, err := gormDB.DB(); err == nil {
			sqlDB.Close()
		}
	}
	return gormDB, cfg, closeFn, nil
}
