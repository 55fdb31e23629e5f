package config

import (
	"errors"
	"io"
	"log"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the overall application configuration.
type Config struct {
	Server   ServerConfig    `yaml:"server"`
	Database DatabaseConfig  `yaml:"database"`
	Remote   *DatabaseConfig `yaml:"remote"`
	Report   ReportConfig    `yaml:"report"`
}

// ServerConfig holds the server-related configuration.
type ServerConfig struct {
	Port            int     `yaml:"port"`
	RateLimitPerSec float64 `yaml:"rate_limit_per_sec"`
	RateLimitBurst  int     `yaml:"rate_limit_burst"`
}

// DatabaseConfig holds the connection settings for one machine/maintenance store.
type DatabaseConfig struct {
	Driver                 string `yaml:"driver"` // sqlite or postgres
	DSN                    string `yaml:"dsn"`
	MaxOpenConns           int    `yaml:"max_open_conns"`
	MaxIdleConns           int    `yaml:"max_idle_conns"`
	ConnMaxLifetimeMinutes int    `yaml:"conn_max_lifetime_minutes"`
	LogLevel               string `yaml:"log_level"`
	Seed                   bool   `yaml:"seed"`
}

// ReportConfig controls the printable reports.
type ReportConfig struct {
	Title    string         `yaml:"title"`
	Timezone string         `yaml:"timezone"`
	Location *time.Location `yaml:"-"`
}

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Default returns a configuration pointing at a local press_machine.db file.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

// Load reads the configuration from the given path.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var cfg Config
	decoder := yaml.NewDecoder(f)
	// an empty file means all defaults
	if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}

	applyDefaults(&cfg)
	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Port <= 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Server.RateLimitPerSec <= 0 {
		cfg.Server.RateLimitPerSec = 10
	}
	if cfg.Server.RateLimitBurst <= 0 {
		cfg.Server.RateLimitBurst = 5
	}

	applyDatabaseDefaults(&cfg.Database)
	if cfg.Remote != nil {
		if cfg.Remote.Driver == "" {
			cfg.Remote.Driver = DriverPostgres
		}
		applyDatabaseDefaults(cfg.Remote)
	}

	if cfg.Report.Title == "" {
		cfg.Report.Title = "Press Machine Management System"
	}
	cfg.Report.Location = time.Local
	if cfg.Report.Timezone != "" {
		loc, err := time.LoadLocation(cfg.Report.Timezone)
		if err != nil {
			log.Printf("report.timezone %q is invalid (%v); using local time", cfg.Report.Timezone, err)
		} else {
			cfg.Report.Location = loc
		}
	}
}

func applyDatabaseDefaults(db *DatabaseConfig) {
	if db.Driver == "" {
		db.Driver = DriverSQLite
	}
	if db.DSN == "" && db.Driver == DriverSQLite {
		db.DSN = "press_machine.db"
	}
	if db.MaxOpenConns <= 0 {
		// a single SQLite file handle serializes writers anyway
		if db.Driver == DriverSQLite {
			db.MaxOpenConns = 1
		} else {
			db.MaxOpenConns = 10
		}
	}
	if db.MaxIdleConns <= 0 {
		db.MaxIdleConns = db.MaxOpenConns
	}
	if db.LogLevel == "" {
		db.LogLevel = "warn"
	}
}
