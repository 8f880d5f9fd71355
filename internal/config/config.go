// Package config handles loading and parsing application configuration.
// The config file path comes from (in priority order):
//  1. An environment variable:  CONFIG_PATH=/path/to/config.yaml
//  2. A command-line flag:      --config=/path/to/config.yaml
//
// A console tool has to start without any file, so when neither is given
// the values come from environment variables and their env-default tags.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"
)

// Storage drivers accepted in storage.driver.
const (
	DriverMemory = "memory"
	DriverSQLite = "sqlite"
)

// Config is the root configuration structure.
// Every field maps to a key in the YAML file AND can be overridden
// by the corresponding environment variable (env:"...").
type Config struct {
	// Env controls log format and verbosity: "dev", "staging", "prod".
	Env string `yaml:"env" env:"ENV" env-default:"dev"`

	// LogPath is a file to append logs to. Empty means stderr.
	LogPath string `yaml:"log_path" env:"LOG_PATH"`

	Storage Storage `yaml:"storage"`
	Console Console `yaml:"console"`
}

// Storage selects the record collection backend. Both backends are
// in-memory; nothing survives the process.
type Storage struct {
	Driver string `yaml:"driver" env:"STORAGE_DRIVER" env-default:"memory" validate:"oneof=memory sqlite"`
}

// Console holds settings for the interactive menu.
type Console struct {
	// NoClear disables clearing the terminal before each menu. Clearing is
	// skipped anyway when stdout is not a terminal.
	NoClear bool `yaml:"no_clear" env:"NO_CLEAR"`
}

// Load reads the config for the given command-line arguments
// (without the program name).
func Load(args []string, output io.Writer) (*Config, error) {
	configPath := os.Getenv("CONFIG_PATH")

	flags := flag.NewFlagSet("student-records", flag.ContinueOnError)
	flags.SetOutput(output)
	pathFlag := flags.String("config", "", "Path to the configuration YAML file")
	if err := flags.Parse(args); err != nil {
		return nil, err
	}
	if configPath == "" {
		configPath = *pathFlag
	}

	var cfg Config

	if configPath == "" {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("config.Load: read env: %w", err)
		}
	} else {
		if _, err := os.Stat(configPath); errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("config.Load: config file does not exist: %s", configPath)
		}
		if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
			return nil, fmt.Errorf("config.Load: read %s: %w", configPath, err)
		}
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("config.Load: validate: %w", err)
	}

	return &cfg, nil
}

// MustLoad reads the config for os.Args and returns it.
//
// Functions prefixed with "Must" are allowed to exit on failure: a help
// request (-h) exits with status 0, any other error is fatal. If this
// returns, the config is valid.
func MustLoad() *Config {
	cfg, err := Load(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		log.Fatalf("cannot read config: %s", err.Error())
	}
	return cfg
}
