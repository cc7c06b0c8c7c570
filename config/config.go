package config

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/caarlos0/env/v11"
)

// Selection list orders
const (
	SortTable = "table"
	SortName  = "name"
)

// flagOutput receives usage and flag parse errors
var flagOutput io.Writer = os.Stderr

// Config holds runtime options
// Environment variables are read first; command-line flags override them
type Config struct {
	TablePath string `env:"DEBUFF_TABLE"`
	Sort      string `env:"DEBUFF_SORT" envDefault:"table"`
	Sound     bool   `env:"DEBUFF_SOUND"`
	Debug     bool   `env:"DEBUFF_DEBUG"`
}

// Load builds a Config from the environment and args (without the program name)
func Load(name string, args []string) (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(flagOutput)
	fs.StringVar(&cfg.TablePath, "table", cfg.TablePath, "YAML effect table (default: built-in table)")
	fs.StringVar(&cfg.Sort, "sort", cfg.Sort, "Selection list order: table, name")
	fs.BoolVar(&cfg.Sound, "sound", cfg.Sound, "Play a tone on level change")
	fs.BoolVar(&cfg.Debug, "debug", cfg.Debug, "Write debug log to logs/")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks option values
func (c Config) Validate() error {
	switch c.Sort {
	case SortTable, SortName:
		return nil
	default:
		return fmt.Errorf("invalid sort %q: want %s or %s", c.Sort, SortTable, SortName)
	}
}
