package config

import (
	"fmt"

	"cloudeng.io/cmdutil"
	"cloudeng.io/cmdutil/flags"

	"DNA-Pairwise-Alignment/dna_aligner/common"
)

// Default scoring weights
const (
	DefaultMatch    = 2
	DefaultMismatch = -1
	DefaultGap      = -2
)

// DefaultMethod is the alignment used when none is configured.
const DefaultMethod = common.ModeLocal

// DefaultMaxCells bounds (len(seq1)+1)*(len(seq2)+1) for a single alignment.
// Both the score matrix and traceback are held in memory.
const DefaultMaxCells = 25_000_000

// Config is the on-disk configuration of the aligner.
type Config struct {
	Scoring  common.Scheme         `yaml:",inline"`
	Method   string                `yaml:"method"`
	MaxCells int                   `yaml:"max_cells"`
	Logging  cmdutil.LoggingConfig `yaml:"logging"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Scoring:  DefaultScheme(),
		Method:   DefaultMethod,
		MaxCells: DefaultMaxCells,
		Logging:  cmdutil.LoggingConfig{Format: "text"}, // errors only, to stderr
	}
}

// DefaultScheme returns match=2, mismatch=-1, gap=-2.
func DefaultScheme() common.Scheme {
	return common.Scheme{Match: DefaultMatch, Mismatch: DefaultMismatch, Gap: DefaultGap}
}

// Load reads a YAML configuration file on top of the defaults.
// Keys missing from the file keep their default values.
func Load(path string) (Config, error) {
	cfg := Default()
	if err := cmdutil.ParseYAMLConfigFile(path, &cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the method name and the size bound.
func (c Config) Validate() error {
	if err := flags.OneOf(c.Method).Validate(common.ModeLocal, common.ModeGlobal); err != nil {
		return fmt.Errorf("method: %w", err)
	}
	if c.MaxCells <= 0 {
		return fmt.Errorf("max_cells must be > 0, got %d", c.MaxCells)
	}
	return nil
}

// CheckSize rejects sequence pairs whose score matrix would exceed maxCells.
func CheckSize(len1, len2, maxCells int) error {
	cells := (len1 + 1) * (len2 + 1)
	if cells > maxCells {
		return fmt.Errorf("sequences of length %d and %d need %d matrix cells, limit is %d", len1, len2, cells, maxCells)
	}
	return nil
}
