// SPDX-License-Identifier: MIT

// Package config loads the run configuration of the agroshift command from a
// YAML file. Every field has a default, so an empty file is a valid
// configuration except for the dataset path:
//
//	dataset: data/crops.xlsx
//	sheet: Sheet1          # workbooks only; empty selects the first sheet
//	mode: sweep            # single | sweep
//	weights: "1010000"     # single mode only; empty maximizes profit
//	output: results.csv    # .csv or .xlsx; empty writes CSV to stdout
//	workers: 4
//	solve_timeout: 30s
//	tolerance: 1e-10
package config

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"runtime"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/agroshift/allocation"
)

// Run modes.
const (
	ModeSingle = "single"
	ModeSweep  = "sweep"
)

var (
	// ErrNoDataset is returned by Validate when no dataset path is set.
	ErrNoDataset = errors.New("config: dataset path is required")

	// ErrBadMode is returned by Validate for an unknown mode.
	ErrBadMode = errors.New("config: mode must be single or sweep")

	// ErrBadWeights is returned by Validate for a malformed weight string.
	ErrBadWeights = errors.New("config: weights must be 7 characters of 0 or 1")

	// ErrBadValue is returned by Validate for out-of-range numeric fields.
	ErrBadValue = errors.New("config: invalid value")
)

// Config is the decoded YAML document.
type Config struct {
	Dataset      string        `yaml:"dataset"`
	Sheet        string        `yaml:"sheet"`
	Mode         string        `yaml:"mode"`
	Weights      string        `yaml:"weights"`
	Output       string        `yaml:"output"`
	Workers      int           `yaml:"workers"`
	SolveTimeout time.Duration `yaml:"solve_timeout"`
	Tolerance    float64       `yaml:"tolerance"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Mode:      ModeSweep,
		Workers:   runtime.GOMAXPROCS(0),
		Tolerance: 1e-10,
	}
}

// Load reads path on top of Default. Unknown keys are rejected.
func Load(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	defer func() { _ = f.Close() }()

	c, err := Decode(f)
	if err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}

	return c, nil
}

// Decode reads one YAML document from r on top of Default. An empty document
// yields Default.
func Decode(r io.Reader) (Config, error) {
	c := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, err
	}

	return c, nil
}

// Validate checks the fields that cannot be defaulted.
func (c Config) Validate() error {
	if c.Dataset == "" {
		return ErrNoDataset
	}
	if c.Mode != ModeSingle && c.Mode != ModeSweep {
		return fmt.Errorf("%w: %q", ErrBadMode, c.Mode)
	}
	if _, err := ParseWeights(c.Weights); err != nil {
		return err
	}
	if c.Workers < 1 {
		return fmt.Errorf("%w: workers %d", ErrBadValue, c.Workers)
	}
	if c.SolveTimeout < 0 {
		return fmt.Errorf("%w: solve_timeout %s", ErrBadValue, c.SolveTimeout)
	}
	if c.Tolerance < 0 || math.IsNaN(c.Tolerance) || math.IsInf(c.Tolerance, 0) {
		return fmt.Errorf("%w: tolerance %g", ErrBadValue, c.Tolerance)
	}

	return nil
}

// ParseWeights decodes a bit string such as "1010000" (flag order of
// indicator.Sustainability). The empty string decodes to nil.
func ParseWeights(s string) (*allocation.WeightVector, error) {
	if s == "" {
		return nil, nil
	}
	var w allocation.WeightVector
	if len(s) != len(w) {
		return nil, fmt.Errorf("%w: %q", ErrBadWeights, s)
	}
	for i := range w {
		switch s[i] {
		case '0':
		case '1':
			w[i] = true
		default:
			return nil, fmt.Errorf("%w: %q", ErrBadWeights, s)
		}
	}

	return &w, nil
}
