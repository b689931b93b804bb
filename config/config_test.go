// SPDX-License-Identifier: MIT

package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/agroshift/allocation"
	"github.com/katalvlaran/agroshift/config"
)

func TestDecode(t *testing.T) {
	c, err := config.Decode(strings.NewReader(`
dataset: data/crops.xlsx
sheet: S9
mode: single
weights: "1010000"
output: out.xlsx
workers: 3
solve_timeout: 45s
tolerance: 1e-8
`))
	require.NoError(t, err)
	require.NoError(t, c.Validate())

	assert.Equal(t, "data/crops.xlsx", c.Dataset)
	assert.Equal(t, "S9", c.Sheet)
	assert.Equal(t, config.ModeSingle, c.Mode)
	assert.Equal(t, "out.xlsx", c.Output)
	assert.Equal(t, 3, c.Workers)
	assert.Equal(t, 45*time.Second, c.SolveTimeout)
	assert.Equal(t, 1e-8, c.Tolerance)

	w, err := config.ParseWeights(c.Weights)
	require.NoError(t, err)
	require.NotNil(t, w)
	assert.Equal(t, allocation.FromBits(0b1010000), *w)
}

func TestDecode_DefaultsAndEmpty(t *testing.T) {
	c, err := config.Decode(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), c)
	require.ErrorIs(t, c.Validate(), config.ErrNoDataset)

	c, err = config.Decode(strings.NewReader("dataset: x.csv\n"))
	require.NoError(t, err)
	require.NoError(t, c.Validate())
	assert.Equal(t, config.ModeSweep, c.Mode)
}

func TestDecode_UnknownField(t *testing.T) {
	_, err := config.Decode(strings.NewReader("dataset: x.csv\nworkerz: 2\n"))
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	base := config.Default()
	base.Dataset = "x.csv"

	cases := []struct {
		name string
		edit func(*config.Config)
		want error
	}{
		{"mode", func(c *config.Config) { c.Mode = "batch" }, config.ErrBadMode},
		{"weights length", func(c *config.Config) { c.Weights = "101" }, config.ErrBadWeights},
		{"weights chars", func(c *config.Config) { c.Weights = "10x0000" }, config.ErrBadWeights},
		{"workers", func(c *config.Config) { c.Workers = 0 }, config.ErrBadValue},
		{"timeout", func(c *config.Config) { c.SolveTimeout = -time.Second }, config.ErrBadValue},
		{"tolerance", func(c *config.Config) { c.Tolerance = -1 }, config.ErrBadValue},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := base
			tc.edit(&c)
			require.ErrorIs(t, c.Validate(), tc.want)
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	require.NoError(t, os.WriteFile(path, []byte("dataset: a.csv\nworkers: 2\n"), 0o600))

	c, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "a.csv", c.Dataset)
	assert.Equal(t, 2, c.Workers)

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestParseWeights_Empty(t *testing.T) {
	w, err := config.ParseWeights("")
	require.NoError(t, err)
	assert.Nil(t, w)
}
