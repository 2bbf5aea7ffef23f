package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig_Valid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())

	assert.InDelta(t, 600.0/1040.0, cfg.TargetRatio(), 1e-9)
	assert.Equal(t, []string{"farm1", "principal", "bluestacks"}, cfg.TitleKeywords)
	assert.NotEmpty(t, cfg.CandidateRatios)
}

func TestLoadFromPath_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadFromPath(filepath.Join(t.TempDir(), "config.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadFromPath_OverridesMerge(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	data := strings.Join([]string{
		"title_keywords: [farm2]",
		"header_top: 40",
		"settle_delay_ms: 300",
		"",
	}, "\n")
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	cfg, err := LoadFromPath(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"farm2"}, cfg.TitleKeywords)
	assert.Equal(t, 40, cfg.HeaderTop)
	assert.Equal(t, 300, cfg.SettleDelayMS)

	// Untouched fields keep their defaults.
	assert.Equal(t, 600, cfg.ReferenceWidth)
	assert.Equal(t, 1040, cfg.TargetHeight)
}

func TestLoadFromPath_InvalidValuesRejected(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("target_height: -5\n"), 0644))

	_, err := LoadFromPath(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "target_height")
}

func TestLoadFromPath_MalformedYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("title_keywords: [unclosed\n"), 0644))

	_, err := LoadFromPath(path)
	assert.Error(t, err)
}

func TestValidate_FieldErrors(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"empty keywords", func(c *Config) { c.TitleKeywords = nil }, "title_keywords"},
		{"zero reference width", func(c *Config) { c.ReferenceWidth = 0 }, "reference_width"},
		{"negative header", func(c *Config) { c.HeaderTop = -1 }, "header"},
		{"zero ad threshold", func(c *Config) { c.AdRatioThreshold = 0 }, "ad_ratio_threshold"},
		{"zero scan limit", func(c *Config) { c.ScanRowLimit = 0 }, "scan_row_limit"},
		{"negative settle", func(c *Config) { c.SettleDelayMS = -1 }, "settle_delay_ms"},
		{"bad candidate ratio", func(c *Config) { c.CandidateRatios = []CandidateRatio{{Ratio: 0}} }, "candidate_ratios"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}

func TestSettleDelay(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SettleDelayMS = 250
	assert.Equal(t, "250ms", cfg.SettleDelay().String())
}
