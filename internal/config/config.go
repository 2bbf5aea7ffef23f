package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// CandidateRatio is one width/height ratio worth testing against the live
// window, with a note reminding the operator where the value came from.
type CandidateRatio struct {
	Ratio float64 `yaml:"ratio"`
	Note  string  `yaml:"note,omitempty"`
}

// Config holds the operator-tunable constants for the diagnostics.
type Config struct {
	// TitleKeywords are tried in order when locating the emulator window;
	// matching is a case-insensitive substring test against window titles.
	TitleKeywords []string `yaml:"title_keywords"`

	// ReferenceWidth is the interior content width the automation config
	// assumes; TargetHeight is the height the window is driven to.
	ReferenceWidth int `yaml:"reference_width"`
	TargetHeight   int `yaml:"target_height"`

	// ConfiguredX is the X position the automation config places the
	// reference region at.
	ConfiguredX int `yaml:"configured_x"`

	// HeaderTop and HeaderRight are the estimated chrome sizes in px, to be
	// refined with the header command.
	HeaderTop   int `yaml:"header_top"`
	HeaderRight int `yaml:"header_right"`

	// AdRatioThreshold flags a window as showing an ad banner when its
	// ratio exceeds it. RatioTolerance bounds "close enough to target".
	AdRatioThreshold float64 `yaml:"ad_ratio_threshold"`
	RatioTolerance   float64 `yaml:"ratio_tolerance"`

	// TransitionThreshold is the summed per-channel difference above which
	// two adjacent rows count as a color transition. ScanRowLimit caps how
	// far down the column the header scan goes.
	TransitionThreshold int `yaml:"transition_threshold"`
	ScanRowLimit        int `yaml:"scan_row_limit"`

	// SettleDelayMS is the pause between a resize request and the geometry
	// re-read.
	SettleDelayMS int `yaml:"settle_delay_ms"`

	// CapturePath is where the header command saves its screenshot.
	CapturePath string `yaml:"capture_path"`

	// CandidateRatios is the list the ratio-test command walks through.
	CandidateRatios []CandidateRatio `yaml:"candidate_ratios,omitempty"`
}

// DefaultConfig returns the built-in configuration, tuned for BlueStacks
// with the 600x1040 reference region.
func DefaultConfig() *Config {
	return &Config{
		TitleKeywords:       []string{"farm1", "principal", "bluestacks"},
		ReferenceWidth:      600,
		TargetHeight:        1040,
		ConfiguredX:         0,
		HeaderTop:           32,
		HeaderRight:         32,
		AdRatioThreshold:    0.70,
		RatioTolerance:      0.02,
		TransitionThreshold: 50,
		ScanRowLimit:        150,
		SettleDelayMS:       200,
		CapturePath:         "bluestacks_capture.png",
		CandidateRatios: []CandidateRatio{
			{Ratio: 0.5769, Note: "600/1040 (current config)"},
			{Ratio: 0.6744, Note: "computed game area"},
			{Ratio: 0.7316, Note: "observed after height-only resize"},
			{Ratio: 0.5455, Note: "no ad, no header (563/1032)"},
			{Ratio: 0.5766, Note: "no ad, with header (595/1032)"},
			{Ratio: 0.8556, Note: "with ad, no header (883/1032)"},
			{Ratio: 0.8866, Note: "with ad, with header (915/1032)"},
		},
	}
}

// TargetRatio is the banner-free interior ratio the automation assumes.
func (c *Config) TargetRatio() float64 {
	if c.TargetHeight <= 0 {
		return 0
	}
	return float64(c.ReferenceWidth) / float64(c.TargetHeight)
}

// SettleDelay returns the post-resize settle pause as a duration.
func (c *Config) SettleDelay() time.Duration {
	return time.Duration(c.SettleDelayMS) * time.Millisecond
}

// Validate checks the configuration for values the diagnostics cannot work
// with.
func (c *Config) Validate() error {
	if len(c.TitleKeywords) == 0 {
		return fmt.Errorf("title_keywords must not be empty")
	}
	if c.ReferenceWidth <= 0 {
		return fmt.Errorf("reference_width must be positive, got %d", c.ReferenceWidth)
	}
	if c.TargetHeight <= 0 {
		return fmt.Errorf("target_height must be positive, got %d", c.TargetHeight)
	}
	if c.HeaderTop < 0 || c.HeaderRight < 0 {
		return fmt.Errorf("header estimates must not be negative")
	}
	if c.AdRatioThreshold <= 0 {
		return fmt.Errorf("ad_ratio_threshold must be positive, got %g", c.AdRatioThreshold)
	}
	if c.RatioTolerance <= 0 {
		return fmt.Errorf("ratio_tolerance must be positive, got %g", c.RatioTolerance)
	}
	if c.TransitionThreshold < 0 {
		return fmt.Errorf("transition_threshold must not be negative, got %d", c.TransitionThreshold)
	}
	if c.ScanRowLimit <= 0 {
		return fmt.Errorf("scan_row_limit must be positive, got %d", c.ScanRowLimit)
	}
	if c.SettleDelayMS < 0 {
		return fmt.Errorf("settle_delay_ms must not be negative, got %d", c.SettleDelayMS)
	}
	for i, cr := range c.CandidateRatios {
		if cr.Ratio <= 0 {
			return fmt.Errorf("candidate_ratios[%d]: ratio must be positive, got %g", i, cr.Ratio)
		}
	}
	return nil
}

// DefaultConfigPath returns the standard config file location.
func DefaultConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", "winprobe", "config.yaml"), nil
}

// Load reads the configuration from the standard location. A missing file
// yields the defaults.
func Load() (*Config, error) {
	path, err := DefaultConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFromPath(path)
}

// LoadFromPath reads the configuration from path, filling unset fields from
// the defaults.
func LoadFromPath(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}
