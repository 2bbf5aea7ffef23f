package main

import (
	"flag"
	"fmt"
	"math"
	"os"

	"github.com/linxsus/city-sub001/internal/platform"
	"github.com/linxsus/city-sub001/internal/probe"
)

func runWindows(args []string) int {
	fs := flag.NewFlagSet("windows", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	configPath := fs.String("config", "", "Path to config file")
	keyword := fs.String("keyword", "", "Override the configured title keywords")
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: winprobe windows [--keyword <substring>]")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "List windows matching the title keywords with their position,")
		fmt.Fprintln(os.Stderr, "dimensions and ratio compared against the target ratio.")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	backend, err := openBackend()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	defer backend.Disconnect()

	keywords := cfg.TitleKeywords
	if *keyword != "" {
		keywords = []string{*keyword}
	}

	windows, err := backend.ListWindows()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to list windows: %v\n", err)
		return 1
	}

	matched := platform.FilterByTitle(windows, keywords)

	banner(os.Stdout, "EMULATOR WINDOW DIMENSIONS")

	if len(matched) == 0 {
		reportNoWindow(backend, cfg)
		return 1
	}

	target := cfg.TargetRatio()
	fmt.Printf("\nFound %d matching window(s):\n\n", len(matched))

	for _, w := range matched {
		report := probe.AnalyzeRatios(w.Bounds.Width, w.Bounds.Height, cfg.HeaderTop, cfg.HeaderRight)

		fmt.Printf("Window: %s\n", w.Title)
		fmt.Printf("  Position:   x=%d, y=%d\n", w.Bounds.X, w.Bounds.Y)
		fmt.Printf("  Dimensions: %d x %d\n", w.Bounds.Width, w.Bounds.Height)
		fmt.Printf("  Ratio W/H:  %.4f\n", report.Raw)
		fmt.Println()

		fmt.Println("  --- Analysis ---")
		fmt.Printf("  Target ratio (no ad):  %.4f\n", target)
		fmt.Printf("  Difference:            %.4f\n", math.Abs(report.Raw-target))

		if report.NearTarget(target, cfg.RatioTolerance) {
			fmt.Println("  Status: close to the banner-free ratio")
		} else {
			fmt.Println("  Status: ratio off target (probably showing an ad)")
			fmt.Printf("  Ideal height for target ratio: %dpx\n", probe.IdealHeight(w.Bounds.Width, target))
		}
		rule(os.Stdout)
	}

	return 0
}
