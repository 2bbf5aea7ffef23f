package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/linxsus/city-sub001/internal/console"
	"github.com/linxsus/city-sub001/internal/platform"
	"github.com/linxsus/city-sub001/internal/probe"
)

func runRatioTest(args []string) int {
	fs := flag.NewFlagSet("ratio-test", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	configPath := fs.String("config", "", "Path to config file")
	height := fs.Int("height", 0, "Target height in px (default from config)")
	skipPresets := fs.Bool("interactive-only", false, "Skip the candidate list, go straight to manual entry")
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: winprobe ratio-test [--height <px>] [--interactive-only]")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Resize the live window through the configured candidate ratios at the")
		fmt.Fprintln(os.Stderr, "target height, pausing between cases so the operator can check the")
		fmt.Fprintln(os.Stderr, "image for distortion. Ends with a free-form ratio entry loop ('q' to")
		fmt.Fprintln(os.Stderr, "quit).")
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
	targetHeight := cfg.TargetHeight
	if *height > 0 {
		targetHeight = *height
	}

	backend, err := openBackend()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	defer backend.Disconnect()

	banner(os.Stdout, "RATIO TEST: find the undistorted emulator ratio")

	w, err := findWindow(backend, cfg, "")
	if err != nil {
		if errors.Is(err, platform.ErrNoWindow) {
			reportNoWindow(backend, cfg)
			return 1
		}
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	fmt.Printf("\nWindow: %s\n", w.Title)
	fmt.Printf("Target height: %d\n", targetHeight)

	session := probe.NewSession(backend, w.ID, cfg.SettleDelay())
	prompter := console.NewStdio()

	if !*skipPresets {
		fmt.Println()
		banner(os.Stdout, "Candidate ratios - CHECK whether the image looks distorted")

		for _, candidate := range cfg.CandidateRatios {
			fmt.Printf("\n--- Ratio %.4f: %s ---\n", candidate.Ratio, candidate.Note)
			if !applyRatio(session, candidate.Ratio, targetHeight) {
				continue
			}
			prompter.PressEnter("  >> Press enter for the next ratio...")
		}

		fmt.Println()
		banner(os.Stdout, "WHICH RATIO SHOWS AN UNDISTORTED IMAGE?")
		fmt.Println("Note the ratio that renders correctly; it goes into the automation")
		fmt.Println("configuration.")
	}

	// Free-form entry until the quit sentinel.
	for {
		ratio, err := prompter.ReadRatio("\nEnter a ratio to test (or 'q' to quit): ")
		if err != nil {
			if errors.Is(err, console.ErrQuit) {
				return 0
			}
			fmt.Printf("  %v\n", err)
			continue
		}
		applyRatio(session, ratio, targetHeight)
	}
}

// applyRatio runs one resize case and prints requested vs actual geometry.
func applyRatio(session *probe.Session, ratio float64, targetHeight int) bool {
	attempt, err := session.TryRatio(ratio, targetHeight)
	if err != nil {
		fmt.Printf("  Resize failed: %v\n", err)
		return false
	}

	fmt.Printf("  Requested: %d x %d (ratio %.4f)\n",
		attempt.Requested.Width, attempt.Requested.Height, ratio)
	fmt.Printf("  Actual:    %d x %d (ratio %.4f)\n",
		attempt.Actual.Width, attempt.Actual.Height, attempt.Actual.Ratio())

	if !attempt.Honored() {
		fmt.Println("  !! The host application altered the requested dimensions")
	}
	return true
}
