package main

import (
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/linxsus/city-sub001/internal/platform"
	"github.com/linxsus/city-sub001/internal/probe"
)

func runRatios(args []string) int {
	fs := flag.NewFlagSet("ratios", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	configPath := fs.String("config", "", "Path to config file")
	headerTop := fs.Int("header-top", -1, "Override the top header estimate in px")
	headerRight := fs.Int("header-right", -1, "Override the right banner estimate in px")
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: winprobe ratios [--header-top <px>] [--header-right <px>]")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Print each matching window's ratio under three header-correction")
		fmt.Fprintln(os.Stderr, "assumptions: raw W/H, W/(H-top) and (W-right)/(H-top). The header")
		fmt.Fprintln(os.Stderr, "estimate is right when the corrected ratio lands on the target.")
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
	if *headerTop >= 0 {
		cfg.HeaderTop = *headerTop
	}
	if *headerRight >= 0 {
		cfg.HeaderRight = *headerRight
	}

	backend, err := openBackend()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	defer backend.Disconnect()

	windows, err := backend.ListWindows()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to list windows: %v\n", err)
		return 1
	}
	matched := platform.FilterByTitle(windows, cfg.TitleKeywords)

	banner(os.Stdout, "WINDOW RATIOS (with header-bar correction)")
	fmt.Printf("\nTop header estimate:  %dpx\n", cfg.HeaderTop)
	fmt.Printf("Right banner estimate: %dpx\n", cfg.HeaderRight)

	if len(matched) == 0 {
		reportNoWindow(backend, cfg)
		return 1
	}

	fmt.Printf("\nFound %d window(s):\n\n", len(matched))

	tw := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "Window\tDimensions\tW/H\tW/(H-top)\t(W-right)/(H-top)")
	for _, w := range matched {
		r := probe.AnalyzeRatios(w.Bounds.Width, w.Bounds.Height, cfg.HeaderTop, cfg.HeaderRight)
		fmt.Fprintf(tw, "%s\t%dx%d\t%.4f\t%.4f\t%.4f\n",
			w.Title, w.Bounds.Width, w.Bounds.Height,
			r.Raw, r.HeaderCorrected, r.FullyCorrected)
	}
	tw.Flush()

	target := cfg.TargetRatio()
	banner(os.Stdout, "DETAILED ANALYSIS")

	for _, w := range matched {
		r := probe.AnalyzeRatios(w.Bounds.Width, w.Bounds.Height, cfg.HeaderTop, cfg.HeaderRight)
		dRaw, dHeader, dFull := r.DeltaFrom(target)

		fmt.Printf("\n>>> %s <<<\n", w.Title)
		fmt.Printf("  Position: (%d, %d)\n", w.Bounds.X, w.Bounds.Y)
		fmt.Printf("  Raw dimensions:                 %d x %d\n", r.Width, r.Height)
		fmt.Printf("  Corrected (H-%d):               %d x %d\n", cfg.HeaderTop, r.Width, r.Height-cfg.HeaderTop)
		fmt.Printf("  Corrected (W-%d, H-%d):         %d x %d\n", cfg.HeaderRight, cfg.HeaderTop, r.Width-cfg.HeaderRight, r.Height-cfg.HeaderTop)
		fmt.Println()
		fmt.Printf("  Target ratio (%d/%d): %.4f\n", cfg.ReferenceWidth, cfg.TargetHeight, target)
		fmt.Printf("  Diff raw:             %.4f\n", dRaw)
		fmt.Printf("  Diff header-corrected: %.4f\n", dHeader)
		fmt.Printf("  Diff fully corrected:  %.4f\n", dFull)
		fmt.Println()
		fmt.Printf("  Ad detection (threshold %.2f):\n", cfg.AdRatioThreshold)
		fmt.Printf("    - via raw ratio:             %s\n", yesNo(probe.AdBannerLikely(r.Raw, cfg.AdRatioThreshold)))
		fmt.Printf("    - via header-corrected:      %s\n", yesNo(probe.AdBannerLikely(r.HeaderCorrected, cfg.AdRatioThreshold)))
		fmt.Printf("    - via fully corrected:       %s\n", yesNo(probe.AdBannerLikely(r.FullyCorrected, cfg.AdRatioThreshold)))
	}

	fmt.Println()
	rule(os.Stdout)
	fmt.Printf("The top header estimate is correct when the fully corrected ratio of a\n")
	fmt.Printf("banner-free window lands near %.4f. Otherwise re-run with other values\n", target)
	fmt.Printf("for --header-top (40, 50, 60, ...).\n")

	return 0
}

func yesNo(b bool) string {
	if b {
		return "YES"
	}
	return "no"
}
