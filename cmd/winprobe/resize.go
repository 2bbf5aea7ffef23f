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

func runResizeHeight(args []string) int {
	fs := flag.NewFlagSet("resize-height", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	configPath := fs.String("config", "", "Path to config file")
	delta := fs.Int("delta", 100, "Height change in px for the grow/shrink steps")
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: winprobe resize-height [--delta <px>]")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Drive only the window height through a test sequence (grow, restore,")
		fmt.Fprintln(os.Stderr, "shrink, target height) and report whether the host adjusts the width")
		fmt.Fprintln(os.Stderr, "on its own. If it does, height-only resizing is enough for the")
		fmt.Fprintln(os.Stderr, "automation; otherwise the width must be derived from the ratio.")
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

	banner(os.Stdout, "HEIGHT-ONLY RESIZE TEST")

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

	session := probe.NewSession(backend, w.ID, cfg.SettleDelay())

	initial, err := session.Geometry()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to read geometry: %v\n", err)
		return 1
	}
	fmt.Println("\nCurrent dimensions:")
	fmt.Printf("  Position: (%d, %d)\n", initial.X, initial.Y)
	fmt.Printf("  Size:     %d x %d\n", initial.Width, initial.Height)
	fmt.Printf("  Ratio:    %.4f\n", initial.Ratio())

	steps := []struct {
		label  string
		height int
	}{
		{fmt.Sprintf("grow height by %dpx", *delta), initial.Height + *delta},
		{"restore initial height", initial.Height},
		{fmt.Sprintf("shrink height by %dpx", *delta), initial.Height - *delta},
		{fmt.Sprintf("target height = %d", cfg.TargetHeight), cfg.TargetHeight},
	}

	widthEverAdjusted := false
	for i, step := range steps {
		fmt.Printf("\n--- Test %d: %s ---\n", i+1, step.label)

		attempt, err := session.ResizeHeight(step.height)
		if err != nil {
			fmt.Printf("  Resize failed: %v\n", err)
			continue
		}

		fmt.Printf("  Requested: %d x %d\n", attempt.Requested.Width, attempt.Requested.Height)
		fmt.Printf("  Actual:    %d x %d\n", attempt.Actual.Width, attempt.Actual.Height)

		if attempt.WidthAdjusted() {
			widthEverAdjusted = true
			fmt.Printf("  Host adjusted the width: %d -> %d\n",
				attempt.Requested.Width, attempt.Actual.Width)
		} else {
			fmt.Println("  Width unchanged")
		}
	}

	final, err := session.Geometry()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to read final geometry: %v\n", err)
		return 1
	}

	fmt.Println()
	banner(os.Stdout, "RESULT")
	fmt.Printf("  Size:  %d x %d\n", final.Width, final.Height)
	fmt.Printf("  Ratio: %.4f\n", final.Ratio())

	fmt.Println()
	banner(os.Stdout, "CONCLUSION")
	if widthEverAdjusted {
		fmt.Println("The host adjusts the width automatically: height-only resizing is")
		fmt.Println("sufficient for the automation.")
	} else {
		fmt.Println("The host does NOT adjust the width: keep deriving the width from the")
		fmt.Println("ratio when resizing.")
	}

	console.NewStdio().PressEnter("\nPress enter to quit...")
	return 0
}
