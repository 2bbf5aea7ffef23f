package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/linxsus/city-sub001/internal/config"
	"github.com/linxsus/city-sub001/internal/platform"
)

func main() {
	if len(os.Args) < 2 {
		printMainUsage(os.Stdout)
		os.Exit(0)
	}

	switch os.Args[1] {
	case "windows":
		os.Exit(runWindows(os.Args[2:]))
	case "ratios":
		os.Exit(runRatios(os.Args[2:]))
	case "header":
		os.Exit(runHeader(os.Args[2:]))
	case "ratio-test":
		os.Exit(runRatioTest(os.Args[2:]))
	case "resize-height":
		os.Exit(runResizeHeight(os.Args[2:]))
	case "placement":
		os.Exit(runPlacement(os.Args[2:]))
	case "config":
		os.Exit(runConfig(os.Args[2:]))
	case "mcp":
		os.Exit(runMCP(os.Args[2:]))
	case "help", "-h", "--help":
		printMainUsage(os.Stdout)
		os.Exit(0)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printMainUsage(os.Stderr)
		os.Exit(2)
	}
}

func printMainUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: winprobe <command> [options]")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Diagnostics for locating, measuring and resizing the emulator window.")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  windows         List matching windows with dimensions and ratio analysis")
	fmt.Fprintln(w, "  ratios          Ratio table under header-bar correction assumptions")
	fmt.Fprintln(w, "  header          Capture the window and estimate the header-bar height")
	fmt.Fprintln(w, "  ratio-test      Resize through candidate ratios, then interactive entry")
	fmt.Fprintln(w, "  resize-height   Height-only resize tests (does the host adjust width?)")
	fmt.Fprintln(w, "  placement       Simulate the ratio-based placement logic")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "  config print    Print the effective configuration")
	fmt.Fprintln(w, "  config path     Print the configuration file location")
	fmt.Fprintln(w, "  mcp serve       Start the MCP server (stdio transport)")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Run 'winprobe <command> --help' for command-specific options.")
}

// loadConfig loads the config from an explicit path or the standard location.
func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFromPath(path)
	}
	return config.Load()
}

// openBackend connects to the display server.
func openBackend() (*platform.LinuxBackend, error) {
	backend, err := platform.NewLinuxBackendFromDisplay()
	if err != nil {
		return nil, fmt.Errorf("failed to connect to display: %w", err)
	}
	return backend, nil
}

// findWindow locates the emulator window, trying the configured keywords in
// order. keyword overrides the configured list when non-empty.
func findWindow(backend platform.Backend, cfg *config.Config, keyword string) (platform.Window, error) {
	keywords := cfg.TitleKeywords
	if keyword != "" {
		keywords = []string{keyword}
	}
	return platform.FindWindow(backend, keywords)
}

// reportNoWindow prints the no-match diagnosis along with every visible
// window title, so the operator can fix the keyword list.
func reportNoWindow(backend platform.Backend, cfg *config.Config) {
	fmt.Fprintf(os.Stderr, "No window matching %v found.\n", cfg.TitleKeywords)

	windows, err := backend.ListWindows()
	if err != nil || len(windows) == 0 {
		return
	}

	fmt.Fprintf(os.Stderr, "\nVisible windows (%d):\n", len(windows))
	for _, w := range windows {
		if len(w.Title) <= 3 {
			// Skip trivially short titles.
			continue
		}
		title := w.Title
		if len(title) > 50 {
			title = title[:50]
		}
		fmt.Fprintf(os.Stderr, "  - %s\n", title)
	}
}

func banner(w io.Writer, title string) {
	fmt.Fprintln(w, strings.Repeat("=", 70))
	fmt.Fprintln(w, title)
	fmt.Fprintln(w, strings.Repeat("=", 70))
}

func rule(w io.Writer) {
	fmt.Fprintln(w, strings.Repeat("-", 70))
}
