// Package console implements the blocking operator prompts that pace the
// diagnostic commands.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
)

// ErrQuit is returned when the operator enters the quit sentinel.
var ErrQuit = errors.New("quit requested")

// Prompter reads operator input line by line. When the input is not a
// terminal (output piped into the tool), prompts are skipped instead of
// blocking forever.
type Prompter struct {
	in          *bufio.Reader
	out         io.Writer
	interactive bool
}

// New creates a prompter over explicit reader/writer, treated as
// interactive. Used by tests and by callers that manage their own streams.
func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		in:          bufio.NewReader(in),
		out:         out,
		interactive: true,
	}
}

// NewStdio creates a prompter on stdin/stdout, interactive only when stdin
// is a terminal.
func NewStdio() *Prompter {
	return &Prompter{
		in:          bufio.NewReader(os.Stdin),
		out:         os.Stdout,
		interactive: term.IsTerminal(int(os.Stdin.Fd())),
	}
}

// PressEnter prints the message and blocks until the operator hits enter.
func (p *Prompter) PressEnter(message string) {
	if !p.interactive {
		return
	}
	fmt.Fprint(p.out, message)
	_, _ = p.in.ReadString('\n')
}

// ReadRatio prompts for a decimal ratio. The quit sentinel ("q" or "quit",
// or end of input) yields ErrQuit; anything else that does not parse as a
// number yields a recoverable error the caller reports before prompting
// again.
func (p *Prompter) ReadRatio(message string) (float64, error) {
	fmt.Fprint(p.out, message)

	line, err := p.in.ReadString('\n')
	if err != nil && line == "" {
		return 0, ErrQuit
	}

	line = strings.TrimSpace(line)
	switch strings.ToLower(line) {
	case "q", "quit":
		return 0, ErrQuit
	}

	ratio, err := strconv.ParseFloat(line, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid value %q, enter a decimal number (e.g. 0.65)", line)
	}
	return ratio, nil
}
