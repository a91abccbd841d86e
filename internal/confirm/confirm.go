// Package confirm implements the --internal interactive confirmation
// surface from spec.md §6: after printing the configuration and target
// list, prompt "Continue? (y/N)" on standard input; any reply not matching
// y/yes (case-insensitive) declines.
//
// This is adapted from the teacher's internal/approval.Ask, which already
// implements a terminal-aware yes/no-style prompt over bufio.Reader using
// golang.org/x/term to detect an interactive stdin. goshred's prompt has a
// single question instead of the teacher's approve/deny menu, so the option
// handling collapses accordingly, but the TTY-detection and read-loop shape
// is carried over unchanged.
package confirm

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// IsInteractive reports whether standard input is attached to a terminal.
// When it is not, Continue auto-declines rather than blocking forever on a
// read that will never produce a meaningful answer.
func IsInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// isInteractive is swapped out in tests, the same way logger.Logger.now
// swaps out the wall clock: Continue's TTY check and its y/N-parsing are
// otherwise inseparable, and a test runner has no TTY of its own to attach.
var isInteractive = IsInteractive

// Continue prints prompt on its own line (omitted when prompt is empty),
// then "Continue? (y/N) ", to out and reads a single line from in. It
// reports true only if the trimmed, lower-cased reply is "y" or "yes".
// When stdin is not interactive it prints nothing and reports false.
func Continue(out io.Writer, in io.Reader, prompt string) bool {
	if !isInteractive() {
		return false
	}

	if prompt != "" {
		fmt.Fprintln(out, prompt)
	}
	fmt.Fprint(out, "Continue? (y/N) ")

	reader := bufio.NewReader(in)
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return false
	}

	reply := strings.ToLower(strings.TrimSpace(line))
	return reply == "y" || reply == "yes"
}
