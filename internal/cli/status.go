// Package cli provides the colored status-line helpers shared by
// cmd/generate-test-code and cmd/evaluate-predictions, built around
// color.New(...).SprintFunc().
package cli

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

var (
	green  = color.New(color.FgGreen).SprintFunc()
	red    = color.New(color.FgRed).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
	cyan   = color.New(color.FgCyan).SprintFunc()
	bold   = color.New(color.Bold).SprintFunc()
)

// Info prints a cyan-prefixed progress line to stdout.
func Info(format string, args ...any) {
	fmt.Printf("%s %s\n", cyan("▸"), fmt.Sprintf(format, args...))
}

// Success prints a green checkmark line to stdout.
func Success(format string, args ...any) {
	fmt.Printf("%s %s\n", green("✓"), fmt.Sprintf(format, args...))
}

// Warn prints a yellow warning line to stderr.
func Warn(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "%s %s\n", yellow("warning:"), fmt.Sprintf(format, args...))
}

// Fail prints a red failure line to stderr.
func Fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "%s %s\n", red("✗"), fmt.Sprintf(format, args...))
}

// Progress prints a "[completed/total] label" line, the same shape as
// eval_suite.go:runBenchmarksParallel's per-job progress print.
func Progress(completed, total int, label string) {
	fmt.Printf("%s %s\n", bold(fmt.Sprintf("[%d/%d]", completed, total)), label)
}
