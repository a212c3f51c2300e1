package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/dimchansky/utfbom"
	goical "github.com/emersion/go-ical"
	ical "github.com/luxifer/icalgen"
	"github.com/spf13/cobra"
)

func newLintCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "lint FILE",
		Short: "Check an iCalendar file",
		Long: `Lint decodes an iCalendar file and checks every unfolded content line
against the RFC 5545 content line grammar. It exits with status 1 when the
file cannot be decoded or any line is invalid.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.lint(cmd.OutOrStdout(), args[0])
		},
	}
}

func (a *app) lint(stdout io.Writer, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open calendar: %w", err)
	}
	defer f.Close()
	data, err := io.ReadAll(utfbom.SkipOnly(f))
	if err != nil {
		return fmt.Errorf("failed to read calendar: %w", err)
	}

	counts := make(map[string]int)
	calendars := 0
	dec := goical.NewDecoder(bytes.NewReader(data))
	for {
		cal, err := dec.Decode()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return &ExitError{Code: 1, Err: fmt.Errorf("%s: %w", path, err)}
		}
		calendars++
		for _, child := range cal.Children {
			counts[child.Name]++
		}
	}
	if calendars == 0 {
		return &ExitError{Code: 1, Err: fmt.Errorf("%s: no calendar found", path)}
	}

	problems := 0
	for i, line := range unfoldLines(string(data)) {
		if err := ical.CheckContentLine(line); err != nil {
			a.logger.Error("invalid content line", "path", path, "line", i+1, "err", err)
			problems++
		}
	}

	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Strings(names)
	summary := make([]string, 0, len(names))
	for _, name := range names {
		summary = append(summary, fmt.Sprintf("%s=%d", name, counts[name]))
	}
	fmt.Fprintf(stdout, "%s: %s, %d calendar(s) %s\n", path, ical.MIMEType, calendars, strings.Join(summary, " "))

	if problems > 0 {
		return &ExitError{Code: 1, Err: fmt.Errorf("%s: %d invalid content line(s)", path, problems)}
	}
	return nil
}

// unfoldLines returns the logical content lines of an iCalendar text.
func unfoldLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\n ", "")
	text = strings.ReplaceAll(text, "\n\t", "")

	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
