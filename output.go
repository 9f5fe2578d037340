package main

import (
	"fmt"
	"io"
	"text/tabwriter"
)

// SummaryFormatter defines the interface for the output formats.
type SummaryFormatter interface {
	Format(w io.Writer, summary *RunSummary) error
}

// TabularFormatter outputs one row per evaluated PR plus totals.
type TabularFormatter struct{}

// QuietFormatter outputs merged PR numbers only.
type QuietFormatter struct{}

// Format outputs the run summary in tabular format.
func (f *TabularFormatter) Format(w io.Writer, summary *RunSummary) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "PR\tBUMP\tOUTCOME\tTITLE")

	for _, outcome := range summary.Outcomes {
		detail := ""
		if outcome.Err != nil {
			detail = fmt.Sprintf(" (%v)", outcome.Err)
		}
		fmt.Fprintf(tw, "#%d\t%s\t%s%s\t%s\n",
			outcome.Number, outcome.Bump, outcome.Result, detail, outcome.Title)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(w, "\n%s: %d merged, %d failed, %d held, %d not green\n",
		summary.Repository,
		summary.Count(OutcomeMerged),
		summary.Count(OutcomeMergeFailed),
		summary.Count(OutcomeHeldByPolicy),
		summary.Count(OutcomeSignalsRed)+summary.Count(OutcomeSignalsUnavailable))
	return nil
}

// Format outputs merged PR numbers, one per line.
func (f *QuietFormatter) Format(w io.Writer, summary *RunSummary) error {
	for _, number := range summary.Merged() {
		fmt.Fprintln(w, number)
	}
	return nil
}

// FormatSummary selects the formatter for the configured output mode.
func FormatSummary(w io.Writer, summary *RunSummary, config *Config) error {
	var formatter SummaryFormatter
	if config.Quiet {
		formatter = &QuietFormatter{}
	} else {
		formatter = &TabularFormatter{}
	}
	return formatter.Format(w, summary)
}
