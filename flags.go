package main

import (
	"github.com/spf13/pflag"
)

// Flag defaults. The author default matches the login Dependabot uses
// on its pull requests.
const (
	defaultAuthor    = "dependabot[bot]"
	defaultThreshold = "minor"
	defaultMethod    = "merge"
)

// ParseFlags parses command-line arguments and returns a Config with
// everything except the token populated. showVersion is reported
// separately so main can print build information and exit early.
func ParseFlags(progname string, args []string) (config *Config, showVersion bool, err error) {
	flags := pflag.NewFlagSet(progname, pflag.ContinueOnError)

	repo := flags.StringP("repo", "r", "", "GitHub repo (owner/repo)")
	author := flags.String("author", defaultAuthor, "PR author to auto-merge for")
	threshold := flags.String("threshold", defaultThreshold, "Largest bump to auto-merge (major, minor, patch)")
	method := flags.String("merge-method", defaultMethod, "Merge method (merge, squash, rebase)")
	dryRun := flags.BoolP("dry-run", "n", false, "Evaluate PRs without approving or merging")
	quiet := flags.BoolP("quiet", "q", false, "Print merged PR numbers only")
	debug := flags.Bool("debug", false, "Enable debug logging")
	version := flags.BoolP("version", "v", false, "Show version information")

	if err := flags.Parse(args); err != nil {
		return nil, false, err
	}

	if *version {
		return nil, true, nil
	}

	parsedThreshold, err := ParseVersionBump(*threshold)
	if err != nil {
		return nil, false, err
	}

	parsedMethod, err := ParseMergeMethod(*method)
	if err != nil {
		return nil, false, err
	}

	return &Config{
		Repository: *repo,
		Author:     *author,
		Threshold:  parsedThreshold,
		Method:     parsedMethod,
		DryRun:     *dryRun,
		Quiet:      *quiet,
		DebugMode:  *debug,
	}, false, nil
}
