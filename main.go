// Package main implements a scheduled auto-merge helper for dependency
// update pull requests.
//
// One invocation performs one pass: it lists the open PRs authored by
// the dependency-update bot, checks that every CI check run and commit
// status is green, classifies the semver bump from the PR title, and
// approves and merges PRs whose bump is within the configured
// threshold. There is no state between runs; a merged PR simply stops
// appearing in the open-PR list.
//
// Intended to run from cron or a scheduled workflow, authenticated via
// GITHUB_TOKEN.
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"go.uber.org/zap"
)

func main() {
	config, showVersion, err := ParseFlags(os.Args[0], os.Args[1:])
	if err != nil {
		log.Fatalf("CLI parsing failed: %v", err)
	}

	if showVersion {
		info := Version()
		fmt.Printf("depmerge version %s (%s)\n", info.Version, info.Revision)
		fmt.Printf("Built: %s\n", info.BuildTime)
		fmt.Printf("Go version: %s\n", info.GoVersion)
		fmt.Printf("Platform: %s\n", info.Platform)
		return
	}

	token, err := LoadToken()
	if err != nil {
		log.Fatalf("%v", err)
	}
	config.Token = token

	if err := config.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger, err := newLogger(config.DebugMode)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()

	ctx := context.Background()

	client, err := NewClient(ctx, config)
	if err != nil {
		logger.Fatal("failed to create GitHub client", zap.Error(err))
	}

	summary, err := Run(ctx, config, client, logger)
	if err != nil {
		logger.Fatal("run failed", zap.Error(err))
	}

	if err := FormatSummary(os.Stdout, summary, config); err != nil {
		logger.Fatal("failed to format output", zap.Error(err))
	}
}

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
