package main

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// OutcomeKind records what happened to one PR during a pass.
type OutcomeKind string

const (
	// OutcomeSignalsUnavailable: fetching CI signals failed; the PR
	// was skipped.
	OutcomeSignalsUnavailable OutcomeKind = "signals-unavailable"
	// OutcomeSignalsRed: at least one check or status is not green.
	OutcomeSignalsRed OutcomeKind = "signals-red"
	// OutcomeHeldByPolicy: the bump exceeds the configured threshold.
	OutcomeHeldByPolicy OutcomeKind = "held-by-policy"
	// OutcomeWouldMerge: dry run; the PR would have been merged.
	OutcomeWouldMerge OutcomeKind = "would-merge"
	// OutcomeMerged: the PR was approved and merged.
	OutcomeMerged OutcomeKind = "merged"
	// OutcomeMergeFailed: the merge call failed.
	OutcomeMergeFailed OutcomeKind = "merge-failed"
)

// PROutcome is the per-PR record in the run summary.
type PROutcome struct {
	Number int
	Title  string
	URL    string
	Bump   VersionBump
	Result OutcomeKind
	// Err carries the fetch or merge failure for the skipped/failed
	// outcomes.
	Err error
	// ApproveErr records an approve failure. Approve is best-effort;
	// the merge is still attempted.
	ApproveErr error
}

// RunSummary is the structured result of one pass.
type RunSummary struct {
	Repository string
	Outcomes   []PROutcome
}

// Count returns how many PRs ended with the given outcome.
func (s *RunSummary) Count(kind OutcomeKind) int {
	n := 0
	for _, o := range s.Outcomes {
		if o.Result == kind {
			n++
		}
	}
	return n
}

// Merged returns the PR numbers that were merged this pass.
func (s *RunSummary) Merged() []int {
	var merged []int
	for _, o := range s.Outcomes {
		if o.Result == OutcomeMerged {
			merged = append(merged, o.Number)
		}
	}
	return merged
}

// Run executes one pass over the open dependency PRs. Each PR is
// processed independently and in list order; per-PR failures are
// recorded in the summary and never abort the run. Only listing the
// candidates can fail the pass as a whole.
func Run(ctx context.Context, config *Config, client GitHubClient, logger *zap.Logger) (*RunSummary, error) {
	candidates, err := client.ListCandidates(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list open PRs: %w", err)
	}

	summary := &RunSummary{Repository: config.Repository}
	for _, pr := range candidates {
		summary.Outcomes = append(summary.Outcomes, evaluatePR(ctx, config, client, logger, pr))
	}

	return summary, nil
}

func evaluatePR(ctx context.Context, config *Config, client GitHubClient, logger *zap.Logger, pr PullRequestCandidate) PROutcome {
	outcome := PROutcome{
		Number: pr.Number,
		Title:  pr.Title,
		URL:    pr.URL,
		Bump:   ParseBump(pr.Title),
	}
	log := logger.With(zap.Int("pr", pr.Number))

	checks, statuses, err := client.FetchSignals(ctx, pr.HeadSHA)
	if err != nil {
		log.Warn("failed to fetch CI signals", zap.Error(err))
		outcome.Result = OutcomeSignalsUnavailable
		outcome.Err = err
		return outcome
	}

	if !AllGreen(checks, statuses) {
		log.Debug("CI signals not green",
			zap.Int("checks", len(checks)),
			zap.Int("statuses", len(DedupStatuses(statuses))))
		outcome.Result = OutcomeSignalsRed
		return outcome
	}

	if !ShouldMerge(outcome.Bump, config.Threshold) {
		log.Info("bump exceeds auto-merge threshold",
			zap.String("bump", string(outcome.Bump)),
			zap.String("threshold", string(config.Threshold)))
		outcome.Result = OutcomeHeldByPolicy
		return outcome
	}

	if config.DryRun {
		log.Info("dry run, would merge", zap.String("bump", string(outcome.Bump)))
		outcome.Result = OutcomeWouldMerge
		return outcome
	}

	if err := client.Approve(ctx, pr.Number); err != nil {
		log.Warn("approve failed, attempting merge anyway", zap.Error(err))
		outcome.ApproveErr = err
	}

	if err := client.Merge(ctx, pr.Number, config.Method); err != nil {
		log.Warn("merge failed", zap.Error(err))
		outcome.Result = OutcomeMergeFailed
		outcome.Err = err
		return outcome
	}

	log.Info("merged", zap.String("bump", string(outcome.Bump)), zap.String("method", string(config.Method)))
	outcome.Result = OutcomeMerged
	return outcome
}
