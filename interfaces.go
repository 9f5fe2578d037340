package main

import (
	"context"
)

// GitHubClient defines the GitHub API operations the run controller
// depends on.
type GitHubClient interface {
	// ListCandidates returns the open PRs authored by the configured
	// bot account.
	ListCandidates(ctx context.Context) ([]PullRequestCandidate, error)

	// FetchSignals returns the check runs and commit statuses for a
	// commit reference.
	FetchSignals(ctx context.Context, ref string) ([]CheckResult, []StatusResult, error)

	// Approve submits an approving review on a PR.
	Approve(ctx context.Context, number int) error

	// Merge merges a PR with the given method.
	Merge(ctx context.Context, number int, method MergeMethod) error
}
