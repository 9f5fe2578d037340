package main

import (
	"context"

	"github.com/google/go-github/v54/github"
	"github.com/pkg/errors"
	"golang.org/x/oauth2"
)

// Client implements GitHubClient on the GitHub REST API.
type Client struct {
	gh     *github.Client
	owner  string
	name   string
	author string
}

// NewClient creates an authenticated client scoped to the configured
// repository and PR author.
func NewClient(ctx context.Context, config *Config) (*Client, error) {
	owner, name, err := SplitRepository(config.Repository)
	if err != nil {
		return nil, err
	}

	source := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: config.Token})
	httpClient := oauth2.NewClient(ctx, source)

	return &Client{
		gh:     github.NewClient(httpClient),
		owner:  owner,
		name:   name,
		author: config.Author,
	}, nil
}

// ListCandidates searches for open PRs by the configured author, then
// resolves each to a candidate snapshot. The search result does not
// carry the head SHA, so every hit costs one extra Get.
func (c *Client) ListCandidates(ctx context.Context) ([]PullRequestCandidate, error) {
	query := NewQueryBuilder().
		Repo(c.owner, c.name).
		Type("pr").
		State("open").
		Author(SearchAuthor(c.author)).
		Sort("created-asc").
		Build()

	result, _, err := c.gh.Search.Issues(ctx, query, nil)
	if err != nil {
		return nil, errors.Wrap(err, "searching open dependency PRs")
	}

	candidates := make([]PullRequestCandidate, 0, len(result.Issues))
	for _, issue := range result.Issues {
		pull, _, err := c.gh.PullRequests.Get(ctx, c.owner, c.name, issue.GetNumber())
		if err != nil {
			return nil, errors.Wrapf(err, "fetching PR #%d", issue.GetNumber())
		}

		candidates = append(candidates, PullRequestCandidate{
			Number:      pull.GetNumber(),
			Title:       pull.GetTitle(),
			AuthorLogin: pull.GetUser().GetLogin(),
			HeadSHA:     pull.GetHead().GetSHA(),
			URL:         pull.GetHTMLURL(),
		})
	}

	return candidates, nil
}

// FetchSignals returns the check runs and commit statuses for a commit
// reference.
func (c *Client) FetchSignals(ctx context.Context, ref string) ([]CheckResult, []StatusResult, error) {
	runs, _, err := c.gh.Checks.ListCheckRunsForRef(ctx, c.owner, c.name, ref, nil)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "listing check runs for %s", ref)
	}

	checks := make([]CheckResult, 0, len(runs.CheckRuns))
	for _, run := range runs.CheckRuns {
		checks = append(checks, CheckResult{
			Name:       run.GetName(),
			Conclusion: run.GetConclusion(),
		})
	}

	repoStatuses, _, err := c.gh.Repositories.ListStatuses(ctx, c.owner, c.name, ref, nil)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "listing commit statuses for %s", ref)
	}

	statuses := make([]StatusResult, 0, len(repoStatuses))
	for _, status := range repoStatuses {
		statuses = append(statuses, StatusResult{
			Context: status.GetContext(),
			State:   status.GetState(),
		})
	}

	return checks, statuses, nil
}

// Approve submits an approving review on a PR.
func (c *Client) Approve(ctx context.Context, number int) error {
	review := &github.PullRequestReviewRequest{
		Body:  github.String("Approving dependency update."),
		Event: github.String("APPROVE"),
	}

	if _, _, err := c.gh.PullRequests.CreateReview(ctx, c.owner, c.name, number, review); err != nil {
		return errors.Wrapf(err, "approving PR #%d", number)
	}
	return nil
}

// Merge merges a PR with the given method.
func (c *Client) Merge(ctx context.Context, number int, method MergeMethod) error {
	opts := &github.PullRequestOptions{MergeMethod: string(method)}

	if _, _, err := c.gh.PullRequests.Merge(ctx, c.owner, c.name, number, "", opts); err != nil {
		return errors.Wrapf(err, "merging PR #%d", number)
	}
	return nil
}
