package main_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	. "github.com/frobware/depmerge"
)

// mockGitHubClient implements GitHubClient for testing. Calls to the
// side-effecting operations are recorded so tests can assert exactly
// which PRs were touched.
type mockGitHubClient struct {
	listFunc    func(ctx context.Context) ([]PullRequestCandidate, error)
	signalsFunc func(ctx context.Context, ref string) ([]CheckResult, []StatusResult, error)
	approveFunc func(ctx context.Context, number int) error
	mergeFunc   func(ctx context.Context, number int, method MergeMethod) error

	approveCalls []int
	mergeCalls   []int
	mergeMethods []MergeMethod
}

func (m *mockGitHubClient) ListCandidates(ctx context.Context) ([]PullRequestCandidate, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx)
	}
	return nil, nil
}

func (m *mockGitHubClient) FetchSignals(ctx context.Context, ref string) ([]CheckResult, []StatusResult, error) {
	if m.signalsFunc != nil {
		return m.signalsFunc(ctx, ref)
	}
	return nil, nil, nil
}

func (m *mockGitHubClient) Approve(ctx context.Context, number int) error {
	m.approveCalls = append(m.approveCalls, number)
	if m.approveFunc != nil {
		return m.approveFunc(ctx, number)
	}
	return nil
}

func (m *mockGitHubClient) Merge(ctx context.Context, number int, method MergeMethod) error {
	m.mergeCalls = append(m.mergeCalls, number)
	m.mergeMethods = append(m.mergeMethods, method)
	if m.mergeFunc != nil {
		return m.mergeFunc(ctx, number, method)
	}
	return nil
}

func greenSignals(ctx context.Context, ref string) ([]CheckResult, []StatusResult, error) {
	return []CheckResult{{Name: "build", Conclusion: "success"}},
		[]StatusResult{{Context: "ci", State: "success"}},
		nil
}

func testConfig() *Config {
	return &Config{
		Repository: "owner/repo",
		Author:     "dependabot[bot]",
		Threshold:  BumpMinor,
		Method:     MethodMerge,
		Token:      "x",
	}
}

func TestRun_PatchBumpMerges(t *testing.T) {
	mock := &mockGitHubClient{
		listFunc: func(ctx context.Context) ([]PullRequestCandidate, error) {
			return []PullRequestCandidate{
				{Number: 42, Title: "Bump lodash from 4.17.10 to 4.17.21", HeadSHA: "abc"},
			}, nil
		},
		signalsFunc: greenSignals,
	}

	summary, err := Run(context.Background(), testConfig(), mock, zap.NewNop())
	require.NoError(t, err)
	require.Len(t, summary.Outcomes, 1)

	assert.Equal(t, OutcomeMerged, summary.Outcomes[0].Result)
	assert.Equal(t, BumpPatch, summary.Outcomes[0].Bump)
	assert.Equal(t, []int{42}, mock.approveCalls, "approve should precede merge")
	assert.Equal(t, []int{42}, mock.mergeCalls)
	assert.Equal(t, []MergeMethod{MethodMerge}, mock.mergeMethods)
	assert.Equal(t, []int{42}, summary.Merged())
}

func TestRun_MajorBumpHeldByPolicy(t *testing.T) {
	mock := &mockGitHubClient{
		listFunc: func(ctx context.Context) ([]PullRequestCandidate, error) {
			return []PullRequestCandidate{
				{Number: 7, Title: "Bump react from 17.0.0 to 18.0.0", HeadSHA: "abc"},
			}, nil
		},
		signalsFunc: greenSignals,
	}

	summary, err := Run(context.Background(), testConfig(), mock, zap.NewNop())
	require.NoError(t, err)
	require.Len(t, summary.Outcomes, 1)

	assert.Equal(t, OutcomeHeldByPolicy, summary.Outcomes[0].Result)
	assert.Equal(t, BumpMajor, summary.Outcomes[0].Bump)
	assert.Empty(t, mock.approveCalls)
	assert.Empty(t, mock.mergeCalls)
}

func TestRun_RedSignalsSkipRegardlessOfBump(t *testing.T) {
	mock := &mockGitHubClient{
		listFunc: func(ctx context.Context) ([]PullRequestCandidate, error) {
			return []PullRequestCandidate{
				{Number: 9, Title: "Bump foo from 1.0.0 to 1.0.1", HeadSHA: "abc"},
			}, nil
		},
		signalsFunc: func(ctx context.Context, ref string) ([]CheckResult, []StatusResult, error) {
			return []CheckResult{
				{Name: "build", Conclusion: "success"},
				{Name: "test", Conclusion: "failure"},
				{Name: "lint", Conclusion: "success"},
			}, nil, nil
		},
	}

	summary, err := Run(context.Background(), testConfig(), mock, zap.NewNop())
	require.NoError(t, err)
	require.Len(t, summary.Outcomes, 1)

	assert.Equal(t, OutcomeSignalsRed, summary.Outcomes[0].Result)
	assert.Empty(t, mock.approveCalls)
	assert.Empty(t, mock.mergeCalls)
}

func TestRun_SignalFetchFailureSkipsOnlyThatPR(t *testing.T) {
	mock := &mockGitHubClient{
		listFunc: func(ctx context.Context) ([]PullRequestCandidate, error) {
			return []PullRequestCandidate{
				{Number: 1, Title: "Bump a from 1.0.0 to 1.0.1", HeadSHA: "bad"},
				{Number: 2, Title: "Bump b from 2.0.0 to 2.0.1", HeadSHA: "good"},
			}, nil
		},
		signalsFunc: func(ctx context.Context, ref string) ([]CheckResult, []StatusResult, error) {
			if ref == "bad" {
				return nil, nil, fmt.Errorf("boom")
			}
			return greenSignals(ctx, ref)
		},
	}

	summary, err := Run(context.Background(), testConfig(), mock, zap.NewNop())
	require.NoError(t, err)
	require.Len(t, summary.Outcomes, 2)

	assert.Equal(t, OutcomeSignalsUnavailable, summary.Outcomes[0].Result)
	assert.Error(t, summary.Outcomes[0].Err)
	assert.Equal(t, OutcomeMerged, summary.Outcomes[1].Result)
	assert.Equal(t, []int{2}, mock.mergeCalls)
}

func TestRun_ApproveFailureStillMerges(t *testing.T) {
	mock := &mockGitHubClient{
		listFunc: func(ctx context.Context) ([]PullRequestCandidate, error) {
			return []PullRequestCandidate{
				{Number: 3, Title: "Bump c from 1.0.0 to 1.0.1", HeadSHA: "abc"},
			}, nil
		},
		signalsFunc: greenSignals,
		approveFunc: func(ctx context.Context, number int) error {
			return fmt.Errorf("review rejected")
		},
	}

	summary, err := Run(context.Background(), testConfig(), mock, zap.NewNop())
	require.NoError(t, err)
	require.Len(t, summary.Outcomes, 1)

	assert.Equal(t, OutcomeMerged, summary.Outcomes[0].Result)
	assert.Error(t, summary.Outcomes[0].ApproveErr)
	assert.Equal(t, []int{3}, mock.mergeCalls)
}

func TestRun_MergeFailureDoesNotAbortRun(t *testing.T) {
	mock := &mockGitHubClient{
		listFunc: func(ctx context.Context) ([]PullRequestCandidate, error) {
			return []PullRequestCandidate{
				{Number: 4, Title: "Bump d from 1.0.0 to 1.0.1", HeadSHA: "abc"},
				{Number: 5, Title: "Bump e from 1.0.0 to 1.0.1", HeadSHA: "abc"},
			}, nil
		},
		signalsFunc: greenSignals,
		mergeFunc: func(ctx context.Context, number int, method MergeMethod) error {
			if number == 4 {
				return fmt.Errorf("merge conflict")
			}
			return nil
		},
	}

	summary, err := Run(context.Background(), testConfig(), mock, zap.NewNop())
	require.NoError(t, err, "per-PR merge failures must not fail the run")
	require.Len(t, summary.Outcomes, 2)

	assert.Equal(t, OutcomeMergeFailed, summary.Outcomes[0].Result)
	assert.Error(t, summary.Outcomes[0].Err)
	assert.Equal(t, OutcomeMerged, summary.Outcomes[1].Result)
	assert.Equal(t, 1, summary.Count(OutcomeMergeFailed))
	assert.Equal(t, 1, summary.Count(OutcomeMerged))
}

func TestRun_UnparseableTitleMerges(t *testing.T) {
	mock := &mockGitHubClient{
		listFunc: func(ctx context.Context) ([]PullRequestCandidate, error) {
			return []PullRequestCandidate{
				{Number: 6, Title: "Update build tooling", HeadSHA: "abc"},
			}, nil
		},
		signalsFunc: greenSignals,
	}

	summary, err := Run(context.Background(), testConfig(), mock, zap.NewNop())
	require.NoError(t, err)
	require.Len(t, summary.Outcomes, 1)

	assert.Equal(t, BumpNone, summary.Outcomes[0].Bump)
	assert.Equal(t, OutcomeMerged, summary.Outcomes[0].Result)
}

func TestRun_DryRunMakesNoCalls(t *testing.T) {
	mock := &mockGitHubClient{
		listFunc: func(ctx context.Context) ([]PullRequestCandidate, error) {
			return []PullRequestCandidate{
				{Number: 8, Title: "Bump f from 1.0.0 to 1.0.1", HeadSHA: "abc"},
			}, nil
		},
		signalsFunc: greenSignals,
	}

	config := testConfig()
	config.DryRun = true

	summary, err := Run(context.Background(), config, mock, zap.NewNop())
	require.NoError(t, err)
	require.Len(t, summary.Outcomes, 1)

	assert.Equal(t, OutcomeWouldMerge, summary.Outcomes[0].Result)
	assert.Empty(t, mock.approveCalls)
	assert.Empty(t, mock.mergeCalls)
}

func TestRun_ListFailureIsFatal(t *testing.T) {
	mock := &mockGitHubClient{
		listFunc: func(ctx context.Context) ([]PullRequestCandidate, error) {
			return nil, fmt.Errorf("api unavailable")
		},
	}

	_, err := Run(context.Background(), testConfig(), mock, zap.NewNop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to list open PRs")
}

func TestRun_EmptyCandidateList(t *testing.T) {
	mock := &mockGitHubClient{}

	summary, err := Run(context.Background(), testConfig(), mock, zap.NewNop())
	require.NoError(t, err)

	assert.Empty(t, summary.Outcomes)
	assert.Empty(t, summary.Merged())
	assert.Equal(t, "owner/repo", summary.Repository)
}
