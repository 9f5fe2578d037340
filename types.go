package main

import (
	"fmt"
	"strings"
)

// PullRequestCandidate is an immutable snapshot of an open dependency
// PR for the duration of one evaluation pass.
type PullRequestCandidate struct {
	Number      int
	Title       string
	AuthorLogin string
	HeadSHA     string
	URL         string
}

// CheckResult is a single check run reported for a commit. There is no
// uniqueness constraint on Name.
type CheckResult struct {
	Name       string
	Conclusion string
}

// StatusResult is a legacy commit status. The same Context can appear
// multiple times per commit; the API returns the newest entry first.
type StatusResult struct {
	Context string
	State   string
}

// Check run conclusions and commit status states as reported by the
// GitHub API.
const (
	CheckSuccess = "success"
	CheckNeutral = "neutral"

	StatusSuccess = "success"
)

// VersionBump is the magnitude of a dependency version change inferred
// from a PR title. BumpNone covers both "no version markers in the
// title" and "versions present but equal".
type VersionBump string

const (
	BumpMajor VersionBump = "major"
	BumpMinor VersionBump = "minor"
	BumpPatch VersionBump = "patch"
	BumpNone  VersionBump = "none"
)

// ParseVersionBump validates a threshold value from configuration.
// BumpNone is not a valid threshold.
func ParseVersionBump(s string) (VersionBump, error) {
	switch VersionBump(strings.ToLower(s)) {
	case BumpMajor:
		return BumpMajor, nil
	case BumpMinor:
		return BumpMinor, nil
	case BumpPatch:
		return BumpPatch, nil
	}
	return "", fmt.Errorf("invalid auto-merge threshold %q (want major, minor or patch)", s)
}

// MergeMethod selects how a PR is merged.
type MergeMethod string

const (
	MethodMerge  MergeMethod = "merge"
	MethodSquash MergeMethod = "squash"
	MethodRebase MergeMethod = "rebase"
)

// ParseMergeMethod validates a merge method value from configuration.
func ParseMergeMethod(s string) (MergeMethod, error) {
	switch MergeMethod(strings.ToLower(s)) {
	case MethodMerge:
		return MethodMerge, nil
	case MethodSquash:
		return MethodSquash, nil
	case MethodRebase:
		return MethodRebase, nil
	}
	return "", fmt.Errorf("invalid merge method %q (want merge, squash or rebase)", s)
}
