package main

// AllGreen reduces the CI signals for one commit to a single verdict.
// Every check run must conclude success or neutral, and every commit
// status context must be success in its most recent entry. An empty
// check list or status list is vacuously green.
func AllGreen(checks []CheckResult, statuses []StatusResult) bool {
	for _, check := range checks {
		if check.Conclusion != CheckSuccess && check.Conclusion != CheckNeutral {
			return false
		}
	}

	for _, status := range DedupStatuses(statuses) {
		if status.State != StatusSuccess {
			return false
		}
	}

	return true
}

// DedupStatuses keeps the first entry seen per status context,
// preserving encounter order. The API lists statuses newest first, so
// the first entry per context is the current one.
func DedupStatuses(statuses []StatusResult) []StatusResult {
	seen := make(map[string]struct{}, len(statuses))
	deduped := make([]StatusResult, 0, len(statuses))

	for _, status := range statuses {
		if _, ok := seen[status.Context]; ok {
			continue
		}
		seen[status.Context] = struct{}{}
		deduped = append(deduped, status)
	}

	return deduped
}
