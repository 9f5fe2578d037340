package main

// bumpRank orders bump magnitudes for threshold comparison.
var bumpRank = map[VersionBump]int{
	BumpNone:  0,
	BumpPatch: 1,
	BumpMinor: 2,
	BumpMajor: 3,
}

// ShouldMerge decides whether a bump of the given magnitude may be
// auto-merged under the configured threshold. BumpNone always merges:
// a title that does not follow the Dependabot convention is not held
// back.
func ShouldMerge(bump, threshold VersionBump) bool {
	if bump == BumpNone {
		return true
	}
	return bumpRank[bump] <= bumpRank[threshold]
}
