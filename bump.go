package main

import (
	"strings"

	"github.com/Masterminds/semver/v3"
)

// versionTokenMax caps the length of a version token extracted from a
// PR title. Dependabot versions fit; anything longer is trailing noise.
const versionTokenMax = 8

// ParseBump classifies the version change announced in a Dependabot PR
// title, e.g. "Bump lodash from 4.17.10 to 4.17.21". The old version is
// the token after the first "from " and the new version the token after
// the first " to ". Any malformed title degrades to BumpNone; this
// never fails.
func ParseBump(title string) VersionBump {
	from, ok := markerToken(title, "from ")
	if !ok {
		return BumpNone
	}
	to, ok := markerToken(title, " to ")
	if !ok {
		return BumpNone
	}

	oldVersion, err := semver.NewVersion(from)
	if err != nil {
		return BumpNone
	}
	newVersion, err := semver.NewVersion(to)
	if err != nil {
		return BumpNone
	}

	return classify(oldVersion, newVersion)
}

// markerToken extracts the token following the first occurrence of
// marker, up to the next space or newline, capped at versionTokenMax
// characters.
func markerToken(title, marker string) (string, bool) {
	idx := strings.Index(title, marker)
	if idx < 0 {
		return "", false
	}

	token := title[idx+len(marker):]
	if end := strings.IndexAny(token, " \n"); end >= 0 {
		token = token[:end]
	}
	if len(token) > versionTokenMax {
		token = token[:versionTokenMax]
	}

	token = strings.TrimSpace(token)
	return token, token != ""
}

// classify compares two versions by semver precedence. The highest
// differing component wins; a difference below patch level (prerelease
// or build metadata only) counts as a patch.
func classify(oldVersion, newVersion *semver.Version) VersionBump {
	switch {
	case oldVersion.Major() != newVersion.Major():
		return BumpMajor
	case oldVersion.Minor() != newVersion.Minor():
		return BumpMinor
	case oldVersion.Patch() != newVersion.Patch():
		return BumpPatch
	case !oldVersion.Equal(newVersion):
		return BumpPatch
	}
	return BumpNone
}
