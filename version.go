package main

import (
	"runtime"
	"runtime/debug"
)

// BuildInfo contains version and build information.
type BuildInfo struct {
	Version   string
	Revision  string
	BuildTime string
	GoVersion string
	Platform  string
}

// Version returns the current build information.
func Version() BuildInfo {
	buildVersion := "unknown"
	revision := "unknown"
	buildTime := "unknown"

	if info, ok := debug.ReadBuildInfo(); ok {
		if info.Main.Version != "(devel)" && info.Main.Version != "" {
			buildVersion = info.Main.Version
		}

		for _, setting := range info.Settings {
			switch setting.Key {
			case "vcs.revision":
				revision = setting.Value
			case "vcs.time":
				buildTime = setting.Value
			}
		}
	}

	return BuildInfo{
		Version:   buildVersion,
		Revision:  revision,
		BuildTime: buildTime,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}
