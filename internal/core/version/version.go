// Package version reports what build of the check-in API is running
package version

import (
	"runtime"
	"runtime/debug"
)

// Service is the name the API reports in logs and meta endpoints
const Service = "healthdash-api"

// set with -ldflags "-X healthdash/internal/core/version.version=v1.2.0 -X ...commit=abcd -X ...date=2026-10-01"
var (
	version = "dev"
	commit  = ""
	date    = ""
)

// BuildInfo is served by GET /version
type BuildInfo struct {
	Service string `json:"service"`
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
	Go      string `json:"go"`
}

// Info returns the ldflags values, falling back to the vcs stamp go build embeds
func Info() BuildInfo {
	b := BuildInfo{Service: Service, Version: version, Commit: commit, Date: date, Go: runtime.Version()}
	if b.Commit != "" && b.Date != "" {
		return b
	}
	if bi, ok := readBuildInfo(); ok {
		for _, s := range bi.Settings {
			switch {
			case s.Key == "vcs.revision" && b.Commit == "":
				b.Commit = s.Value
			case s.Key == "vcs.time" && b.Date == "":
				b.Date = s.Value
			}
		}
	}
	if b.Commit == "" {
		b.Commit = "none"
	}
	if b.Date == "" {
		b.Date = "unknown"
	}
	return b
}

var readBuildInfo = debug.ReadBuildInfo
