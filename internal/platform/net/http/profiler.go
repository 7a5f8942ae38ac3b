package http

import (
	stdhttp "net/http"

	mw "github.com/go-chi/chi/v5/middleware"
)

// ProfilerPrefix is where pprof is served when enabled
const ProfilerPrefix = "/debug"

// MountProfiler serves chi's pprof handlers under ProfilerPrefix, a no-op when disabled
// the prefix is stripped by hand since the profiler mux routes on the bare /pprof path
func MountProfiler(r Router, enabled bool) {
	if !enabled {
		return
	}
	h := stdhttp.StripPrefix(ProfilerPrefix, mw.Profiler()).ServeHTTP
	for _, p := range []string{ProfilerPrefix, ProfilerPrefix + "/*"} {
		r.Get(p, h)
	}
}
