package module

import (
	"time"

	"healthdash/internal/platform/config"
)

// Options controls check-in behavior
type Options struct {
	// Location decides which calendar day a submission lands on
	Location *time.Location
	// RatePerMin caps submissions per caller, 0 (the default) disables the limiter
	RatePerMin int
	// Burst is the limiter bucket size
	Burst int
}

// FromConfig reads CHECKIN_* values from process config/env
func FromConfig(cfg config.Conf) Options {
	cc := cfg.Prefix("CHECKIN_")
	return Options{
		Location:   cc.MayLocation("TIMEZONE", time.UTC),
		RatePerMin: cc.MayInt("RATE_PER_MIN", 0),
		Burst:      cc.MayInt("RATE_BURST", 5),
	}
}

// every converts a per minute budget into a refill interval
func (o Options) every() time.Duration {
	if o.RatePerMin <= 0 {
		return 0
	}
	return time.Minute / time.Duration(o.RatePerMin)
}
