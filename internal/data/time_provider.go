package data

import "time"

// TimeProvider abstracts time.Now so repositories can be tested with a
// deterministic clock.
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider returns the actual current time.
type RealTimeProvider struct{}

func (*RealTimeProvider) Now() time.Time { return time.Now() }

// publishedAtFor returns the publish timestamp for a row created with the
// given published flag.
func publishedAtFor(published bool, now time.Time) *time.Time {
	if !published {
		return nil
	}
	t := now
	return &t
}

// normalizePage clamps pagination parameters to sane defaults.
func normalizePage(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
