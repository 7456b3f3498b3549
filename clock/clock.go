// Package clock makes "now" substitutable so that publication times stay
// deterministic in tests.
package clock

import "time"

type IDateProvider interface {
	Now() time.Time
}

// SystemDateProvider reads the wall clock in UTC.
type SystemDateProvider struct{}

func NewSystemDateProvider() SystemDateProvider {
	return SystemDateProvider{}
}

func (SystemDateProvider) Now() time.Time {
	return time.Now().UTC()
}

// StubDateProvider returns a fixed, settable instant.
type StubDateProvider struct {
	Instant time.Time
}

func (s *StubDateProvider) Now() time.Time {
	return s.Instant
}
