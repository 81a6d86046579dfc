// Package utils holds small shared helpers with no domain logic of their own.
package utils

import "time"

// Clock abstracts time.Now so that date-sensitive behavior, such as the
// "Today"/"Yesterday" ledger labels and the weekly and monthly windows, can be
// pinned in tests.
type Clock interface {
	Now() time.Time
}

// SystemClock is the production Clock backed by the wall clock.
type SystemClock struct{}

func (s SystemClock) Now() time.Time {
	return time.Now()
}

// MockClock returns a fixed instant, settable mid-test to simulate the
// passing of days.
type MockClock struct {
	FixedNow time.Time
}

func (m *MockClock) Now() time.Time {
	return m.FixedNow
}

func (m *MockClock) SetNow(now time.Time) {
	m.FixedNow = now
}
