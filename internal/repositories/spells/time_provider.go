package spells

import "time"

//go:generate mockgen -destination=mocks/mock_time_provider.go -package=mocks github.com/KirkDiggler/spellbook-discord/internal/repositories/spells TimeProvider

// TimeProvider supplies the current time so stored timestamps are testable
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider reads the system clock
type RealTimeProvider struct{}

// Now returns the current UTC time
func (RealTimeProvider) Now() time.Time {
	return time.Now().UTC()
}
