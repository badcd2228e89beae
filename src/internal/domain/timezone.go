package domain

import (
	"fmt"
	"strings"
	"time"
)

const (
	minZoneOffset = -12 * time.Hour
	maxZoneOffset = 14 * time.Hour
)

// TimeZone is a named fixed offset from UTC. Hours and minutes combine
// additively into one signed offset, so (-3, 30) is -02:30.
type TimeZone struct {
	name          string
	offsetHours   int
	offsetMinutes int
}

func NewTimeZone(name string, offsetHours, offsetMinutes int) (TimeZone, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return TimeZone{}, newValidationError("name", "time zone name cannot be empty")
	}
	if offsetMinutes < -59 || offsetMinutes > 59 {
		return TimeZone{}, newValidationError("offsetMinutes", "minutes offset must be an integer in [-59, 59]")
	}

	// Bound hours before widening to a Duration, which would wrap.
	if offsetHours < int(minZoneOffset/time.Hour) || offsetHours > int(maxZoneOffset/time.Hour) {
		return TimeZone{}, newValidationError("offset", "offset must be between -12:00 and +14:00")
	}

	offset := time.Duration(offsetHours)*time.Hour + time.Duration(offsetMinutes)*time.Minute
	if offset < minZoneOffset || offset > maxZoneOffset {
		return TimeZone{}, newValidationError("offset", "offset must be between -12:00 and +14:00")
	}

	return TimeZone{
		name:          name,
		offsetHours:   offsetHours,
		offsetMinutes: offsetMinutes,
	}, nil
}

// UTC returns the zero-offset zone used when no preference is given.
func UTC() TimeZone {
	return TimeZone{name: "UTC"}
}

func (z TimeZone) Name() string {
	return z.name
}

func (z TimeZone) OffsetHours() int {
	return z.offsetHours
}

func (z TimeZone) OffsetMinutes() int {
	return z.offsetMinutes
}

// Offset is the combined signed shift from UTC.
func (z TimeZone) Offset() time.Duration {
	return time.Duration(z.offsetHours)*time.Hour + time.Duration(z.offsetMinutes)*time.Minute
}

// IsZero reports whether z is the zero value rather than a constructed zone.
func (z TimeZone) IsZero() bool {
	return z.name == ""
}

// Equal compares name and both offset components.
func (z TimeZone) Equal(other TimeZone) bool {
	return z == other
}

func (z TimeZone) String() string {
	return fmt.Sprintf("TimeZone(name=%q, offsetHours=%d, offsetMinutes=%d)", z.name, z.offsetHours, z.offsetMinutes)
}
