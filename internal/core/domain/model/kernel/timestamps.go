package kernel

import (
	"fmt"
	"strings"
	"time"

	"logistics/internal/pkg/errs"
)

// DefaultRecordTimezone is used for timestamps that carry no zone when no
// other zone is configured.
const DefaultRecordTimezone = "Asia/Karachi"

var (
	zonedLayouts = []string{
		time.RFC3339Nano,
		"2006-01-02T15:04Z07:00",
		"2006-01-02 15:04:05Z07:00",
	}
	naiveLayouts = []string{
		"2006-01-02T15:04:05.999999999",
		"2006-01-02T15:04:05",
		"2006-01-02T15:04",
		"2006-01-02 15:04:05",
		"2006-01-02",
	}
)

// Timestamps normalizes instants to UTC. ISO-8601 values without an offset
// are interpreted in the configured record timezone.
type Timestamps struct {
	location *time.Location
}

// NewTimestamps loads the IANA zone used for naive timestamps.
// An empty zone falls back to DefaultRecordTimezone.
func NewTimestamps(zone string) (Timestamps, error) {
	if strings.TrimSpace(zone) == "" {
		zone = DefaultRecordTimezone
	}
	loc, err := time.LoadLocation(zone)
	if err != nil {
		return Timestamps{}, errs.NewValueIsInvalidErrorWithCause("record timezone", err)
	}
	return Timestamps{location: loc}, nil
}

// Location returns the record timezone.
func (t Timestamps) Location() *time.Location {
	if t.location == nil {
		return time.UTC
	}
	return t.location
}

// Parse reads an ISO-8601 timestamp and returns it in UTC. field names the
// payload attribute for the returned validation error.
func (t Timestamps) Parse(field, value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, errs.NewFieldValidationError(fmt.Sprintf("%s is required", field), field)
	}

	for _, layout := range zonedLayouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			return parsed.UTC(), nil
		}
	}
	for _, layout := range naiveLayouts {
		if parsed, err := time.ParseInLocation(layout, value, t.Location()); err == nil {
			return parsed.UTC(), nil
		}
	}

	return time.Time{}, errs.NewFieldValidationError(
		fmt.Sprintf("%s must be an ISO-8601 datetime string", field), field)
}
