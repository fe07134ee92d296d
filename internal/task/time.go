package task

import (
	"fmt"
	"strings"
	"time"
)

// localTimeLayout is an ISO-8601 local datetime without a zone offset.
// Fractional seconds are kept so a round trip loses no precision.
const localTimeLayout = "2006-01-02T15:04:05.999999999"

// LocalTime is a timezone-naive timestamp: local wall-clock time persisted
// without offset information.
type LocalTime struct {
	time.Time
}

// Now returns the current local wall-clock time. The monotonic reading is
// stripped so values compare cleanly after a persistence round trip.
func Now() LocalTime {
	return LocalTime{time.Now().Round(0)}
}

func (lt LocalTime) MarshalJSON() ([]byte, error) {
	return []byte(`"` + lt.Format(localTimeLayout) + `"`), nil
}

func (lt *LocalTime) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	t, err := time.ParseInLocation(localTimeLayout, s, time.Local)
	if err != nil {
		return fmt.Errorf("parse local time %q: %w", s, err)
	}
	lt.Time = t
	return nil
}

func (lt LocalTime) Equal(other LocalTime) bool {
	return lt.Time.Equal(other.Time)
}
