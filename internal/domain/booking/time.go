package booking

import (
	"fmt"
	"time"
)

// ParseHM converts a wall-clock "HH:MM" string to minutes since
// midnight. "24:00" is valid as the exclusive end-of-day boundary, so a
// booking ending at midnight stays visible to overlap checks.
func ParseHM(hm string) (int, error) {
	if hm == "24:00" {
		return 24 * 60, nil
	}
	t, err := time.Parse("15:04", hm)
	if err != nil {
		return 0, fmt.Errorf("invalid time %q: %w", hm, err)
	}
	return t.Hour()*60 + t.Minute(), nil
}

// ValidDate reports whether s is a well-formed YYYY-MM-DD day.
func ValidDate(s string) bool {
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}

// Overlaps applies the half-open interval rule: [s1,e1) and [s2,e2)
// collide iff s1 < e2 && s2 < e1. Inputs are minutes since midnight.
func Overlaps(s1, e1, s2, e2 int) bool {
	return s1 < e2 && s2 < e1
}
