// Package kst converts between KST civil time strings and absolute instants.
//
// Reminder send times travel over the wire as "YYYY-MM-DD HH:mm:ss" strings
// interpreted in a fixed UTC+9 offset. No timezone database is consulted;
// the deployment is single-region and the offset is a constant. This package
// is the only place that offset arithmetic is allowed to live.
package kst

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// ErrBadTimeFormat is returned for any string that does not conform to
// "YYYY-MM-DD HH:mm:ss" (or the T-separated variant) with valid fields.
var ErrBadTimeFormat = errors.New("invalid KST datetime format")

// Layout is the civil time layout used on the wire. This is deliberately
// not ISO-8601 UTC; do not switch to UTC parsing.
const Layout = "2006-01-02 15:04:05"

var zone = time.FixedZone("KST", 9*60*60)

var civilRe = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})[ T](\d{2}):(\d{2}):(\d{2})$`)

// ToInstant parses a KST civil time string and returns the corresponding
// absolute instant in UTC. Malformed strings, including out-of-range
// calendar fields such as "2025-13-40 99:99:99", fail with ErrBadTimeFormat.
func ToInstant(s string) (time.Time, error) {
	m := civilRe.FindStringSubmatch(s)
	if m == nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrBadTimeFormat, s)
	}

	fields := make([]int, 6)
	for i := range fields {
		n, err := strconv.Atoi(m[i+1])
		if err != nil {
			return time.Time{}, fmt.Errorf("%w: %q", ErrBadTimeFormat, s)
		}
		fields[i] = n
	}

	t := time.Date(fields[0], time.Month(fields[1]), fields[2], fields[3], fields[4], fields[5], 0, zone)

	// time.Date normalizes out-of-range fields (month 13 becomes January of
	// the next year); reject anything that does not survive the round trip.
	if t.Year() != fields[0] || t.Month() != time.Month(fields[1]) || t.Day() != fields[2] ||
		t.Hour() != fields[3] || t.Minute() != fields[4] || t.Second() != fields[5] {
		return time.Time{}, fmt.Errorf("%w: %q", ErrBadTimeFormat, s)
	}

	return t.UTC(), nil
}

// Format renders an instant as the KST civil time string, zero-padded,
// space-separated. Inverse of ToInstant at second resolution.
func Format(t time.Time) string {
	return t.In(zone).Format(Layout)
}

// Now returns the current time as a KST civil time string.
func Now() string {
	return Format(time.Now())
}
