package common

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

const (
	layoutWithFraction    = "2006-01-02T15:04:05.999999-07:00"
	layoutWithoutFraction = "2006-01-02T15:04:05-07:00"
)

// The pre-checks keep time.Parse from ever seeing a string it would choke
// on; upstream feeds are inconsistently formatted and a bad timestamp must
// degrade to "absent", not an error.
var (
	reWithFraction    = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}\.\d+[+-]\d{2}:\d{2}`)
	reWithoutFraction = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}[+-]\d{2}:\d{2}`)
	reTruncFraction   = regexp.MustCompile(`(\.\d{6})\d*`)
)

// ParseTimestamp parses an ISO-8601 timestamp with or without fractional
// seconds. Fractions longer than six digits are right-trimmed, not rounded.
// Returns ok=false on anything malformed.
func ParseTimestamp(s string) (time.Time, bool) {
	if reWithFraction.MatchString(s) {
		t, err := time.Parse(layoutWithFraction, reTruncFraction.ReplaceAllString(s, "$1"))
		if err == nil {
			return t, true
		}
	}
	if reWithoutFraction.MatchString(s) {
		t, err := time.Parse(layoutWithoutFraction, s)
		if err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// ParseISO8601 additionally accepts a trailing "Z" designator.
func ParseISO8601(s string) (time.Time, bool) {
	if t, ok := ParseTimestamp(s); ok {
		return t, true
	}
	t, err := time.Parse(time.RFC3339, s)
	if err == nil {
		return t, true
	}
	return time.Time{}, false
}

// FloorDuration is floor(end-start) in whole seconds. Negative spans report
// not-ok so callers treat them as absent.
func FloorDuration(start, end time.Time) (int64, bool) {
	if start.IsZero() || end.IsZero() {
		return 0, false
	}
	d := end.Sub(start)
	if d < 0 {
		return 0, false
	}
	return int64(d.Seconds()), true
}

var uploadDateLayouts = []string{
	"02/01/2006",
	"2006-01-02",
	"20060102",
	"02.01.2006",
	"2006/01/02",
}

// ParseUploadDate tries the date shapes the legacy playlist feed has been
// seen to use. Zero time when none match.
func ParseUploadDate(s string) time.Time {
	s = strings.TrimSpace(s)
	for _, layout := range uploadDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

// ParseClockDuration parses "HH:MM:SS", "MM:SS" or bare seconds into whole
// seconds. 0 when unparsable.
func ParseClockDuration(s string) int64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	parts := strings.Split(s, ":")
	if len(parts) > 3 {
		return 0
	}
	var total int64
	for _, p := range parts {
		n, err := strconv.ParseInt(strings.TrimSpace(p), 10, 64)
		if err != nil || n < 0 {
			return 0
		}
		total = total*60 + n
	}
	return total
}
