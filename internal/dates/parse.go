// Package dates implements the lenient published-date parser and the
// date-range filter. The guiding policy: date uncertainty never drops
// a record.
package dates

import (
	"regexp"
	"time"

	"github.com/araddon/dateparse"
)

// layouts are tried in order; the first success wins. The order
// matters for ambiguous day/month forms: US month-first is preferred,
// day-first is the fallback.
var layouts = []string{
	"2006-01-02",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04:05.999999",
	time.RFC1123, // Mon, 02 Jan 2006 15:04:05 GMT
	"2 Jan 2006",
	"January 2, 2006",
	"2 January 2006",
	"01/02/2006",
	"02/01/2006",
}

// isoDatePattern extracts a YYYY-MM-DD anywhere in a string that no
// layout recognized as a whole.
var isoDatePattern = regexp.MustCompile(`\d{4}-\d{2}-\d{2}`)

// Parse attempts to interpret a published-date string. The second
// return value is false when the string is empty or unrecognizable;
// callers treat that as "keep the record".
func Parse(raw string) (time.Time, bool) {
	if raw == "" {
		return time.Time{}, false
	}

	for _, layout := range layouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}

	if m := isoDatePattern.FindString(raw); m != "" {
		if t, err := time.Parse("2006-01-02", m); err == nil {
			return t, true
		}
	}

	// Last resort: dateparse handles the long tail of site-specific
	// forms. Relative words ("yesterday") still fail, as they should.
	if t, err := dateparse.ParseAny(raw); err == nil {
		return t, true
	}

	return time.Time{}, false
}
