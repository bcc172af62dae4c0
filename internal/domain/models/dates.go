package models

import (
	"fmt"
	"regexp"
	"time"
)

// DateLayout is the canonical calendar-date form stored in every collection.
const DateLayout = "2006-01-02"

var monthPattern = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

// dateLayouts are the accepted inbound forms, tried in order.
var dateLayouts = []string{
	DateLayout,
	time.RFC3339,
	"2006-01-02T15:04:05.000Z07:00",
	"2006/01/02",
}

// NormalizeDate parses any accepted date form and returns it as a UTC
// YYYY-MM-DD string.
func NormalizeDate(value string) (string, error) {
	if value == "" {
		return "", fmt.Errorf("empty date")
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC().Format(DateLayout), nil
		}
	}
	return "", fmt.Errorf("unparsable date %q", value)
}

// ValidMonth reports whether value is a YYYY-MM month prefix.
func ValidMonth(value string) bool {
	return monthPattern.MatchString(value)
}

// Today returns the current UTC date as YYYY-MM-DD.
func Today() string {
	return time.Now().UTC().Format(DateLayout)
}
