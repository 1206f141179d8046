package rendering

import (
	"strings"
	"time"
)

// DateStyle selects how month/year dates are printed.
type DateStyle int

const (
	// DateLong prints "January 2024".
	DateLong DateStyle = iota
	// DateShort prints "Jan 2024".
	DateShort
)

// PresentLabel replaces the end date of an ongoing position.
const PresentLabel = "Present"

// dateLayouts are the input shapes accepted from the month pickers and JSON files.
var dateLayouts = []string{
	"2006-01",
	"2006-01-02",
	time.RFC3339,
	"01/2006",
	"January 2006",
	"Jan 2006",
}

// FormatDate renders a stored date string for display. Empty input stays
// empty; input that matches no known layout is returned as typed.
func FormatDate(s string, style DateStyle) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, s)
		if err != nil {
			continue
		}
		if style == DateShort {
			return t.Format("Jan 2006")
		}
		return t.Format("January 2006")
	}
	return s
}

// DateRange renders "start - end", showing PresentLabel for current positions
// regardless of the stored end date.
func DateRange(start, end string, current bool, style DateStyle) string {
	to := PresentLabel
	if !current {
		to = FormatDate(end, style)
	}
	from := FormatDate(start, style)
	switch {
	case from == "" && to == "":
		return ""
	case from == "":
		return to
	case to == "":
		return from
	}
	return from + " - " + to
}
