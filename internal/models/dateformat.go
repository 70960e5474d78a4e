package models

import (
	"fmt"
	"time"
)

// DateFormat is the date part of planner note file names
type DateFormat string

const (
	DateFormatMonthFirst DateFormat = "MM-DD-YYYY"
	DateFormatDayFirst   DateFormat = "DD-MM-YYYY"
	DateFormatCompact    DateFormat = "YYYYMMDD"
)

// DateFormats lists the supported formats in display order
var DateFormats = []DateFormat{DateFormatMonthFirst, DateFormatDayFirst, DateFormatCompact}

// Valid reports whether f is one of the supported formats
func (f DateFormat) Valid() bool {
	return f.Layout() != ""
}

// Layout returns the Go time layout for f, or "" if f is unsupported
func (f DateFormat) Layout() string {
	switch f {
	case DateFormatMonthFirst:
		return "01-02-2006"
	case DateFormatDayFirst:
		return "02-01-2006"
	case DateFormatCompact:
		return "20060102"
	default:
		return ""
	}
}

// Format renders t using f. Unsupported formats fall back to YYYYMMDD.
func (f DateFormat) Format(t time.Time) string {
	layout := f.Layout()
	if layout == "" {
		layout = DateFormatCompact.Layout()
	}
	return t.Format(layout)
}

// ParseDateFormat validates s as a DateFormat
func ParseDateFormat(s string) (DateFormat, error) {
	f := DateFormat(s)
	if !f.Valid() {
		return "", fmt.Errorf("invalid file name date format: %q", s)
	}
	return f, nil
}
