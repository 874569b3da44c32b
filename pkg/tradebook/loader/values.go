package loader

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/Srikanth4626/trade-analysis/pkg/tradebook/models"
)

// dateLayouts lists the textual date forms recognised in input cells,
// tried in order. Day-first forms follow the Indian customs export style.
var dateLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	time.RFC3339,
	"02-01-2006",
	"02/01/2006",
	"02-Jan-2006",
	"2-Jan-06",
	"02.01.2006",
}

// ParseValue infers a typed value from a cell string.
// Returns nil for blanks, int64 for integers, float64 for decimals,
// time.Time for recognised dates, or the trimmed string.
func ParseValue(s string) models.Value {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	// Keep zero-padded codes such as "007" or "0731" as text
	if len(s) > 1 && s[0] == '0' && s[1] != '.' {
		if t, ok := ParseDate(s); ok {
			return t
		}
		return s
	}
	// Try integer first
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	// Try float; NaN and Inf spellings stay text
	if f, err := strconv.ParseFloat(s, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
		return f
	}
	if t, ok := ParseDate(s); ok {
		return t
	}
	// Return as string
	return s
}

// ParseDate parses s with the recognised date layouts.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// YearOf returns the calendar year of a date-like value.
// Numbers are not treated as dates.
func YearOf(v models.Value) (int, bool) {
	switch x := v.(type) {
	case time.Time:
		if x.IsZero() {
			return 0, false
		}
		return x.Year(), true
	case string:
		if t, ok := ParseDate(x); ok {
			return t.Year(), true
		}
	}
	return 0, false
}

// Text renders a value the way it reads in a cell, used for grouping keys.
func Text(v models.Value) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case time.Time:
		return x.Format("2006-01-02")
	case bool:
		return strconv.FormatBool(x)
	}
	return ""
}
