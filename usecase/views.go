package usecase

import (
	"strconv"
	"strings"
)

const (
	secondsPerMinute = 60
	secondsPerHour   = 3600
	secondsPerDay    = 86400
	secondsPerWeek   = 604800
	secondsPerMonth  = 2592000
	secondsPerYear   = 31536000
)

// ParseViews turns a display count such as "1.2M" or "850K views" into a
// number. Unparseable input yields 0.
func ParseViews(views string) float64 {
	if views == "" {
		return 0
	}
	v := strings.ToUpper(views)
	multiplier := 1.0
	switch {
	case strings.Contains(v, "M"):
		multiplier = 1_000_000
	case strings.Contains(v, "K"):
		multiplier = 1_000
	case strings.Contains(v, "B"):
		multiplier = 1_000_000_000
	}
	digits := strings.Map(func(r rune) rune {
		if (r >= '0' && r <= '9') || r == '.' {
			return r
		}
		return -1
	}, v)
	n, err := strconv.ParseFloat(leadingNumber(digits), 64)
	if err != nil {
		return 0
	}
	return n * multiplier
}

// leadingNumber keeps the longest prefix of s that is a valid decimal
func leadingNumber(s string) string {
	seenDot := false
	for i, r := range s {
		if r == '.' {
			if seenDot {
				return s[:i]
			}
			seenDot = true
		}
	}
	return s
}

// ParseTimeAgo converts an upload label such as "2 days ago" into seconds.
// "Live" and "Just now" are 0; a label without a number counts as one unit.
func ParseTimeAgo(label string) int64 {
	if label == "" {
		return 0
	}
	t := strings.ToLower(label)
	if strings.Contains(t, "live") || strings.Contains(t, "just now") {
		return 0
	}
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, t)
	n, err := strconv.ParseInt(digits, 10, 64)
	if err != nil || n == 0 {
		n = 1
	}
	var unit int64 = 1
	switch {
	case strings.Contains(t, "year"):
		unit = secondsPerYear
	case strings.Contains(t, "month"):
		unit = secondsPerMonth
	case strings.Contains(t, "week"):
		unit = secondsPerWeek
	case strings.Contains(t, "day"):
		unit = secondsPerDay
	case strings.Contains(t, "hour"):
		unit = secondsPerHour
	case strings.Contains(t, "minute"):
		unit = secondsPerMinute
	}
	return n * unit
}
