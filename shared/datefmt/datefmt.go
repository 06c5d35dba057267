// Package datefmt converts between the compact wire formats stored in the kmc_* tables
// (YYYYMMDD dates, HHMM times, YYYYMM months) and their display forms.
//
// Display helpers never fail: malformed input is returned unchanged so a bad row can still
// be rendered.
package datefmt

import (
	"errors"
	"strings"
	"time"
)

const (
	LayoutYMD        = "20060102"
	LayoutYM         = "200601"
	LayoutHHMM       = "1504"
	LayoutDisplayYMD = "2006-01-02"
	LayoutDisplayHM  = "15:04"

	lengthYMD  = 8
	lengthHHMM = 4
)

var ErrRangeReversed = errors.New("종료일은 시작일보다 빠를 수 없습니다.")

// ToYMD formats t as YYYYMMDD.
func ToYMD(t time.Time) string {
	return t.Format(LayoutYMD)
}

// ToHHMM formats t as HHMM.
func ToHHMM(t time.Time) string {
	return t.Format(LayoutHHMM)
}

// YM formats t as YYYYMM.
func YM(t time.Time) string {
	return t.Format(LayoutYM)
}

// StripDashes accepts YYYY-MM-DD or YYYYMMDD and returns YYYYMMDD.
func StripDashes(value string) string {
	return strings.ReplaceAll(strings.TrimSpace(value), "-", "")
}

// StripColon accepts HH:MM or HHMM and returns HHMM.
func StripColon(value string) string {
	return strings.ReplaceAll(strings.TrimSpace(value), ":", "")
}

// ParseYMD parses YYYYMMDD (or YYYY-MM-DD) in loc.
func ParseYMD(value string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(LayoutYMD, StripDashes(value), loc) //nolint:wrapcheck
}

// ValidYMD reports whether value is a real calendar date in either accepted form.
func ValidYMD(value string) bool {
	compact := StripDashes(value)
	if len(compact) != lengthYMD {
		return false
	}

	_, err := time.Parse(LayoutYMD, compact)

	return err == nil
}

// ValidHHMM reports whether value is a wall clock time in either accepted form.
func ValidHHMM(value string) bool {
	compact := StripColon(value)
	if len(compact) != lengthHHMM {
		return false
	}

	_, err := time.Parse(LayoutHHMM, compact)

	return err == nil
}

// DisplayYMD renders YYYYMMDD as YYYY-MM-DD.
func DisplayYMD(value string) string {
	if len(value) != lengthYMD {
		return value
	}

	return value[:4] + "-" + value[4:6] + "-" + value[6:]
}

// DisplayHHMM renders HHMM as HH:MM.
func DisplayHHMM(value string) string {
	if len(value) != lengthHHMM {
		return value
	}

	return value[:2] + ":" + value[2:]
}

// AddDays shifts a YYYYMMDD date by n calendar days.
func AddDays(ymd string, n int) (string, error) {
	t, err := time.Parse(LayoutYMD, StripDashes(ymd))
	if err != nil {
		return "", err //nolint:wrapcheck
	}

	return ToYMD(t.AddDate(0, 0, n)), nil
}

// ExpandRange lists every YYYYMMDD day from start to end inclusive.
func ExpandRange(start, end string) ([]string, error) {
	from, err := time.Parse(LayoutYMD, StripDashes(start))
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	to, err := time.Parse(LayoutYMD, StripDashes(end))
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	if to.Before(from) {
		return nil, ErrRangeReversed
	}

	days := []string{}
	for day := from; !day.After(to); day = day.AddDate(0, 0, 1) {
		days = append(days, ToYMD(day))
	}

	return days, nil
}

// Within reports whether start <= day <= end for YYYYMMDD strings.
func Within(day, start, end string) bool {
	return start <= day && day <= end
}
