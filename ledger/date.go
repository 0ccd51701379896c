package ledger

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Date is a plain Gregorian calendar date. It carries no time of day
// and no timezone; callers normalize to a calendar date before handing
// one in.
type Date struct {
	Year  int
	Month int
	Day   int
}

// NewDate builds a date from its components.
func NewDate(year, month, day int) Date {
	return Date{Year: year, Month: month, Day: day}
}

// DateOf takes the calendar components of t as given, with no timezone
// conversion.
func DateOf(t time.Time) Date {
	return Date{Year: t.Year(), Month: int(t.Month()), Day: t.Day()}
}

// ParseDate reads a strict YYYY-MM-DD string.
func ParseDate(s string) (Date, error) {
	parts := strings.Split(s, "-")
	if len(parts) != 3 {
		return Date{}, ParseError{Input: s, Reason: "want YYYY-MM-DD"}
	}
	nums := make([]int, 3)
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil || n < 0 {
			return Date{}, ParseError{Input: s, Reason: "want YYYY-MM-DD"}
		}
		nums[i] = n
	}
	d := Date{Year: nums[0], Month: nums[1], Day: nums[2]}
	if d.Month < 1 || d.Month > 12 || d.Day < 1 || d.Day > 31 {
		return Date{}, ParseError{Input: s, Reason: "month or day out of range"}
	}
	return d, nil
}

// IsZero reports whether the date is unset.
func (d Date) IsZero() bool {
	return d == Date{}
}

// String formats the date as zero-padded YYYY-MM-DD, independent of
// host locale.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// Compare orders dates chronologically: -1, 0, or 1.
func (d Date) Compare(o Date) int {
	if d.Year != o.Year {
		return sign(d.Year - o.Year)
	}
	if d.Month != o.Month {
		return sign(d.Month - o.Month)
	}
	return sign(d.Day - o.Day)
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	default:
		return 0
	}
}
