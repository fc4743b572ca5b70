package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// RefNumber is a parsed "{prefix}-{yy}-{seq}" reference.
type RefNumber struct {
	Prefix   string
	Year     int // two digits
	Sequence int
}

func (r RefNumber) String() string {
	return fmt.Sprintf("%s-%02d-%04d", r.Prefix, r.Year%100, r.Sequence)
}

// ParseRefNumber splits a reference into its parts.
func ParseRefNumber(s string) (RefNumber, error) {
	parts := strings.Split(s, "-")
	if len(parts) != 3 || parts[0] == "" || len(parts[1]) != 2 || len(parts[2]) < 4 {
		return RefNumber{}, fmt.Errorf("%w: %q", ErrInvalidRefNumber, s)
	}
	year, err := strconv.Atoi(parts[1])
	if err != nil {
		return RefNumber{}, fmt.Errorf("%w: %q", ErrInvalidRefNumber, s)
	}
	seq, err := strconv.Atoi(parts[2])
	if err != nil || seq < 1 {
		return RefNumber{}, fmt.Errorf("%w: %q", ErrInvalidRefNumber, s)
	}
	return RefNumber{Prefix: parts[0], Year: year, Sequence: seq}, nil
}

// NextRefNumber computes the reference following latest for kind on the given
// day. The sequence restarts at 1 when the year changes or nothing exists yet.
func NextRefNumber(kind TransactionKind, latest string, today time.Time) (RefNumber, error) {
	prefix, err := kind.RefPrefix()
	if err != nil {
		return RefNumber{}, err
	}
	next := RefNumber{Prefix: prefix, Year: today.Year() % 100, Sequence: 1}
	if latest == "" {
		return next, nil
	}
	prev, err := ParseRefNumber(latest)
	if err != nil {
		return RefNumber{}, err
	}
	if prev.Year == next.Year {
		next.Sequence = prev.Sequence + 1
	}
	return next, nil
}
