package signer

import (
	"fmt"
	"math/rand"
	"time"
)

// timestampLayout is ISO-8601 with millisecond precision and no zone. Three
// extra digits and a trailing "Z" are appended by [TimestampGenerator.Next].
const timestampLayout = "2006-01-02T15:04:05.000"

// TimestampGenerator produces the value of the timestamp header. The extra
// three digits (100-999) separate requests issued within the same
// millisecond.
type TimestampGenerator struct {
	now    func() time.Time
	digits func() int
}

// NewTimestampGenerator returns a generator backed by the wall clock.
func NewTimestampGenerator() *TimestampGenerator {
	return &TimestampGenerator{
		now:    time.Now,
		digits: func() int { return rand.Intn(900) + 100 },
	}
}

// NewTimestampGeneratorWithClock returns a generator using now and digits.
// It is intended for tests that need deterministic timestamps.
func NewTimestampGeneratorWithClock(now func() time.Time, digits func() int) *TimestampGenerator {
	return &TimestampGenerator{now: now, digits: digits}
}

// Next returns a new timestamp such as "2026-10-18T09:15:02.123457Z".
func (g *TimestampGenerator) Next() string {
	return g.now().UTC().Format(timestampLayout) + fmt.Sprintf("%03d", g.digits()%1000) + "Z"
}

// ParseTimestamp parses a value produced by [TimestampGenerator.Next]. The
// format is RFC 3339 compatible.
func ParseTimestamp(value string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %w", ErrMalformedTimestamp, err)
	}
	return t, nil
}
