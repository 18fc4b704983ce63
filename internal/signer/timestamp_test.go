package signer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimestampGenerator_Format(t *testing.T) {
	now := time.Date(2026, 10, 18, 9, 15, 2, 123_000_000, time.FixedZone("CEST", 2*3600))
	g := NewTimestampGeneratorWithClock(func() time.Time { return now }, func() int { return 457 })

	assert.Equal(t, "2026-10-18T07:15:02.123457Z", g.Next())
}

func TestTimestampGenerator_PadsDigits(t *testing.T) {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	g := NewTimestampGeneratorWithClock(func() time.Time { return now }, func() int { return 7 })

	assert.Equal(t, "2026-01-02T03:04:05.000007Z", g.Next())
}

func TestTimestampGenerator_DefaultIsParseable(t *testing.T) {
	g := NewTimestampGenerator()
	before := time.Now().Add(-time.Second)

	ts := g.Next()
	require.Len(t, ts, len("2006-01-02T15:04:05.000000Z"))

	parsed, err := ParseTimestamp(ts)
	require.NoError(t, err)
	assert.True(t, parsed.After(before))
}

func TestTimestampGenerator_DigitsInRange(t *testing.T) {
	g := NewTimestampGenerator()
	for i := 0; i < 200; i++ {
		ts := g.Next()
		digits := ts[len(ts)-4 : len(ts)-1]
		assert.GreaterOrEqual(t, digits, "100")
		assert.LessOrEqual(t, digits, "999")
	}
}

func TestParseTimestamp_Malformed(t *testing.T) {
	_, err := ParseTimestamp("timestamp")
	assert.ErrorIs(t, err, ErrMalformedTimestamp)
}
