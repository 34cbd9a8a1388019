package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDateStringFromString(t *testing.T) {
	d, err := NewDateStringFromString("2026-12-24")
	require.NoError(t, err)
	assert.Equal(t, "2026-12-24", d.String())

	for _, bad := range []string{"", "24-12-2026", "2026-13-01", "2026-12-32", "not-a-date"} {
		_, err := NewDateStringFromString(bad)
		assert.ErrorIs(t, err, ErrInvalidDateString, "input %q", bad)
	}
}

func TestDateString_Time(t *testing.T) {
	d := DateString("2026-12-24")

	parsed, err := d.Time()
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 12, 24, 0, 0, 0, 0, time.UTC), parsed)

	_, err = DateString("bogus").Time()
	assert.ErrorIs(t, err, ErrInvalidDateString)
}

func TestDateString_IsZero(t *testing.T) {
	assert.True(t, DateString("").IsZero())
	assert.False(t, DateString("2026-12-24").IsZero())
}
