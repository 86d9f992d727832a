package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDateTime(t *testing.T) {
	t.Run("Valid RFC3339 string", func(t *testing.T) {
		dt, err := ParseDateTime("2024-03-01T12:30:45Z")
		require.NoError(t, err)
		assert.Equal(t, 2024, dt.Time().Year())
		assert.Equal(t, time.March, dt.Time().Month())
		assert.Equal(t, "2024-03-01T12:30:45Z", dt.String())
	})

	t.Run("Valid RFC3339 string with offset", func(t *testing.T) {
		dt, err := ParseDateTime("2024-03-01T12:30:45+09:00")
		require.NoError(t, err)
		assert.Equal(t, "2024-03-01T12:30:45+09:00", dt.String())
	})

	t.Run("Malformed strings are rejected", func(t *testing.T) {
		for _, s := range []string{"", "not a date", "2024-03-01", "2024-03-01 12:30:45", "1709295045"} {
			_, err := ParseDateTime(s)
			assert.Error(t, err, "input %q", s)
			assert.Contains(t, err.Error(), "invalid DateTime format")
		}
	})
}

func TestDateTime_RoundTrip(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 30, 45, 0, time.UTC)
	dt := NewDateTime(now)

	parsed, err := ParseDateTime(dt.String())
	require.NoError(t, err)
	assert.True(t, parsed.Time().Equal(now))
}

func TestDateTime_JSON(t *testing.T) {
	t.Run("Marshals as RFC3339 string", func(t *testing.T) {
		dt := NewDateTime(time.Date(2024, 3, 1, 12, 30, 45, 0, time.UTC))

		data, err := json.Marshal(dt)
		require.NoError(t, err)
		assert.Equal(t, `"2024-03-01T12:30:45Z"`, string(data))
	})

	t.Run("Unmarshals an RFC3339 string", func(t *testing.T) {
		var dt DateTime
		err := json.Unmarshal([]byte(`"2024-03-01T12:30:45Z"`), &dt)
		require.NoError(t, err)
		assert.Equal(t, "2024-03-01T12:30:45Z", dt.String())
	})

	t.Run("Rejects non-string JSON", func(t *testing.T) {
		var dt DateTime
		err := dt.UnmarshalJSON([]byte(`1709295045`))
		assert.Error(t, err)
	})

	t.Run("Rejects malformed string JSON", func(t *testing.T) {
		var dt DateTime
		err := dt.UnmarshalJSON([]byte(`"yesterday"`))
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "invalid DateTime format")
	})
}
