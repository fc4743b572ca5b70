package pagination

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeToken(t *testing.T) {
	// Standard date/time values
	issueDate := time.Date(2026, 5, 15, 0, 0, 0, 0, time.UTC)
	createdAt := time.Date(2026, 5, 15, 14, 30, 45, 123456789, time.UTC)

	token := EncodeToken(issueDate, createdAt, "txn-1")
	assert.NotEmpty(t, token, "Token should not be empty")

	cursor, err := DecodeToken(token)
	require.NoError(t, err)
	assert.Equal(t, issueDate, cursor.SortDate, "Sort date should match after decode")
	assert.Equal(t, createdAt, cursor.CreatedAt, "Created at time should match after decode")
	assert.Equal(t, "txn-1", cursor.ID)

	// Zero time values
	zeroTime := time.Time{}
	cursor, err = DecodeToken(EncodeToken(zeroTime, zeroTime, "x"))
	require.NoError(t, err, "Decoding zero time should not return an error")
	assert.Equal(t, zeroTime, cursor.SortDate)
	assert.Equal(t, zeroTime, cursor.CreatedAt)

	// Current time values
	now := time.Now().UTC()
	cursor, err = DecodeToken(EncodeToken(now, now, "y"))
	require.NoError(t, err)
	assert.True(t, now.Equal(cursor.SortDate), "Current date should match after decode")
	assert.True(t, now.Equal(cursor.CreatedAt), "Current time should match after decode")
}

func TestDecodeTokenError(t *testing.T) {
	encode := func(s string) string { return base64.StdEncoding.EncodeToString([]byte(s)) }

	_, err := DecodeToken("this is not base64!")
	assert.Error(t, err, "Should return an error for invalid base64")
	assert.Contains(t, err.Error(), "base64 decode")

	_, err = DecodeToken(encode("2026-05-15T00:00:00Z|2026-05-15T00:00:00Z"))
	assert.Error(t, err, "Should return an error for a missing field")
	assert.Contains(t, err.Error(), "split")

	_, err = DecodeToken(encode("notadate|2026-05-15T14:30:45Z|id"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "sort date parse")

	_, err = DecodeToken(encode("2026-05-15T00:00:00Z|later|id"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "created_at parse")

	_, err = DecodeToken(encode("2026-05-15T00:00:00Z|2026-05-15T00:00:00Z|"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "missing id")
}

func TestCursorOrdering(t *testing.T) {
	day := time.Date(2026, 5, 15, 0, 0, 0, 0, time.UTC)
	at := day.Add(10 * time.Hour)
	c := Cursor{SortDate: day, CreatedAt: at, ID: "m"}

	tests := []struct {
		name      string
		sortDate  time.Time
		createdAt time.Time
		id        string
		after     bool
		before    bool
	}{
		{"later day", day.AddDate(0, 0, 1), at, "a", true, false},
		{"earlier day", day.AddDate(0, 0, -1), at, "z", false, true},
		{"same day later creation", day, at.Add(time.Second), "a", true, false},
		{"same day earlier creation", day, at.Add(-time.Second), "z", false, true},
		{"tie broken by id", day, at, "n", true, false},
		{"tie broken by id before", day, at, "l", false, true},
		{"same row", day, at, "m", false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.after, c.After(tt.sortDate, tt.createdAt, tt.id))
			assert.Equal(t, tt.before, c.Before(tt.sortDate, tt.createdAt, tt.id))
		})
	}
}
