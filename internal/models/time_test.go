package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2026-10-16")
	require.NoError(t, err)
	assert.Equal(t, Date("2026-10-16"), d)

	for _, bad := range []string{"", "16/10/2026", "2026-13-01", "2026-02-30", "yesterday"} {
		_, err := ParseDate(bad)
		assert.Error(t, err, bad)
	}
}

func TestDate_Scan(t *testing.T) {
	tests := []struct {
		name string
		src  any
		want Date
	}{
		{name: "text", src: "2026-10-01", want: "2026-10-01"},
		{name: "bytes", src: []byte("2026-10-02"), want: "2026-10-02"},
		{name: "datetime text", src: "2026-10-03T00:00:00Z", want: "2026-10-03"},
		{name: "time", src: time.Date(2026, 10, 4, 0, 0, 0, 0, time.UTC), want: "2026-10-04"},
		{name: "null", src: nil, want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Date
			require.NoError(t, d.Scan(tt.src))
			assert.Equal(t, tt.want, d)
		})
	}

	var d Date
	assert.Error(t, d.Scan(42))
}

func TestDate_Time(t *testing.T) {
	tm, err := Date("2026-10-16").Time()
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 10, 16, 0, 0, 0, 0, time.UTC), tm)

	assert.Equal(t, Date("2026-10-16"), DateOf(time.Date(2026, 10, 16, 23, 59, 0, 0, time.UTC)))
}

func TestTimestamp_Scan(t *testing.T) {
	want := time.Date(2026, 10, 16, 9, 30, 15, 0, time.UTC)

	for _, src := range []any{"2026-10-16 09:30:15", []byte("2026-10-16 09:30:15"), "2026-10-16T09:30:15Z", want} {
		var ts Timestamp
		require.NoError(t, ts.Scan(src))
		assert.True(t, want.Equal(ts.Time), "%v", src)
	}

	var ts Timestamp
	assert.Error(t, ts.Scan("not a time"))
	assert.Error(t, ts.Scan(3.14))

	v, err := Timestamp{Time: want}.Value()
	require.NoError(t, err)
	assert.Equal(t, "2026-10-16 09:30:15", v)
}

func TestTimestamp_JSON(t *testing.T) {
	ts := Timestamp{Time: time.Date(2026, 10, 16, 9, 30, 15, 0, time.UTC)}
	data, err := json.Marshal(ts)
	require.NoError(t, err)
	assert.Equal(t, `"2026-10-16T09:30:15Z"`, string(data))
}

func TestRoundHours(t *testing.T) {
	assert.Equal(t, 1.5, RoundHours(1.5))
	assert.Equal(t, 1.33, RoundHours(1.333))
	assert.Equal(t, 2.68, RoundHours(2.675000001))
}
