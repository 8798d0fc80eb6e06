package httpx

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimestamp_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    time.Time
		wantErr bool
	}{
		{name: "date only", in: `"2024-01-01"`, want: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
		{name: "rfc3339 utc", in: `"2024-01-01T10:20:30Z"`, want: time.Date(2024, 1, 1, 10, 20, 30, 0, time.UTC)},
		{name: "rfc3339 offset", in: `"2024-01-01T12:00:00+02:00"`, want: time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)},
		{name: "fractional seconds", in: `"2024-01-01T00:00:00.5Z"`, want: time.Date(2024, 1, 1, 0, 0, 0, 5e8, time.UTC)},
		{name: "no zone", in: `"2024-01-01T08:00:00"`, want: time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)},
		{name: "space separated", in: `"2024-01-01 08:00:00"`, want: time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)},
		{name: "garbage", in: `"yesterday"`, wantErr: true},
		{name: "number", in: `1704067200`, wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var ts timestamp
			err := json.Unmarshal([]byte(tc.in), &ts)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, tc.want.Equal(ts.Time), "got %s", ts.Time)
		})
	}
}
