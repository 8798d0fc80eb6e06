package httpx

import (
	"encoding/json"
	"fmt"
	"time"
)

// timestampLayouts are tried in order. Date-only values are taken as UTC midnight.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	time.DateOnly,
}

// timestamp is the request form of date_modified. It accepts RFC3339 as well
// as plain dates such as "2024-01-01".
type timestamp struct {
	time.Time
}

func (t *timestamp) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	for _, layout := range timestampLayouts {
		if v, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			t.Time = v
			return nil
		}
	}
	return fmt.Errorf("unsupported timestamp %q", s)
}
