package instant

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// Instant is a point in time that survives this app's legacy encodings.
// The previous (web) incarnation stored epoch milliseconds and, after one
// buggy release, date strings; current files use RFC 3339. The decoder
// accepts all three so old backups import cleanly. Encoding is always
// RFC 3339 UTC, or null for the zero value.
type Instant struct {
	time.Time
}

func Of(t time.Time) Instant {
	return Instant{Time: t.UTC()}
}

func (i Instant) MarshalJSON() ([]byte, error) {
	if i.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(i.UTC().Format(time.RFC3339Nano))
}

func (i *Instant) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == "null" {
		*i = Instant{}
		return nil
	}
	if len(s) >= 2 && s[0] == '"' {
		var raw string
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
		return i.parseString(raw)
	}
	millis, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("instant: cannot decode %s", s)
	}
	if millis == 0 {
		*i = Instant{}
		return nil
	}
	*i = Instant{Time: time.UnixMilli(int64(millis)).UTC()}
	return nil
}

func (i *Instant) parseString(raw string) error {
	if raw == "" {
		*i = Instant{}
		return nil
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02T15:04:05.000Z0700", "2006-01-02T15:04"} {
		if t, err := time.Parse(layout, raw); err == nil {
			*i = Instant{Time: t.UTC()}
			return nil
		}
	}
	// Legacy date-strings sometimes arrived as bare epoch millis in quotes.
	if millis, err := strconv.ParseInt(raw, 10, 64); err == nil {
		*i = Instant{Time: time.UnixMilli(millis).UTC()}
		return nil
	}
	return fmt.Errorf("instant: cannot parse %q", raw)
}
