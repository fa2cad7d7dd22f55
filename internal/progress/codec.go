package progress

import (
	"encoding/json"
	"time"
)

// Decode restores a Progress from its stored JSON form. Decoding is
// tolerant field by field: a missing, mistyped, or negative counter
// becomes zero and an unparseable date becomes empty, so one bad field
// never discards the rest of the record.
func Decode(raw string) Progress {
	var fields map[string]any
	if err := json.Unmarshal([]byte(raw), &fields); err != nil {
		return Progress{}
	}
	return Progress{
		TotalMessages:    intField(fields, "total_messages"),
		SessionsCount:    intField(fields, "sessions_count"),
		LastSessionDate:  dateField(fields, "last_session_date"),
		FirstSessionDate: dateField(fields, "first_session_date"),
	}
}

// Encode serializes a Progress for storage.
func Encode(p Progress) (string, error) {
	b, err := json.Marshal(p)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func intField(fields map[string]any, key string) int {
	f, ok := fields[key].(float64)
	if !ok || f < 0 {
		return 0
	}
	return int(f)
}

func dateField(fields map[string]any, key string) string {
	s, ok := fields[key].(string)
	if !ok {
		return ""
	}
	if _, err := time.Parse(DateLayout, s); err != nil {
		return ""
	}
	return s
}
