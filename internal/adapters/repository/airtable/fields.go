package airtable

import "time"

// Field accessors tolerant of missing or mistyped values. Airtable returns
// numbers as float64 and omits empty fields entirely.

func stringField(fields map[string]any, key string) string {
	s, _ := fields[key].(string)
	return s
}

func numberField(fields map[string]any, key string) (float64, bool) {
	n, ok := fields[key].(float64)
	return n, ok
}

func listField(fields map[string]any, key string) []any {
	l, _ := fields[key].([]any)
	return l
}

// timeField parses a store timestamp, accepting both the RFC3339 form of
// computed createdAt/updatedAt fields and plain date fields.
func timeField(fields map[string]any, key string) time.Time {
	raw := stringField(fields, key)
	if raw == "" {
		return time.Time{}
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t
	}
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t
	}
	return time.Time{}
}
