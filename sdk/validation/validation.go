// Package validation contains small helpers for pointer and nullable
// field handling.
package validation

import "time"

func StringPtr(s string) *string {
	return &s
}

func StringPtrValue(s *string) string {
	if s != nil {
		return *s
	}
	return ""
}

// StringPtrIfNotEmpty returns a pointer to the string if not empty,
// otherwise nil.
func StringPtrIfNotEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func BoolPtr(b bool) *bool {
	return &b
}

func BoolPtrValue(b *bool) bool {
	if b != nil {
		return *b
	}
	return false
}

func TimePtr(t time.Time) *time.Time {
	return &t
}

func GetTimeOrEmpty(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return *t
}
