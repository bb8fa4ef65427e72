package helpers

import (
	"strconv"
	"strings"
)

// ParseAmount coerces a money string to a float or nil. An empty string is
// nil without error. Leading currency symbols and thousands separators the
// form layer lets through are stripped before parsing.
func ParseAmount(value string) (*float64, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	value = strings.TrimPrefix(value, "$")
	value = strings.ReplaceAll(value, ",", "")

	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return nil, err
	}
	return &f, nil
}

// NullableString returns nil for an empty string, a pointer otherwise.
func NullableString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
