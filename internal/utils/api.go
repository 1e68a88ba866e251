package utils

import (
	"fmt"
	"net/url"
	"strconv"
	"time"
)

// ParseFloatParam retrieves a float64 value from the provided URL query parameters.
// If the key is not present or the value is invalid, it returns 0 and updates the fieldErrors map.
func ParseFloatParam(params url.Values, key string, fieldErrors map[string][]string) (float64, map[string][]string) {
	if fieldErrors == nil {
		fieldErrors = make(map[string][]string)
	}

	val := params.Get(key)
	if val == "" {
		return 0, fieldErrors
	}

	f, err := strconv.ParseFloat(val, 64)
	if err != nil {
		fieldErrors[key] = append(fieldErrors[key], fmt.Sprintf("Invalid field value for field %q.", key))
	}
	return f, fieldErrors
}

// ParseIntParam retrieves an int64 value from the provided URL query parameters,
// collecting a field error when the value does not parse.
func ParseIntParam(params url.Values, key string, fieldErrors map[string][]string) (int64, map[string][]string) {
	if fieldErrors == nil {
		fieldErrors = make(map[string][]string)
	}

	val := params.Get(key)
	if val == "" {
		return 0, fieldErrors
	}

	n, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		fieldErrors[key] = append(fieldErrors[key], fmt.Sprintf("Invalid field value for field %q.", key))
	}
	return n, fieldErrors
}

// ParseBoolParam retrieves a boolean value from the provided URL query
// parameters. A missing key returns nil so callers can distinguish
// "unset" from an explicit false.
func ParseBoolParam(params url.Values, key string, fieldErrors map[string][]string) (*bool, map[string][]string) {
	if fieldErrors == nil {
		fieldErrors = make(map[string][]string)
	}

	val := params.Get(key)
	if val == "" {
		return nil, fieldErrors
	}

	b, err := strconv.ParseBool(val)
	if err != nil {
		fieldErrors[key] = append(fieldErrors[key], fmt.Sprintf("Invalid field value for field %q.", key))
		return nil, fieldErrors
	}
	return &b, fieldErrors
}

// ParseTimeParam retrieves a timestamp from the provided URL query parameters.
// It accepts epoch timestamps in milliseconds, RFC 3339 strings and plain
// "YYYY-MM-DD" dates. A missing key returns the zero time without error.
func ParseTimeParam(params url.Values, key string, fieldErrors map[string][]string) (time.Time, map[string][]string) {
	if fieldErrors == nil {
		fieldErrors = make(map[string][]string)
	}

	val := params.Get(key)
	if val == "" {
		return time.Time{}, fieldErrors
	}

	if epochMillis, err := strconv.ParseInt(val, 10, 64); err == nil {
		return time.UnixMilli(epochMillis).UTC(), fieldErrors
	}
	if parsed, err := time.Parse(time.RFC3339, val); err == nil {
		return parsed.UTC(), fieldErrors
	}
	if parsed, err := time.Parse("2006-01-02", val); err == nil {
		return parsed.UTC(), fieldErrors
	}

	fieldErrors[key] = append(fieldErrors[key], fmt.Sprintf("Invalid field value for field %q.", key))
	return time.Time{}, fieldErrors
}
