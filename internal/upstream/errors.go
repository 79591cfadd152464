package upstream

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Common errors
var (
	ErrUnauthenticated = errors.New("upstream: unauthenticated")
	ErrForbidden       = errors.New("upstream: forbidden")
	ErrNotFound        = errors.New("upstream: not found")
)

// ValidationError carries the field -> messages map the upstream API returns
// on 4xx validation failures.
type ValidationError struct {
	Status int
	Fields map[string][]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("upstream: validation failed (status %d): %s", e.Status, e.Message())
}

// Message joins all field messages into one display string, mirroring how the
// original client concatenated server errors for the user.
func (e *ValidationError) Message() string {
	if len(e.Fields) == 0 {
		return "request rejected by server"
	}

	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var parts []string
	for _, k := range keys {
		msg := strings.Join(e.Fields[k], " ")
		if k == "non_field_errors" || k == "detail" {
			parts = append(parts, msg)
			continue
		}
		parts = append(parts, k+": "+msg)
	}
	return strings.Join(parts, "; ")
}

// parseFieldErrors decodes a DRF-style error body. Values may be a string,
// a list of strings, or nested junk we flatten to its JSON form.
func parseFieldErrors(status int, body []byte) *ValidationError {
	fields := map[string][]string{}

	var raw map[string]any
	if err := json.Unmarshal(body, &raw); err == nil {
		for key, val := range raw {
			switch v := val.(type) {
			case string:
				fields[key] = []string{v}
			case []any:
				for _, item := range v {
					if s, ok := item.(string); ok {
						fields[key] = append(fields[key], s)
					} else {
						fields[key] = append(fields[key], fmt.Sprint(item))
					}
				}
			default:
				fields[key] = []string{fmt.Sprint(v)}
			}
		}
	}

	return &ValidationError{Status: status, Fields: fields}
}
