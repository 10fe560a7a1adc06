// Package fieldmap resolves logical fields against a record store whose
// attribute names have drifted over time (Italian/English, spacing and
// casing variants). Every function is pure and total: bad input yields the
// fallback, never a panic or an error.
package fieldmap

import (
	"fmt"
	"sort"
	"strings"
)

// Fields is a raw attribute map as returned by the record store.
type Fields = map[string]interface{}

// Attachment is one entry of an attachment-valued field.
type Attachment struct {
	URL      string
	Filename string
}

// First returns the value of the first alias that is present and not an
// empty string, in priority order.
func First(fields Fields, aliases []string) (interface{}, bool) {
	for _, key := range aliases {
		v, ok := fields[key]
		if !ok || v == nil {
			continue
		}
		if s, isStr := v.(string); isStr && strings.TrimSpace(s) == "" {
			continue
		}
		return v, true
	}
	return nil, false
}

// String resolves a field to a string, stringifying numeric values.
func String(fields Fields, aliases []string, fallback string) string {
	v, ok := First(fields, aliases)
	if !ok {
		return fallback
	}
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return trimFloat(t)
	case int:
		return fmt.Sprintf("%d", t)
	case bool:
		if t {
			return "true"
		}
		return "false"
	default:
		return fallback
	}
}

// FloatPtr resolves a numeric field, nil when absent. String values are not
// parsed; the store returns numbers as float64 and anything else is treated
// as absent.
func FloatPtr(fields Fields, aliases []string) *float64 {
	v, ok := First(fields, aliases)
	if !ok {
		return nil
	}
	switch t := v.(type) {
	case float64:
		return &t
	case int:
		f := float64(t)
		return &f
	default:
		return nil
	}
}

// Int resolves an integer-valued field.
func Int(fields Fields, aliases []string, fallback int) int {
	v, ok := First(fields, aliases)
	if !ok {
		return fallback
	}
	switch t := v.(type) {
	case float64:
		return int(t)
	case int:
		return t
	default:
		return fallback
	}
}

var truthy = map[string]bool{
	"si": true, "sì": true, "yes": true, "y": true, "true": true, "vero": true, "1": true,
}

var falsy = map[string]bool{
	"no": true, "false": true, "falso": true, "0": true,
}

// Bool resolves a boolean field, normalizing the small vocabulary of
// truthy/falsy string tokens the store has accumulated alongside native
// booleans and checkbox numbers.
func Bool(fields Fields, aliases []string, fallback bool) bool {
	v, ok := First(fields, aliases)
	if !ok {
		return fallback
	}
	switch t := v.(type) {
	case bool:
		return t
	case float64:
		return t != 0
	case string:
		low := strings.ToLower(strings.TrimSpace(t))
		if truthy[low] {
			return true
		}
		if falsy[low] {
			return false
		}
		return fallback
	default:
		return fallback
	}
}

// Attachments resolves an attachment-valued field: the first alias holding a
// non-empty list of {url, filename} objects wins. A bare URL string is
// accepted as a single attachment for legacy records.
func Attachments(fields Fields, aliases []string) []Attachment {
	for _, key := range aliases {
		v, ok := fields[key]
		if !ok || v == nil {
			continue
		}
		if got := parseAttachments(v); len(got) > 0 {
			return got
		}
	}
	return nil
}

func parseAttachments(v interface{}) []Attachment {
	switch t := v.(type) {
	case string:
		if strings.TrimSpace(t) == "" {
			return nil
		}
		return []Attachment{{URL: t}}
	case []interface{}:
		out := make([]Attachment, 0, len(t))
		for _, item := range t {
			m, ok := item.(map[string]interface{})
			if !ok {
				continue
			}
			url, _ := m["url"].(string)
			if url == "" {
				continue
			}
			name, _ := m["filename"].(string)
			out = append(out, Attachment{URL: url, Filename: name})
		}
		return out
	default:
		return nil
	}
}

// ScanContains is the legacy-recovery mode: it scans every attribute key for
// one containing all the given tokens, case-insensitively, and returns that
// attribute's string value. Matching keys are visited in sorted order so the
// result is deterministic. Used only when the exact alias list comes up
// empty, never on write paths.
func ScanContains(fields Fields, tokens []string, fallback string) string {
	keys := make([]string, 0, len(fields))
	for key := range fields {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		low := strings.ToLower(key)
		all := true
		for _, tok := range tokens {
			if !strings.Contains(low, strings.ToLower(tok)) {
				all = false
				break
			}
		}
		if !all {
			continue
		}
		if s, ok := fields[key].(string); ok && strings.TrimSpace(s) != "" {
			return s
		}
	}
	return fallback
}

func trimFloat(f float64) string {
	s := fmt.Sprintf("%f", f)
	s = strings.TrimRight(s, "0")
	return strings.TrimRight(s, ".")
}
