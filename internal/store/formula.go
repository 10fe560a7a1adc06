package store

import (
	"fmt"
	"strings"
)

// Quote escapes a value for use inside a filter formula string literal.
func Quote(v string) string {
	v = strings.ReplaceAll(v, `\`, `\\`)
	v = strings.ReplaceAll(v, `"`, `\"`)
	return `"` + v + `"`
}

// Equals builds an exact string-equality predicate on a field.
func Equals(field, value string) string {
	return fmt.Sprintf("{%s}=%s", field, Quote(value))
}

// EqualsFold builds a case-insensitive string-equality predicate.
func EqualsFold(field, value string) string {
	return fmt.Sprintf("LOWER({%s})=%s", field, Quote(strings.ToLower(value)))
}

// Or combines predicates with logical OR. Zero parts yield "", one part is
// returned as-is.
func Or(parts ...string) string {
	return combine("OR", parts)
}

// And combines predicates with logical AND.
func And(parts ...string) string {
	return combine("AND", parts)
}

func combine(op string, parts []string) string {
	kept := parts[:0:0]
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	switch len(kept) {
	case 0:
		return ""
	case 1:
		return kept[0]
	default:
		return op + "(" + strings.Join(kept, ",") + ")"
	}
}

// RecordIDEquals builds a predicate on the record's own id.
func RecordIDEquals(id string) string {
	return fmt.Sprintf("RECORD_ID()=%s", Quote(id))
}
