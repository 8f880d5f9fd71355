// Package parser turns one raw console line into a types.Fields value.
//
// INPUT FORMAT:
//
//	2025-001 | Juan Dela Cruz | juan@test.com | 20
//
// Four fields separated by "|". Whitespace around each field and around the
// whole line is ignored. The parser is deliberately tolerant about the email
// column: it accepts anything without a "|" so that malformed addresses reach
// the student model, which reports exactly what is wrong with them.
package parser

import (
	"errors"
	"regexp"
	"strings"

	"github.com/aanand-mishra/student-records/internal/types"
)

// ErrFormatMismatch is returned when the line does not have the
// id | name | email | age shape.
var ErrFormatMismatch = errors.New("format doesn't match")

// Example is a correctly formatted line, shown to the user after a
// format mismatch.
const Example = "2023-123 | Mario Bros | mario@nintendo.com | 25"

// linePattern is compiled once at package load. regexp.MustCompile panics on
// an invalid pattern, which is acceptable for a constant expression.
//
//	id    — word characters or hyphens
//	name  — letters and whitespace only
//	email — anything except "|"
//	age   — digits only (no sign)
var linePattern = regexp.MustCompile(
	`^\s*(?P<id>[\w-]+)\s*\|\s*(?P<name>[a-zA-Z\s]+)\s*\|\s*(?P<email>[^|]+)\s*\|\s*(?P<age>\d+)\s*$`,
)

// wordPattern matches one alphabetic run inside a name.
var wordPattern = regexp.MustCompile(`[A-Za-z]+`)

// Parse splits raw into its four fields.
//
// The captured name and email are trimmed before they are returned; nothing
// else is cleaned here. Callers pass the name through CleanName before
// building a record.
func Parse(raw string) (types.Fields, error) {
	match := linePattern.FindStringSubmatch(raw)
	if match == nil {
		return types.Fields{}, ErrFormatMismatch
	}

	return types.Fields{
		ID:    match[linePattern.SubexpIndex("id")],
		Name:  strings.TrimSpace(match[linePattern.SubexpIndex("name")]),
		Email: strings.TrimSpace(match[linePattern.SubexpIndex("email")]),
		Age:   match[linePattern.SubexpIndex("age")],
	}, nil
}

// CleanName keeps only the alphabetic runs of name and joins them with single
// spaces, so "Juan123 Cruz!!" becomes "Juan Cruz".
func CleanName(name string) string {
	return strings.Join(wordPattern.FindAllString(name, -1), " ")
}
