// Package dateutil converts token-based date layouts (YYYY, MM, HH, ...) to
// Go time layouts. Note paths and front-matter timestamps are defined with it.
package dateutil

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidDateFormat indicates an invalid date format string.
var ErrInvalidDateFormat = errors.New("invalid date format")

// MaxDateFormatLength limits format string length to prevent abuse.
const MaxDateFormatLength = 50

// Layouts used for notes: the year/month archive directory, the file stem
// at second granularity and the ISO 8601 timestamp with UTC offset.
const (
	NoteDirFormat   = "YYYY/MM"
	NoteFileFormat  = "YYYYMMDD_HHmmss"
	TimestampFormat = "YYYY-MM-DD[T]HH:mm:ssZZ"
)

// dateTokens maps tokens to Go time format components.
// Ordered by length descending for greedy matching.
var dateTokens = []struct {
	token string
	goFmt string
}{
	{"YYYY", "2006"},
	{"MMMM", "January"},
	{"MMM", "Jan"},
	{"YY", "06"},
	{"MM", "01"},
	{"DD", "02"},
	{"HH", "15"},
	{"mm", "04"},
	{"ss", "05"},
	{"ZZ", "-07:00"},
	{"M", "1"},
	{"D", "2"},
}

// ParseDateFormat converts a token format string to Go's time format.
// Tokens: YYYY, YY, MMMM, MMM, MM, M, DD, D, HH, mm, ss, ZZ.
// Use brackets to escape literal text: [T] preserves "T" literally.
// Any non-token characters outside brackets are preserved as literals.
//
// Returns ErrInvalidDateFormat if the format is empty, too long, or has an
// unclosed bracket.
func ParseDateFormat(format string) (string, error) {
	if format == "" {
		return "", fmt.Errorf("%w: format cannot be empty", ErrInvalidDateFormat)
	}
	if len(format) > MaxDateFormatLength {
		return "", fmt.Errorf("%w: format exceeds %d characters", ErrInvalidDateFormat, MaxDateFormatLength)
	}

	var result strings.Builder
	result.Grow(len(format) + 10) // Go layouts run a little longer than tokens

	i := 0
	for i < len(format) {
		// Bracketed text is copied as is
		if format[i] == '[' {
			end := strings.Index(format[i+1:], "]")
			if end == -1 {
				return "", fmt.Errorf("%w: unclosed bracket at position %d", ErrInvalidDateFormat, i)
			}
			result.WriteString(format[i+1 : i+1+end])
			i += end + 2 // past the closing bracket
			continue
		}

		// Longest token first, per dateTokens order
		matched := false
		for _, t := range dateTokens {
			if strings.HasPrefix(format[i:], t.token) {
				result.WriteString(t.goFmt)
				i += len(t.token)
				matched = true
				break
			}
		}

		if !matched {
			// Separators such as '/', '-', '_' and ':' pass through
			result.WriteByte(format[i])
			i++
		}
	}

	return result.String(), nil
}

// Format renders t with a token format string.
func Format(t time.Time, format string) (string, error) {
	goFmt, err := ParseDateFormat(format)
	if err != nil {
		return "", err
	}
	return t.Format(goFmt), nil
}

// MustFormat is Format for the package's constant layouts. It panics on an
// invalid format, which is a programmer error.
func MustFormat(t time.Time, format string) string {
	s, err := Format(t, format)
	if err != nil {
		panic(err)
	}
	return s
}
