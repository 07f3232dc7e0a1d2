package arr

import (
	"fmt"
	"strings"
	"time"

	"github.com/dlclark/regexp2"
)

// splitTimeout bounds a single match against the delimiter pattern.
// Backtracking patterns can otherwise run for a very long time.
const splitTimeout = 5 * time.Second

// Split breaks text apart wherever pattern matches. The pattern uses
// Perl-compatible syntax (lookarounds and backreferences are supported) and
// is compiled on its own, so no escaping for an enclosing expression is
// needed.
//
// Empty segments between delimiters and before a leading delimiter are kept.
// A single trailing empty segment is dropped, so "a,b," yields ["a" "b"] and
// an empty text yields an empty collection. A zero-width match splits
// between characters. An empty or invalid pattern fails with
// ErrMalformedPattern.
func Split(pattern, text string, opts ...Option) (*Arr[string], error) {
	if pattern == "" {
		return nil, fmt.Errorf("%w: empty pattern", ErrMalformedPattern)
	}
	re, err := regexp2.Compile(pattern, regexp2.None)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrMalformedPattern, pattern, err)
	}
	re.MatchTimeout = splitTimeout

	// regexp2 reports match positions in runes
	runes := []rune(text)
	parts := []string{}
	start, prevEnd := 0, -1
	m, err := re.FindRunesMatch(runes)
	for m != nil && err == nil {
		end := m.Index + m.Length
		switch {
		case m.Length > 0:
			parts = append(parts, string(runes[start:m.Index]))
			start = end
		case m.Index > 0 && m.Index < len(runes) && m.Index != prevEnd:
			parts = append(parts, string(runes[start:m.Index]))
			start = m.Index
		}
		prevEnd = end
		m, err = re.FindNextMatch(m)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrMalformedPattern, pattern, err)
	}
	if tail := string(runes[start:]); tail != "" {
		parts = append(parts, tail)
	}
	return New(parts, opts...), nil
}

// Explode splits text around each occurrence of the literal delimiter.
// An empty delimiter fails with ErrMalformedPattern.
func Explode(delimiter, text string, opts ...Option) (*Arr[string], error) {
	if delimiter == "" {
		return nil, fmt.Errorf("%w: empty delimiter", ErrMalformedPattern)
	}
	return New(strings.Split(text, delimiter), opts...), nil
}

// ExplodeN is Explode with a limit. A positive limit returns at most limit
// parts, the last holding the unsplit remainder. A negative limit drops that
// many parts from the end. Zero behaves as one.
func ExplodeN(delimiter, text string, limit int, opts ...Option) (*Arr[string], error) {
	if delimiter == "" {
		return nil, fmt.Errorf("%w: empty delimiter", ErrMalformedPattern)
	}
	switch {
	case limit == 0:
		return New([]string{text}, opts...), nil
	case limit > 0:
		return New(strings.SplitN(text, delimiter, limit), opts...), nil
	}
	parts := strings.Split(text, delimiter)
	keep := len(parts) + limit
	if keep < 0 {
		keep = 0
	}
	return New(parts[:keep], opts...), nil
}
