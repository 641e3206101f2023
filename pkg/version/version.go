// Package version compares dot/segment-delimited version strings.
//
// Two orderings are provided:
//
//   - [Compare] is the plain segment comparison used to gate optional
//     behavior on a host version (e.g. "is the engine at least 2.2?").
//   - [CompareQualified] understands release qualifiers such as "-rc1" or
//     "-SNAPSHOT" and is used to order repository candidates newest first.
package version

import (
	"strconv"
	"strings"
	"unicode"
)

// Segment is one alphanumeric run of a version string.
type Segment struct {
	Numeric bool
	Number  uint64 // Only valid if Numeric
	Text    string
}

// Segments splits v on every non-alphanumeric character.
// Empty runs (e.g. from "1..2") are dropped.
func Segments(v string) []Segment {
	fields := strings.FieldsFunc(v, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	segs := make([]Segment, 0, len(fields))
	for _, f := range fields {
		segs = append(segs, parseSegment(f))
	}
	return segs
}

func parseSegment(s string) Segment {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return Segment{Text: s}
		}
	}
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return Segment{Text: s}
	}
	return Segment{Numeric: true, Number: n, Text: s}
}

// zero reports whether the segment is equivalent to a missing segment.
func (s Segment) zero() bool {
	return s.Numeric && s.Number == 0
}

// compareSegments orders numeric segments numerically and textual segments
// lexically. A numeric segment sorts before a textual one.
func compareSegments(a, b Segment) int {
	switch {
	case a.Numeric && b.Numeric:
		switch {
		case a.Number < b.Number:
			return -1
		case a.Number > b.Number:
			return 1
		}
		return 0
	case a.Numeric:
		return -1
	case b.Numeric:
		return 1
	}
	return strings.Compare(a.Text, b.Text)
}

// Compare returns a negative number if a < b, zero if they are equal and a
// positive number if a > b.
//
// Versions are compared segment by segment. When one version is a prefix of
// the other, the longer one is greater only if one of its extra segments is
// non-zero, so "2.2.0" equals "2.2".
//
//	Compare("2.2", "2.10")   // -1
//	Compare("2.2.0", "2.2")  //  0
//	Compare("2.3", "2.2.99") //  1
func Compare(a, b string) int {
	sa, sb := Segments(a), Segments(b)
	n := min(len(sa), len(sb))
	for i := range n {
		if c := compareSegments(sa[i], sb[i]); c != 0 {
			return c
		}
	}
	for _, s := range sa[n:] {
		if !s.zero() {
			return 1
		}
	}
	for _, s := range sb[n:] {
		if !s.zero() {
			return -1
		}
	}
	return 0
}

// AtLeast reports whether v is greater than or equal to baseline.
func AtLeast(v, baseline string) bool {
	return Compare(v, baseline) >= 0
}
