package version

import (
	"slices"
	"strings"
)

// qualifierRank orders well-known release qualifiers. Unknown qualifiers rank
// with "dev" below every known pre-release marker.
var qualifierRank = map[string]int{
	"dev":       0,
	"a":         1,
	"alpha":     1,
	"b":         2,
	"beta":      2,
	"m":         3,
	"milestone": 3,
	"ea":        3,
	"preview":   3,
	"cr":        4,
	"rc":        4,
	"snapshot":  5,
	"":          6,
	"final":     6,
	"ga":        6,
	"release":   6,
	"sp":        7,
}

// CompareQualified orders versions the way artifact repositories expect:
// "1.0-alpha1" < "1.0-rc1" < "1.0-SNAPSHOT" < "1.0" < "1.0.1".
//
// Numeric segments are compared as in [Compare]. When a textual segment is
// compared with the end of the other version, the qualifier rank decides:
// pre-release qualifiers sort below the bare release, "sp" sorts above it.
// A textual segment always sorts below a numeric one, so "1.0-sp1" < "1.0.1".
func CompareQualified(a, b string) int {
	sa, sb := splitQualified(a), splitQualified(b)
	n := max(len(sa), len(sb))
	for i := range n {
		var x, y Segment
		xOK, yOK := i < len(sa), i < len(sb)
		if xOK {
			x = sa[i]
		}
		if yOK {
			y = sb[i]
		}
		if c := compareQualifiedSegment(x, xOK, y, yOK); c != 0 {
			return c
		}
	}
	return 0
}

func compareQualifiedSegment(a Segment, aOK bool, b Segment, bOK bool) int {
	switch {
	case aOK && bOK && a.Numeric && b.Numeric:
		return compareSegments(a, b)
	case aOK && bOK && !a.Numeric && !b.Numeric:
		ra, rb := rank(a.Text), rank(b.Text)
		if ra != rb {
			return cmpInt(ra, rb)
		}
		return strings.Compare(strings.ToLower(a.Text), strings.ToLower(b.Text))
	case !aOK:
		return -compareQualifiedSegment(b, bOK, a, aOK)
	case !bOK:
		// a has an extra segment b lacks.
		if a.Numeric {
			if a.zero() {
				return 0
			}
			return 1
		}
		return cmpInt(rank(a.Text), qualifierRank[""])
	case a.Numeric:
		// A numeric segment outranks any qualifier in the same position.
		return 1
	default:
		return -1
	}
}

func rank(q string) int {
	if r, ok := qualifierRank[strings.ToLower(q)]; ok {
		return r
	}
	return qualifierRank["dev"]
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// splitQualified is like [Segments] but also splits letter/digit transitions,
// so "rc1" becomes ["rc", "1"] and "M2" becomes ["M", "2"].
func splitQualified(v string) []Segment {
	var out []Segment
	for _, s := range Segments(v) {
		if s.Numeric {
			out = append(out, s)
			continue
		}
		start := 0
		for i := 1; i <= len(s.Text); i++ {
			if i == len(s.Text) || isDigit(s.Text[i]) != isDigit(s.Text[i-1]) {
				out = append(out, parseSegment(s.Text[start:i]))
				start = i
			}
		}
	}
	return out
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// SortDescending sorts versions newest first using [CompareQualified].
func SortDescending(versions []string) {
	slices.SortStableFunc(versions, func(a, b string) int {
		return CompareQualified(b, a)
	})
}

// Qualifiers returns the textual segments of v in lower case, split the same
// way as [CompareQualified] splits them: "1.0-RC2" yields ["rc"].
func Qualifiers(v string) []string {
	var out []string
	for _, s := range splitQualified(v) {
		if !s.Numeric {
			out = append(out, strings.ToLower(s.Text))
		}
	}
	return out
}
