package engine

import (
	"strings"

	"github.com/matzehuels/freshdeps/pkg/deps"
	"github.com/matzehuels/freshdeps/pkg/errors"
	"github.com/matzehuels/freshdeps/pkg/version"
)

type selectorKind int

const (
	selectFixed selectorKind = iota
	selectNone
	selectLatest // "+" or "latest.<status>"
	selectPrefix // "1.2.+"
	selectRange  // "[1.0,2.0)"
)

// Selector is a parsed version selector.
type Selector struct {
	raw  string
	kind selectorKind

	status deps.Revision // selectLatest: least stable acceptable status
	prefix string        // selectPrefix

	lower, upper         string // selectRange: empty means unbounded
	lowerIncl, upperIncl bool
}

// ParseSelector parses the version part of a dependency notation:
//
//	1.2.3            fixed version
//	none, ""         no version
//	+                newest version
//	latest.<status>  newest version at least as stable as status
//	1.2.+            newest version starting with "1.2."
//	[1.0,2.0) (,1.5] [1.0,)  Maven version ranges
func ParseSelector(s string) (Selector, error) {
	s = strings.TrimSpace(s)
	sel := Selector{raw: s}

	switch {
	case s == "" || s == deps.NoVersion:
		sel.kind = selectNone
	case s == "+":
		sel.kind = selectLatest
		sel.status = deps.Integration
	case strings.HasPrefix(s, "latest."):
		r, err := deps.ParseRevision(strings.TrimPrefix(s, "latest."))
		if err != nil {
			return Selector{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid selector %q", s)
		}
		sel.kind = selectLatest
		sel.status = r
	case strings.HasSuffix(s, "+"):
		sel.kind = selectPrefix
		sel.prefix = strings.TrimSuffix(s, "+")
	case strings.HasPrefix(s, "[") || strings.HasPrefix(s, "("):
		if err := sel.parseRange(s); err != nil {
			return Selector{}, err
		}
	default:
		sel.kind = selectFixed
	}
	return sel, nil
}

func (s *Selector) parseRange(r string) error {
	invalid := func() error {
		return errors.New(errors.ErrCodeInvalidInput, "invalid version range %q", r)
	}
	if len(r) < 2 {
		return invalid()
	}
	last := r[len(r)-1]
	if last != ']' && last != ')' {
		return invalid()
	}
	s.kind = selectRange
	s.lowerIncl = r[0] == '['
	s.upperIncl = last == ']'

	body := r[1 : len(r)-1]
	lo, hi, ok := strings.Cut(body, ",")
	if !ok {
		// "[1.5]" pins one version.
		if !s.lowerIncl || !s.upperIncl || strings.TrimSpace(body) == "" {
			return invalid()
		}
		lo, hi = body, body
	}
	s.lower, s.upper = strings.TrimSpace(lo), strings.TrimSpace(hi)
	if strings.Contains(s.upper, ",") {
		return invalid()
	}
	return nil
}

// String returns the selector as written.
func (s Selector) String() string { return s.raw }

// Dynamic reports whether the selector needs a candidate listing.
func (s Selector) Dynamic() bool {
	switch s.kind {
	case selectLatest, selectPrefix, selectRange:
		return true
	}
	return false
}

// Matches reports whether version v satisfies the selector. Status filtering
// of "latest.<status>" selectors is applied as well.
func (s Selector) Matches(v string) bool {
	switch s.kind {
	case selectNone:
		return true
	case selectFixed:
		return v == s.raw
	case selectLatest:
		return Classify(v).Stability() <= s.status.Stability()
	case selectPrefix:
		return strings.HasPrefix(v, s.prefix)
	case selectRange:
		if s.lower != "" {
			c := version.CompareQualified(v, s.lower)
			if c < 0 || (c == 0 && !s.lowerIncl) {
				return false
			}
		}
		if s.upper != "" {
			c := version.CompareQualified(v, s.upper)
			if c > 0 || (c == 0 && !s.upperIncl) {
				return false
			}
		}
		return true
	}
	return false
}
