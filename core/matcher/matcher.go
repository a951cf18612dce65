// Package matcher holds the file-name and file-content tests every detector
// is built from.
package matcher

import (
	"path"
	"regexp"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Source is a read-only view over a scanned project.
type Source interface {
	// Paths lists relative slash-separated paths in a stable order.
	Paths() []string
	// Read returns a file's text; ok is false when it cannot be read.
	Read(path string) (text string, ok bool)
}

// Rule is a declarative test over one file.
//
// The name side passes when the extension is allowed (if Extensions is set)
// and, if any of Names, NameContains or Globs is set, at least one of them
// matches. The content side is only consulted when a content field is set:
// every ContentAll literal must appear, and if ContentAny or Patterns is set
// at least one of them must match.
type Rule struct {
	Extensions   []string
	Names        []string
	NameContains []string
	Globs        []string

	ContentAll []string
	ContentAny []string
	Patterns   []*regexp.Regexp
	// FoldCase compares ContentAll and ContentAny case-insensitively.
	FoldCase bool
}

func (r Rule) hasContent() bool {
	return len(r.ContentAll) > 0 || len(r.ContentAny) > 0 || len(r.Patterns) > 0
}

// MatchName applies the name side of the rule to a relative path.
func (r Rule) MatchName(rel string) bool {
	base := path.Base(rel)
	lower := strings.ToLower(base)

	if len(r.Extensions) > 0 && !HasExtension(base, r.Extensions...) {
		return false
	}
	if len(r.Names) == 0 && len(r.NameContains) == 0 && len(r.Globs) == 0 {
		return true
	}
	for _, name := range r.Names {
		if lower == strings.ToLower(name) {
			return true
		}
	}
	for _, sub := range r.NameContains {
		if strings.Contains(lower, strings.ToLower(sub)) {
			return true
		}
	}
	for _, glob := range r.Globs {
		if ok, _ := doublestar.Match(glob, rel); ok {
			return true
		}
	}
	return false
}

// MatchContent applies the content side of the rule to text.
func (r Rule) MatchContent(text string) bool {
	subject := text
	if r.FoldCase {
		subject = strings.ToLower(text)
	}
	norm := func(s string) string {
		if r.FoldCase {
			return strings.ToLower(s)
		}
		return s
	}

	for _, lit := range r.ContentAll {
		if !strings.Contains(subject, norm(lit)) {
			return false
		}
	}
	if len(r.ContentAny) == 0 && len(r.Patterns) == 0 {
		return true
	}
	for _, lit := range r.ContentAny {
		if strings.Contains(subject, norm(lit)) {
			return true
		}
	}
	for _, re := range r.Patterns {
		if re.MatchString(text) {
			return true
		}
	}
	return false
}

// Match tests one file of src.
func (r Rule) Match(src Source, rel string) bool {
	if !r.MatchName(rel) {
		return false
	}
	if !r.hasContent() {
		return true
	}
	text, ok := src.Read(rel)
	if !ok {
		return false
	}
	return r.MatchContent(text)
}

// Any reports whether some file of src matches.
func (r Rule) Any(src Source) bool {
	for _, rel := range src.Paths() {
		if r.Match(src, rel) {
			return true
		}
	}
	return false
}

// Find returns every matching path in source order, never nil.
func (r Rule) Find(src Source) []string {
	found := []string{}
	for _, rel := range src.Paths() {
		if r.Match(src, rel) {
			found = append(found, rel)
		}
	}
	return found
}

// Count returns the number of matching files.
func (r Rule) Count(src Source) int {
	n := 0
	for _, rel := range src.Paths() {
		if r.Match(src, rel) {
			n++
		}
	}
	return n
}

// HasExtension reports whether name ends in one of exts, ignoring case.
func HasExtension(name string, exts ...string) bool {
	lower := strings.ToLower(name)
	for _, ext := range exts {
		if strings.HasSuffix(lower, strings.ToLower(ext)) {
			return true
		}
	}
	return false
}

// Insensitive compiles patterns with case folding. It panics on a bad
// pattern, so it is only meant for static rule tables.
func Insensitive(patterns ...string) []*regexp.Regexp {
	compiled := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		compiled = append(compiled, regexp.MustCompile("(?i)"+p))
	}
	return compiled
}
