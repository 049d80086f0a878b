// Package candidates turns raw wordlist lines into lookup candidates.
//
// A line is sanitized down to the account-name alphabet [A-Za-z0-9_] and,
// when a suffix list is configured, crossed with every suffix in order.
// Names outside the configured length bounds are dropped one by one.
package candidates

import (
	"iter"
	"strings"

	"uuidhunt/internal/core/domain"
	"uuidhunt/internal/platform/validator"
)

// Default name bounds follow the Minecraft account naming rules.
const (
	DefaultMinLength = 3
	DefaultMaxLength = 16
)

// Bounds is the inclusive length range a candidate must fall in.
type Bounds struct {
	Min int
	Max int
}

// DefaultBounds returns 3..16.
func DefaultBounds() Bounds {
	return Bounds{Min: DefaultMinLength, Max: DefaultMaxLength}
}

// Allows reports whether name is a well-formed account name within the bounds.
func (b Bounds) Allows(name string) bool {
	return validator.IsAccountName(name, b.Min, b.Max)
}

// Sanitize removes every character outside [A-Za-z0-9_]. Case is kept.
func Sanitize(line string) string {
	return strings.Map(func(r rune) rune {
		if validator.IsNameChar(r) {
			return r
		}
		return -1
	}, line)
}

// Option configures a Generator.
type Option func(*Generator)

// WithBounds overrides the default length bounds.
func WithBounds(b Bounds) Option {
	return func(g *Generator) { g.bounds = b }
}

// WithSuffixes enables suffix expansion. Suffixes are sanitized and those
// that sanitize to nothing are discarded. Enabling expansion with no usable
// suffix means every line yields zero candidates.
func WithSuffixes(suffixes []string) Option {
	return func(g *Generator) {
		g.suffixed = true
		g.suffixes = make([]string, 0, len(suffixes))
		for _, s := range suffixes {
			if s = Sanitize(s); s != "" {
				g.suffixes = append(g.suffixes, s)
			}
		}
	}
}

// Generator produces candidates from a line sequence.
type Generator struct {
	lines    iter.Seq[string]
	bounds   Bounds
	suffixed bool
	suffixes []string
}

// New builds a generator over lines.
func New(lines iter.Seq[string], opts ...Option) *Generator {
	g := &Generator{lines: lines, bounds: DefaultBounds()}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Suffixes returns the sanitized suffix list, or nil when expansion is off.
func (g *Generator) Suffixes() []string {
	if !g.suffixed {
		return nil
	}
	return g.suffixes
}

// All returns the candidate sequence. Ranging over it again replays the
// underlying lines from the start.
func (g *Generator) All() iter.Seq[domain.Candidate] {
	return func(yield func(domain.Candidate) bool) {
		for line := range g.lines {
			if !g.expand(Sanitize(line), yield) {
				return
			}
		}
	}
}

// expand yields the candidates of one sanitized word and reports whether
// the consumer wants more.
func (g *Generator) expand(word string, yield func(domain.Candidate) bool) bool {
	if word == "" {
		return true
	}
	if !g.suffixed {
		if g.bounds.Allows(word) {
			return yield(domain.Candidate(word))
		}
		return true
	}
	for _, suffix := range g.suffixes {
		name := word + suffix
		if !g.bounds.Allows(name) {
			continue
		}
		if !yield(domain.Candidate(name)) {
			return false
		}
	}
	return true
}

// Count ranges over seq once and returns its length.
func Count(seq iter.Seq[domain.Candidate]) int {
	n := 0
	for range seq {
		n++
	}
	return n
}
