// Package ignore holds the set of already-known identifiers that should not
// be reported again.
//
// Entries are stored as lower-case hex without dashes. When a truncation
// length N is configured, both the stored entries and every query are cut
// to their first N hex digits, so a dump of 8-digit prefixes matches any
// full UUID starting with those digits.
package ignore

import (
	"iter"

	"uuidhunt/internal/platform/lines"
	"uuidhunt/internal/platform/logx"
	"uuidhunt/internal/platform/validator"
)

// MaxTruncation is the number of hex digits in a UUID.
const MaxTruncation = 32

// Set is immutable after construction and safe for concurrent reads.
type Set struct {
	n       int
	entries map[string]struct{}
	skipped int
}

// Truncate returns the first min(len(id), n) characters of the normalized
// id, or the whole normalized id when n <= 0.
func Truncate(id string, n int) string {
	id = validator.NormalizeHexID(id)
	if n <= 0 || n >= len(id) {
		return id
	}
	return id[:n]
}

// New builds a set from raw identifier strings. n == 0 disables truncation.
// Malformed entries are skipped and logged with their 1-based position.
func New(raw iter.Seq2[int, string], n int, logger logx.Logger) *Set {
	if logger == nil {
		logger = logx.NewNop()
	}
	s := &Set{n: n, entries: make(map[string]struct{})}
	for lineNo, line := range raw {
		if validator.IsEmpty(line) {
			continue
		}
		key, reason := s.key(line)
		if reason != "" {
			s.skipped++
			logger.Warn("skipping malformed ignore entry", "line", lineNo, "reason", reason)
			continue
		}
		s.entries[key] = struct{}{}
	}
	return s
}

// FromSlice is New over an in-memory list.
func FromSlice(ids []string, n int, logger logx.Logger) *Set {
	return New(func(yield func(int, string) bool) {
		for i, id := range ids {
			if !yield(i+1, id) {
				return
			}
		}
	}, n, logger)
}

// Load reads path line by line. An empty path yields an empty set.
func Load(path string, n int, logger logx.Logger) (*Set, error) {
	if path == "" {
		return Empty(n), nil
	}
	src, err := lines.Open(path)
	if err != nil {
		return nil, err
	}
	s := New(src.Numbered(), n, logger)
	if err := src.Err(); err != nil {
		return nil, err
	}
	return s, nil
}

// Empty returns a set that matches nothing.
func Empty(n int) *Set {
	return &Set{n: n, entries: map[string]struct{}{}}
}

// key normalizes an entry and returns a non-empty reason when it is malformed.
func (s *Set) key(raw string) (string, string) {
	id := validator.NormalizeHexID(raw)
	switch {
	case !validator.IsHex(id):
		return "", "non-hex characters"
	case s.n > 0 && len(id) < s.n:
		return "", "shorter than truncation length"
	case s.n <= 0 && !validator.IsFullUUID(id):
		return "", "not a full uuid"
	}
	return Truncate(id, s.n), ""
}

// Contains reports whether identifier, truncated with the set's length,
// is in the set.
func (s *Set) Contains(identifier string) bool {
	if len(s.entries) == 0 {
		return false
	}
	_, ok := s.entries[Truncate(identifier, s.n)]
	return ok
}

// Len returns the number of distinct stored entries.
func (s *Set) Len() int { return len(s.entries) }

// Skipped returns how many malformed entries were discarded at load.
func (s *Set) Skipped() int { return s.skipped }

// Truncation returns the configured prefix length (0 = full identifier).
func (s *Set) Truncation() int { return s.n }
