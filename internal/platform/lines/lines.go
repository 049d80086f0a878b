// Package lines reads line-delimited input files (wordlists, suffix lists,
// ignore lists). Lines are yielded with the trailing "\r" of CRLF files
// removed; blank lines are skipped.
package lines

import (
	"bufio"
	"fmt"
	"iter"
	"os"
	"strings"
)

// maxLineSize caps a single line; longer lines abort the pass with an error.
const maxLineSize = 1 << 20

// Source is a restartable view over a line-delimited file.
// Each call to All or Numbered re-opens the file from the start.
type Source struct {
	path string
	err  error
}

// Open checks that path can be read and returns a Source for it.
func Open(path string) (*Source, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	f.Close()
	return &Source{path: path}, nil
}

// Path returns the file the source reads.
func (s *Source) Path() string { return s.path }

// Err returns the I/O error that ended the most recent pass, if any.
func (s *Source) Err() error { return s.err }

// All yields every non-blank line.
func (s *Source) All() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, line := range s.Numbered() {
			if !yield(line) {
				return
			}
		}
	}
}

// Numbered yields every non-blank line with its 1-based line number.
func (s *Source) Numbered() iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		s.err = nil
		f, err := os.Open(s.path)
		if err != nil {
			s.err = fmt.Errorf("open %s: %w", s.path, err)
			return
		}
		defer f.Close()

		sc := bufio.NewScanner(f)
		sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
		n := 0
		for sc.Scan() {
			n++
			line := strings.TrimSuffix(sc.Text(), "\r")
			if strings.TrimSpace(line) == "" {
				continue
			}
			if !yield(n, line) {
				return
			}
		}
		if err := sc.Err(); err != nil {
			s.err = fmt.Errorf("read %s line %d: %w", s.path, n+1, err)
		}
	}
}

// ReadAll loads every non-blank line of path into memory.
func ReadAll(path string) ([]string, error) {
	src, err := Open(path)
	if err != nil {
		return nil, err
	}
	var out []string
	for line := range src.All() {
		out = append(out, line)
	}
	if err := src.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
