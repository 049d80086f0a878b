package ignore

import (
	"path/filepath"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"uuidhunt/internal/platform/logx"
	"uuidhunt/internal/testutil"
)

const (
	notch    = "069a79f4-44e9-4726-a5be-fca90e38aaf5"
	notchHex = "069a79f444e94726a5befca90e38aaf5"
	jeb      = "853c80ef-3c37-49fd-aa49-938b674adae6"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		name     string
		id       string
		n        int
		expected string
	}{
		{"no truncation", notch, 0, notchHex},
		{"negative", notch, -1, notchHex},
		{"eight digits", notch, 8, "069a79f4"},
		{"upper case", "069A79F4-44E9", 4, "069a"},
		{"longer than id", "abc", 8, "abc"},
		{"full length", notchHex, 32, notchHex},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testutil.AssertEqual(t, Truncate(tt.id, tt.n), tt.expected, "truncated")
		})
	}
}

func TestSet_FullIdentifiers(t *testing.T) {
	s := FromSlice([]string{notchHex}, 0, nil)

	testutil.AssertTrue(t, s.Contains(notch), "dashed query matches undashed entry")
	testutil.AssertTrue(t, s.Contains("069A79F444E94726A5BEFCA90E38AAF5"), "case-insensitive")
	testutil.AssertFalse(t, s.Contains(jeb), "different identifier")
	testutil.AssertEqual(t, s.Len(), 1, "one entry")
}

func TestSet_Truncated(t *testing.T) {
	s := FromSlice([]string{"069a79f4", notch}, 8, nil)

	testutil.AssertEqual(t, s.Len(), 1, "both entries collapse onto one prefix")
	testutil.AssertTrue(t, s.Contains("069a79f4-ffff-ffff-ffff-ffffffffffff"), "prefix match")
	testutil.AssertFalse(t, s.Contains(jeb), "different prefix")
	testutil.AssertEqual(t, s.Truncation(), 8, "truncation kept")
}

func TestSet_MalformedEntries(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	atom := zap.NewAtomicLevelAt(zapcore.DebugLevel)
	logger := logx.FromCore(core, &atom)

	tests := []struct {
		name    string
		entries []string
		n       int
		len     int
		skipped int
	}{
		{"non-hex", []string{"zzzzzzzz", notch}, 0, 1, 1},
		{"short without truncation", []string{"069a79f4"}, 0, 0, 1},
		{"shorter than truncation", []string{"069a"}, 8, 0, 1},
		{"blank lines are silent", []string{"", "   ", notch}, 0, 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := FromSlice(tt.entries, tt.n, logger)
			testutil.AssertEqual(t, s.Len(), tt.len, "stored entries")
			testutil.AssertEqual(t, s.Skipped(), tt.skipped, "skipped entries")
		})
	}

	testutil.AssertEqual(t, logs.FilterMessage("skipping malformed ignore entry").Len(), 3, "each malformed entry is logged")
}

func TestLoad(t *testing.T) {
	path := testutil.WriteLines(t, "ignored.txt", notch, "bogus", jeb)

	s, err := Load(path, 0, logx.NewNop())
	testutil.AssertNoError(t, err, "load should succeed")
	testutil.AssertEqual(t, s.Len(), 2, "two valid entries")
	testutil.AssertEqual(t, s.Skipped(), 1, "one skipped")
	testutil.AssertTrue(t, s.Contains(jeb), "loaded entry matches")
}

func TestLoad_EmptyPath(t *testing.T) {
	s, err := Load("", 8, nil)
	testutil.AssertNoError(t, err, "empty path is allowed")
	testutil.AssertFalse(t, s.Contains(notch), "empty set matches nothing")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.txt"), 0, nil)
	testutil.AssertError(t, err, "missing file should fail")
}
