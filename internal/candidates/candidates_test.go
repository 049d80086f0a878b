package candidates

import (
	"slices"
	"testing"

	"uuidhunt/internal/core/domain"
	"uuidhunt/internal/testutil"
)

func collect(g *Generator) []string {
	var out []string
	for c := range g.All() {
		out = append(out, c.String())
	}
	return out
}

func TestSanitize(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Notch", "Notch"},
		{"  jeb_ ", "jeb_"},
		{"dinner-bone!", "dinnerbone"},
		{"ñandú", "and"},
		{"---", ""},
		{"", ""},
		{"a.b.c", "abc"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := Sanitize(tt.input)
			testutil.AssertEqual(t, got, tt.expected, "sanitized")
			testutil.AssertEqual(t, Sanitize(got), got, "sanitize is idempotent")
		})
	}
}

func TestGenerator_NoSuffixes(t *testing.T) {
	g := New(slices.Values([]string{"Notch", "jeb_", "ab", "x-y-z", "---", "thisnameiswaytoolong"}))

	testutil.AssertEqual(t, collect(g), []string{"Notch", "jeb_", "xyz"}, "one candidate per valid line")
}

func TestGenerator_WithSuffixes(t *testing.T) {
	g := New(
		slices.Values([]string{"steve", "al"}),
		WithSuffixes([]string{"_", "123", "--", "x"}),
	)

	testutil.AssertEqual(t, g.Suffixes(), []string{"_", "123", "x"}, "empty suffixes dropped")
	testutil.AssertEqual(t, collect(g),
		[]string{"steve_", "steve123", "stevex", "al_", "al123", "alx"},
		"every line crossed with every suffix in order")
}

func TestGenerator_DropsOutOfBoundsCombination(t *testing.T) {
	g := New(
		slices.Values([]string{"abcdefghijklmn"}),
		WithSuffixes([]string{"1", "12", "123"}),
	)

	testutil.AssertEqual(t, collect(g), []string{"abcdefghijklmn1", "abcdefghijklmn12"}, "only the over-long combination is dropped")
}

func TestGenerator_EmptySuffixListYieldsNothing(t *testing.T) {
	g := New(slices.Values([]string{"steve", "alex"}), WithSuffixes(nil))

	testutil.AssertLen(t, collect(g), 0, "suffixing enabled with no suffix yields zero candidates")
	testutil.AssertNotNil(t, g.Suffixes(), "suffix expansion stays enabled")
}

func TestGenerator_CustomBounds(t *testing.T) {
	g := New(slices.Values([]string{"a", "ab", "abcde"}), WithBounds(Bounds{Min: 1, Max: 2}))

	testutil.AssertEqual(t, collect(g), []string{"a", "ab"}, "bounds respected")
}

func TestGenerator_Restartable(t *testing.T) {
	g := New(slices.Values([]string{"alpha", "bravo", "charlie"}))

	testutil.AssertEqual(t, collect(g), collect(g), "second pass replays the first")
	testutil.AssertEqual(t, Count(g.All()), 3, "count")
}

func TestGenerator_EarlyStop(t *testing.T) {
	g := New(slices.Values([]string{"alpha"}), WithSuffixes([]string{"1", "2", "3"}))

	var got []domain.Candidate
	for c := range g.All() {
		got = append(got, c)
		if len(got) == 2 {
			break
		}
	}
	testutil.AssertEqual(t, got, []domain.Candidate{"alpha1", "alpha2"}, "generator honours break")
}

func TestGenerator_NoDeduplication(t *testing.T) {
	g := New(slices.Values([]string{"steve", "st-eve", "steve"}))

	testutil.AssertEqual(t, collect(g), []string{"steve", "steve", "steve"}, "duplicates pass through")
}

func TestBounds_Allows(t *testing.T) {
	b := DefaultBounds()
	testutil.AssertFalse(t, b.Allows("ab"), "too short")
	testutil.AssertTrue(t, b.Allows("abc"), "minimum")
	testutil.AssertTrue(t, b.Allows("abcdefghijklmnop"), "maximum")
	testutil.AssertFalse(t, b.Allows("abcdefghijklmnopq"), "too long")
	testutil.AssertFalse(t, b.Allows("ab-c"), "outside the account alphabet")
}
