package acronym

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmr-tortoise/acronymcreator/internal/model"
)

// TestCreate_Basic verifies first-letter extraction with default
// options across representative phrases, including the punctuation and
// whitespace edge cases the tokenizer must absorb.
func TestCreate_Basic(t *testing.T) {
	tests := []struct {
		name   string
		phrase string
		want   string
	}{
		{
			name:   "two simple words",
			phrase: "Hello World",
			want:   "HW",
		},
		{
			name:   "articles excluded by default",
			phrase: "The Quick Brown Fox",
			want:   "QBF",
		},
		{
			name:   "mixed case input",
			phrase: "hyperText markup language",
			want:   "HML",
		},
		{
			name:   "multiple whitespace runs",
			phrase: "  Hello \t  World  ",
			want:   "HW",
		},
		{
			name:   "surrounding punctuation stripped",
			phrase: `"Hello," (World)!`,
			want:   "HW",
		},
		{
			name:   "hyphenated word is a single token",
			phrase: "Well-Known Issue",
			want:   "WI",
		},
		{
			name:   "digit-leading word uses first letter",
			phrase: "42nd Street Band",
			want:   "NSB",
		},
		{
			name:   "pure punctuation tokens are dropped",
			phrase: "Hello -- World",
			want:   "HW",
		},
		{
			name:   "empty phrase",
			phrase: "",
			want:   "",
		},
		{
			name:   "whitespace-only phrase",
			phrase: "   \t\n  ",
			want:   "",
		},
		{
			name:   "only stop words yields empty result",
			phrase: "the of and in",
			want:   "",
		},
	}

	engine := NewEngine()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := engine.Create(tt.phrase, model.DefaultOptions())
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// TestCreate_IncludeArticles verifies that stop-word filtering is
// disabled when IncludeArticles is set.
func TestCreate_IncludeArticles(t *testing.T) {
	engine := NewEngine()

	opts := model.DefaultOptions()
	opts.IncludeArticles = true

	got, err := engine.Create("The Quick Brown Fox", opts)
	require.NoError(t, err)
	assert.Equal(t, "TQBF", got)
}

// TestCreate_Lowercase verifies output casing in both directions, and
// the casing idempotence property: uppercasing the lowercase output
// must equal the uppercase output.
func TestCreate_Lowercase(t *testing.T) {
	engine := NewEngine()

	lower := model.DefaultOptions()
	lower.Lowercase = true

	got, err := engine.Create("Hello World", lower)
	require.NoError(t, err)
	assert.Equal(t, "hw", got)

	phrases := []string{
		"Hello World",
		"The Quick Brown Fox",
		"Python Programming Language",
	}
	for _, phrase := range phrases {
		lowered, err := engine.Create(phrase, lower)
		require.NoError(t, err)
		uppered, err := engine.Create(phrase, model.DefaultOptions())
		require.NoError(t, err)
		assert.Equal(t, uppered, strings.ToUpper(lowered),
			"casing must be the only difference for %q", phrase)
	}
}

// TestCreate_LengthBound verifies that under default options the
// acronym is never longer than the phrase's word count — each word
// contributes at most one character.
func TestCreate_LengthBound(t *testing.T) {
	engine := NewEngine()

	phrases := []string{
		"Hello World",
		"a lonely article",
		"  lots   of   extra   spaces  ",
		"punctuation, everywhere! (truly)",
		"",
	}
	for _, phrase := range phrases {
		got, err := engine.Create(phrase, model.DefaultOptions())
		require.NoError(t, err)
		assert.LessOrEqual(t, len([]rune(got)), len(strings.Fields(phrase)),
			"acronym for %q must not exceed its word count", phrase)
	}
}

// TestCreate_OrderPreservation verifies the ordering invariant:
// removing a word from the middle of the phrase removes exactly its
// letter, leaving the surrounding letters untouched and in order.
func TestCreate_OrderPreservation(t *testing.T) {
	engine := NewEngine()
	opts := model.DefaultOptions()

	full, err := engine.Create("Quick Brown Fox Jumps", opts)
	require.NoError(t, err)
	assert.Equal(t, "QBFJ", full)

	// Drop "Fox" — only its letter disappears.
	reduced, err := engine.Create("Quick Brown Jumps", opts)
	require.NoError(t, err)
	assert.Equal(t, "QBJ", reduced)
}

// TestCreate_Deterministic verifies that identical inputs always yield
// identical output across repeated invocations.
func TestCreate_Deterministic(t *testing.T) {
	engine := NewEngine()
	opts := model.DefaultOptions()
	opts.Mode = model.ModeSyllable

	first, err := engine.Create("Python Programming Language", opts)
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		again, err := engine.Create("Python Programming Language", opts)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

// TestCreate_InvalidOptions verifies that a bad Options value is
// rejected before any processing, per the fail-fast contract.
func TestCreate_InvalidOptions(t *testing.T) {
	engine := NewEngine()

	opts := model.DefaultOptions()
	opts.Mode = "pig-latin"

	got, err := engine.Create("Hello World", opts)
	assert.Error(t, err)
	assert.Empty(t, got)
}

// TestCreate_MinWordLength verifies the minimum word length filter.
func TestCreate_MinWordLength(t *testing.T) {
	engine := NewEngine()

	opts := model.DefaultOptions()
	opts.MinWordLength = 3

	// "as" (2 runes) is dropped by the length filter; "far" and
	// "possible" survive.
	got, err := engine.Create("far as possible", opts)
	require.NoError(t, err)
	assert.Equal(t, "FP", got)
}

// TestCreate_MaxWords verifies the word count cap is applied after
// filtering, preserving the leading words.
func TestCreate_MaxWords(t *testing.T) {
	engine := NewEngine()

	opts := model.DefaultOptions()
	opts.MaxWords = 3

	// Stop word "with" is filtered first, then the cap keeps the
	// first three remaining words.
	got, err := engine.Create("Very Long Phrase with Many Words", opts)
	require.NoError(t, err)
	assert.Equal(t, "VLP", got)
}

// TestAddStopWords verifies that configured extra stop words extend
// the default set, case-insensitively.
func TestAddStopWords(t *testing.T) {
	engine := NewEngine()
	engine.AddStopWords([]string{"Quick", "  brown  ", ""})

	got, err := engine.Create("The Quick Brown Fox", model.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, "F", got)
}

// TestTokenize exercises the tokenizer directly on its edge cases.
func TestTokenize(t *testing.T) {
	tests := []struct {
		name   string
		phrase string
		want   []string
	}{
		{
			name:   "plain words",
			phrase: "Hello World",
			want:   []string{"Hello", "World"},
		},
		{
			name:   "empty input",
			phrase: "",
			want:   []string{},
		},
		{
			name:   "punctuation trimmed but interior kept",
			phrase: `"don't panic!"`,
			want:   []string{"don't", "panic"},
		},
		{
			name:   "dash-only token dropped",
			phrase: "before -- after",
			want:   []string{"before", "after"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tokenize(tt.phrase))
		})
	}
}
