package acronym

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmr-tortoise/acronymcreator/internal/model"
)

// TestSyllableFragment exercises the vowel-group heuristic on single
// words, covering each stop condition of the fragment scan.
func TestSyllableFragment(t *testing.T) {
	tests := []struct {
		word string
		want string
	}{
		// Two consonants before any vowel ("y" is a consonant).
		{"Python", "Py"},
		{"Programming", "Pr"},
		{"street", "st"},

		// Consonant + vowel + closing consonant.
		{"Language", "Lan"},
		{"hello", "hel"},
		{"computer", "com"},

		// Vowel-initial words.
		{"amazing", "am"},
		{"ox", "ox"},
		{"aim", "aim"},

		// Vowel run hitting the three-rune cap.
		{"beautiful", "bea"},

		// Words shorter than any stop condition.
		{"a", "a"},
		{"io", "io"},

		// Non-letter runes are skipped, not emitted, so the vowel run
		// continues across the hyphen.
		{"re-entry", "ree"},
		{"", ""},
		{"42", ""},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			assert.Equal(t, tt.want, syllableFragment(tt.word))
		})
	}
}

// TestCreate_SyllableMode verifies the acceptance example from the CLI
// usage text and related multi-word phrases.
func TestCreate_SyllableMode(t *testing.T) {
	engine := NewEngine()

	opts := model.DefaultOptions()
	opts.Mode = model.ModeSyllable

	tests := []struct {
		name   string
		phrase string
		want   string
	}{
		{
			name:   "worked example",
			phrase: "Python Programming Language",
			want:   "PYPRLAN",
		},
		{
			name:   "stop words still filtered",
			phrase: "The Python Language",
			want:   "PYLAN",
		},
		{
			name:   "empty phrase",
			phrase: "",
			want:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := engine.Create(tt.phrase, opts)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// TestCreate_SyllableLowercase verifies that casing applies to
// syllable-mode output the same way it does in first-letter mode.
func TestCreate_SyllableLowercase(t *testing.T) {
	engine := NewEngine()

	opts := model.DefaultOptions()
	opts.Mode = model.ModeSyllable
	opts.Lowercase = true

	got, err := engine.Create("Python Programming Language", opts)
	require.NoError(t, err)
	assert.Equal(t, "pyprlan", got)
}

// TestIsVowel pins the vowel set, in particular that "y" is not a
// vowel — the worked example depends on it.
func TestIsVowel(t *testing.T) {
	for _, r := range "aeiouAEIOU" {
		assert.True(t, isVowel(r), "%c should be a vowel", r)
	}
	for _, r := range "yYbcdfgz" {
		assert.False(t, isVowel(r), "%c should be a consonant", r)
	}
}
