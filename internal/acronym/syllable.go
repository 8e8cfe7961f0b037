// syllable.go implements the leading-syllable extraction strategy
// (model.ModeSyllable).
//
// Instead of a single letter per word, syllable mode takes the word's
// leading syllable fragment, producing pronounceable acronyms:
//
//	"Python Programming Language" → "PY" + "PR" + "LAN" = "PYPRLAN"
//
// The segmentation is a vowel-group heuristic, not a linguistic
// syllabifier. A fragment ends at whichever comes first:
//
//   - two consonants emitted before any vowel ("py", "pr", "st")
//   - one consonant emitted after the first vowel run ("lan", "hel")
//   - three runes emitted (hard per-word cap, e.g. "bea" for
//     "beautiful" where the vowel run itself reaches the cap)
//
// Vowels are a/e/i/o/u; "y" counts as a consonant, which is what makes
// "Python" yield "PY" rather than a longer fragment.
package acronym

import "unicode"

// maxFragmentLen is the per-word character budget for syllable mode.
// Keeping fragments at three runes or fewer keeps multi-word acronyms
// short enough to stay readable.
const maxFragmentLen = 3

// isVowel reports whether r is a vowel (a/e/i/o/u, case-insensitive).
// "y" is deliberately treated as a consonant.
func isVowel(r rune) bool {
	switch unicode.ToLower(r) {
	case 'a', 'e', 'i', 'o', 'u':
		return true
	default:
		return false
	}
}

// syllableFragment extracts the leading syllable fragment of word.
// Non-letter runes (digits, interior hyphens and apostrophes) are
// skipped so that "re-entry" fragments the same way as "reentry".
// A word with no alphabetic runes yields the empty string.
func syllableFragment(word string) string {
	fragment := make([]rune, 0, maxFragmentLen)
	seenVowel := false

	for _, r := range word {
		if !unicode.IsLetter(r) {
			continue
		}

		// A consonant after the first vowel run closes the syllable.
		// It is included in the fragment: "language" → "lan".
		if seenVowel && !isVowel(r) {
			fragment = append(fragment, r)
			return string(fragment)
		}

		fragment = append(fragment, r)
		if isVowel(r) {
			seenVowel = true
		}

		// Two consonants without a vowel form a complete onset
		// fragment: "python" → "py", "programming" → "pr".
		if len(fragment) == 2 && !seenVowel {
			return string(fragment)
		}
		if len(fragment) == maxFragmentLen {
			return string(fragment)
		}
	}

	// Short word consumed entirely ("a", "io", "ox").
	return string(fragment)
}
