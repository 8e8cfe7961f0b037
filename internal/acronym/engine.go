// Package acronym implements phrase tokenization and letter extraction
// for acronym generation.
//
// The pipeline mirrors the option model exactly:
//
//	tokenize → stop-word filter → min-length filter → max-words cap →
//	per-word extraction → casing
//
// Every stage preserves word order, so the acronym's character sequence
// always matches the order words appear in the input phrase.
package acronym

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/mmr-tortoise/acronymcreator/internal/model"
)

// defaultStopWords lists the common articles, conjunctions, and
// prepositions excluded from acronym formation unless
// Options.IncludeArticles is set.
var defaultStopWords = []string{
	"a", "an", "the", "and", "or", "but", "in", "on", "at", "to", "for",
	"of", "with", "by", "from", "up", "about", "into", "through", "during",
}

// Engine generates acronyms from phrases.
//
// The struct holds only the effective stop-word set, which is fixed
// after construction. It is defined as a struct (rather than bare
// functions) so the stop-word set can be extended from configuration
// without threading it through every call, and so the Engine is
// injectable as a dependency in tests.
type Engine struct {
	// stopWords maps lowercase stop words to present. Lookup is by the
	// lowercase form of each token, so filtering is case-insensitive.
	stopWords map[string]struct{}
}

// NewEngine creates an Engine with the default stop-word set.
func NewEngine() *Engine {
	e := &Engine{
		stopWords: make(map[string]struct{}, len(defaultStopWords)),
	}
	for _, w := range defaultStopWords {
		e.stopWords[w] = struct{}{}
	}
	return e
}

// AddStopWords extends the stop-word set with additional words,
// typically sourced from the user's configuration file. Words are
// lowercased before insertion; empty strings are ignored.
func (e *Engine) AddStopWords(words []string) {
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w == "" {
			continue
		}
		e.stopWords[w] = struct{}{}
	}
}

// Create generates an acronym from phrase according to opts.
//
// The options are validated first — an unrecognized mode or
// out-of-range limit returns an error before any processing. After
// that, no input can fail: phrases with heavy punctuation, repeated
// whitespace, or nothing but stop words simply produce a shorter or
// empty acronym. An empty result is a valid outcome, not an error.
func (e *Engine) Create(phrase string, opts model.Options) (string, error) {
	if err := opts.Validate(); err != nil {
		return "", err
	}

	words := tokenize(phrase)

	if !opts.IncludeArticles {
		words = e.filterStopWords(words)
	}

	if opts.MinWordLength > 1 {
		words = filterShortWords(words, opts.MinWordLength)
	}

	// Cap word count last so the limit applies to words that actually
	// contribute to the acronym, not to words removed by the filters.
	if opts.MaxWords > 0 && len(words) > opts.MaxWords {
		words = words[:opts.MaxWords]
	}

	var b strings.Builder
	for _, word := range words {
		switch opts.Mode {
		case model.ModeSyllable:
			b.WriteString(syllableFragment(word))
		default:
			b.WriteString(firstLetter(word))
		}
	}

	if opts.Lowercase {
		return strings.ToLower(b.String()), nil
	}
	return strings.ToUpper(b.String()), nil
}

// tokenize splits a phrase into word tokens. Tokens are separated by
// any run of whitespace; leading and trailing non-alphanumeric runes
// (punctuation, quotes, brackets) are trimmed from each token, and
// tokens left empty by trimming are dropped. Interior punctuation such
// as hyphens and apostrophes is preserved, so "well-known" and "don't"
// each stay a single word.
func tokenize(phrase string) []string {
	fields := strings.Fields(phrase)

	words := make([]string, 0, len(fields))
	for _, f := range fields {
		w := strings.TrimFunc(f, func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsDigit(r)
		})
		if w == "" {
			continue
		}
		words = append(words, w)
	}
	return words
}

// filterStopWords removes tokens whose lowercase form is in the
// stop-word set, preserving the order of the remaining tokens.
func (e *Engine) filterStopWords(words []string) []string {
	kept := make([]string, 0, len(words))
	for _, w := range words {
		if _, isStop := e.stopWords[strings.ToLower(w)]; isStop {
			continue
		}
		kept = append(kept, w)
	}
	return kept
}

// filterShortWords removes tokens with fewer than minLength runes.
// Length is measured in runes, not bytes, so multibyte characters
// count once.
func filterShortWords(words []string, minLength int) []string {
	kept := make([]string, 0, len(words))
	for _, w := range words {
		if utf8.RuneCountInString(w) < minLength {
			continue
		}
		kept = append(kept, w)
	}
	return kept
}

// firstLetter returns the first alphabetic rune of word as a string.
// Tokens that survive trimming can still start with a digit ("42nd"),
// so the scan skips non-letter runes. A token with no alphabetic rune
// contributes nothing to the acronym.
func firstLetter(word string) string {
	for _, r := range word {
		if unicode.IsLetter(r) {
			return string(r)
		}
	}
	return ""
}
