// Package acronym implements the acronym-generation engine for the
// acronymcreator CLI.
//
// The engine is a pure, deterministic transform: given a phrase and a
// model.Options value it tokenizes the phrase, applies stop-word and
// length filters, extracts a letter sequence per word (first-letter or
// syllable strategy), and returns the concatenated, cased result.
//
// Identical (phrase, options) inputs always yield identical output.
// Malformed input degrades to a shorter or empty acronym rather than
// an error — the only error path is an invalid Options value, which is
// rejected before any processing. The engine holds no mutable state
// after construction, so a single Engine is safe for concurrent use.
package acronym
