// Package cli — generate.go implements the acronym generation flow
// behind the root command.
//
// Option resolution is layered, lowest precedence first:
//  1. Built-in defaults (model.DefaultOptions)
//  2. Config file defaults (internal/config)
//  3. Explicitly set CLI flags
//
// A flag overrides the config file only when the user actually passed
// it, which is why every override is guarded by Flags().Changed.
package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mmr-tortoise/acronymcreator/internal/acronym"
	"github.com/mmr-tortoise/acronymcreator/internal/config"
	"github.com/mmr-tortoise/acronymcreator/internal/model"
)

// generateFlags holds the flag values for the root command.
// These are bound to cobra flags in NewRootCommand.
type generateFlags struct {
	includeArticles bool   // --include-articles: keep stop words
	lowercase       bool   // --lowercase: lowercase the output
	mode            string // --mode: first-letter or syllable
	minLength       int    // --min-length: minimum word length filter
	maxWords        int    // --max-words: word count cap (0 = unlimited)
}

// runGenerate is the main logic function for the root command.
// It resolves options from config and flags, runs the engine, and
// outputs the acronym in the appropriate format.
func runGenerate(cmd *cobra.Command, flags *generateFlags, phrase string) error {
	// Step 1: Load the config file (if any) and layer its defaults
	// onto the built-in ones.
	cfg, cfgPath, err := config.Load(cfgFile)
	if err != nil {
		return model.WrapCLIError(model.ExitConfigError, "failed to load config", err)
	}
	if cfgPath != "" {
		VerboseLog("Loaded config from %s", cfgPath)
	}

	opts, err := cfg.Apply(model.DefaultOptions())
	if err != nil {
		return model.WrapCLIError(model.ExitConfigError, "invalid config", err)
	}

	// Step 2: Apply flag overrides. Only flags the user explicitly set
	// may override the config file, so each assignment is guarded by
	// Changed.
	if cmd.Flags().Changed("include-articles") {
		opts.IncludeArticles = flags.includeArticles
	}
	if cmd.Flags().Changed("lowercase") {
		opts.Lowercase = flags.lowercase
	}
	if cmd.Flags().Changed("mode") {
		mode, err := model.ParseMode(flags.mode)
		if err != nil {
			return model.WrapCLIError(model.ExitInvalidOptions, "invalid --mode value", err)
		}
		opts.Mode = mode
	}
	if cmd.Flags().Changed("min-length") {
		opts.MinWordLength = flags.minLength
	}
	if cmd.Flags().Changed("max-words") {
		opts.MaxWords = flags.maxWords
	}

	VerboseLog("Effective options: mode=%s include-articles=%t lowercase=%t min-length=%d max-words=%d",
		opts.Mode, opts.IncludeArticles, opts.Lowercase, opts.MinWordLength, opts.MaxWords)

	// Step 3: Build the engine with any configured extra stop words.
	engine := acronym.NewEngine()
	engine.AddStopWords(cfg.ExtraStopWords)

	// Step 4: Generate. The only error path here is an Options value
	// that slipped past flag parsing — still a configuration error.
	result, err := engine.Create(phrase, opts)
	if err != nil {
		return model.WrapCLIError(model.ExitInvalidOptions, "invalid options", err)
	}

	// Step 5: An empty result is valid for the engine but useless at
	// the CLI boundary — tell the user instead of printing nothing.
	if result == "" {
		return model.NewCLIError(model.ExitNoAcronym,
			"no acronym could be generated from the given phrase")
	}

	// Step 6: Output in the appropriate format.
	printResult(cmd, phrase, result, opts)
	return nil
}

// resultJSON is the JSON output structure for a successful generation.
type resultJSON struct {
	Phrase  string `json:"phrase"`
	Acronym string `json:"acronym"`
	Mode    string `json:"mode"`
}

// printResult outputs the acronym in text or JSON format, depending on
// the global --json flag. Output goes through the command's writer so
// tests can capture it.
func printResult(cmd *cobra.Command, phrase, acronym string, opts model.Options) {
	if IsJSONOutput() {
		result := resultJSON{
			Phrase:  phrase,
			Acronym: acronym,
			Mode:    opts.Mode.String(),
		}
		// MarshalIndent produces human-readable JSON with 2-space
		// indentation.
		data, _ := json.MarshalIndent(result, "", "  ")
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return
	}

	fmt.Fprintln(cmd.OutOrStdout(), acronym)
}
