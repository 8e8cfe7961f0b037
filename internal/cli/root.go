// Package cli implements the cobra-based CLI for acronymcreator.
//
// The tool has a single operation — generate an acronym from a phrase —
// so the root command carries it directly instead of dispatching to
// subcommands. This file defines the root command, global flags, and
// the error/exit-code handling; the generation flow itself lives in
// generate.go.
package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mmr-tortoise/acronymcreator/internal/model"
)

// Global flag variables bound to cobra persistent flags on the root
// command.
var (
	// jsonOutput controls whether command output is formatted as JSON.
	// When true, output uses structured JSON format for machine
	// consumption. When false (default), output is the bare acronym.
	jsonOutput bool

	// verbose enables detailed logging output for debugging.
	// When true, additional information about tokenization and config
	// resolution is printed to stderr.
	verbose bool

	// cfgFile is an explicit config file path from --config.
	// When empty, the standard search locations are probed.
	cfgFile string
)

// version, commit, and date are set at build time via ldflags.
// They are injected from the main package to display version information.
var (
	// Version is the semantic version of the binary (e.g., "1.0.0").
	Version = "dev"

	// Commit is the Git commit hash the binary was built from.
	Commit = "none"

	// Date is the build timestamp.
	Date = "unknown"
)

// NewRootCommand creates and configures the root cobra command.
// This is the entry point for the entire CLI application.
func NewRootCommand() *cobra.Command {
	flags := &generateFlags{}

	rootCmd := &cobra.Command{
		// Use is the one-line usage pattern shown in help output.
		Use:   "acronymcreator <phrase>",
		Short: "Generate acronyms from phrases",
		Long: `acronymcreator generates an acronym from a phrase.

By default it takes the first letter of each word, skipping common
articles and prepositions, and uppercases the result. Syllable mode
takes the leading syllable of each word instead, producing
pronounceable acronyms.

Examples:
  acronymcreator "The Quick Brown Fox"
  acronymcreator "The Quick Brown Fox" --include-articles
  acronymcreator "Python Programming Language" --mode syllable
  acronymcreator "Very Long Phrase With Many Words" --max-words 3
  acronymcreator "Hello World" --lowercase --json`,

		// Exactly one positional argument: the phrase. Multi-word
		// phrases must be quoted by the shell.
		Args: cobra.ExactArgs(1),

		// SilenceUsage prevents cobra from printing usage on every error.
		// We handle error output ourselves for cleaner UX.
		SilenceUsage: true,

		// SilenceErrors prevents cobra from printing errors automatically.
		// We format errors ourselves (text or JSON based on --json flag).
		SilenceErrors: true,

		// Version is displayed when --version flag is used.
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date),

		// RunE returns an error to Execute's error handler.
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, flags, args[0])
		},
	}

	// PersistentFlags would be inherited by subcommands if any were
	// added; keeping the output/config flags persistent matches the
	// convention of splitting "how to run" from "what to generate".
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"Config file path (default: $XDG_CONFIG_HOME/acronymcreator/config.{yaml,yml,json,jsonc})")

	// Generation flags. Defaults here are placeholders only — the
	// effective defaults come from model.DefaultOptions layered with
	// the config file; a flag wins only when explicitly set.
	rootCmd.Flags().BoolVar(&flags.includeArticles, "include-articles", false,
		"Include articles (a, an, the, ...) in the acronym")
	rootCmd.Flags().BoolVar(&flags.lowercase, "lowercase", false,
		"Output acronym in lowercase")
	rootCmd.Flags().StringVar(&flags.mode, "mode", model.ModeFirstLetter.String(),
		"Extraction mode: first-letter or syllable")
	rootCmd.Flags().IntVar(&flags.minLength, "min-length", 1,
		"Minimum word length to include")
	rootCmd.Flags().IntVar(&flags.maxWords, "max-words", 0,
		"Maximum number of words to process (0 = unlimited)")

	return rootCmd
}

// Execute runs the root command and handles exit codes.
// This is the main entry point called from main.go.
//
// It inspects errors returned by cobra commands and translates them
// into appropriate OS exit codes. CLIError types carry their own
// exit codes; other errors default to exit code 1.
func Execute(rootCmd *cobra.Command) {
	if err := rootCmd.Execute(); err != nil {
		// Check if the error is a CLIError with a specific exit code.
		// errors.As would also work here, but a type assertion is simpler
		// for this single-level check.
		if cliErr, ok := err.(*model.CLIError); ok {
			printError(cliErr.Message, cliErr.Err)
			os.Exit(int(cliErr.Code))
		}

		// Generic error — exit with code 1.
		printError(err.Error(), nil)
		os.Exit(int(model.ExitGeneralError))
	}
}

// printError outputs an error message in the appropriate format
// (JSON or text) based on the --json global flag.
func printError(message string, underlying error) {
	if jsonOutput {
		errObj := map[string]interface{}{
			"error": map[string]interface{}{
				"message": message,
			},
		}
		if underlying != nil {
			if errMap, ok := errObj["error"].(map[string]interface{}); ok {
				errMap["detail"] = underlying.Error()
			}
		}
		// We write to stderr for errors, even in JSON mode, because stdout
		// is reserved for successful command output.
		data, _ := json.MarshalIndent(errObj, "", "  ")
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		// Text format: "Error: <message>" on stderr.
		if underlying != nil {
			fmt.Fprintf(os.Stderr, "Error: %s: %v\n", message, underlying)
		} else {
			fmt.Fprintf(os.Stderr, "Error: %s\n", message)
		}
	}
}

// VerboseLog prints a message to stderr only when verbose mode is
// enabled. Used for trace output (config resolution, effective
// options) that helps users understand what the tool is doing.
func VerboseLog(format string, args ...interface{}) {
	if verbose {
		fmt.Fprintf(os.Stderr, "[verbose] "+format+"\n", args...)
	}
}

// IsJSONOutput returns whether the --json flag is set.
func IsJSONOutput() bool {
	return jsonOutput
}
