// Package model defines the domain types and value objects for the
// acronymcreator CLI.
//
// This package contains pure data structures with no external
// dependencies. The central types are Options (the per-invocation
// configuration for acronym generation) and Mode (the extraction
// strategy enum). Both exist only for the duration of one invocation —
// there is no persistent or cross-call state.
//
// The package also defines exit codes (ExitCode) and a custom error type
// (CLIError) that carries exit codes for proper OS process exit handling.
package model
