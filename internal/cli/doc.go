// Package cli defines the command-line surface: argument parsing, the
// command tree, and exit-code mapping for the sectreg binary.
package cli
