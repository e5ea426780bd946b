// Command patterns — an interactive tour of the pattern packages
//
// The binary bundles one small runnable demo per pattern package and serves
// them three ways:
//
//   - patterns            opens a terminal UI listing every demo; enter runs
//     the selected one and shows its transcript in place, s saves it
//   - patterns -list      prints the demo names and exits
//   - patterns -run NAME  runs one demo and prints its transcript to stdout
//
// Demos are pure: each returns its transcript as lines, so the same demo
// backs the TUI, the -run flag and the tests without re-printing logic.
//
// # Configuration
//
// The environment is read once at startup:
//
//	PATTERNS_PATTERN         pre-selects a demo (same values as -run)
//	PATTERNS_TRANSCRIPT_DIR  where s and -run write transcripts as
//	                         <dir>/<name>-transcript.txt; -run only
//	                         exports when it is set, s falls back to
//	                         the working directory
//	PATTERNS_LOG             log level: debug, info, warn (default), error
//
// Flags win over environment where both name a demo.
//
// Transcript files are written atomically (temp file + rename), so a reader
// never observes a partial transcript.
package main
