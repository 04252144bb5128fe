// Package commands defines the c3tconv CLI.
//
// Commands
//
//   - (root)   Convert a .c3t document: c3tconv -i in.c3t -o out[.c3b] [--separate-anim]
//   - check    Parse and validate a .c3t document without writing anything
//   - version  Print the tool version and the accepted c3t version
//
// # Implementation
//
// Flags are collected into config.CLIArgs, merged with the optional YAML
// config file and handed to internal/app, which owns logging and the exit
// code mapping. Flag and argument errors are usage errors (exit code 5).
package commands
