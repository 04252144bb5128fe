// Package app runs c3tconv conversions: it reads the input under a size cap,
// hands the bytes to the core parser, writes c3b artifacts and maps failures
// to process exit codes. All logging of a run happens here; the core
// packages stay silent.
package app
