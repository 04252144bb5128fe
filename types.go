package c3tconv

// DuplicatePolicy controls how repeated keys within one JSON object are handled.
type DuplicatePolicy int

const (
	DuplicateIgnore DuplicatePolicy = iota // Last value wins.
	DuplicateWarn                          // Last value wins; an Issue is reported to IssueSink.
	DuplicateReject                        // The document is malformed.
)

// Strictness configures enforcement for duplicate keys.
type Strictness struct {
	OnDuplicateKey DuplicatePolicy
}

// Issue is a non-fatal finding reported through ParseOpt.IssueSink, such as a
// duplicate key in Warn mode.
type Issue struct {
	Path    string // JSON Pointer.
	Code    string
	Message string
}

// ParseOpt bundles parsing options. The zero value accepts any input size and
// depth and lets duplicate keys overwrite earlier ones.
type ParseOpt struct {
	Strictness Strictness
	MaxDepth   int
	MaxBytes   int64
	// IssueSink receives non-fatal issues (duplicate keys in Warn mode).
	IssueSink func(Issue)
}
