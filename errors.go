package c3tconv

import (
	"errors"
	"fmt"
	"strings"

	"github.com/reoring/c3tconv/i18n"
)

// Kind classifies a conversion failure. Callers map kinds to user-facing
// messages and exit codes; the core never recovers from any of them.
type Kind string

const (
	KindMalformedInput     Kind = "malformed_input"
	KindUnsupportedVersion Kind = "unsupported_version"
	KindSchemaViolation    Kind = "schema_violation"
	KindWriteFailure       Kind = "write_failure"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	CodeParseError      = "parse_error"
	CodeNotObject       = "not_object"
	CodeInvalidType     = "invalid_type"
	CodeRequired        = "required"
	CodeInvalidLength   = "invalid_length"
	CodeDuplicateKey    = "duplicate_key"
	CodeTruncated       = "truncated"
	CodeVersionMismatch = "version_mismatch"
	CodeWriteFailed     = "write_failed"
)

// Error is the single failure type returned by parsing and output
// orchestration.
type Error struct {
	Kind    Kind
	Code    string // One of the codes listed above.
	Path    string // JSON Pointer (for example: /animations/0/bones/2/keyframes/1/rotation).
	Message string
	// Expected is set for KindUnsupportedVersion.
	Expected Version
	// Got is the raw offending text when it helps diagnostics (version text,
	// destination path).
	Got   string
	Cause error
}

func (e *Error) Error() string {
	b := &strings.Builder{}
	b.WriteString(string(e.Kind))
	if e.Code != "" {
		b.WriteString(": ")
		b.WriteString(e.Code)
	}
	if e.Path != "" {
		fmt.Fprintf(b, " at %s", e.Path)
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	if e.Cause != nil {
		fmt.Fprintf(b, ": %v", e.Cause)
	}
	return b.String()
}

func (e *Error) Unwrap() error { return e.Cause }

// AsError extracts *Error from err using errors.As internally.
func AsError(err error) (*Error, bool) {
	if err == nil {
		return nil, false
	}
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// KindOf returns the Kind carried by err, or "" when err is nil or foreign.
func KindOf(err error) Kind {
	if e, ok := AsError(err); ok {
		return e.Kind
	}
	return ""
}

func malformed(code, path string, cause error) *Error {
	return &Error{Kind: KindMalformedInput, Code: code, Path: path, Message: i18n.T(code, nil), Cause: cause}
}

func violation(p PathRef, code string, data map[string]string) *Error {
	return &Error{Kind: KindSchemaViolation, Code: code, Path: p.Pointer(), Message: i18n.T(code, data)}
}

func unsupportedVersion(want Version, got string) *Error {
	return &Error{
		Kind:     KindUnsupportedVersion,
		Code:     CodeVersionMismatch,
		Path:     "/" + fieldVersion,
		Message:  i18n.T(CodeVersionMismatch, map[string]string{"expected": want.String(), "got": got}),
		Expected: want,
		Got:      got,
	}
}

func writeFailure(path string, cause error) *Error {
	return &Error{Kind: KindWriteFailure, Code: CodeWriteFailed, Message: i18n.T(CodeWriteFailed, map[string]string{"path": path}), Got: path, Cause: cause}
}
