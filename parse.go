package c3tconv

import (
	"errors"
	"io"

	eng "github.com/reoring/c3tconv/internal/engine"
	"github.com/reoring/c3tconv/source/gojson"
)

// ParseDocument decodes a c3t document and builds the Model. It fails with
// KindMalformedInput, KindUnsupportedVersion or KindSchemaViolation; on failure
// no Model is returned.
func ParseDocument(data []byte, opts ...ParseOpt) (*Model, error) {
	return parseDocument(data, ExpectedVersion, lastOpt(opts))
}

// ParseDocumentReader reads r fully and delegates to ParseDocument. When
// MaxBytes is set it stops reading one byte past the cap.
func ParseDocumentReader(r io.Reader, opts ...ParseOpt) (*Model, error) {
	opt := lastOpt(opts)
	if opt.MaxBytes > 0 {
		r = io.LimitReader(r, opt.MaxBytes+1)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, malformed(CodeParseError, "", err)
	}
	return parseDocument(data, ExpectedVersion, opt)
}

func lastOpt(opts []ParseOpt) ParseOpt {
	if len(opts) > 0 {
		return opts[len(opts)-1]
	}
	return ParseOpt{}
}

// decodeTree turns raw bytes into the generic tree. Every failure here is
// KindMalformedInput and happens before any model construction.
func decodeTree(data []byte, opt ParseOpt) (any, error) {
	if opt.MaxBytes > 0 && int64(len(data)) > opt.MaxBytes {
		return nil, malformed(CodeTruncated, "", nil)
	}
	if !gojson.Valid(data) {
		return nil, malformed(CodeParseError, "", nil)
	}

	var src eng.TokenSource = gojson.NewBytes(data)
	eo := eng.EnforceOptions{
		OnDuplicate: toEngineDup(opt.Strictness.OnDuplicateKey),
		MaxDepth:    opt.MaxDepth,
		MaxBytes:    opt.MaxBytes,
	}
	if opt.IssueSink != nil {
		sink := opt.IssueSink
		eo.IssueSink = func(si eng.SimpleIssue) { sink(Issue{Path: si.Path, Code: si.Code, Message: si.Message}) }
	}
	if eo.Enabled() {
		src = eng.WrapWithEnforcement(src, eo)
	}

	v, err := eng.DecodeDocument(src)
	if err != nil {
		var ie eng.IssueError
		if errors.As(err, &ie) {
			return nil, &Error{Kind: KindMalformedInput, Code: ie.Code, Path: ie.Path, Message: ie.Message}
		}
		return nil, malformed(CodeParseError, "", err)
	}
	return v, nil
}

func toEngineDup(p DuplicatePolicy) eng.DuplicateStrictness {
	switch p {
	case DuplicateReject:
		return eng.DupError
	case DuplicateWarn:
		return eng.DupWarn
	default:
		return eng.DupIgnore
	}
}
