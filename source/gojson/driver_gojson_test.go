package gojson

import (
	"errors"
	"io"
	"testing"

	"github.com/google/go-cmp/cmp"

	eng "github.com/reoring/c3tconv/internal/engine"
)

func kinds(t *testing.T, src eng.TokenSource) []eng.Kind {
	t.Helper()
	var out []eng.Kind
	for {
		tok, err := src.NextToken()
		if errors.Is(err, io.EOF) {
			return out
		}
		if err != nil {
			t.Fatalf("NextToken: %v", err)
		}
		out = append(out, tok.Kind)
	}
}

func TestNextToken_KeysAndValues(t *testing.T) {
	src := NewBytes([]byte(`{"id":"walk","n":[1,"x",true,null],"o":{"k":"v"}}`))
	want := []eng.Kind{
		eng.KindBeginObject,
		eng.KindKey, eng.KindString,
		eng.KindKey, eng.KindBeginArray, eng.KindNumber, eng.KindString, eng.KindBool, eng.KindNull, eng.KindEndArray,
		eng.KindKey, eng.KindBeginObject, eng.KindKey, eng.KindString, eng.KindEndObject,
		eng.KindEndObject,
	}
	if diff := cmp.Diff(want, kinds(t, src)); diff != "" {
		t.Fatalf("kinds mismatch (-want +got):\n%s", diff)
	}
}

func TestNextToken_NumberText(t *testing.T) {
	src := NewBytes([]byte(`[0.1, 2.5, -2]`))
	var got []string
	for {
		tok, err := src.NextToken()
		if err != nil {
			break
		}
		if tok.Kind == eng.KindNumber {
			got = append(got, tok.Number)
		}
	}
	if diff := cmp.Diff([]string{"0.1", "2.5", "-2"}, got); diff != "" {
		t.Fatalf("numbers mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeThroughEngine(t *testing.T) {
	v, err := eng.DecodeDocument(NewBytes([]byte(`{"version":"0.7","animations":[{"length":1.5}]}`)))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	want := map[string]any{
		"version":    "0.7",
		"animations": []any{map[string]any{"length": 1.5}},
	}
	if diff := cmp.Diff(want, v); diff != "" {
		t.Fatalf("tree mismatch (-want +got):\n%s", diff)
	}
}

func TestValid(t *testing.T) {
	if !Valid([]byte(`{"a":[1,2]}`)) {
		t.Fatalf("expected valid")
	}
	for _, in := range []string{``, `{`, `{"a":}`, `[1,]`} {
		if Valid([]byte(in)) {
			t.Fatalf("expected %q to be invalid", in)
		}
	}
}

func TestLocationUnknown(t *testing.T) {
	if got := NewBytes([]byte(`{}`)).Location(); got != -1 {
		t.Fatalf("Location = %d", got)
	}
}
