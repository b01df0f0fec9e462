package token

import (
	"bytes"
	"encoding/json"
	"io"
	"strings"
	"testing"
)

func readAll(t *testing.T, src string) []Token {
	t.Helper()
	r := NewJSONReader(strings.NewReader(src))
	var toks []Token
	for {
		tok, err := r.Next()
		if err == io.EOF {
			return toks
		}
		if err != nil {
			t.Fatalf("unexpected reader error: %v", err)
		}
		toks = append(toks, tok)
	}
}

func TestJSONReaderKinds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		src   string
		kinds []Kind
	}{
		{
			name: "flat object",
			src:  `{"a":1,"b":"s","c":true,"d":null}`,
			kinds: []Kind{
				KindObjectStart,
				KindName, KindNumber,
				KindName, KindString,
				KindName, KindBool,
				KindName, KindNull,
				KindObjectEnd,
			},
		},
		{
			name: "nested containers",
			src:  `{"a":[1,{"b":2}],"c":{"d":[]}}`,
			kinds: []Kind{
				KindObjectStart,
				KindName, KindArrayStart, KindNumber,
				KindObjectStart, KindName, KindNumber, KindObjectEnd,
				KindArrayEnd,
				KindName, KindObjectStart, KindName, KindArrayStart, KindArrayEnd, KindObjectEnd,
				KindObjectEnd,
			},
		},
		{
			name:  "root array of scalars",
			src:   `["x","y"]`,
			kinds: []Kind{KindArrayStart, KindString, KindString, KindArrayEnd},
		},
		{
			name:  "root scalar",
			src:   `42`,
			kinds: []Kind{KindNumber},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			toks := readAll(t, tt.src)
			if len(toks) != len(tt.kinds) {
				t.Fatalf("expected %d tokens, got %d (%v)", len(tt.kinds), len(toks), toks)
			}
			for i, k := range tt.kinds {
				if toks[i].Kind != k {
					t.Errorf("token %d: expected %v, got %v", i, k, toks[i].Kind)
				}
			}
		})
	}
}

func TestJSONReaderPayloads(t *testing.T) {
	t.Parallel()

	toks := readAll(t, `{"key":"value","n":10.5}`)
	if toks[1].Str != "key" {
		t.Errorf("expected property name 'key', got %q", toks[1].Str)
	}
	if toks[2].Str != "value" {
		t.Errorf("expected string payload 'value', got %q", toks[2].Str)
	}
	if toks[4].Num != json.Number("10.5") {
		t.Errorf("expected number literal 10.5, got %q", toks[4].Num)
	}
}

func TestJSONWriter(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	w := NewJSONWriter(&buf)
	if err := w.ObjectStart(); err != nil {
		t.Fatal(err)
	}
	if err := w.Name("a"); err != nil {
		t.Fatal(err)
	}
	if err := w.Number(json.Number("1")); err != nil {
		t.Fatal(err)
	}
	if err := w.Name("b"); err != nil {
		t.Fatal(err)
	}
	if err := w.ArrayStart(); err != nil {
		t.Fatal(err)
	}
	if err := w.String("x"); err != nil {
		t.Fatal(err)
	}
	if err := w.Bool(false); err != nil {
		t.Fatal(err)
	}
	if err := w.Null(); err != nil {
		t.Fatal(err)
	}
	if err := w.ArrayEnd(); err != nil {
		t.Fatal(err)
	}
	if err := w.Name("c"); err != nil {
		t.Fatal(err)
	}
	if err := w.ObjectStart(); err != nil {
		t.Fatal(err)
	}
	if err := w.ObjectEnd(); err != nil {
		t.Fatal(err)
	}
	if err := w.ObjectEnd(); err != nil {
		t.Fatal(err)
	}

	want := `{"a":1,"b":["x",false,null],"c":{}}`
	if buf.String() != want {
		t.Errorf("expected %s, got %s", want, buf.String())
	}
}

func TestJSONWriterEscaping(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	w := NewJSONWriter(&buf)
	if err := w.ObjectStart(); err != nil {
		t.Fatal(err)
	}
	if err := w.Name(`we"ird`); err != nil {
		t.Fatal(err)
	}
	if err := w.String("line\nbreak"); err != nil {
		t.Fatal(err)
	}
	if err := w.ObjectEnd(); err != nil {
		t.Fatal(err)
	}

	var out map[string]string
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("output is not valid JSON: %v (%s)", err, buf.String())
	}
	if out[`we"ird`] != "line\nbreak" {
		t.Errorf("escaping lost the payload: %#v", out)
	}
}

func TestTokenRoundTrip(t *testing.T) {
	t.Parallel()

	src := `{"a":1,"b":["x",{"y":true}],"c":null}`
	var buf bytes.Buffer
	w := NewJSONWriter(&buf)
	for _, tok := range readAll(t, src) {
		var err error
		switch tok.Kind {
		case KindObjectStart:
			err = w.ObjectStart()
		case KindObjectEnd:
			err = w.ObjectEnd()
		case KindArrayStart:
			err = w.ArrayStart()
		case KindArrayEnd:
			err = w.ArrayEnd()
		case KindName:
			err = w.Name(tok.Str)
		case KindString:
			err = w.String(tok.Str)
		case KindNumber:
			err = w.Number(tok.Num)
		case KindBool:
			err = w.Bool(tok.Bool)
		case KindNull:
			err = w.Null()
		}
		if err != nil {
			t.Fatal(err)
		}
	}
	if buf.String() != src {
		t.Errorf("round trip changed the text: %s -> %s", src, buf.String())
	}
}
