package record

import (
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"testing"

	perr "github.com/vhavlena/polstream/pkg/err"
	"github.com/vhavlena/polstream/pkg/token"
)

func reader(src string) token.Reader {
	return token.NewJSONReader(strings.NewReader(src))
}

func TestDecodePreservesOrder(t *testing.T) {
	t.Parallel()

	rec, err := Decode(reader(`{"zeta":1,"alpha":"a","mid":true}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"zeta", "alpha", "mid"}
	if !reflect.DeepEqual(rec.Names(), want) {
		t.Errorf("expected field order %v, got %v", want, rec.Names())
	}
}

func TestDecodeDuplicateNames(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		opts    DecodeOptions
		wantLen int
		wantA   string
	}{
		{
			name:    "duplicates appended by default",
			opts:    DefaultDecodeOptions(),
			wantLen: 3,
			wantA:   "first",
		},
		{
			name:    "last field wins when requested",
			opts:    DecodeOptions{MaxDepth: DefaultMaxDepth, LastFieldWins: true},
			wantLen: 2,
			wantA:   "second",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rec, err := DecodeWith(reader(`{"a":"first","b":1,"a":"second"}`), tt.opts)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(rec) != tt.wantLen {
				t.Fatalf("expected %d fields, got %d", tt.wantLen, len(rec))
			}
			got, ok := rec.Get("a")
			if !ok {
				t.Fatal("field a missing")
			}
			s, _ := got.String()
			if s != tt.wantA {
				t.Errorf("expected Get(a) to return %q, got %q", tt.wantA, s)
			}
		})
	}
}

func TestDecodeNested(t *testing.T) {
	t.Parallel()

	rec, err := Decode(reader(`{"outer":{"inner":[1,{"leaf":"x"},[true]]},"tail":null}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	outer, ok := rec.Get("outer")
	if !ok {
		t.Fatal("outer missing")
	}
	nested, ok := outer.Record()
	if !ok {
		t.Fatalf("outer is %v, expected record", outer.Kind())
	}
	inner, ok := nested.Get("inner")
	if !ok {
		t.Fatal("inner missing")
	}
	items, ok := inner.Array()
	if !ok || len(items) != 3 {
		t.Fatalf("inner should be a 3-element array, got %v", inner.Kind())
	}
	if n, _ := items[0].Number(); n != json.Number("1") {
		t.Errorf("expected literal 1, got %q", n)
	}
	leafRec, ok := items[1].Record()
	if !ok {
		t.Fatalf("element 1 should be a record, got %v", items[1].Kind())
	}
	leaf, ok := leafRec.Get("leaf")
	if !ok {
		t.Fatal("leaf missing")
	}
	if s, _ := leaf.String(); s != "x" {
		t.Errorf("expected leaf x, got %q", s)
	}
	subArr, ok := items[2].Array()
	if !ok || len(subArr) != 1 {
		t.Fatalf("element 2 should be a 1-element array")
	}
	if tail, _ := rec.Get("tail"); !tail.IsNull() {
		t.Errorf("expected explicit null tail, got %v", tail.Kind())
	}
}

func TestDecodeRootMismatch(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  string
	}{
		{name: "scalar root", src: `42`},
		{name: "string root", src: `"x"`},
		{name: "array root", src: `[{"a":1}]`},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := Decode(reader(tt.src))
			if !errors.Is(err, perr.ErrMalformedInput) {
				t.Errorf("expected malformed-input error, got %v", err)
			}
		})
	}
}

func TestDecodeDepthGuard(t *testing.T) {
	t.Parallel()

	src := `{"a":{"a":{"a":{"a":1}}}}`
	if _, err := DecodeWith(reader(src), DecodeOptions{MaxDepth: 3}); !errors.Is(err, perr.ErrMalformedInput) {
		t.Errorf("expected depth error at limit 3, got %v", err)
	}
	if _, err := DecodeWith(reader(src), DecodeOptions{MaxDepth: 10}); err != nil {
		t.Errorf("limit 10 should accept the input, got %v", err)
	}
}

func TestDecodeRootSequence(t *testing.T) {
	t.Parallel()

	t.Run("single object", func(t *testing.T) {
		t.Parallel()
		seq, err := DecodeRootSequence(reader(`{"a":1}`))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(seq) != 1 {
			t.Fatalf("expected 1 record, got %d", len(seq))
		}
		if _, ok := seq[0].Get("a"); !ok {
			t.Error("record content lost")
		}
	})

	t.Run("array of objects", func(t *testing.T) {
		t.Parallel()
		seq, err := DecodeRootSequence(reader(`[{"a":1},{"b":2},{"c":3}]`))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(seq) != 3 {
			t.Fatalf("expected 3 records, got %d", len(seq))
		}
		if _, ok := seq[1].Get("b"); !ok {
			t.Error("element order or content lost")
		}
	})

	t.Run("empty array", func(t *testing.T) {
		t.Parallel()
		seq, err := DecodeRootSequence(reader(`[]`))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(seq) != 0 {
			t.Errorf("expected empty sequence, got %d records", len(seq))
		}
	})

	t.Run("non-object element", func(t *testing.T) {
		t.Parallel()
		_, err := DecodeRootSequence(reader(`[{"a":1},2]`))
		if !errors.Is(err, perr.ErrMalformedInput) {
			t.Errorf("expected malformed-input error, got %v", err)
		}
	})

	t.Run("scalar root", func(t *testing.T) {
		t.Parallel()
		_, err := DecodeRootSequence(reader(`"not a container"`))
		if !errors.Is(err, perr.ErrMalformedInput) {
			t.Errorf("expected malformed-input error, got %v", err)
		}
	})
}
