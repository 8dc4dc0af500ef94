package model

import (
	"errors"
	"testing"
)

func TestAttr_NamesRoundTrip(t *testing.T) {
	names := []string{"text", "mimetype", "filename", "fixedHeight", "lineNumbers", "readOnly", "tabSize"}
	attrs := Attrs()
	if len(attrs) != len(names) {
		t.Fatalf("attrs: got %d, want %d", len(attrs), len(names))
	}
	for i, a := range attrs {
		if got := a.String(); got != names[i] {
			t.Fatalf("attr %d name: got %q, want %q", i, got, names[i])
		}
		parsed, err := ParseAttr(names[i])
		if err != nil {
			t.Fatalf("ParseAttr(%q): %v", names[i], err)
		}
		if parsed != a {
			t.Fatalf("ParseAttr(%q): got %v, want %v", names[i], parsed, a)
		}
	}
}

func TestParseAttr_Unknown(t *testing.T) {
	for _, name := range []string{"", "TabSize", "tab_size", "theme"} {
		if _, err := ParseAttr(name); !errors.Is(err, ErrUnknownAttr) {
			t.Fatalf("ParseAttr(%q): got err %v, want ErrUnknownAttr", name, err)
		}
	}
}

func TestAttr_KindAndDefault(t *testing.T) {
	cases := []struct {
		attr Attr
		kind Kind
		def  any
	}{
		{attr: Text, kind: KindString, def: ""},
		{attr: Mimetype, kind: KindString, def: ""},
		{attr: Filename, kind: KindString, def: ""},
		{attr: FixedHeight, kind: KindBool, def: false},
		{attr: LineNumbers, kind: KindBool, def: true},
		{attr: ReadOnly, kind: KindBool, def: false},
		{attr: TabSize, kind: KindInt, def: 4},
	}
	m := New()
	for _, tc := range cases {
		if got := tc.attr.Kind(); got != tc.kind {
			t.Fatalf("%v kind: got %v, want %v", tc.attr, got, tc.kind)
		}
		if got := tc.attr.Default(); got != tc.def {
			t.Fatalf("%v default: got %#v, want %#v", tc.attr, got, tc.def)
		}
		if got := m.Get(tc.attr); got != tc.def {
			t.Fatalf("%v on new model: got %#v, want %#v", tc.attr, got, tc.def)
		}
	}
}

func TestAttr_OutOfRange(t *testing.T) {
	a := Attr(42)
	if a.Valid() {
		t.Fatalf("Attr(42).Valid: got true, want false")
	}
	if got, want := a.String(), "Attr(42)"; got != want {
		t.Fatalf("String: got %q, want %q", got, want)
	}
	defer func() {
		if recover() == nil {
			t.Fatalf("expected Kind to panic")
		}
	}()
	_ = a.Kind()
}
