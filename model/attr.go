package model

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownAttr is returned for attribute names or values outside the
	// attribute table.
	ErrUnknownAttr = errors.New("model: unknown attribute")
	// ErrTypeMismatch is returned when a dynamically set value does not have
	// the attribute's declared kind.
	ErrTypeMismatch = errors.New("model: attribute type mismatch")
)

// Attr identifies one editor attribute.
type Attr int

const (
	Text Attr = iota
	Mimetype
	Filename
	FixedHeight
	LineNumbers
	ReadOnly
	TabSize

	attrCount
)

// Kind is the declared value type of an attribute.
type Kind int

const (
	KindString Kind = iota
	KindBool
	KindInt
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

const (
	DefaultText        = ""
	DefaultMimetype    = ""
	DefaultFilename    = ""
	DefaultFixedHeight = false
	DefaultLineNumbers = true
	DefaultReadOnly    = false
	DefaultTabSize     = 4
)

type descriptor struct {
	name string
	kind Kind
	def  any
}

// descriptors is indexed by Attr.
var descriptors = [attrCount]descriptor{
	Text:        {name: "text", kind: KindString, def: DefaultText},
	Mimetype:    {name: "mimetype", kind: KindString, def: DefaultMimetype},
	Filename:    {name: "filename", kind: KindString, def: DefaultFilename},
	FixedHeight: {name: "fixedHeight", kind: KindBool, def: DefaultFixedHeight},
	LineNumbers: {name: "lineNumbers", kind: KindBool, def: DefaultLineNumbers},
	ReadOnly:    {name: "readOnly", kind: KindBool, def: DefaultReadOnly},
	TabSize:     {name: "tabSize", kind: KindInt, def: DefaultTabSize},
}

// Attrs returns every attribute in table order.
func Attrs() []Attr {
	out := make([]Attr, 0, attrCount)
	for a := Attr(0); a < attrCount; a++ {
		out = append(out, a)
	}
	return out
}

// ParseAttr resolves an attribute by its name, e.g. "tabSize".
func ParseAttr(name string) (Attr, error) {
	for a := range descriptors {
		if descriptors[a].name == name {
			return Attr(a), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAttr, name)
}

// Valid reports whether a names an entry of the attribute table.
func (a Attr) Valid() bool { return a >= 0 && a < attrCount }

func (a Attr) String() string {
	if !a.Valid() {
		return fmt.Sprintf("Attr(%d)", int(a))
	}
	return descriptors[a].name
}

// Kind returns the declared value type of a.
// It panics for attributes outside the table.
func (a Attr) Kind() Kind {
	if !a.Valid() {
		panic(fmt.Sprintf("model: Kind of %v", a))
	}
	return descriptors[a].kind
}

// Default returns the value a model holds for a before any option or setter
// touches it. It panics for attributes outside the table.
func (a Attr) Default() any {
	if !a.Valid() {
		panic(fmt.Sprintf("model: Default of %v", a))
	}
	return descriptors[a].def
}
