package model

import (
	"fmt"

	"pkt.systems/pslog"
)

type property[T comparable] struct {
	attr  Attr
	value T
}

// EditorModel is a mutable record of editor settings that notifies its
// subscribers whenever an attribute's value changes.
//
// The zero value is not ready for use; construct models with New.
type EditorModel struct {
	text        property[string]
	mimetype    property[string]
	filename    property[string]
	fixedHeight property[bool]
	lineNumbers property[bool]
	readOnly    property[bool]
	tabSize     property[int]

	changed signal
	log     pslog.Logger
}

// New returns a model holding the defaults, overlaid by the non-nil fields of
// opts in order. Initial values never produce change notifications.
func New(opts ...Options) *EditorModel {
	var o Options
	for _, opt := range opts {
		o = o.Merge(opt)
	}

	m := &EditorModel{
		text:        property[string]{attr: Text, value: DefaultText},
		mimetype:    property[string]{attr: Mimetype, value: DefaultMimetype},
		filename:    property[string]{attr: Filename, value: DefaultFilename},
		fixedHeight: property[bool]{attr: FixedHeight, value: DefaultFixedHeight},
		lineNumbers: property[bool]{attr: LineNumbers, value: DefaultLineNumbers},
		readOnly:    property[bool]{attr: ReadOnly, value: DefaultReadOnly},
		tabSize:     property[int]{attr: TabSize, value: DefaultTabSize},
		log:         o.Logger,
	}
	if o.Text != nil {
		m.text.value = *o.Text
	}
	if o.Mimetype != nil {
		m.mimetype.value = *o.Mimetype
	}
	if o.Filename != nil {
		m.filename.value = *o.Filename
	}
	if o.FixedHeight != nil {
		m.fixedHeight.value = *o.FixedHeight
	}
	if o.LineNumbers != nil {
		m.lineNumbers.value = *o.LineNumbers
	}
	if o.ReadOnly != nil {
		m.readOnly.value = *o.ReadOnly
	}
	if o.TabSize != nil {
		m.tabSize.value = *o.TabSize
	}
	return m
}

func (m *EditorModel) Text() string { return m.text.value }

// Mimetype returns the content type, which drives highlighting in views.
func (m *EditorModel) Mimetype() string { return m.mimetype.value }

func (m *EditorModel) Filename() string { return m.filename.value }

// FixedHeight reports whether the view should constrain its height.
func (m *EditorModel) FixedHeight() bool { return m.fixedHeight.value }

func (m *EditorModel) LineNumbers() bool { return m.lineNumbers.value }

func (m *EditorModel) ReadOnly() bool { return m.readOnly.value }

// TabSize returns the number of columns per tab stop. Values below 1 are
// stored as given; renderers decide how to treat them.
func (m *EditorModel) TabSize() int { return m.tabSize.value }

func (m *EditorModel) SetText(v string) { setProperty(m, &m.text, v) }

func (m *EditorModel) SetMimetype(v string) { setProperty(m, &m.mimetype, v) }

func (m *EditorModel) SetFilename(v string) { setProperty(m, &m.filename, v) }

func (m *EditorModel) SetFixedHeight(v bool) { setProperty(m, &m.fixedHeight, v) }

func (m *EditorModel) SetLineNumbers(v bool) { setProperty(m, &m.lineNumbers, v) }

func (m *EditorModel) SetReadOnly(v bool) { setProperty(m, &m.readOnly, v) }

// SetTabSize does not validate v.
func (m *EditorModel) SetTabSize(v int) { setProperty(m, &m.tabSize, v) }

// setProperty is the single mutation path: no-op when v equals the current
// value, otherwise update first and then notify.
func setProperty[T comparable](m *EditorModel, p *property[T], v T) {
	if p.value == v {
		return
	}
	old := p.value
	p.value = v
	args := ChangedArgs{Attr: p.attr, Old: old, New: v}
	m.logChange(args)
	m.changed.emit(args)
}

// Get returns the current value of attr boxed as string, bool or int.
// It panics for attributes outside the table.
func (m *EditorModel) Get(attr Attr) any {
	switch attr.Kind() {
	case KindString:
		return m.stringProperty(attr).value
	case KindBool:
		return m.boolProperty(attr).value
	default:
		return m.tabSize.value
	}
}

// Set assigns value to attr through the same compare-then-notify path as the
// typed setters. A value of the wrong dynamic type yields ErrTypeMismatch and
// leaves the model untouched.
func (m *EditorModel) Set(attr Attr, value any) error {
	if !attr.Valid() {
		return fmt.Errorf("%w: %v", ErrUnknownAttr, attr)
	}
	switch attr.Kind() {
	case KindString:
		v, ok := value.(string)
		if !ok {
			return mismatch(attr, value)
		}
		setProperty(m, m.stringProperty(attr), v)
	case KindBool:
		v, ok := value.(bool)
		if !ok {
			return mismatch(attr, value)
		}
		setProperty(m, m.boolProperty(attr), v)
	case KindInt:
		v, ok := value.(int)
		if !ok {
			return mismatch(attr, value)
		}
		setProperty(m, &m.tabSize, v)
	}
	return nil
}

func mismatch(attr Attr, value any) error {
	return fmt.Errorf("%w: %s wants %s, got %T", ErrTypeMismatch, attr, attr.Kind(), value)
}

func (m *EditorModel) stringProperty(attr Attr) *property[string] {
	switch attr {
	case Mimetype:
		return &m.mimetype
	case Filename:
		return &m.filename
	default:
		return &m.text
	}
}

func (m *EditorModel) boolProperty(attr Attr) *property[bool] {
	switch attr {
	case LineNumbers:
		return &m.lineNumbers
	case ReadOnly:
		return &m.readOnly
	default:
		return &m.fixedHeight
	}
}

// Subscribe registers fn for every subsequent effective change, in
// registration order relative to other listeners.
//
// Notifications are synchronous. If fn changes the model, the nested
// notification reaches every listener before the outer one continues with
// the listeners after fn, which still receive the outer payload.
func (m *EditorModel) Subscribe(fn Listener) Subscription {
	if fn == nil {
		panic("model: Subscribe with nil listener")
	}
	id := m.changed.connect(fn)
	if m.log != nil {
		m.log.Debug("editor model subscribe", "subs", m.changed.len())
	}
	return id
}

// Unsubscribe removes the listener registered under id. It reports false when
// id is unknown or was already removed. A listener removed while a
// notification is in flight is not called for the rest of it.
func (m *EditorModel) Unsubscribe(id Subscription) bool {
	ok := m.changed.disconnect(id)
	if ok && m.log != nil {
		m.log.Debug("editor model unsubscribe", "subs", m.changed.len())
	}
	return ok
}

// Len returns the number of registered listeners.
func (m *EditorModel) Len() int { return m.changed.len() }

func (m *EditorModel) logChange(args ChangedArgs) {
	if m.log == nil {
		return
	}
	if args.Attr == Text {
		m.log.Debug("editor model changed", "attr", args.Attr.String(),
			"old_len", len(args.Old.(string)), "new_len", len(args.New.(string)))
		return
	}
	m.log.Debug("editor model changed", "attr", args.Attr.String(), "old", args.Old, "new", args.New)
}
