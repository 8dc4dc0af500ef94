package model

// State is a point-in-time copy of every attribute of a model.
type State struct {
	Text        string
	Mimetype    string
	Filename    string
	FixedHeight bool
	LineNumbers bool
	ReadOnly    bool
	TabSize     int
}

// State returns a snapshot of the current attribute values.
func (m *EditorModel) State() State {
	return State{
		Text:        m.text.value,
		Mimetype:    m.mimetype.value,
		Filename:    m.filename.value,
		FixedHeight: m.fixedHeight.value,
		LineNumbers: m.lineNumbers.value,
		ReadOnly:    m.readOnly.value,
		TabSize:     m.tabSize.value,
	}
}

// Options returns Options with every attribute field set from s, so that
// New(s.Options()) rebuilds a model with the same values.
func (s State) Options() Options {
	return Options{
		Text:        Ptr(s.Text),
		Mimetype:    Ptr(s.Mimetype),
		Filename:    Ptr(s.Filename),
		FixedHeight: Ptr(s.FixedHeight),
		LineNumbers: Ptr(s.LineNumbers),
		ReadOnly:    Ptr(s.ReadOnly),
		TabSize:     Ptr(s.TabSize),
	}
}
