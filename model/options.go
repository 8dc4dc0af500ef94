package model

import "pkt.systems/pslog"

// Options configures a new EditorModel. A nil field leaves the attribute at
// its default.
type Options struct {
	Text        *string
	Mimetype    *string
	Filename    *string
	FixedHeight *bool
	LineNumbers *bool
	ReadOnly    *bool
	TabSize     *int

	// Logger receives debug records for effective changes and subscriber
	// bookkeeping. Nil disables logging.
	Logger pslog.Logger
}

// Ptr returns a pointer to v, for filling Options literals.
func Ptr[T any](v T) *T { return &v }

// Merge overlays the non-nil fields of other onto o.
func (o Options) Merge(other Options) Options {
	if other.Text != nil {
		o.Text = other.Text
	}
	if other.Mimetype != nil {
		o.Mimetype = other.Mimetype
	}
	if other.Filename != nil {
		o.Filename = other.Filename
	}
	if other.FixedHeight != nil {
		o.FixedHeight = other.FixedHeight
	}
	if other.LineNumbers != nil {
		o.LineNumbers = other.LineNumbers
	}
	if other.ReadOnly != nil {
		o.ReadOnly = other.ReadOnly
	}
	if other.TabSize != nil {
		o.TabSize = other.TabSize
	}
	if other.Logger != nil {
		o.Logger = other.Logger
	}
	return o
}
