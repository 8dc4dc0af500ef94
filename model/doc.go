// Package model provides EditorModel, the observable settings record behind
// an editor component.
//
// A model holds seven typed attributes (text, mimetype, filename,
// fixedHeight, lineNumbers, readOnly, tabSize). Every setter compares the new
// value with the current one; an effective change updates the attribute and
// synchronously notifies all subscribers through a single change stream.
//
// The model is not safe for concurrent use. Hosts are expected to touch it
// from one goroutine, typically their UI event loop.
package model
