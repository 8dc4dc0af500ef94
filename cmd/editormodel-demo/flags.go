package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/iw2rmb/editormodel/model"
)

const defaultFixedRows = 10

type demoFlags struct {
	text        string
	textFile    string
	mimetype    string
	filename    string
	fixedHeight bool
	lineNumbers bool
	readOnly    bool
	tabSize     int

	rows    int
	logFile string
}

func (f *demoFlags) register(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVar(&f.text, "text", model.DefaultText, "initial editor text")
	flags.StringVar(&f.textFile, "text-file", "", "read the initial editor text from a file")
	flags.StringVar(&f.mimetype, "mimetype", model.DefaultMimetype, "content mimetype")
	flags.StringVar(&f.filename, "filename", model.DefaultFilename, "display name (defaults to the base name of --text-file)")
	flags.BoolVar(&f.fixedHeight, "fixed-height", model.DefaultFixedHeight, "constrain the text area to --rows rows")
	flags.BoolVar(&f.lineNumbers, "line-numbers", model.DefaultLineNumbers, "show line numbers")
	flags.BoolVar(&f.readOnly, "read-only", model.DefaultReadOnly, "reject edits")
	flags.IntVar(&f.tabSize, "tab-size", model.DefaultTabSize, "columns per tab stop")
	flags.IntVar(&f.rows, "rows", defaultFixedRows, "text area rows while the height is fixed")
	flags.StringVar(&f.logFile, "log-file", "", "append structured debug logs to this file")
	cmd.MarkFlagsMutuallyExclusive("text", "text-file")
}

// optionsFromFlags maps the flags the user actually set onto model options.
// Flags left at their defaults stay unset.
func optionsFromFlags(cmd *cobra.Command, f *demoFlags) (model.Options, error) {
	flags := cmd.Flags()
	var o model.Options

	if flags.Changed("text") {
		o.Text = model.Ptr(f.text)
	}
	if flags.Changed("text-file") {
		data, err := os.ReadFile(f.textFile)
		if err != nil {
			return model.Options{}, fmt.Errorf("read text file: %w", err)
		}
		o.Text = model.Ptr(string(data))
		o.Filename = model.Ptr(filepath.Base(f.textFile))
	}
	if flags.Changed("mimetype") {
		o.Mimetype = model.Ptr(f.mimetype)
	}
	if flags.Changed("filename") {
		o.Filename = model.Ptr(f.filename)
	}
	if flags.Changed("fixed-height") {
		o.FixedHeight = model.Ptr(f.fixedHeight)
	}
	if flags.Changed("line-numbers") {
		o.LineNumbers = model.Ptr(f.lineNumbers)
	}
	if flags.Changed("read-only") {
		o.ReadOnly = model.Ptr(f.readOnly)
	}
	if flags.Changed("tab-size") {
		if f.tabSize < 1 {
			return model.Options{}, errors.New("--tab-size must be at least 1")
		}
		o.TabSize = model.Ptr(f.tabSize)
	}
	if f.rows < 1 {
		return model.Options{}, errors.New("--rows must be at least 1")
	}
	return o, nil
}
