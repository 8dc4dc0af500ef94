package model

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// recorder is a listener that keeps a tape of everything it receives.
type recorder struct {
	t    *testing.T
	name string
	tape []ChangedArgs
}

func newRecorder(t *testing.T, name string) *recorder {
	return &recorder{t: t, name: name}
}

func (r *recorder) listen(args ChangedArgs) {
	r.t.Helper()
	r.t.Logf("%s: %v", r.name, args)
	r.tape = append(r.tape, args)
}

func (r *recorder) check(want []ChangedArgs) {
	r.t.Helper()
	defer func() { r.tape = nil }()

	if diff := cmp.Diff(want, r.tape); diff != "" {
		r.t.Errorf("%s: tape mismatch (-want +got):\n%s", r.name, diff)
	}
}

type logCapture struct {
	buf bytes.Buffer
}

func (c *logCapture) Write(p []byte) (int, error) {
	return c.buf.Write(p)
}

func (c *logCapture) entries(t *testing.T) []map[string]any {
	t.Helper()
	var out []map[string]any
	for _, line := range bytes.Split(c.buf.Bytes(), []byte{'\n'}) {
		line = bytes.TrimSpace(line)
		if len(line) == 0 {
			continue
		}
		entry := map[string]any{}
		if err := json.Unmarshal(line, &entry); err != nil {
			t.Fatalf("parse log entry %q: %v", line, err)
		}
		out = append(out, entry)
	}
	return out
}
