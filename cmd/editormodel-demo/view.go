package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rivo/uniseg"

	"github.com/iw2rmb/editormodel/internal/textwidth"
	"github.com/iw2rmb/editormodel/model"
)

// chromeRows is the number of rows the view draws around the text body:
// header, status and help.
const chromeRows = 3

// eventState is shared between the view and its model listener. The view is
// copied by value on every Update; the listener keeps writing to the same
// state.
type eventState struct {
	count int
	last  model.ChangedArgs
}

func (s *eventState) handleChange(args model.ChangedArgs) {
	s.count++
	s.last = args
}

// view is a Bubble Tea program that renders an EditorModel and turns key
// presses into attribute changes.
type view struct {
	m      *model.EditorModel
	sub    model.Subscription
	events *eventState

	keys  keyMap
	help  help.Model
	style Style

	viewport   viewport.Model
	fixedRows  int
	width      int
	height     int
	lastSynced int
}

// newView subscribes to m. fixedRows is the body height used while the
// model's fixedHeight flag is set.
func newView(m *model.EditorModel, style Style, fixedRows int) view {
	if fixedRows < 1 {
		fixedRows = 1
	}
	state := &eventState{}
	v := view{
		m:         m,
		events:    state,
		keys:      defaultKeyMap(),
		help:      help.New(),
		style:     style,
		viewport:  viewport.New(0, 0),
		fixedRows: fixedRows,
	}
	v.sub = m.Subscribe(state.handleChange)
	v.sync()
	return v
}

// close detaches the view from its model.
func (v view) close() { v.m.Unsubscribe(v.sub) }

func (v view) Init() tea.Cmd { return nil }

func (v view) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		v.help.Width = msg.Width
		v.sync()
		return v, nil
	case tea.KeyMsg:
		if key.Matches(msg, v.keys.Quit) {
			return v, tea.Quit
		}
		// Keys never reach the viewport: its scroll bindings overlap with
		// typed text.
		v.handleKey(msg)
		v.syncIfChanged()
		return v, nil
	}

	v.syncIfChanged()
	var cmd tea.Cmd
	v.viewport, cmd = v.viewport.Update(msg)
	return v, cmd
}

func (v view) handleKey(msg tea.KeyMsg) {
	m := v.m
	switch {
	case key.Matches(msg, v.keys.ToggleLineNumbers):
		m.SetLineNumbers(!m.LineNumbers())
	case key.Matches(msg, v.keys.ToggleReadOnly):
		m.SetReadOnly(!m.ReadOnly())
	case key.Matches(msg, v.keys.ToggleFixedHeight):
		m.SetFixedHeight(!m.FixedHeight())
	case key.Matches(msg, v.keys.TabSizeUp):
		m.SetTabSize(textwidth.ClampTabSize(m.TabSize()) + 1)
	case key.Matches(msg, v.keys.TabSizeDown):
		m.SetTabSize(textwidth.ClampTabSize(m.TabSize() - 1))
	case m.ReadOnly():
		// Edits are dropped while read-only.
	case key.Matches(msg, v.keys.Backspace):
		m.SetText(dropLastCluster(m.Text()))
	case key.Matches(msg, v.keys.Enter):
		m.SetText(m.Text() + "\n")
	case key.Matches(msg, v.keys.Tab):
		m.SetText(m.Text() + "\t")
	case msg.Type == tea.KeyRunes || msg.Type == tea.KeySpace:
		m.SetText(m.Text() + string(msg.Runes))
	}
}

func dropLastCluster(text string) string {
	if text == "" {
		return ""
	}
	end := 0
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		start, _ := g.Positions()
		end = start
	}
	return text[:end]
}

// syncIfChanged re-renders when the listener saw changes since the last sync,
// including changes made outside Update.
func (v *view) syncIfChanged() {
	if v.events.count != v.lastSynced {
		v.sync()
	}
}

// sync copies the model into the viewport.
func (v *view) sync() {
	body := v.renderBody()
	v.viewport.Width = v.width
	v.viewport.Height = v.bodyHeight(strings.Count(body, "\n") + 1)
	v.viewport.SetContent(body)
	v.lastSynced = v.events.count
}

func (v view) bodyHeight(lines int) int {
	avail := v.height - chromeRows
	if v.height == 0 {
		// No size yet: render everything.
		avail = lines
	}
	h := lines
	if v.m.FixedHeight() {
		h = v.fixedRows
	}
	if h > avail {
		h = avail
	}
	if h < 1 {
		h = 1
	}
	return h
}

func (v view) renderBody() string {
	lines := strings.Split(v.m.Text(), "\n")
	tabSize := v.m.TabSize()
	gutterWidth := 0
	if v.m.LineNumbers() {
		gutterWidth = len(fmt.Sprint(len(lines))) + 1
	}

	var sb strings.Builder
	for i, line := range lines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		if gutterWidth > 0 {
			sb.WriteString(v.style.Gutter.Render(fmt.Sprintf("%*d ", gutterWidth-1, i+1)))
		}
		line = textwidth.ExpandTabs(line, tabSize)
		if v.width > 0 {
			line = textwidth.Truncate(line, v.width-gutterWidth)
		}
		sb.WriteString(v.style.Text.Render(line))
	}
	return sb.String()
}

func (v view) renderHeader() string {
	name := v.m.Filename()
	if name == "" {
		name = "[untitled]"
	}
	parts := []string{v.style.Header.Render(name)}
	if mt := v.m.Mimetype(); mt != "" {
		parts = append(parts, mt)
	}
	if v.m.ReadOnly() {
		parts = append(parts, v.style.ReadOnly.Render("[RO]"))
	}
	parts = append(parts, fmt.Sprintf("tab:%d", v.m.TabSize()))
	return strings.Join(parts, " ")
}

func (v view) renderStatus() string {
	last := "none"
	if v.events.count > 0 {
		last = v.events.last.String()
		if v.events.last.Attr == model.Text {
			last = "text edited"
		}
	}
	return v.style.Status.Render(fmt.Sprintf("changes: %d  last: %s", v.events.count, last))
}

func (v view) View() string {
	return strings.Join([]string{
		v.renderHeader(),
		v.viewport.View(),
		v.renderStatus(),
		v.help.View(v.keys),
	}, "\n")
}
