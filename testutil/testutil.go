// Package testutil provides in-memory editor fakes for exercising the
// navigation machinery without a running Neovim.
package testutil

import (
	"fmt"
	"strings"

	"github.com/grovetools/quicknav"
)

// FakeModel is a text model backed by a slice of lines.
type FakeModel struct {
	Lines []string
}

// NewFakeModel builds a model from the given text, split on newlines.
func NewFakeModel(text string) *FakeModel {
	return &FakeModel{Lines: strings.Split(text, "\n")}
}

func (m *FakeModel) LineCount() int {
	return len(m.Lines)
}

func (m *FakeModel) LineLength(line int) int {
	if line < 1 || line > len(m.Lines) {
		return 0
	}
	return len([]rune(m.Lines[line-1]))
}

// FakeEditor records every editor operation so tests can assert on the exact
// sequence the navigation machinery performed.
type FakeEditor struct {
	TextModel *FakeModel

	// ViewState is what SaveViewState hands out; Restored collects every
	// state passed back to RestoreViewState.
	ViewState quicknav.ViewState
	Restored  []quicknav.ViewState

	Selections []quicknav.Range
	Revealed   []quicknav.Range
	Focused    int

	// Decorations holds the currently live decorations keyed by ID.
	Decorations map[quicknav.DecorationID]quicknav.Decoration

	nextID int
}

// NewFakeEditor builds an editor over the given text with a ready view state.
func NewFakeEditor(text string) *FakeEditor {
	return &FakeEditor{
		TextModel:   NewFakeModel(text),
		ViewState:   "initial",
		Decorations: map[quicknav.DecorationID]quicknav.Decoration{},
	}
}

func (e *FakeEditor) SaveViewState() (quicknav.ViewState, bool) {
	return e.ViewState, e.ViewState != nil
}

func (e *FakeEditor) RestoreViewState(state quicknav.ViewState) {
	e.Restored = append(e.Restored, state)
}

func (e *FakeEditor) SetSelection(r quicknav.Range) {
	e.Selections = append(e.Selections, r)
}

func (e *FakeEditor) RevealRangeCentered(r quicknav.Range) {
	e.Revealed = append(e.Revealed, r)
}

func (e *FakeEditor) Focus() {
	e.Focused++
}

func (e *FakeEditor) Model() (quicknav.TextModel, bool) {
	if e.TextModel == nil {
		return nil, false
	}
	return e.TextModel, true
}

func (e *FakeEditor) ChangeDecorations(old []quicknav.DecorationID, decs []quicknav.Decoration) []quicknav.DecorationID {
	for _, id := range old {
		delete(e.Decorations, id)
	}
	ids := make([]quicknav.DecorationID, 0, len(decs))
	for _, dec := range decs {
		e.nextID++
		id := quicknav.DecorationID(fmt.Sprintf("fake:%d", e.nextID))
		e.Decorations[id] = dec
		ids = append(ids, id)
	}
	return ids
}

// FakeSideBySideEditor adds side-by-side opening on top of FakeEditor.
type FakeSideBySideEditor struct {
	*FakeEditor

	OpenedToSide []quicknav.Range
}

// NewFakeSideBySideEditor builds a side-by-side capable editor over text.
func NewFakeSideBySideEditor(text string) *FakeSideBySideEditor {
	return &FakeSideBySideEditor{FakeEditor: NewFakeEditor(text)}
}

func (e *FakeSideBySideEditor) OpenToSide(r quicknav.Range) {
	e.OpenedToSide = append(e.OpenedToSide, r)
}

// FakeDiffEditor wraps a FakeEditor pair as a diff view.
type FakeDiffEditor struct {
	*FakeEditor

	Modified *FakeEditor
}

// NewFakeDiffEditor builds a diff editor whose modified side holds text.
func NewFakeDiffEditor(text string) *FakeDiffEditor {
	return &FakeDiffEditor{
		FakeEditor: NewFakeEditor(""),
		Modified:   NewFakeEditor(text),
	}
}

func (e *FakeDiffEditor) ModifiedEditor() (quicknav.Editor, bool) {
	if e.Modified == nil {
		return nil, false
	}
	return e.Modified, true
}
