// Package gotoline implements the go-to-line navigation provider: typing a
// line (and optional column) previews the target with a transient highlight
// and accepting navigates there.
package gotoline

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/grovetools/quicknav"
	"github.com/grovetools/quicknav/tui/pickerui"
)

// Provider wires the quicknav base machinery to line-number interpretation
// of the picker input.
type Provider struct {
	quicknav.NavigatorDefaults
	*quicknav.EditorTracker

	base *quicknav.Provider[*pickerui.Model]
}

// New creates a go-to-line provider reading the active editor from tracker.
func New(tracker *quicknav.EditorTracker) *Provider {
	p := &Provider{EditorTracker: tracker}
	p.base = quicknav.NewProvider[*pickerui.Model](p)
	return p
}

// Provide activates the provider against a picker.
func (p *Provider) Provide(picker *pickerui.Model, token quicknav.CancellationToken) quicknav.Disposable {
	return p.base.Provide(picker, token)
}

// ProvideWithEditor populates the picker while an editor is active: the
// typed input is interpreted as a line target, previewed live, and navigated
// to on accept.
func (p *Provider) ProvideWithEditor(editor quicknav.Editor, picker *pickerui.Model, token quicknav.CancellationToken) quicknav.Disposable {
	store := quicknav.NewDisposableStore()

	picker.SetPlaceholder("Go to line and column...")

	update := func() {
		target, ok := p.interpret(editor, picker.Value())
		if !ok {
			picker.SetItems([]pickerui.Item{{Label: p.helpLabel(editor)}})
			p.base.ClearDecorations(editor)
			return
		}

		label := fmt.Sprintf("Go to line %d, column %d.", target.Line, target.Column)
		picker.SetItems([]pickerui.Item{{Label: label, Data: target}})

		// preview: center the target and highlight its line
		r := quicknav.LineRange(target.Line, target.Column, target.Column)
		editor.RevealRangeCentered(r)
		p.base.AddDecorations(editor, r)
	}

	update()
	store.Add(picker.OnDidChangeValue(func(string) {
		update()
	}))

	store.Add(picker.OnDidAccept(func(ev pickerui.AcceptEvent) {
		target, ok := ev.Item.Data.(quicknav.Position)
		if !ok {
			return
		}
		r := quicknav.LineRange(target.Line, target.Column, target.Column)
		p.base.GotoLocation(editor, r, quicknav.GotoOptions{KeyMods: ev.Mods})
	}))

	return store
}

// ProvideWithoutEditor explains that navigation needs an editor.
func (p *Provider) ProvideWithoutEditor(picker *pickerui.Model, token quicknav.CancellationToken) quicknav.Disposable {
	picker.SetPlaceholder("Go to line and column...")
	picker.SetItems([]pickerui.Item{{Label: "Open a text editor first to go to a line."}})
	return quicknav.NewDisposableStore()
}

// helpLabel describes valid input for the current model.
func (p *Provider) helpLabel(editor quicknav.Editor) string {
	if model, ok := p.base.GetModel(editor); ok {
		return fmt.Sprintf("Type a line number between 1 and %d to navigate to (with optional column).", model.LineCount())
	}
	return "Type a line number to navigate to (with optional column)."
}

// interpret parses the picker input as a line target against the editor's
// model. Accepted forms: "42", "42:7", "42,7", ":42", "#42". Negative lines
// count from the end of the model. Out-of-range values clamp to the model.
func (p *Provider) interpret(editor quicknav.Editor, value string) (quicknav.Position, bool) {
	model, ok := p.base.GetModel(editor)
	if !ok {
		return quicknav.Position{}, false
	}

	value = strings.TrimSpace(value)
	value = strings.TrimLeft(value, ":#")
	if value == "" {
		return quicknav.Position{}, false
	}

	parts := strings.FieldsFunc(value, func(r rune) bool {
		return r == ':' || r == ',' || r == '#'
	})
	if len(parts) == 0 {
		return quicknav.Position{}, false
	}

	line, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil || line == 0 {
		return quicknav.Position{}, false
	}

	lineCount := model.LineCount()
	if line < 0 {
		line = lineCount + line + 1
	}
	line = clamp(line, 1, lineCount)

	column := 1
	if len(parts) > 1 {
		column, err = strconv.Atoi(strings.TrimSpace(parts[1]))
		if err != nil {
			return quicknav.Position{}, false
		}
		column = clamp(column, 1, model.LineLength(line)+1)
	}

	return quicknav.Position{Line: line, Column: column}, true
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
