// Package quicknav implements the shared machinery for editor quick
// navigation pickers (go-to-line, go-to-symbol and friends): session
// lifecycle across active-editor changes, view-state restore on cancel, and
// transient highlight decorations on the navigation target.
package quicknav

import (
	"github.com/sirupsen/logrus"

	"github.com/grovetools/quicknav/logging"
)

var log *logrus.Entry

func init() {
	log = logging.NewLogger("quicknav")
}

// RangeHighlightClass is the decoration class applied over the line being
// previewed.
const RangeHighlightClass = "rangeHighlight"

// RulerHighlightColor is the theme color token used for the overview-ruler
// marker on the previewed line.
const RulerHighlightColor ThemeColorID = "overviewRuler.rangeHighlight"

// Navigator is the strategy a concrete navigation provider supplies. It
// covers reading the active editor, reacting to editor changes, gating
// editor-based flow, and producing pick entries.
type Navigator[P Picker] interface {
	// ActiveEditor returns the currently active editor, if any.
	ActiveEditor() (Editor, bool)

	// OnDidActiveEditorChange fires whenever the active editor changes.
	OnDidActiveEditorChange() *Signal[struct{}]

	// CanProvideWithEditor gates whether the editor-based flow applies to
	// the given editor. Embed NavigatorDefaults for the always-true default.
	CanProvideWithEditor(editor Editor) bool

	// ProvideWithEditor populates the picker's entries for an active editor.
	// The returned disposable owns any listeners or timers it created.
	ProvideWithEditor(editor Editor, picker P, token CancellationToken) Disposable

	// ProvideWithoutEditor populates the picker's entries when no editor is
	// active.
	ProvideWithoutEditor(picker P, token CancellationToken) Disposable
}

// NavigatorDefaults supplies the default Navigator behavior. Concrete
// navigators embed it and override what they need.
type NavigatorDefaults struct{}

// CanProvideWithEditor accepts every editor.
func (NavigatorDefaults) CanProvideWithEditor(Editor) bool { return true }

// Provider wires a Navigator to a picker instance: it owns the navigation
// session, re-provisions on active-editor changes, and tracks the single
// live highlight decoration pair.
type Provider[P Picker] struct {
	nav Navigator[P]

	// at most one highlight pair is live at a time; replaced atomically by
	// AddDecorations and emptied by ClearDecorations
	decorations []DecorationID
}

// NewProvider creates a provider around the given navigator.
func NewProvider[P Picker](nav Navigator[P]) *Provider[P] {
	return &Provider[P]{nav: nav}
}

// Provide activates the provider against a picker. The picker's built-in
// matching is switched off; the navigator supplies pre-ranked entries. The
// returned disposable tears down everything this call created and is safe to
// dispose more than once.
func (p *Provider[P]) Provide(picker P, token CancellationToken) Disposable {
	store := NewDisposableStore()

	// Navigation providers rank their own results.
	picker.SetFilteringEnabled(false)
	picker.SetSortingEnabled(false)
	picker.SetLabelMatchingEnabled(false)

	// One session at a time: replacing the value disposes the previous
	// session fully before the next begins.
	session := NewMutableDisposable()
	store.Add(session)
	session.Set(p.beginSession(picker, token))

	store.Add(p.nav.OnDidActiveEditorChange().Subscribe(func(struct{}) {
		log.Debug("active editor changed, re-providing")
		// The old session must be fully torn down before the next one runs
		// any setup, so the replacement cannot happen in a single Set: the
		// beginSession argument would be evaluated first.
		session.Clear()
		session.Set(p.beginSession(picker, token))
	}))

	return store
}

// beginSession starts one navigation session against the current editor (or
// without one) and returns the disposable that ends it.
func (p *Provider[P]) beginSession(picker P, token CancellationToken) Disposable {
	session := NewDisposableStore()

	editor, ok := p.nav.ActiveEditor()
	if ok && p.nav.CanProvideWithEditor(editor) {
		state, hasState := editor.SaveViewState()

		// Cancelling without picking puts the editor back where it was.
		// Guarded on session liveness so a late cancellation after the
		// editor changed does not clobber the new session's editor.
		session.Add(token.OnCancelled(func() {
			if session.Disposed() || !hasState {
				return
			}
			log.Debug("picker cancelled, restoring editor view state")
			editor.RestoreViewState(state)
		}))

		// Whatever was highlighted during browsing goes away with the
		// session.
		session.AddFunc(func() {
			p.ClearDecorations(editor)
		})

		session.Add(p.nav.ProvideWithEditor(editor, picker, token))
	} else {
		session.Add(p.nav.ProvideWithoutEditor(picker, token))
	}

	return session
}

// GotoOptions modifies how GotoLocation opens the target.
type GotoOptions struct {
	// KeyMods carries the modifier keys held while accepting the pick.
	KeyMods KeyMods

	// ForceSideBySide opens the target beside the current editor regardless
	// of key modifiers.
	ForceSideBySide bool
}

// KeyMods are the modifier keys held during an accept gesture.
type KeyMods struct {
	CtrlCmd bool
	Alt     bool
}

// GotoLocation moves the editor to the given range: selection set, range
// revealed centered, editor focused. The range is assumed valid for the
// current model.
func (p *Provider[P]) GotoLocation(editor Editor, r Range, opts GotoOptions) {
	if opts.ForceSideBySide || opts.KeyMods.CtrlCmd {
		if opener, ok := editor.(SideBySideOpener); ok {
			opener.OpenToSide(r)
			return
		}
	}

	editor.SetSelection(r)
	editor.RevealRangeCentered(r)
	editor.Focus()
}

// GetModel resolves the editable text model behind an editor. Diff editors
// resolve to their modified side. ok is false when no model is loaded.
func (p *Provider[P]) GetModel(editor Editor) (TextModel, bool) {
	if diff, isDiff := editor.(DiffEditor); isDiff {
		modified, ok := diff.ModifiedEditor()
		if !ok {
			return nil, false
		}
		return modified.Model()
	}
	return editor.Model()
}

// AddDecorations replaces any current highlight pair with a new one over r:
// a whole-line range highlight plus a full-height overview-ruler marker.
func (p *Provider[P]) AddDecorations(editor Editor, r Range) {
	p.decorations = editor.ChangeDecorations(p.decorations, []Decoration{
		{
			Range: r,
			Options: DecorationOptions{
				ClassName:   RangeHighlightClass,
				IsWholeLine: true,
			},
		},
		{
			Range: r,
			Options: DecorationOptions{
				OverviewRuler: &OverviewRulerOptions{
					Color: RulerHighlightColor,
					Lane:  OverviewRulerLaneFull,
				},
			},
		},
	})
}

// ClearDecorations removes the current highlight pair, if any.
func (p *Provider[P]) ClearDecorations(editor Editor) {
	if len(p.decorations) == 0 {
		return
	}
	p.decorations = editor.ChangeDecorations(p.decorations, nil)
}
