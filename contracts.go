package quicknav

// ViewState is an opaque snapshot of an editor's scroll position and
// selection. It is produced by Editor.SaveViewState and only ever handed
// back to the same editor's RestoreViewState.
type ViewState any

// TextModel is the read surface of an editor's document that navigation
// providers need: enough to validate and clamp target positions.
type TextModel interface {
	// LineCount returns the number of lines in the model. Always >= 1 for a
	// loaded model.
	LineCount() int

	// LineLength returns the number of characters on the given 1-based line,
	// or 0 if the line does not exist.
	LineLength(line int) int
}

// DecorationID identifies one applied decoration. IDs are opaque strings
// returned by Editor.ChangeDecorations and are only meaningful to the editor
// that produced them.
type DecorationID string

// ThemeColorID names a themed color token. Resolution to a concrete color is
// the editor adapter's concern.
type ThemeColorID string

// OverviewRulerLane selects where a marker sits in the overview ruler.
type OverviewRulerLane int

const (
	OverviewRulerLaneLeft OverviewRulerLane = iota + 1
	OverviewRulerLaneCenter
	OverviewRulerLaneRight
	OverviewRulerLaneFull
)

// OverviewRulerOptions describes an overview-ruler marker.
type OverviewRulerOptions struct {
	Color ThemeColorID
	Lane  OverviewRulerLane
}

// DecorationOptions controls how a decoration renders.
type DecorationOptions struct {
	// ClassName is the highlight class applied over the range.
	ClassName string

	// IsWholeLine extends the highlight across the full line regardless of
	// the range's columns.
	IsWholeLine bool

	// OverviewRuler, when set, additionally places a marker in the overview
	// ruler.
	OverviewRuler *OverviewRulerOptions
}

// Decoration is a visual annotation over a range of an editor's model.
type Decoration struct {
	Range   Range
	Options DecorationOptions
}

// Editor is the control surface of a text editor that quick navigation
// needs. Absent state (no model loaded, no view state available) is reported
// through boolean returns, never through errors.
type Editor interface {
	// SaveViewState captures the editor's current scroll/selection state.
	// ok is false when no state is available, in which case nothing will be
	// restored later.
	SaveViewState() (state ViewState, ok bool)

	// RestoreViewState re-applies a previously captured view state.
	RestoreViewState(state ViewState)

	// SetSelection replaces the editor's selection with the given range.
	SetSelection(r Range)

	// RevealRangeCentered scrolls so the range start is centered in the
	// viewport.
	RevealRangeCentered(r Range)

	// Focus gives the editor keyboard focus.
	Focus()

	// Model resolves the currently loaded text model. ok is false when no
	// model is loaded.
	Model() (model TextModel, ok bool)

	// ChangeDecorations atomically removes the decorations identified by old
	// and applies decs, returning the identifiers of the newly applied set.
	// Either argument may be empty.
	ChangeDecorations(old []DecorationID, decs []Decoration) []DecorationID
}

// DiffEditor is an editor presenting two sides of a comparison. Navigation
// always targets the modified side.
type DiffEditor interface {
	Editor

	// ModifiedEditor resolves the editor for the modified side. ok is false
	// when that side has no editor attached.
	ModifiedEditor() (Editor, bool)
}

// SideBySideOpener is implemented by editors that can reveal a location in a
// split beside the current one.
type SideBySideOpener interface {
	OpenToSide(r Range)
}

// Picker is the slice of a quick-pick widget's surface that the provider
// configures: the widget's own matching machinery is switched off because
// navigation providers supply pre-ranked results themselves.
type Picker interface {
	// SetFilteringEnabled toggles the picker's built-in fuzzy filtering of
	// items against the typed input.
	SetFilteringEnabled(enabled bool)

	// SetSortingEnabled toggles the picker's built-in sorting of items by
	// match score.
	SetSortingEnabled(enabled bool)

	// SetLabelMatchingEnabled toggles the picker's built-in highlighting of
	// input matches inside item labels.
	SetLabelMatchingEnabled(enabled bool)
}
