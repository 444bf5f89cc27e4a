package quicknav_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grovetools/quicknav"
	"github.com/grovetools/quicknav/testutil"
)

type fakePicker struct {
	filtering     bool
	sorting       bool
	labelMatching bool
}

func newFakePicker() *fakePicker {
	return &fakePicker{filtering: true, sorting: true, labelMatching: true}
}

func (p *fakePicker) SetFilteringEnabled(enabled bool)     { p.filtering = enabled }
func (p *fakePicker) SetSortingEnabled(enabled bool)       { p.sorting = enabled }
func (p *fakePicker) SetLabelMatchingEnabled(enabled bool) { p.labelMatching = enabled }

// fakeNav records the order of session setup and teardown. When decorate is
// set, setup previews a target the way a real provider does.
type fakeNav struct {
	quicknav.NavigatorDefaults
	*quicknav.EditorTracker

	refuseEditor bool
	decorate     *quicknav.Provider[*fakePicker]
	log          []string
}

func newFakeNav() *fakeNav {
	return &fakeNav{EditorTracker: quicknav.NewEditorTracker()}
}

func (n *fakeNav) CanProvideWithEditor(quicknav.Editor) bool {
	return !n.refuseEditor
}

func (n *fakeNav) ProvideWithEditor(editor quicknav.Editor, picker *fakePicker, token quicknav.CancellationToken) quicknav.Disposable {
	n.log = append(n.log, "provide with editor")
	if n.decorate != nil {
		n.decorate.AddDecorations(editor, quicknav.LineRange(1, 1, 1))
	}
	return quicknav.DisposeFunc(func() {
		n.log = append(n.log, "teardown with editor")
	})
}

func (n *fakeNav) ProvideWithoutEditor(picker *fakePicker, token quicknav.CancellationToken) quicknav.Disposable {
	n.log = append(n.log, "provide without editor")
	return quicknav.DisposeFunc(func() {
		n.log = append(n.log, "teardown without editor")
	})
}

func TestProvideDisablesPickerMatching(t *testing.T) {
	nav := newFakeNav()
	provider := quicknav.NewProvider[*fakePicker](nav)
	picker := newFakePicker()

	src := quicknav.NewCancelSource()
	d := provider.Provide(picker, src.Token())
	defer d.Dispose()

	assert.False(t, picker.filtering)
	assert.False(t, picker.sorting)
	assert.False(t, picker.labelMatching)
}

func TestProvideRoutesByActiveEditor(t *testing.T) {
	tests := []struct {
		name         string
		editor       quicknav.Editor
		refuseEditor bool
		expected     string
	}{
		{
			name:     "active editor",
			editor:   testutil.NewFakeEditor("one\ntwo"),
			expected: "provide with editor",
		},
		{
			name:     "no editor",
			expected: "provide without editor",
		},
		{
			name:         "editor refused by navigator",
			editor:       testutil.NewFakeEditor("one\ntwo"),
			refuseEditor: true,
			expected:     "provide without editor",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nav := newFakeNav()
			nav.refuseEditor = tt.refuseEditor
			if tt.editor != nil {
				nav.SetActiveEditor(tt.editor)
			}
			provider := quicknav.NewProvider[*fakePicker](nav)

			src := quicknav.NewCancelSource()
			d := provider.Provide(newFakePicker(), src.Token())
			defer d.Dispose()

			require.Len(t, nav.log, 1)
			assert.Equal(t, tt.expected, nav.log[0])
		})
	}
}

func TestCancelRestoresViewState(t *testing.T) {
	nav := newFakeNav()
	editor := testutil.NewFakeEditor("one\ntwo\nthree")
	editor.ViewState = "scrolled to top"
	nav.SetActiveEditor(editor)

	provider := quicknav.NewProvider[*fakePicker](nav)
	src := quicknav.NewCancelSource()
	provider.Provide(newFakePicker(), src.Token())

	src.Cancel()

	require.Len(t, editor.Restored, 1)
	assert.Equal(t, quicknav.ViewState("scrolled to top"), editor.Restored[0])
}

func TestCancelAfterDisposeDoesNotRestore(t *testing.T) {
	nav := newFakeNav()
	editor := testutil.NewFakeEditor("one\ntwo")
	nav.SetActiveEditor(editor)

	provider := quicknav.NewProvider[*fakePicker](nav)
	src := quicknav.NewCancelSource()
	d := provider.Provide(newFakePicker(), src.Token())

	d.Dispose()
	src.Cancel()

	assert.Empty(t, editor.Restored, "accepting a pick must not rewind the editor")
}

func TestCancelWithoutViewStateIsNoop(t *testing.T) {
	nav := newFakeNav()
	editor := testutil.NewFakeEditor("one\ntwo")
	editor.ViewState = nil
	nav.SetActiveEditor(editor)

	provider := quicknav.NewProvider[*fakePicker](nav)
	src := quicknav.NewCancelSource()
	provider.Provide(newFakePicker(), src.Token())

	src.Cancel()

	assert.Empty(t, editor.Restored)
}

func TestEditorChangeReplacesSessionInOrder(t *testing.T) {
	nav := newFakeNav()
	first := testutil.NewFakeEditor("one")
	nav.SetActiveEditor(first)

	provider := quicknav.NewProvider[*fakePicker](nav)
	src := quicknav.NewCancelSource()
	d := provider.Provide(newFakePicker(), src.Token())
	defer d.Dispose()

	nav.SetActiveEditor(testutil.NewFakeEditor("two"))

	assert.Equal(t, []string{
		"provide with editor",
		"teardown with editor",
		"provide with editor",
	}, nav.log, "the old session must be fully torn down before the next begins")
}

func TestEditorChangeDetachesOldCancelHandler(t *testing.T) {
	nav := newFakeNav()
	first := testutil.NewFakeEditor("one")
	nav.SetActiveEditor(first)

	provider := quicknav.NewProvider[*fakePicker](nav)
	src := quicknav.NewCancelSource()
	provider.Provide(newFakePicker(), src.Token())

	second := testutil.NewFakeEditor("two")
	nav.SetActiveEditor(second)
	src.Cancel()

	assert.Empty(t, first.Restored, "a replaced session must not touch its old editor")
	require.Len(t, second.Restored, 1)
}

func TestEditorChangeClearsOldDecorations(t *testing.T) {
	nav := newFakeNav()
	first := testutil.NewFakeEditor("one\ntwo")
	nav.SetActiveEditor(first)

	provider := quicknav.NewProvider[*fakePicker](nav)
	src := quicknav.NewCancelSource()
	d := provider.Provide(newFakePicker(), src.Token())
	defer d.Dispose()

	provider.AddDecorations(first, quicknav.LineRange(2, 1, 1))
	require.Len(t, first.Decorations, 2)

	nav.SetActiveEditor(testutil.NewFakeEditor("three"))

	assert.Empty(t, first.Decorations)
}

func TestEditorChangeDoesNotLeakDecorations(t *testing.T) {
	nav := newFakeNav()
	first := testutil.NewFakeEditor("one\ntwo")
	nav.SetActiveEditor(first)

	provider := quicknav.NewProvider[*fakePicker](nav)
	nav.decorate = provider

	src := quicknav.NewCancelSource()
	d := provider.Provide(newFakePicker(), src.Token())
	defer d.Dispose()

	require.Len(t, first.Decorations, 2)

	second := testutil.NewFakeEditor("three\nfour")
	nav.SetActiveEditor(second)

	// the old editor's pair went away with its session; only the new
	// session's pair is live and the provider still tracks it
	assert.Empty(t, first.Decorations)
	require.Len(t, second.Decorations, 2)

	provider.AddDecorations(second, quicknav.LineRange(2, 1, 1))
	assert.Len(t, second.Decorations, 2)
}

func TestProvideDisposeIsIdempotent(t *testing.T) {
	nav := newFakeNav()
	nav.SetActiveEditor(testutil.NewFakeEditor("one"))

	provider := quicknav.NewProvider[*fakePicker](nav)
	src := quicknav.NewCancelSource()
	d := provider.Provide(newFakePicker(), src.Token())

	d.Dispose()
	d.Dispose()

	assert.Equal(t, []string{"provide with editor", "teardown with editor"}, nav.log)
}

func TestAddDecorationsReplacesPair(t *testing.T) {
	nav := newFakeNav()
	editor := testutil.NewFakeEditor("one\ntwo\nthree")
	provider := quicknav.NewProvider[*fakePicker](nav)

	provider.AddDecorations(editor, quicknav.LineRange(1, 1, 1))
	provider.AddDecorations(editor, quicknav.LineRange(3, 1, 1))

	require.Len(t, editor.Decorations, 2, "only one highlight pair may be live")

	wholeLine := 0
	ruler := 0
	for _, dec := range editor.Decorations {
		assert.Equal(t, 3, dec.Range.Start.Line)
		if dec.Options.IsWholeLine {
			wholeLine++
			assert.Equal(t, quicknav.RangeHighlightClass, dec.Options.ClassName)
		}
		if dec.Options.OverviewRuler != nil {
			ruler++
			assert.Equal(t, quicknav.RulerHighlightColor, dec.Options.OverviewRuler.Color)
			assert.Equal(t, quicknav.OverviewRulerLaneFull, dec.Options.OverviewRuler.Lane)
		}
	}
	assert.Equal(t, 1, wholeLine)
	assert.Equal(t, 1, ruler)
}

func TestClearDecorations(t *testing.T) {
	nav := newFakeNav()
	editor := testutil.NewFakeEditor("one\ntwo")
	provider := quicknav.NewProvider[*fakePicker](nav)

	// nothing live yet; must not call into the editor
	provider.ClearDecorations(editor)

	provider.AddDecorations(editor, quicknav.LineRange(1, 1, 1))
	provider.ClearDecorations(editor)

	assert.Empty(t, editor.Decorations)
}

func TestGotoLocation(t *testing.T) {
	nav := newFakeNav()
	provider := quicknav.NewProvider[*fakePicker](nav)
	target := quicknav.LineRange(5, 3, 3)

	t.Run("plain accept selects, reveals, focuses", func(t *testing.T) {
		editor := testutil.NewFakeEditor("a\nb\nc\nd\ne")
		provider.GotoLocation(editor, target, quicknav.GotoOptions{})

		assert.Equal(t, []quicknav.Range{target}, editor.Selections)
		assert.Equal(t, []quicknav.Range{target}, editor.Revealed)
		assert.Equal(t, 1, editor.Focused)
	})

	t.Run("ctrl-cmd opens to the side", func(t *testing.T) {
		editor := testutil.NewFakeSideBySideEditor("a\nb\nc\nd\ne")
		provider.GotoLocation(editor, target, quicknav.GotoOptions{
			KeyMods: quicknav.KeyMods{CtrlCmd: true},
		})

		assert.Equal(t, []quicknav.Range{target}, editor.OpenedToSide)
		assert.Empty(t, editor.Selections)
	})

	t.Run("force side-by-side", func(t *testing.T) {
		editor := testutil.NewFakeSideBySideEditor("a\nb")
		provider.GotoLocation(editor, target, quicknav.GotoOptions{ForceSideBySide: true})

		assert.Equal(t, []quicknav.Range{target}, editor.OpenedToSide)
	})

	t.Run("ctrl-cmd without side-by-side support falls back", func(t *testing.T) {
		editor := testutil.NewFakeEditor("a\nb")
		provider.GotoLocation(editor, target, quicknav.GotoOptions{
			KeyMods: quicknav.KeyMods{CtrlCmd: true},
		})

		assert.Equal(t, []quicknav.Range{target}, editor.Selections)
	})
}

func TestGetModelResolvesDiffToModifiedSide(t *testing.T) {
	nav := newFakeNav()
	provider := quicknav.NewProvider[*fakePicker](nav)

	diff := testutil.NewFakeDiffEditor("one\ntwo\nthree")
	model, ok := provider.GetModel(diff)
	require.True(t, ok)
	assert.Equal(t, 3, model.LineCount())

	plain := testutil.NewFakeEditor("one")
	model, ok = provider.GetModel(plain)
	require.True(t, ok)
	assert.Equal(t, 1, model.LineCount())
}
