package quicknav

import "sync"

// EditorTracker is a ready-made "current editor" accessor: the host
// application pushes the active editor into it and navigators embed it to
// satisfy the accessor half of the Navigator contract.
type EditorTracker struct {
	mu      sync.Mutex
	active  Editor
	changed *Signal[struct{}]
}

// NewEditorTracker creates a tracker with no active editor.
func NewEditorTracker() *EditorTracker {
	return &EditorTracker{changed: NewSignal[struct{}]()}
}

// SetActiveEditor replaces the active editor and fires the change signal.
// Passing nil marks no editor as active.
func (t *EditorTracker) SetActiveEditor(editor Editor) {
	t.mu.Lock()
	if t.active == editor {
		t.mu.Unlock()
		return
	}
	t.active = editor
	t.mu.Unlock()

	t.changed.Emit(struct{}{})
}

// ActiveEditor returns the currently active editor, if any.
func (t *EditorTracker) ActiveEditor() (Editor, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.active == nil {
		return nil, false
	}
	return t.active, true
}

// OnDidActiveEditorChange fires whenever the active editor changes.
func (t *EditorTracker) OnDidActiveEditorChange() *Signal[struct{}] {
	return t.changed
}
