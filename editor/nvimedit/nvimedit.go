// Package nvimedit adapts an embedded Neovim instance to the quicknav editor
// contract: view-state snapshots via winsaveview/winrestview, line highlights
// and sign-column markers via extmarks, and cursor/reveal/focus control over
// RPC.
package nvimedit

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/neovim/go-client/nvim"
	"github.com/sirupsen/logrus"

	"github.com/grovetools/quicknav"
	"github.com/grovetools/quicknav/errors"
	"github.com/grovetools/quicknav/logging"
	"github.com/grovetools/quicknav/tui/theme"
)

var log *logrus.Entry

func init() {
	log = logging.NewLogger("nvimedit")
}

const extmarkNamespace = "quicknav"

// highlight groups backing the decoration class and ruler color tokens
const (
	rangeHighlightGroup = "QuicknavRangeHighlight"
	rulerMarkGroup      = "QuicknavRulerMark"
)

// Options holds configuration for attaching a new embedded Neovim editor.
type Options struct {
	// Path is an optional file to open on startup.
	Path string

	// UseConfig loads the user's Neovim config instead of --clean.
	UseConfig bool
}

// Editor drives one Neovim window/buffer pair through the quicknav editor
// contract. Methods on the contract have no error returns; RPC failures are
// logged and surface as "nothing to do".
type Editor struct {
	v    *nvim.Nvim
	win  nvim.Window
	nsID int

	// owned reports whether Close should terminate the child process.
	owned bool
}

// Attach starts an embedded Neovim child process and binds an editor to its
// current window.
func Attach(opts Options) (*Editor, error) {
	args := []string{"--embed", "--headless"}
	if !opts.UseConfig {
		args = append(args, "--clean")
	}

	v, err := nvim.NewChildProcess(nvim.ChildProcessArgs(args...))
	if err != nil {
		return nil, errors.EditorAttach(err)
	}

	e, err := Bind(v)
	if err != nil {
		v.Close()
		return nil, err
	}
	e.owned = true

	if opts.Path != "" {
		if err := v.Command("edit " + escapePath(opts.Path)); err != nil {
			e.Close()
			return nil, errors.Wrap(err, errors.ErrCodeFileNotFound, "failed to open file").
				WithDetail("path", opts.Path)
		}
	}

	return e, nil
}

// Bind wraps an already-connected Neovim instance. Close leaves the instance
// running.
func Bind(v *nvim.Nvim) (*Editor, error) {
	win, err := v.CurrentWindow()
	if err != nil {
		return nil, errors.EditorRPC("nvim_get_current_win", err)
	}

	nsID, err := v.CreateNamespace(extmarkNamespace)
	if err != nil {
		return nil, errors.EditorRPC("nvim_create_namespace", err)
	}

	e := &Editor{v: v, win: win, nsID: nsID}
	e.defineHighlightGroups()
	return e, nil
}

// Nvim exposes the underlying client for callers that need direct access.
func (e *Editor) Nvim() *nvim.Nvim {
	return e.v
}

// Close releases the editor and, when it owns the child process, shuts
// Neovim down.
func (e *Editor) Close() error {
	if e.owned && e.v != nil {
		return e.v.Close()
	}
	return nil
}

// SaveViewState captures the window's scroll position and cursor through
// winsaveview.
func (e *Editor) SaveViewState() (quicknav.ViewState, bool) {
	var view map[string]interface{}
	if err := e.inWindow(func() error {
		return e.v.Call("winsaveview", &view)
	}); err != nil {
		log.WithError(err).Debug("winsaveview failed")
		return nil, false
	}
	return view, true
}

// RestoreViewState re-applies a winsaveview snapshot.
func (e *Editor) RestoreViewState(state quicknav.ViewState) {
	view, ok := state.(map[string]interface{})
	if !ok {
		return
	}
	if err := e.inWindow(func() error {
		return e.v.Call("winrestview", nil, view)
	}); err != nil {
		log.WithError(err).Debug("winrestview failed")
	}
}

// SetSelection moves the cursor to the range start. Neovim selections are
// mode-based, so a collapsed cursor is the adapter's rendition of a
// selection.
func (e *Editor) SetSelection(r quicknav.Range) {
	if err := e.v.SetWindowCursor(e.win, [2]int{r.Start.Line, maxInt(r.Start.Column-1, 0)}); err != nil {
		log.WithError(err).Debug("nvim_win_set_cursor failed")
	}
}

// RevealRangeCentered scrolls the window so the range start sits in the
// middle of the viewport.
func (e *Editor) RevealRangeCentered(r quicknav.Range) {
	e.SetSelection(r)
	if err := e.inWindow(func() error {
		return e.v.Command("normal! zz")
	}); err != nil {
		log.WithError(err).Debug("centering reveal failed")
	}
}

// Focus makes the editor's window current.
func (e *Editor) Focus() {
	if err := e.v.SetCurrentWindow(e.win); err != nil {
		log.WithError(err).Debug("nvim_set_current_win failed")
	}
}

// OpenToSide reveals the range in a vertical split beside the current
// window.
func (e *Editor) OpenToSide(r quicknav.Range) {
	if err := e.inWindow(func() error {
		return e.v.Command("vsplit")
	}); err != nil {
		log.WithError(err).Debug("vsplit failed")
		return
	}
	win, err := e.v.CurrentWindow()
	if err != nil {
		log.WithError(err).Debug("nvim_get_current_win failed")
		return
	}
	side := &Editor{v: e.v, win: win, nsID: e.nsID}
	side.RevealRangeCentered(r)
}

// Model resolves the buffer shown in the editor's window.
func (e *Editor) Model() (quicknav.TextModel, bool) {
	buf, err := e.v.WindowBuffer(e.win)
	if err != nil {
		log.WithError(err).Debug("nvim_win_get_buf failed")
		return nil, false
	}
	loaded, err := e.v.IsBufferLoaded(buf)
	if err != nil || !loaded {
		return nil, false
	}
	return &bufferModel{v: e.v, buf: buf}, true
}

// ChangeDecorations removes the extmarks identified by old and applies decs,
// returning the new extmark identifiers.
func (e *Editor) ChangeDecorations(old []quicknav.DecorationID, decs []quicknav.Decoration) []quicknav.DecorationID {
	buf, err := e.v.WindowBuffer(e.win)
	if err != nil {
		log.WithError(err).Debug("nvim_win_get_buf failed")
		return nil
	}

	for _, id := range old {
		extmarkID, ok := parseDecorationID(id)
		if !ok {
			continue
		}
		if _, err := e.v.DeleteBufferExtmark(buf, e.nsID, extmarkID); err != nil {
			log.WithError(err).Debug("nvim_buf_del_extmark failed")
		}
	}

	ids := make([]quicknav.DecorationID, 0, len(decs))
	for _, dec := range decs {
		opts := extmarkOptions(dec)
		line := maxInt(dec.Range.Start.Line-1, 0)
		col := maxInt(dec.Range.Start.Column-1, 0)
		extmarkID, err := e.v.SetBufferExtmark(buf, e.nsID, line, col, opts)
		if err != nil {
			log.WithError(err).Debug("nvim_buf_set_extmark failed")
			continue
		}
		ids = append(ids, quicknav.DecorationID(fmt.Sprintf("extmark:%d", extmarkID)))
	}
	return ids
}

// extmarkOptions translates decoration options into nvim_buf_set_extmark
// options.
func extmarkOptions(dec quicknav.Decoration) map[string]interface{} {
	opts := map[string]interface{}{}

	if dec.Options.ClassName != "" {
		if dec.Options.IsWholeLine {
			opts["line_hl_group"] = rangeHighlightGroup
		} else {
			opts["hl_group"] = rangeHighlightGroup
			opts["end_row"] = maxInt(dec.Range.End.Line-1, 0)
			opts["end_col"] = maxInt(dec.Range.End.Column-1, 0)
		}
	}

	if dec.Options.OverviewRuler != nil {
		// the sign column is the closest Neovim analog to an overview ruler
		opts["sign_text"] = "▎"
		opts["sign_hl_group"] = rulerMarkGroup
	}

	return opts
}

func parseDecorationID(id quicknav.DecorationID) (int, bool) {
	var extmarkID int
	if _, err := fmt.Sscanf(string(id), "extmark:%d", &extmarkID); err != nil {
		return 0, false
	}
	return extmarkID, true
}

// defineHighlightGroups registers the decoration highlight groups, colored
// from the active theme's tokens.
func (e *Editor) defineHighlightGroups() {
	t := theme.DefaultTheme

	bg := colorValue(t.ResolveColor(quicknav.RangeHighlightClass))
	fg := colorValue(t.ResolveColor(string(quicknav.RulerHighlightColor)))

	for _, cmd := range []string{
		fmt.Sprintf("highlight default %s %s", rangeHighlightGroup, colorArg("bg", bg)),
		fmt.Sprintf("highlight default %s %s", rulerMarkGroup, colorArg("fg", fg)),
	} {
		if err := e.v.Command(cmd); err != nil {
			log.WithError(err).Debug("highlight definition failed")
		}
	}
}

// colorArg renders a highlight attribute for either hex (gui) or ANSI
// (cterm) colors.
func colorArg(kind, color string) string {
	if strings.HasPrefix(color, "#") {
		return fmt.Sprintf("gui%s=%s", kind, color)
	}
	return fmt.Sprintf("cterm%s=%s", kind, color)
}

func colorValue(c lipgloss.TerminalColor) string {
	return fmt.Sprint(c)
}

// inWindow runs fn with the editor's window current, restoring the previous
// current window afterwards.
func (e *Editor) inWindow(fn func() error) error {
	prev, err := e.v.CurrentWindow()
	if err != nil {
		return err
	}
	if prev != e.win {
		if err := e.v.SetCurrentWindow(e.win); err != nil {
			return err
		}
		defer func() {
			if err := e.v.SetCurrentWindow(prev); err != nil {
				log.WithError(err).Debug("failed to restore current window")
			}
		}()
	}
	return fn()
}

// escapePath escapes a path for use in an ex command.
func escapePath(path string) string {
	replacer := strings.NewReplacer(" ", `\ `, "|", `\|`, `"`, `\"`)
	return replacer.Replace(path)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// bufferModel exposes a Neovim buffer as a quicknav text model.
type bufferModel struct {
	v   *nvim.Nvim
	buf nvim.Buffer
}

// LineCount returns the buffer's line count.
func (m *bufferModel) LineCount() int {
	count, err := m.v.BufferLineCount(m.buf)
	if err != nil {
		log.WithError(err).Debug("nvim_buf_line_count failed")
		return 0
	}
	return count
}

// LineLength returns the character count of the given 1-based line.
func (m *bufferModel) LineLength(line int) int {
	lines, err := m.v.BufferLines(m.buf, line-1, line, false)
	if err != nil || len(lines) == 0 {
		return 0
	}
	return len([]rune(string(lines[0])))
}
