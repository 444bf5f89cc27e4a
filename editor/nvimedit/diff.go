package nvimedit

import (
	"github.com/grovetools/quicknav"
	"github.com/grovetools/quicknav/errors"
)

// DiffEditor presents two files side by side in Neovim diff mode. The
// embedded Editor drives the original side; navigation resolves to the
// modified side per the quicknav diff contract.
type DiffEditor struct {
	*Editor
	modified *Editor
}

// OpenDiff attaches an embedded Neovim showing original and modified in diff
// mode.
func OpenDiff(original, modified string, opts Options) (*DiffEditor, error) {
	e, err := Attach(Options{Path: original, UseConfig: opts.UseConfig})
	if err != nil {
		return nil, err
	}

	for _, cmd := range []string{
		"diffthis",
		"vsplit " + escapePath(modified),
		"diffthis",
	} {
		if err := e.v.Command(cmd); err != nil {
			e.Close()
			return nil, errors.EditorRPC(cmd, err)
		}
	}

	win, err := e.v.CurrentWindow()
	if err != nil {
		e.Close()
		return nil, errors.EditorRPC("nvim_get_current_win", err)
	}

	return &DiffEditor{
		Editor:   e,
		modified: &Editor{v: e.v, win: win, nsID: e.nsID},
	}, nil
}

// ModifiedEditor resolves the editor for the modified side.
func (d *DiffEditor) ModifiedEditor() (quicknav.Editor, bool) {
	if d.modified == nil {
		return nil, false
	}
	return d.modified, true
}
