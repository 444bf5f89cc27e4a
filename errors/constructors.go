package errors

import "fmt"

// ConfigNotFound creates a configuration not found error
func ConfigNotFound(path string) *QuicknavError {
	return New(ErrCodeConfigNotFound, fmt.Sprintf("configuration file not found: %s", path)).
		WithDetail("path", path)
}

// ConfigInvalid creates an invalid configuration error
func ConfigInvalid(reason string) *QuicknavError {
	return New(ErrCodeConfigInvalid, fmt.Sprintf("invalid configuration: %s", reason))
}

// EditorAttach creates an editor attach failure error
func EditorAttach(err error) *QuicknavError {
	return Wrap(err, ErrCodeEditorAttach, "failed to attach to editor process")
}

// EditorRPC creates an editor RPC failure error
func EditorRPC(call string, err error) *QuicknavError {
	return Wrap(err, ErrCodeEditorRPC, fmt.Sprintf("editor call '%s' failed", call)).
		WithDetail("call", call)
}

// BufferMissing creates an error for operations against an unloaded buffer
func BufferMissing() *QuicknavError {
	return New(ErrCodeBufferMissing, "no buffer is loaded in the editor")
}

// FileNotFound creates a file not found error
func FileNotFound(path string) *QuicknavError {
	return New(ErrCodeFileNotFound, fmt.Sprintf("file not found: %s", path)).
		WithDetail("path", path)
}
