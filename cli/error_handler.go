package cli

import (
	"fmt"
	"os"

	"github.com/grovetools/quicknav/errors"
)

// ErrorHandler provides user-friendly error messages
type ErrorHandler struct {
	Verbose bool
}

// NewErrorHandler creates a new error handler
func NewErrorHandler(verbose bool) *ErrorHandler {
	return &ErrorHandler{
		Verbose: verbose,
	}
}

// Handle provides user-friendly error messages based on error type
func (h *ErrorHandler) Handle(err error) error {
	switch errors.GetCode(err) {
	case errors.ErrCodeConfigNotFound:
		fmt.Fprintf(os.Stderr, "❌ No quicknav.yml found. Navigation runs with default settings; create one to customize themes and logging.\n")
		return err

	case errors.ErrCodeEditorAttach:
		fmt.Fprintf(os.Stderr, "❌ Could not start the embedded editor. Make sure 'nvim' is installed and on your PATH.\n")
		return err

	case errors.ErrCodeFileNotFound:
		if qErr, ok := err.(*errors.QuicknavError); ok {
			fmt.Fprintf(os.Stderr, "❌ File '%s' not found\n", qErr.Details["path"])
		}
		return err

	case errors.ErrCodeBufferMissing:
		fmt.Fprintf(os.Stderr, "❌ The editor has no buffer loaded to navigate in.\n")
		return err

	case errors.ErrCodeEditorRPC:
		if qErr, ok := err.(*errors.QuicknavError); ok {
			fmt.Fprintf(os.Stderr, "❌ The editor rejected the '%s' call. It may have exited.\n", qErr.Details["call"])
		}
		return err

	default:
		fmt.Fprintf(os.Stderr, "❌ Error: %v\n", err)

		if h.Verbose {
			if qErr, ok := err.(*errors.QuicknavError); ok {
				fmt.Fprintf(os.Stderr, "\nError details:\n%s\n", qErr.ToJSON())
			}
		}
		return err
	}
}
