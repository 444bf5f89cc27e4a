package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorFormatting(t *testing.T) {
	plain := New(ErrCodeInvalidInput, "bad line number")
	assert.Equal(t, "INVALID_INPUT: bad line number", plain.Error())

	wrapped := Wrap(fmt.Errorf("connection refused"), ErrCodeEditorRPC, "winsaveview failed")
	assert.Equal(t, "EDITOR_RPC_FAILED: winsaveview failed (caused by: connection refused)", wrapped.Error())
}

func TestUnwrap(t *testing.T) {
	cause := fmt.Errorf("boom")
	err := Wrap(cause, ErrCodeInternal, "something broke")

	assert.True(t, stderrors.Is(err, cause))
}

func TestIsMatchesCode(t *testing.T) {
	err := ConfigNotFound("/tmp/quicknav.yml")

	assert.True(t, Is(err, ErrCodeConfigNotFound))
	assert.False(t, Is(err, ErrCodeConfigInvalid))
	assert.False(t, Is(fmt.Errorf("plain"), ErrCodeConfigNotFound))

	// codes survive wrapping in plain errors
	assert.True(t, Is(fmt.Errorf("outer: %w", err), ErrCodeConfigNotFound))
}

func TestGetCode(t *testing.T) {
	assert.Equal(t, ErrCodeBufferMissing, GetCode(BufferMissing()))
	assert.Equal(t, ErrCodeInternal, GetCode(fmt.Errorf("plain")))
}

func TestWithDetail(t *testing.T) {
	err := New(ErrCodeFileNotFound, "no such file").
		WithDetail("path", "main.go").
		WithDetail("line", 10)

	require.NotNil(t, err.Details)
	assert.Equal(t, "main.go", err.Details["path"])
	assert.Equal(t, 10, err.Details["line"])
}

func TestToJSON(t *testing.T) {
	err := New(ErrCodeConfigInvalid, "bad yaml").WithDetail("path", "quicknav.yml")

	out := err.ToJSON()
	assert.Contains(t, out, `"code": "CONFIG_INVALID"`)
	assert.Contains(t, out, `"path": "quicknav.yml"`)
}
