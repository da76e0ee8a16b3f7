package clipboard_test

import (
	"testing"

	atotto "github.com/atotto/clipboard"
	"github.com/fwojciec/maple"
	"github.com/fwojciec/maple/clipboard"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSystem_Copy(t *testing.T) {
	t.Parallel()

	if atotto.Unsupported {
		err := clipboard.NewSystem().Copy("x")
		assert.ErrorIs(t, err, maple.ErrClipboardUnsupported)
		return
	}

	content := `{"name":"Maple Dark"}`
	if err := clipboard.NewSystem().Copy(content); err != nil {
		t.Skipf("clipboard not available: %v", err)
	}

	got, err := atotto.ReadAll()
	require.NoError(t, err)
	assert.Equal(t, content, got)
}
