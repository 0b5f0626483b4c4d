package shortcut_test

import (
	"testing"

	"github.com/bnema/shades/internal/domain/shortcut"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	acc, err := shortcut.Parse("Alt+Shift+F")
	require.NoError(t, err)
	assert.Equal(t, shortcut.Accelerator{Key: "f", Alt: true, Shift: true}, acc)
	assert.Equal(t, "alt+shift+f", acc.String())

	acc, err = shortcut.Parse("shift+control+i")
	require.NoError(t, err)
	assert.Equal(t, "ctrl+shift+i", acc.String())

	acc, err = shortcut.Parse("cmd+e")
	require.NoError(t, err)
	assert.True(t, acc.Meta)
}

func TestParse_Invalid(t *testing.T) {
	for _, in := range []string{"", "alt+", "hyper+f", "shift+f", "f"} {
		_, err := shortcut.Parse(in)
		assert.ErrorIs(t, err, shortcut.ErrInvalidAccelerator, in)
	}
}
