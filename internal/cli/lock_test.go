//go:build unix

package cli_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/shades/internal/cli"
)

func TestAcquireInstanceLock(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state", "browse.lock")

	release, err := cli.AcquireInstanceLock(path)
	require.NoError(t, err)

	_, err = cli.AcquireInstanceLock(path)
	assert.ErrorIs(t, err, cli.ErrAlreadyRunning)

	release()

	again, err := cli.AcquireInstanceLock(path)
	require.NoError(t, err)
	again()
}
