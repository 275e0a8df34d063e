package organize

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gavelworks/gavel/internal/common"
)

func TestFileMover_Move(t *testing.T) {
	src := writeDoc(t, t.TempDir(), "opinion.txt", "body")
	dst := filepath.Join(t.TempDir(), "opinion.txt")

	require.NoError(t, FileMover{}.Move(src, dst))

	assert.NoFileExists(t, src)
	data, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "body", string(data))
}

func TestFileMover_CopyRefusesExistingTarget(t *testing.T) {
	src := writeDoc(t, t.TempDir(), "opinion.txt", "incoming")
	dst := writeDoc(t, t.TempDir(), "opinion.txt", "already filed")

	err := FileMover{Copy: true}.Move(src, dst)
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrTargetExists))

	// Neither side was touched.
	data, readErr := os.ReadFile(dst)
	require.NoError(t, readErr)
	assert.Equal(t, "already filed", string(data))
	assert.FileExists(t, src)
}

func TestDryRunMover_TouchesNothing(t *testing.T) {
	src := writeDoc(t, t.TempDir(), "opinion.txt", "body")
	dst := filepath.Join(t.TempDir(), "opinion.txt")

	require.NoError(t, DryRunMover{}.Move(src, dst))

	assert.FileExists(t, src)
	assert.NoFileExists(t, dst)
}
