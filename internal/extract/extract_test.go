package extract

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestExtract_Text(t *testing.T) {
	t.Run("small file is returned whole", func(t *testing.T) {
		path := writeFile(t, "opinion.txt", "Supreme Court, Kings County")
		assert.Equal(t, "Supreme Court, Kings County", Extract(path))
	})

	t.Run("large file is truncated", func(t *testing.T) {
		path := writeFile(t, "opinion.txt", strings.Repeat("a", MaxTextBytes+1000))
		assert.Len(t, Extract(path), MaxTextBytes)
	})

	t.Run("extension match is case-insensitive", func(t *testing.T) {
		path := writeFile(t, "OPINION.TXT", "body")
		assert.Equal(t, "body", Extract(path))
	})
}

func TestExtract_Failures(t *testing.T) {
	t.Run("missing file yields empty string", func(t *testing.T) {
		assert.Empty(t, Extract(filepath.Join(t.TempDir(), "gone.txt")))
	})

	t.Run("unsupported extension yields empty string", func(t *testing.T) {
		path := writeFile(t, "opinion.docx", "content")
		assert.Empty(t, Extract(path))
	})

	t.Run("no extension yields empty string", func(t *testing.T) {
		path := writeFile(t, "opinion", "content")
		assert.Empty(t, Extract(path))
	})

	t.Run("corrupt pdf yields empty string", func(t *testing.T) {
		path := writeFile(t, "broken.pdf", "this is not a pdf")
		assert.Empty(t, Extract(path))
	})

	t.Run("truncated pdf header yields empty string", func(t *testing.T) {
		path := writeFile(t, "truncated.pdf", "%PDF-1.7\n")
		assert.Empty(t, Extract(path))
	})
}
