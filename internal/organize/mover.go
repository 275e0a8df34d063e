package organize

import (
	"fmt"
	"io"
	"os"

	"github.com/gavelworks/gavel/internal/common"
)

// Mover performs the single side-effecting step of the pipeline. It is an
// interface so tests and dry runs can swap the filesystem out.
type Mover interface {
	Move(src, dst string) error
}

// FileMover relocates files on the local filesystem.
type FileMover struct {
	// Copy leaves the source file in place instead of moving it.
	Copy bool
}

// Move relocates src to dst. Rename is attempted first; a cross-device
// rename falls back to copy-then-delete, matching the behavior users expect
// from mv.
func (m FileMover) Move(src, dst string) error {
	if m.Copy {
		return copyFile(src, dst)
	}

	if err := os.Rename(src, dst); err == nil {
		return nil
	}

	if err := copyFile(src, dst); err != nil {
		return err
	}
	return os.Remove(src)
}

// DryRunMover reports success without touching the filesystem.
type DryRunMover struct{}

// Move is a no-op.
func (DryRunMover) Move(_, _ string) error {
	return nil
}

// copyFile copies src to dst, refusing to overwrite an existing file. A
// partial copy is removed on failure so no half-written target survives.
func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("failed to open source: %w", err)
	}
	defer func() {
		_ = in.Close()
	}()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if os.IsExist(err) {
			return fmt.Errorf("%w: %s", common.ErrTargetExists, dst)
		}
		return fmt.Errorf("failed to create target: %w", err)
	}

	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		_ = os.Remove(dst)
		return fmt.Errorf("failed to copy contents: %w", err)
	}

	if err := out.Close(); err != nil {
		_ = os.Remove(dst)
		return fmt.Errorf("failed to finalize target: %w", err)
	}

	return nil
}
