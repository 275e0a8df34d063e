// Package organize files classified opinions into a jurisdiction/court
// directory tree.
//
// The organizer wraps the classification engine with the repository's only
// side effect: physically relocating document files. Moves are gated on a
// confidence threshold and serialized per target directory so concurrent
// calls cannot claim the same collision-free name.
package organize

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/gavelworks/gavel/internal/classify"
	"github.com/gavelworks/gavel/internal/common"
	"github.com/gavelworks/gavel/internal/config"
	"github.com/gavelworks/gavel/internal/model"
)

// Config controls where and when documents are filed.
type Config struct {
	// BaseDir is the root of the jurisdiction/court tree.
	BaseDir string

	// Threshold is the minimum confidence required to relocate a file.
	Threshold float64

	// Copy leaves source files in place instead of moving them.
	Copy bool

	// DryRun reports decisions without touching the filesystem.
	DryRun bool
}

// Organizer classifies documents and files them under the base directory.
type Organizer struct {
	classifier *classify.Classifier
	mover      Mover
	dirLocks   map[string]*sync.Mutex
	baseDir    string
	threshold  float64
	dryRun     bool
	mu         sync.Mutex
}

// Decision records the outcome of organizing one document.
type Decision struct {
	Err            error
	Source         string
	Final          string
	Classification model.Classification
	Moved          bool
}

// New creates an organizer; DryRun and Copy select the mover.
func New(classifier *classify.Classifier, cfg Config) *Organizer {
	var mover Mover = FileMover{Copy: cfg.Copy}
	if cfg.DryRun {
		mover = DryRunMover{}
	}
	return NewWithMover(classifier, cfg, mover)
}

// NewWithMover creates an organizer with an explicit mover implementation.
func NewWithMover(classifier *classify.Classifier, cfg Config, mover Mover) *Organizer {
	baseDir := cfg.BaseDir
	if baseDir == "" {
		baseDir = config.DefaultBaseDir
	}
	threshold := cfg.Threshold
	if threshold <= 0 {
		threshold = config.DefaultMoveThreshold
	}

	return &Organizer{
		classifier: classifier,
		mover:      mover,
		dirLocks:   make(map[string]*sync.Mutex),
		baseDir:    baseDir,
		threshold:  threshold,
		dryRun:     cfg.DryRun,
	}
}

// Organize classifies the document at source and, when confidence clears the
// threshold, moves it to base/jurisdiction/court/. The returned decision
// always carries the final path; on failure or low confidence that is the
// unchanged source path.
func (o *Organizer) Organize(ctx context.Context, source string) (*Decision, error) {
	result := o.classifier.Classify(ctx, source)
	filename := filepath.Base(source)

	common.LogInfo("Classified document", common.Fields{
		"file":       filename,
		"court":      result.Category,
		"confidence": fmt.Sprintf("%.2f", result.Confidence),
	})

	decision := &Decision{Source: source, Final: source, Classification: result}

	if !result.Actionable(o.threshold) {
		common.LogInfo("Keeping document in place", common.Fields{
			"file":       filename,
			"suggested":  result.Category,
			"confidence": fmt.Sprintf("%.2f", result.Confidence),
		})
		return decision, nil
	}

	targetDir := filepath.Join(o.baseDir, string(result.Category.Jurisdiction()), string(result.Category))
	if !o.dryRun {
		if err := os.MkdirAll(targetDir, 0o750); err != nil {
			decision.Err = fmt.Errorf("failed to create target directory: %w", err)
			return decision, decision.Err
		}
	}

	// Name resolution and the move must be atomic per target directory.
	unlock := o.lockDir(targetDir)
	defer unlock()

	target, err := freeName(targetDir, filename)
	if err != nil {
		decision.Err = err
		return decision, err
	}

	if err := o.mover.Move(source, target); err != nil {
		decision.Err = common.NewUserError(fmt.Sprintf("failed to move %s", filename), err)
		return decision, decision.Err
	}

	decision.Final = target
	decision.Moved = !o.dryRun
	if decision.Moved {
		common.LogInfo("Filed document", common.Fields{"file": filename, "target": target})
	}
	return decision, nil
}

// OrganizeDir organizes every document file directly inside dir. Per-file
// failures are recorded on their decisions rather than aborting the batch.
func (o *Organizer) OrganizeDir(ctx context.Context, dir string) ([]*Decision, error) {
	files, err := documentFiles(dir)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%w in %s", common.ErrNoDocuments, dir)
	}

	decisions := make([]*Decision, 0, len(files))
	for _, name := range files {
		select {
		case <-ctx.Done():
			return decisions, ctx.Err()
		default:
		}

		decision, err := o.Organize(ctx, filepath.Join(dir, name))
		if err != nil {
			common.LogError(err, "Failed to organize document", common.Fields{"file": name})
		}
		decisions = append(decisions, decision)
	}

	return decisions, nil
}

// lockDir acquires the per-directory mutex, creating it on first use.
func (o *Organizer) lockDir(dir string) func() {
	o.mu.Lock()
	lock, ok := o.dirLocks[dir]
	if !ok {
		lock = &sync.Mutex{}
		o.dirLocks[dir] = lock
	}
	o.mu.Unlock()

	lock.Lock()
	return lock.Unlock
}

// freeName returns the first collision-free path for filename under dir,
// appending _1, _2, ... before the extension. Callers hold the directory
// lock, so the returned name stays free until the move completes.
func freeName(dir, filename string) (string, error) {
	ext := filepath.Ext(filename)
	stem := strings.TrimSuffix(filename, ext)

	target := filepath.Join(dir, filename)
	for counter := 1; ; counter++ {
		_, err := os.Stat(target)
		if os.IsNotExist(err) {
			return target, nil
		}
		if err != nil {
			return "", fmt.Errorf("failed to probe target name: %w", err)
		}
		target = filepath.Join(dir, fmt.Sprintf("%s_%d%s", stem, counter, ext))
	}
}

// documentFiles lists the document-container files directly inside dir,
// sorted by name.
func documentFiles(dir string) ([]string, error) {
	info, err := os.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", common.ErrNotFound, dir)
		}
		return nil, fmt.Errorf("failed to read directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", common.ErrNotDirectory, dir)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory: %w", err)
	}

	files := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(entry.Name())) {
		case ".pdf", ".txt":
			files = append(files, entry.Name())
		}
	}
	return files, nil
}
