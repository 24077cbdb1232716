package jsonl

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"talentscout/internal/domain"
	"talentscout/internal/ports/output"

	"github.com/sirupsen/logrus"
)

// Compile-time check to ensure CandidateRepository implements output.CandidateRepository
var _ output.CandidateRepository = (*CandidateRepository)(nil)

// CandidateRepository struct - Output adapter appending one JSON object per line to a file
type CandidateRepository struct {
	path string
	mu   sync.Mutex
}

// NewCandidateRepository func - Creates a repository writing to path
func NewCandidateRepository(path string) *CandidateRepository {
	return &CandidateRepository{path: path}
}

// Path returns the backing file
func (r *CandidateRepository) Path() string {
	return r.path
}

// Append writes profile as a single line at the end of the file, creating it
// when absent. The line goes out in one write and is fsynced before returning.
func (r *CandidateRepository) Append(profile domain.CandidateProfile) error {
	line, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("failed to encode candidate record: %w", err)
	}
	line = append(line, '\n')

	r.mu.Lock()
	defer r.mu.Unlock()

	if dir := filepath.Dir(r.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory for %s: %w", r.path, err)
		}
	}

	f, err := os.OpenFile(r.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", r.path, err)
	}

	if _, err := f.Write(line); err != nil {
		f.Close()
		return fmt.Errorf("failed to append to %s: %w", r.path, err)
	}
	if err := f.Sync(); err != nil {
		f.Close()
		return fmt.Errorf("failed to flush %s: %w", r.path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", r.path, err)
	}

	logrus.Infof("Appended candidate record to %s", r.path)
	return nil
}

// Ping checks that the directory holding the file exists
func (r *CandidateRepository) Ping() error {
	dir := filepath.Dir(r.path)
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("record directory unavailable: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("record directory unavailable: %s is not a directory", dir)
	}
	return nil
}
