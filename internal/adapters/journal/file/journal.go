package file

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/bnema/mllib-cli/internal/domain"
	"github.com/bnema/mllib-cli/internal/ports"
)

const (
	journalDirMode  = 0o700
	journalFileMode = 0o600
)

// Journal appends install records to a plain text file, one line per record.
// The file handle is opened per append and closed before returning, so no
// handle outlives a write. The file is never truncated or rewritten.
type Journal struct {
	path string
	mu   sync.Mutex
}

var _ ports.InstallJournal = (*Journal)(nil)

func New(path string) (*Journal, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve journal path: %w", err)
	}

	return &Journal{path: filepath.Clean(absPath)}, nil
}

func (j *Journal) Path() string {
	return j.path
}

func (j *Journal) Append(ctx context.Context, record domain.InstallRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	j.mu.Lock()
	defer j.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(j.path), journalDirMode); err != nil {
		return fmt.Errorf("create journal directory: %w", err)
	}

	handle, err := os.OpenFile(j.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, journalFileMode)
	if err != nil {
		return fmt.Errorf("open journal file: %w", err)
	}

	_, writeErr := fmt.Fprintln(handle, record.LogLine())
	closeErr := handle.Close()

	if writeErr != nil {
		return fmt.Errorf("append journal record: %w", writeErr)
	}
	if closeErr != nil {
		return fmt.Errorf("close journal file: %w", closeErr)
	}

	return nil
}

func (j *Journal) List(ctx context.Context) ([]domain.InstallRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	j.mu.Lock()
	defer j.mu.Unlock()

	handle, err := os.Open(j.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open journal file: %w", err)
	}
	defer func() {
		_ = handle.Close()
	}()

	var records []domain.InstallRecord
	scanner := bufio.NewScanner(handle)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		record, err := domain.ParseInstallRecord(line)
		if err != nil {
			return nil, fmt.Errorf("read journal: %w", err)
		}
		records = append(records, record)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan journal file: %w", err)
	}

	return records, nil
}
