package ports

import (
	"context"

	"github.com/bnema/mllib-cli/internal/domain"
)

// InstallJournal persists install attempts, one record per line, append-only.
type InstallJournal interface {
	Append(ctx context.Context, record domain.InstallRecord) error
	List(ctx context.Context) ([]domain.InstallRecord, error)
}
