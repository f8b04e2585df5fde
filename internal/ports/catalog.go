package ports

import (
	"context"

	"github.com/bnema/mllib-cli/internal/domain"
)

type Catalog interface {
	Categories(ctx context.Context) ([]domain.Category, error)
	ListByCategory(ctx context.Context, category domain.Category) ([]domain.Library, error)
	Describe(ctx context.Context, name string) (domain.Library, error)
}
