package contract

import (
	"context"

	"rag-demo-be/internal/entity"
)

type IndexingRunRepository interface {
	Create(ctx context.Context, run *entity.IndexingRun) error
	FindRecent(ctx context.Context, limit int) ([]*entity.IndexingRun, error)
	Count(ctx context.Context) (int64, error)
}
