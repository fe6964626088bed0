package implementation

import (
	"context"

	"rag-demo-be/internal/entity"
	"rag-demo-be/internal/mapper"
	"rag-demo-be/internal/model"
	"rag-demo-be/internal/repository/contract"

	"gorm.io/gorm"
)

type IndexingRunRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.IndexingRunMapper
}

func NewIndexingRunRepository(db *gorm.DB) contract.IndexingRunRepository {
	return &IndexingRunRepositoryImpl{
		db:     db,
		mapper: mapper.NewIndexingRunMapper(),
	}
}

func (r *IndexingRunRepositoryImpl) Create(ctx context.Context, run *entity.IndexingRun) error {
	m, err := r.mapper.ToModel(run)
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *IndexingRunRepositoryImpl) FindRecent(ctx context.Context, limit int) ([]*entity.IndexingRun, error) {
	if limit <= 0 {
		limit = 20
	}

	var models []*model.IndexingRun
	err := r.db.WithContext(ctx).
		Order("started_at DESC").
		Limit(limit).
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	return r.mapper.ToEntities(models), nil
}

func (r *IndexingRunRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.IndexingRun{}).Count(&count).Error
	return count, err
}
