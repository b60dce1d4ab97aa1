package persistence

import (
	"context"
	"fmt"

	"havenground-server/internal/funnel/domain"
	"havenground-server/internal/funnel/persistence/internal"
	"havenground-server/internal/funnel/usecases"
	"havenground-server/internal/infra/sql"
)

func NewLeadRepository(orm sql.ORM) (*SimpleLeadRepository, error) {
	err := orm.AutoMigrate(&internal.Lead{})
	if err != nil {
		return nil, fmt.Errorf("auto migrating: %w", err)
	}

	return &SimpleLeadRepository{
		orm: orm,
	}, nil
}

var _ usecases.LeadRepository = (*SimpleLeadRepository)(nil)

type SimpleLeadRepository struct {
	orm sql.ORM
}

func (r *SimpleLeadRepository) Create(ctx context.Context, lead domain.Lead) error {
	entity := internal.FromLead(lead)
	err := r.orm.
		WithContext(ctx).
		Create(&entity).
		Error()
	if err != nil {
		return fmt.Errorf("database insert: %w", err)
	}

	return nil
}

func (r *SimpleLeadRepository) FindAll(ctx context.Context, pagination usecases.Pagination) ([]domain.Lead, int, error) {
	var total int64
	err := r.orm.
		WithContext(ctx).
		Model(&internal.Lead{}).
		Count(&total).
		Error()
	if err != nil {
		return nil, 0, fmt.Errorf("database count: %w", err)
	}

	var entities []internal.Lead
	err = r.orm.
		WithContext(ctx).
		Order("submitted_at DESC").
		Limit(pagination.Limit).
		Offset(pagination.Offset).
		Find(&entities).
		Error()
	if err != nil {
		return nil, 0, fmt.Errorf("database query: %w", err)
	}

	result := make([]domain.Lead, len(entities))
	for i, entity := range entities {
		result[i] = entity.ToDomain()
	}

	return result, int(total), nil
}
