package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/care-scheduler/internal/models"
)

type PolicyGormRepository struct {
	db *gorm.DB
}

func NewPolicyGormRepository(db *gorm.DB) *PolicyGormRepository {
	return &PolicyGormRepository{db: db}
}

func (r *PolicyGormRepository) Create(
	ctx context.Context,
	p *models.CancellationPolicy,
) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *PolicyGormRepository) FindByProfessionalID(
	ctx context.Context,
	professionalID uint,
) (*models.CancellationPolicy, error) {

	var p models.CancellationPolicy
	if err := r.db.WithContext(ctx).
		Where("professional_id = ?", professionalID).
		First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PolicyGormRepository) Save(
	ctx context.Context,
	p *models.CancellationPolicy,
) error {
	return r.db.WithContext(ctx).Save(p).Error
}
