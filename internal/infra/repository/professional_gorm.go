package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/care-scheduler/internal/models"
)

type ProfessionalGormRepository struct {
	db *gorm.DB
}

func NewProfessionalGormRepository(db *gorm.DB) *ProfessionalGormRepository {
	return &ProfessionalGormRepository{db: db}
}

func (r *ProfessionalGormRepository) Create(
	ctx context.Context,
	pro *models.Professional,
) error {
	return r.db.WithContext(ctx).Create(pro).Error
}

func (r *ProfessionalGormRepository) FindByID(
	ctx context.Context,
	id uint,
) (*models.Professional, error) {

	var pro models.Professional
	if err := r.db.WithContext(ctx).First(&pro, id).Error; err != nil {
		return nil, err
	}
	return &pro, nil
}

func (r *ProfessionalGormRepository) Save(
	ctx context.Context,
	pro *models.Professional,
) error {
	return r.db.WithContext(ctx).Save(pro).Error
}
