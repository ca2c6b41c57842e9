package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/care-scheduler/internal/models"
)

type TransactionGormRepository struct {
	db *gorm.DB
}

func NewTransactionGormRepository(db *gorm.DB) *TransactionGormRepository {
	return &TransactionGormRepository{db: db}
}

func (r *TransactionGormRepository) Create(
	ctx context.Context,
	tx *models.Transaction,
) error {
	return r.db.WithContext(ctx).Create(tx).Error
}

func (r *TransactionGormRepository) FindByID(
	ctx context.Context,
	id uint,
) (*models.Transaction, error) {

	var tx models.Transaction
	if err := r.db.WithContext(ctx).First(&tx, id).Error; err != nil {
		return nil, err
	}
	return &tx, nil
}

func (r *TransactionGormRepository) FindByExternalID(
	ctx context.Context,
	externalID string,
) (*models.Transaction, error) {

	var tx models.Transaction
	if err := r.db.WithContext(ctx).
		Where("external_payment_id = ?", externalID).
		First(&tx).Error; err != nil {
		return nil, err
	}
	return &tx, nil
}

func (r *TransactionGormRepository) Save(
	ctx context.Context,
	tx *models.Transaction,
) error {
	return r.db.WithContext(ctx).Save(tx).Error
}
