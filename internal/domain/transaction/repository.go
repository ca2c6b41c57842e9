package transaction

import (
	"context"

	"github.com/BruksfildServices01/care-scheduler/internal/models"
)

type Repository interface {
	Create(ctx context.Context, tx *models.Transaction) error
	FindByID(ctx context.Context, id uint) (*models.Transaction, error)
	FindByExternalID(ctx context.Context, externalID string) (*models.Transaction, error)
	Save(ctx context.Context, tx *models.Transaction) error
}
