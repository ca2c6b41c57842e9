package policy

import (
	"context"

	"github.com/BruksfildServices01/care-scheduler/internal/models"
)

type Repository interface {
	Create(ctx context.Context, p *models.CancellationPolicy) error
	FindByProfessionalID(ctx context.Context, professionalID uint) (*models.CancellationPolicy, error)
	Save(ctx context.Context, p *models.CancellationPolicy) error
}
