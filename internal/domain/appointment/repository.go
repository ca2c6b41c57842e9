package appointment

import (
	"context"
	"time"

	"github.com/BruksfildServices01/care-scheduler/internal/models"
)

type Repository interface {
	Create(ctx context.Context, ap *models.Appointment) error

	FindByID(ctx context.Context, id uint) (*models.Appointment, error)

	// FindOverlapping devolve os agendamentos ativos do profissional que
	// colidem com [start, end), opcionalmente ignorando um agendamento
	// (o que está sendo remarcado). A query precisa rodar com lock de
	// linha (FOR UPDATE) para que duas criações concorrentes não passem
	// as duas pela checagem.
	FindOverlapping(
		ctx context.Context,
		professionalID uint,
		start time.Time,
		end time.Time,
		excludeID *uint,
	) ([]models.Appointment, error)

	FindManyByProfessionalID(ctx context.Context, professionalID uint) ([]models.Appointment, error)
	FindManyByClientID(ctx context.Context, clientID uint) ([]models.Appointment, error)
	FindManyByStatus(ctx context.Context, status Status) ([]models.Appointment, error)

	Save(ctx context.Context, ap *models.Appointment) error
}

type ClientRepository interface {
	Create(ctx context.Context, client *models.Client) error
	FindByID(ctx context.Context, id uint) (*models.Client, error)
	Save(ctx context.Context, client *models.Client) error
}

type ProfessionalRepository interface {
	Create(ctx context.Context, pro *models.Professional) error
	FindByID(ctx context.Context, id uint) (*models.Professional, error)
	Save(ctx context.Context, pro *models.Professional) error
}
