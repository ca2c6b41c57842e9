package appointment

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/care-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/care-scheduler/internal/httperr"
	"github.com/BruksfildServices01/care-scheduler/internal/models"
	"github.com/BruksfildServices01/care-scheduler/internal/timezone"
)

type StartAppointment struct {
	appointments  domain.Repository
	clients       domain.ClientRepository
	professionals domain.ProfessionalRepository

	now func() time.Time
}

func NewStartAppointment(
	appointments domain.Repository,
	clients domain.ClientRepository,
	professionals domain.ProfessionalRepository,
) *StartAppointment {
	return &StartAppointment{
		appointments:  appointments,
		clients:       clients,
		professionals: professionals,
		now:           timezone.Now,
	}
}

func (uc *StartAppointment) Execute(
	ctx context.Context,
	appointmentID uint,
	professionalID uint,
) (*models.Appointment, error) {

	ap, err := uc.appointments.FindByID(ctx, appointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	if _, err := uc.professionals.FindByID(ctx, professionalID); err != nil {
		return nil, httperr.ErrBusiness("professional_not_found")
	}

	if _, err := uc.clients.FindByID(ctx, ap.ClientID); err != nil {
		return nil, httperr.ErrBusiness("client_not_found")
	}

	if ap.ProfessionalID != professionalID {
		return nil, domain.ErrNotAllowed
	}

	if err := domain.Start(ap, uc.now()); err != nil {
		return nil, err
	}

	if err := uc.appointments.Save(ctx, ap); err != nil {
		return nil, err
	}

	return ap, nil
}
