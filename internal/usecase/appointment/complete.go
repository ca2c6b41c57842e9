package appointment

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/care-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/care-scheduler/internal/httperr"
	"github.com/BruksfildServices01/care-scheduler/internal/models"
	"github.com/BruksfildServices01/care-scheduler/internal/timezone"
)

type CompleteAppointment struct {
	appointments domain.Repository

	now func() time.Time
}

func NewCompleteAppointment(appointments domain.Repository) *CompleteAppointment {
	return &CompleteAppointment{
		appointments: appointments,
		now:          timezone.Now,
	}
}

func (uc *CompleteAppointment) Execute(
	ctx context.Context,
	appointmentID uint,
	professionalID uint,
) (*models.Appointment, error) {

	ap, err := uc.appointments.FindByID(ctx, appointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	if ap.ProfessionalID != professionalID {
		return nil, domain.ErrNotAllowed
	}

	if err := domain.Complete(ap, uc.now()); err != nil {
		return nil, err
	}

	if err := uc.appointments.Save(ctx, ap); err != nil {
		return nil, err
	}

	return ap, nil
}
