package appointment

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/care-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/care-scheduler/internal/events"
	"github.com/BruksfildServices01/care-scheduler/internal/httperr"
	"github.com/BruksfildServices01/care-scheduler/internal/models"
	"github.com/BruksfildServices01/care-scheduler/internal/timezone"
)

type ConfirmAppointment struct {
	appointments domain.Repository
	events       *events.Dispatcher

	now func() time.Time
}

func NewConfirmAppointment(
	appointments domain.Repository,
	events *events.Dispatcher,
) *ConfirmAppointment {
	return &ConfirmAppointment{
		appointments: appointments,
		events:       events,
		now:          timezone.Now,
	}
}

func (uc *ConfirmAppointment) Execute(
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

	ev, changed, err := domain.Confirm(ap, uc.now())
	if err != nil {
		return nil, err
	}

	// Já estava confirmada → sucesso idempotente, nada a persistir.
	if !changed {
		return ap, nil
	}

	if err := uc.appointments.Save(ctx, ap); err != nil {
		return nil, err
	}

	uc.events.Publish(ev)

	return ap, nil
}
