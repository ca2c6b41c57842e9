package appointment

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/care-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/care-scheduler/internal/httperr"
	"github.com/BruksfildServices01/care-scheduler/internal/models"
	"github.com/BruksfildServices01/care-scheduler/internal/timezone"
)

// PauseAppointment suspende uma sessão em andamento. A guarda é
// simétrica à de Start: só pausa o que está em andamento, e a sessão
// volta para "scheduled" para poder ser retomada. O tempo decorrido é
// controlado pela camada de apresentação, não aqui.
type PauseAppointment struct {
	appointments domain.Repository

	now func() time.Time
}

func NewPauseAppointment(appointments domain.Repository) *PauseAppointment {
	return &PauseAppointment{
		appointments: appointments,
		now:          timezone.Now,
	}
}

func (uc *PauseAppointment) Execute(
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

	if err := domain.Pause(ap, uc.now()); err != nil {
		return nil, err
	}

	if err := uc.appointments.Save(ctx, ap); err != nil {
		return nil, err
	}

	return ap, nil
}
