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

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	ClientID       uint
	ProfessionalID uint

	Start time.Time
	End   time.Time

	Modality domain.Modality
	Price    float64
	MeetLink string
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	appointments  domain.Repository
	clients       domain.ClientRepository
	professionals domain.ProfessionalRepository
	events        *events.Dispatcher

	now func() time.Time
}

func NewCreateAppointment(
	appointments domain.Repository,
	clients domain.ClientRepository,
	professionals domain.ProfessionalRepository,
	events *events.Dispatcher,
) *CreateAppointment {
	return &CreateAppointment{
		appointments:  appointments,
		clients:       clients,
		professionals: professionals,
		events:        events,
		now:           timezone.Now,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	if _, err := uc.clients.FindByID(ctx, in.ClientID); err != nil {
		return nil, httperr.ErrBusiness("client_not_found")
	}

	if _, err := uc.professionals.FindByID(ctx, in.ProfessionalID); err != nil {
		return nil, httperr.ErrBusiness("professional_not_found")
	}

	// Conflito de horário — única fonte de verdade é o predicado de
	// overlap, espelhado na query do repositório.
	conflicts, err := uc.appointments.FindOverlapping(
		ctx,
		in.ProfessionalID,
		in.Start,
		in.End,
		nil,
	)
	if err != nil {
		return nil, err
	}
	if len(conflicts) > 0 {
		return nil, domain.ErrSchedulingConflict
	}

	now := uc.now()

	ap, err := domain.New(domain.NewAppointmentInput{
		ClientID:       in.ClientID,
		ProfessionalID: in.ProfessionalID,
		Start:          in.Start,
		End:            in.End,
		Modality:       in.Modality,
		Price:          in.Price,
		MeetLink:       in.MeetLink,
	}, now)
	if err != nil {
		return nil, err
	}

	if err := uc.appointments.Create(ctx, ap); err != nil {
		return nil, err
	}

	uc.events.Publish(domain.Scheduled(ap, now))

	return ap, nil
}
