package appointment

import (
	"context"
	"fmt"
	"time"

	domain "github.com/BruksfildServices01/care-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/care-scheduler/internal/domain/policy"
	"github.com/BruksfildServices01/care-scheduler/internal/events"
	"github.com/BruksfildServices01/care-scheduler/internal/httperr"
	"github.com/BruksfildServices01/care-scheduler/internal/models"
	"github.com/BruksfildServices01/care-scheduler/internal/timezone"
)

// ScheduleNextAppointment agenda a continuação de uma série: exige que o
// cliente tenha uma consulta concluída e respeita o intervalo mínimo de
// dias configurado na política do profissional.
type ScheduleNextAppointment struct {
	appointments  domain.Repository
	clients       domain.ClientRepository
	professionals domain.ProfessionalRepository
	policies      policy.Repository
	events        *events.Dispatcher

	now func() time.Time
}

func NewScheduleNextAppointment(
	appointments domain.Repository,
	clients domain.ClientRepository,
	professionals domain.ProfessionalRepository,
	policies policy.Repository,
	events *events.Dispatcher,
) *ScheduleNextAppointment {
	return &ScheduleNextAppointment{
		appointments:  appointments,
		clients:       clients,
		professionals: professionals,
		policies:      policies,
		events:        events,
		now:           timezone.Now,
	}
}

func (uc *ScheduleNextAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	if _, err := uc.clients.FindByID(ctx, in.ClientID); err != nil {
		return nil, httperr.ErrBusiness("client_not_found")
	}
	if _, err := uc.professionals.FindByID(ctx, in.ProfessionalID); err != nil {
		return nil, httperr.ErrBusiness("professional_not_found")
	}

	pol, err := uc.policies.FindByProfessionalID(ctx, in.ProfessionalID)
	if err != nil {
		return nil, httperr.ErrBusiness("cancellation_policy_not_found")
	}

	history, err := uc.appointments.FindManyByClientID(ctx, in.ClientID)
	if err != nil {
		return nil, err
	}

	last := lastCompleted(history)
	if last == nil {
		// Sem histórico concluído não existe "próxima" consulta.
		return nil, httperr.ErrBusiness("no_completed_appointment")
	}

	nextAllowed := policy.NextAllowedStart(pol, last.EndTime)
	if in.Start.Before(nextAllowed) {
		return nil, fmt.Errorf(
			"%w: next appointment allowed from %s",
			domain.ErrNotAllowed,
			nextAllowed.Format("2006-01-02"),
		)
	}

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

// lastCompleted encontra a consulta concluída mais recente (maior fim).
func lastCompleted(history []models.Appointment) *models.Appointment {
	var last *models.Appointment
	for i := range history {
		ap := &history[i]
		if domain.Status(ap.Status) != domain.StatusCompleted {
			continue
		}
		if last == nil || ap.EndTime.After(last.EndTime) {
			last = ap
		}
	}
	return last
}
