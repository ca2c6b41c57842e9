package appointment

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/care-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/care-scheduler/internal/domain/policy"
	"github.com/BruksfildServices01/care-scheduler/internal/httperr"
	"github.com/BruksfildServices01/care-scheduler/internal/models"
	"github.com/BruksfildServices01/care-scheduler/internal/timezone"
)

type RescheduleAppointmentInput struct {
	AppointmentID uint
	ClientID      uint // cliente solicitante

	NewStart time.Time
	NewEnd   time.Time
}

type RescheduleAppointment struct {
	appointments  domain.Repository
	clients       domain.ClientRepository
	professionals domain.ProfessionalRepository
	policies      policy.Repository

	now func() time.Time
}

func NewRescheduleAppointment(
	appointments domain.Repository,
	clients domain.ClientRepository,
	professionals domain.ProfessionalRepository,
	policies policy.Repository,
) *RescheduleAppointment {
	return &RescheduleAppointment{
		appointments:  appointments,
		clients:       clients,
		professionals: professionals,
		policies:      policies,
		now:           timezone.Now,
	}
}

func (uc *RescheduleAppointment) Execute(
	ctx context.Context,
	in RescheduleAppointmentInput,
) (*models.Appointment, error) {

	ap, err := uc.appointments.FindByID(ctx, in.AppointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	if _, err := uc.professionals.FindByID(ctx, ap.ProfessionalID); err != nil {
		return nil, httperr.ErrBusiness("professional_not_found")
	}
	if _, err := uc.clients.FindByID(ctx, ap.ClientID); err != nil {
		return nil, httperr.ErrBusiness("client_not_found")
	}

	// Remarcação é pedida pelo cliente da consulta, e só por ele.
	if ap.ClientID != in.ClientID {
		return nil, domain.ErrNotAllowed
	}

	pol, err := uc.policies.FindByProfessionalID(ctx, ap.ProfessionalID)
	if err != nil {
		return nil, httperr.ErrBusiness("cancellation_policy_not_found")
	}

	if !pol.AllowReschedule {
		return nil, policy.ErrRescheduleNotAllowed
	}

	// A checagem de conflito ignora a própria consulta sendo movida.
	excludeID := ap.ID
	conflicts, err := uc.appointments.FindOverlapping(
		ctx,
		ap.ProfessionalID,
		in.NewStart,
		in.NewEnd,
		&excludeID,
	)
	if err != nil {
		return nil, err
	}
	if len(conflicts) > 0 {
		return nil, domain.ErrSchedulingConflict
	}

	if err := domain.MarkRescheduled(ap, in.NewStart, in.NewEnd, uc.now()); err != nil {
		return nil, err
	}

	if err := uc.appointments.Save(ctx, ap); err != nil {
		return nil, err
	}

	return ap, nil
}
