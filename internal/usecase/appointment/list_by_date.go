package appointment

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/care-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/care-scheduler/internal/dto"
	"github.com/BruksfildServices01/care-scheduler/internal/timezone"
)

type ListAppointmentsByDate struct {
	appointments domain.Repository
}

func NewListAppointmentsByDate(
	appointments domain.Repository,
) *ListAppointmentsByDate {
	return &ListAppointmentsByDate{
		appointments: appointments,
	}
}

func (uc *ListAppointmentsByDate) Execute(
	ctx context.Context,
	professionalID uint,
	date time.Time,
) ([]dto.AppointmentListDTO, error) {

	loc := timezone.Location(timezone.DefaultTimezone)

	dayStart := time.Date(
		date.Year(),
		date.Month(),
		date.Day(),
		0, 0, 0, 0,
		loc,
	)
	dayEnd := dayStart.Add(24 * time.Hour)

	appointments, err := uc.appointments.FindManyByProfessionalID(ctx, professionalID)
	if err != nil {
		return nil, err
	}

	out := make([]dto.AppointmentListDTO, 0, len(appointments))
	for _, ap := range appointments {
		if !domain.OverlapsAppointment(&ap, dayStart, dayEnd) {
			continue
		}

		out = append(out, dto.AppointmentListDTO{
			ID:         ap.ID,
			StartTime:  ap.StartTime,
			EndTime:    ap.EndTime,
			Status:     ap.Status,
			Modality:   ap.Modality,
			Price:      ap.Price,
			IsPaid:     ap.IsPaid,
			ClientName: ap.Client.Name,
		})
	}

	return out, nil
}
