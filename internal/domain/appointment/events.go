package appointment

import (
	"time"

	"github.com/google/uuid"
)

// ===============================
// Domain Events
// ===============================

// Eventos são acumulados pelo caso de uso e publicados somente depois
// do persist dar certo, nunca de dentro do agregado.

const (
	EventScheduled = "appointment_scheduled"
	EventConfirmed = "appointment_confirmed"
	EventCancelled = "appointment_cancelled"
)

type Event struct {
	ID             string
	Name           string
	AppointmentID  uint
	ProfessionalID uint
	ClientID       uint
	OccurredAt     time.Time
}

func newEvent(name string, apID, profID, clientID uint, at time.Time) Event {
	return Event{
		ID:             uuid.NewString(),
		Name:           name,
		AppointmentID:  apID,
		ProfessionalID: profID,
		ClientID:       clientID,
		OccurredAt:     at,
	}
}
