package appointment

import (
	"time"

	"github.com/BruksfildServices01/care-scheduler/internal/models"
)

// Overlaps decide se duas janelas [start, end) se intersectam.
// Extremos encostados NÃO contam como conflito: quem termina às 11:00
// libera o horário das 11:00.
//
// Este predicado é a única definição de conflito do sistema; a query
// FindOverlapping do repositório espelha exatamente a mesma condição.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && aEnd.After(bStart)
}

// OverlapsAppointment aplica Overlaps contra a janela de um agendamento.
func OverlapsAppointment(ap *models.Appointment, start, end time.Time) bool {
	return Overlaps(ap.StartTime, ap.EndTime, start, end)
}

// FilterConflicts devolve os agendamentos que colidem com a janela
// candidata, ignorando os já cancelados e, opcionalmente, o próprio
// agendamento sendo movido.
func FilterConflicts(
	existing []models.Appointment,
	start, end time.Time,
	excludeID *uint,
) []models.Appointment {

	var conflicts []models.Appointment
	for i := range existing {
		ap := &existing[i]

		if excludeID != nil && ap.ID == *excludeID {
			continue
		}
		if Status(ap.Status) == StatusCancelled {
			continue
		}
		if OverlapsAppointment(ap, start, end) {
			conflicts = append(conflicts, *ap)
		}
	}

	return conflicts
}
