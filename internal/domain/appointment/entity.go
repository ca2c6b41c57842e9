package appointment

import (
	"time"

	"github.com/BruksfildServices01/care-scheduler/internal/models"
)

// ===============================
// Factory
// ===============================

type NewAppointmentInput struct {
	ClientID       uint
	ProfessionalID uint
	Start          time.Time
	End            time.Time
	Modality       Modality
	Price          float64
	MeetLink       string
}

// New monta um agendamento novo. O status inicial é sempre "scheduled",
// independente do que o chamador pedir.
func New(in NewAppointmentInput, now time.Time) (*models.Appointment, error) {
	if in.Start.IsZero() || in.End.IsZero() || !in.Start.Before(in.End) {
		return nil, ErrInvalidPeriod
	}
	if !in.Modality.IsValid() {
		return nil, ErrInvalidModality
	}

	link := in.MeetLink
	if link == "" {
		link = models.NoMeetLink
	}

	return &models.Appointment{
		ClientID:       in.ClientID,
		ProfessionalID: in.ProfessionalID,
		StartTime:      in.Start,
		EndTime:        in.End,
		Modality:       string(in.Modality),
		Status:         string(InitialStatus()),
		Price:          in.Price,
		MeetLink:       link,
		CreatedAt:      now,
		UpdatedAt:      now,
	}, nil
}

// Scheduled produz o evento de criação. É chamado depois do persist,
// quando o ID já existe.
func Scheduled(ap *models.Appointment, now time.Time) Event {
	return newEvent(EventScheduled, ap.ID, ap.ProfessionalID, ap.ClientID, now)
}

// ===============================
// Domain Actions
// ===============================

// Confirm marca a consulta como confirmada. Confirmar de novo é um
// no-op (changed = false, sem evento).
func Confirm(ap *models.Appointment, now time.Time) (Event, bool, error) {
	if err := CanConfirm(Status(ap.Status)); err != nil {
		return Event{}, false, err
	}
	if Status(ap.Status) == StatusConfirmed {
		return Event{}, false, nil
	}

	ap.Status = string(StatusConfirmed)
	touch(ap, now)
	return newEvent(EventConfirmed, ap.ID, ap.ProfessionalID, ap.ClientID, now), true, nil
}

// Cancel aplica as guardas unificadas de cancelamento: consulta passada
// não cancela, sessão em andamento não cancela, e cancelar duas vezes
// (ou cancelar algo concluído) devolve ErrAlreadyCanceled.
func Cancel(ap *models.Appointment, now time.Time) (Event, error) {
	if ap.StartTime.Before(now) {
		return Event{}, ErrCannotCancelPast
	}

	switch Status(ap.Status) {
	case StatusCancelled, StatusCompleted:
		return Event{}, ErrAlreadyCanceled
	case StatusInProgress:
		return Event{}, ErrInvalidTransition
	}

	ap.Status = string(StatusCancelled)
	ap.CancelledAt = &now
	touch(ap, now)
	return newEvent(EventCancelled, ap.ID, ap.ProfessionalID, ap.ClientID, now), nil
}

// Start inicia a sessão. Só a partir de "scheduled".
func Start(ap *models.Appointment, now time.Time) error {
	if err := CanStart(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusInProgress)
	touch(ap, now)
	return nil
}

// Pause suspende uma sessão em andamento, devolvendo-a para "scheduled"
// para que possa ser retomada via Start. O tempo decorrido é
// responsabilidade da camada de apresentação.
func Pause(ap *models.Appointment, now time.Time) error {
	if err := CanPause(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusScheduled)
	touch(ap, now)
	return nil
}

// Complete conclui uma sessão em andamento.
func Complete(ap *models.Appointment, now time.Time) error {
	if err := CanComplete(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusCompleted)
	ap.CompletedAt = &now
	touch(ap, now)
	return nil
}

// MarkRescheduled move a consulta para a nova janela, guardando a
// janela anterior como trilha de auditoria.
func MarkRescheduled(ap *models.Appointment, newStart, newEnd, now time.Time) error {
	if newStart.IsZero() || newEnd.IsZero() || !newStart.Before(newEnd) {
		return ErrInvalidPeriod
	}

	switch Status(ap.Status) {
	case StatusCancelled, StatusCompleted, StatusInProgress:
		return ErrInvalidTransition
	}

	oldStart := ap.StartTime
	oldEnd := ap.EndTime
	ap.RescheduleStart = &oldStart
	ap.RescheduleEnd = &oldEnd

	ap.StartTime = newStart
	ap.EndTime = newEnd
	ap.Status = string(StatusRescheduled)
	touch(ap, now)
	return nil
}

// LinkPayment vincula a transação de pagamento. O vínculo é definitivo:
// uma vez setado, não pode ser trocado.
func LinkPayment(ap *models.Appointment, transactionID uint, now time.Time) error {
	if ap.PaymentID != nil {
		return ErrPaymentLinked
	}

	ap.PaymentID = &transactionID
	touch(ap, now)
	return nil
}

// MarkPaid registra o pagamento confirmado.
func MarkPaid(ap *models.Appointment, now time.Time) {
	ap.IsPaid = true
	touch(ap, now)
}

// CancelDueToPaymentTimeout só cancela consultas ainda "scheduled" e não
// pagas. Sessão paga ou que já avançou nunca é cancelada pelo timer.
func CancelDueToPaymentTimeout(ap *models.Appointment, now time.Time) (Event, error) {
	if Status(ap.Status) != StatusScheduled || ap.IsPaid {
		return Event{}, ErrInvalidTransition
	}

	ap.Status = string(StatusCancelled)
	ap.CancelledAt = &now
	touch(ap, now)
	return newEvent(EventCancelled, ap.ID, ap.ProfessionalID, ap.ClientID, now), nil
}

func touch(ap *models.Appointment, now time.Time) {
	ap.UpdatedAt = now
}
