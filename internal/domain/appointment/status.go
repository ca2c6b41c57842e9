package appointment

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusScheduled   Status = "scheduled"
	StatusConfirmed   Status = "confirmed"
	StatusCancelled   Status = "cancelled"
	StatusRescheduled Status = "rescheduled"
	StatusNoShow      Status = "no_show"
	StatusInProgress  Status = "in_progress"
	StatusCompleted   Status = "completed"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusScheduled, StatusConfirmed, StatusCancelled,
		StatusRescheduled, StatusNoShow, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

// ===============================
// Modality
// ===============================

type Modality string

const (
	ModalityInPerson Modality = "in_person"
	ModalityOnline   Modality = "online"
)

func (m Modality) IsValid() bool {
	return m == ModalityInPerson || m == ModalityOnline
}

// InitialStatus é forçado pela factory, independente do chamador.
func InitialStatus() Status {
	return StatusScheduled
}

// ===============================
// Validations
// ===============================

// CanConfirm define se um agendamento pode ser confirmado.
// Confirmar algo já confirmado é um no-op tratado pelo caller.
func CanConfirm(current Status) error {
	if current == StatusInProgress || current == StatusCompleted || current == StatusCancelled {
		return ErrInvalidTransition
	}
	return nil
}

// CanStart define se uma sessão pode ser iniciada.
func CanStart(current Status) error {
	if current != StatusScheduled {
		return ErrInvalidTransition
	}
	return nil
}

// CanPause define se uma sessão em andamento pode ser suspensa.
func CanPause(current Status) error {
	if current != StatusInProgress {
		return ErrInvalidTransition
	}
	return nil
}

// CanComplete define se uma sessão pode ser concluída.
func CanComplete(current Status) error {
	if current != StatusInProgress {
		return ErrInvalidTransition
	}
	return nil
}
