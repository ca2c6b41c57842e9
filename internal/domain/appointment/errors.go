package appointment

import "errors"

var (
	ErrNotFound           = errors.New("appointment not found")
	ErrSchedulingConflict = errors.New("time slot is already booked")
	ErrInvalidTransition  = errors.New("invalid appointment status transition")
	ErrInvalidPeriod      = errors.New("appointment start must be before end")
	ErrInvalidModality    = errors.New("invalid appointment modality")
	ErrAlreadyCanceled    = errors.New("appointment is already cancelled")
	ErrCannotCancelPast   = errors.New("past appointments cannot be cancelled")
	ErrPaymentLinked      = errors.New("appointment already has a linked payment")
	ErrNotAllowed         = errors.New("caller does not own this appointment")
)
