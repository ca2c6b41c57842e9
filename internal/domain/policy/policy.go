package policy

import (
	"errors"
	"time"

	"github.com/BruksfildServices01/care-scheduler/internal/models"
)

var (
	ErrNotFound               = errors.New("cancellation policy not found")
	ErrInvalidMinHours        = errors.New("min hours before cancellation must be >= 0")
	ErrInvalidFeePercentage   = errors.New("cancellation fee percentage must be between 0 and 100")
	ErrRescheduleNotAllowed   = errors.New("policy does not allow rescheduling")
	ErrNextAppointmentTooSoon = errors.New("next appointment violates the minimum gap")
)

// Defaults aplicados no onboarding quando o profissional não informa nada.
const (
	DefaultMinHoursBeforeCancellation   = 24
	DefaultMinDaysBeforeNextAppointment = 6
)

// New cria a política de um profissional, preenchendo os defaults.
func New(professionalID uint, minHours, minDays int, feePct float64, allowReschedule bool, description string) (*models.CancellationPolicy, error) {
	if minHours == 0 {
		minHours = DefaultMinHoursBeforeCancellation
	}
	if minDays == 0 {
		minDays = DefaultMinDaysBeforeNextAppointment
	}

	p := &models.CancellationPolicy{
		ProfessionalID:               professionalID,
		MinHoursBeforeCancellation:   minHours,
		MinDaysBeforeNextAppointment: minDays,
		CancellationFeePercentage:    feePct,
		AllowReschedule:              allowReschedule,
		Description:                  description,
	}

	if err := Validate(p); err != nil {
		return nil, err
	}
	return p, nil
}

func Validate(p *models.CancellationPolicy) error {
	if p.MinHoursBeforeCancellation < 0 {
		return ErrInvalidMinHours
	}
	if p.CancellationFeePercentage < 0 || p.CancellationFeePercentage > 100 {
		return ErrInvalidFeePercentage
	}
	return nil
}

// InsideNoticeWindow responde se um cancelamento agora já caiu dentro da
// janela mínima de antecedência (e portanto sofre multa).
func InsideNoticeWindow(p *models.CancellationPolicy, start, now time.Time) bool {
	hoursUntilStart := start.Sub(now).Hours()
	return hoursUntilStart < float64(p.MinHoursBeforeCancellation)
}

// FeeRetention calcula o valor que a consulta passa a valer quando o
// cancelamento acontece dentro da janela de antecedência: o preço é
// reduzido ao percentual de multa configurado.
func FeeRetention(p *models.CancellationPolicy, price float64) float64 {
	return price * (p.CancellationFeePercentage / 100)
}

// NextAllowedStart devolve a primeira data permitida para a próxima
// consulta de um cliente, contada a partir do fim da última concluída.
func NextAllowedStart(p *models.CancellationPolicy, lastCompletedEnd time.Time) time.Time {
	return lastCompletedEnd.AddDate(0, 0, p.MinDaysBeforeNextAppointment)
}
