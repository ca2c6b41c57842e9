package models

import "time"

type CancellationPolicy struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ProfessionalID uint `gorm:"uniqueIndex" json:"professional_id"`

	MinHoursBeforeCancellation   int     `gorm:"default:24" json:"min_hours_before_cancellation"`
	MinDaysBeforeNextAppointment int     `gorm:"default:6" json:"min_days_before_next_appointment"`
	CancellationFeePercentage    float64 `json:"cancellation_fee_percentage"`
	AllowReschedule              bool    `gorm:"default:true" json:"allow_reschedule"`

	Description string `gorm:"size:255" json:"description"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
