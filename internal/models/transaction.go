package models

import "time"

type Transaction struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ClientID uint `gorm:"index" json:"client_id"`

	AppointmentID uint        `gorm:"index" json:"appointment_id"`
	Appointment   Appointment `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	Amount   float64 `json:"amount"`
	Provider string  `gorm:"size:30" json:"provider"`
	Status   string  `gorm:"size:20;default:'pending'" json:"status"`

	// Preenchidos quando o provedor confirma a cobrança.
	ExternalPaymentID *string `gorm:"size:100;index" json:"external_payment_id"`
	LinkURL           *string `gorm:"size:255" json:"link_url"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
