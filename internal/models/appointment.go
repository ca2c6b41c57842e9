package models

import "time"

// NoMeetLink é o valor sentinela usado quando a consulta não tem link de vídeo.
const NoMeetLink = "no link"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ClientID uint   `gorm:"index" json:"client_id"`
	Client   Client `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"client"`

	ProfessionalID uint         `gorm:"index" json:"professional_id"`
	Professional   Professional `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"professional"`

	StartTime time.Time `gorm:"index" json:"start_time"`
	EndTime   time.Time `json:"end_time"`

	Modality string `gorm:"size:20;default:'in_person'" json:"modality"`
	Status   string `gorm:"size:20;default:'scheduled'" json:"status"`

	Price float64 `json:"price"`

	// Janela anterior registrada quando a consulta é remarcada.
	RescheduleStart *time.Time `json:"reschedule_start"`
	RescheduleEnd   *time.Time `json:"reschedule_end"`

	// Pagamento opcional, vinculado no máximo uma vez.
	PaymentID *uint `json:"payment_id"`
	IsPaid    bool  `gorm:"default:false" json:"is_paid"`

	MeetLink string `gorm:"size:255;default:'no link'" json:"meet_link"`

	CancelledAt *time.Time `json:"cancelled_at"`
	CompletedAt *time.Time `json:"completed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
