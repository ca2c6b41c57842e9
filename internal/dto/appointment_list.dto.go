package dto

import "time"

type AppointmentListDTO struct {
	ID         uint      `json:"id"`
	StartTime  time.Time `json:"start_time"`
	EndTime    time.Time `json:"end_time"`
	Status     string    `json:"status"`
	Modality   string    `json:"modality"`
	Price      float64   `json:"price"`
	IsPaid     bool      `json:"is_paid"`
	ClientName string    `json:"client_name"`
}
