package events

import (
	"encoding/json"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/care-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/care-scheduler/internal/models"
)

// AuditSink grava cada evento de domínio como linha de auditoria.
type AuditSink struct {
	db *gorm.DB
}

func NewAuditSink(db *gorm.DB) *AuditSink {
	return &AuditSink{db: db}
}

func (s *AuditSink) Record(ev appointment.Event) error {
	meta, _ := json.Marshal(map[string]any{
		"event_id":    ev.ID,
		"client_id":   ev.ClientID,
		"occurred_at": ev.OccurredAt,
	})

	row := models.AuditLog{
		ProfessionalID: &ev.ProfessionalID,
		Action:         ev.Name,
		Entity:         "appointment",
		EntityID:       &ev.AppointmentID,
		Metadata:       string(meta),
	}

	return s.db.Create(&row).Error
}
