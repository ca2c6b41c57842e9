package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/care-scheduler/internal/domain/policy"
	"github.com/BruksfildServices01/care-scheduler/internal/httperr"
	"github.com/BruksfildServices01/care-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/care-scheduler/internal/middleware"
	"github.com/BruksfildServices01/care-scheduler/internal/models"
)

type PolicyHandler struct {
	db *gorm.DB
}

func NewPolicyHandler(db *gorm.DB) *PolicyHandler {
	return &PolicyHandler{db: db}
}

func (h *PolicyHandler) Get(c *gin.Context) {
	professionalID := c.MustGet(middleware.ContextProfessionalID).(uint)

	var pol models.CancellationPolicy
	if err := h.db.
		Where("professional_id = ?", professionalID).
		First(&pol).Error; err != nil {
		httperr.NotFound(c, "cancellation_policy_not_found", "Política não encontrada.")
		return
	}

	httpresp.OK(c, pol)
}

type UpdatePolicyRequest struct {
	MinHoursBeforeCancellation   *int     `json:"min_hours_before_cancellation"`
	MinDaysBeforeNextAppointment *int     `json:"min_days_before_next_appointment"`
	CancellationFeePercentage    *float64 `json:"cancellation_fee_percentage"`
	AllowReschedule              *bool    `json:"allow_reschedule"`
	Description                  *string  `json:"description"`
}

func (h *PolicyHandler) Update(c *gin.Context) {
	professionalID := c.MustGet(middleware.ContextProfessionalID).(uint)

	var req UpdatePolicyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	var pol models.CancellationPolicy
	if err := h.db.
		Where("professional_id = ?", professionalID).
		First(&pol).Error; err != nil {
		httperr.NotFound(c, "cancellation_policy_not_found", "Política não encontrada.")
		return
	}

	if req.MinHoursBeforeCancellation != nil {
		pol.MinHoursBeforeCancellation = *req.MinHoursBeforeCancellation
	}
	if req.MinDaysBeforeNextAppointment != nil {
		pol.MinDaysBeforeNextAppointment = *req.MinDaysBeforeNextAppointment
	}
	if req.CancellationFeePercentage != nil {
		pol.CancellationFeePercentage = *req.CancellationFeePercentage
	}
	if req.AllowReschedule != nil {
		pol.AllowReschedule = *req.AllowReschedule
	}
	if req.Description != nil {
		pol.Description = *req.Description
	}

	// As invariantes valem em toda mutação, não só na criação.
	if err := policy.Validate(&pol); err != nil {
		httperr.Handle(c, err)
		return
	}

	if err := h.db.Save(&pol).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_update_policy"})
		return
	}

	httpresp.OK(c, pol)
}
