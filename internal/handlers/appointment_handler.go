package handlers

import (
	"context"
	"strconv"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/care-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/care-scheduler/internal/httperr"
	"github.com/BruksfildServices01/care-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/care-scheduler/internal/middleware"
	"github.com/BruksfildServices01/care-scheduler/internal/models"
	ucAppointment "github.com/BruksfildServices01/care-scheduler/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	createUC       *ucAppointment.CreateAppointment
	cancelUC       *ucAppointment.CancelAppointment
	confirmUC      *ucAppointment.ConfirmAppointment
	startUC        *ucAppointment.StartAppointment
	pauseUC        *ucAppointment.PauseAppointment
	completeUC     *ucAppointment.CompleteAppointment
	rescheduleUC   *ucAppointment.RescheduleAppointment
	scheduleNextUC *ucAppointment.ScheduleNextAppointment
	listByDateUC   *ucAppointment.ListAppointmentsByDate
}

func NewAppointmentHandler(
	createUC *ucAppointment.CreateAppointment,
	cancelUC *ucAppointment.CancelAppointment,
	confirmUC *ucAppointment.ConfirmAppointment,
	startUC *ucAppointment.StartAppointment,
	pauseUC *ucAppointment.PauseAppointment,
	completeUC *ucAppointment.CompleteAppointment,
	rescheduleUC *ucAppointment.RescheduleAppointment,
	scheduleNextUC *ucAppointment.ScheduleNextAppointment,
	listByDateUC *ucAppointment.ListAppointmentsByDate,
) *AppointmentHandler {
	return &AppointmentHandler{
		createUC:       createUC,
		cancelUC:       cancelUC,
		confirmUC:      confirmUC,
		startUC:        startUC,
		pauseUC:        pauseUC,
		completeUC:     completeUC,
		rescheduleUC:   rescheduleUC,
		scheduleNextUC: scheduleNextUC,
		listByDateUC:   listByDateUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	ClientID uint    `json:"client_id" binding:"required"`
	Date     string  `json:"date" binding:"required"`
	Start    string  `json:"start" binding:"required"`
	End      string  `json:"end" binding:"required"`
	Modality string  `json:"modality" binding:"required"`
	Price    float64 `json:"price"`
	MeetLink string  `json:"meet_link"`
}

type RescheduleAppointmentRequest struct {
	ClientID uint   `json:"client_id" binding:"required"`
	Date     string `json:"date" binding:"required"`
	Start    string `json:"start" binding:"required"`
	End      string `json:"end" binding:"required"`
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	professionalID := c.MustGet(middleware.ContextProfessionalID).(uint)

	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	start, err := parseDateTime(req.Date, req.Start)
	if err != nil {
		httperr.BadRequest(c, "invalid_date_or_time", "Data ou hora inválida.")
		return
	}
	end, err := parseDateTime(req.Date, req.End)
	if err != nil {
		httperr.BadRequest(c, "invalid_date_or_time", "Data ou hora inválida.")
		return
	}

	ap, err := h.createUC.Execute(c.Request.Context(), ucAppointment.CreateAppointmentInput{
		ClientID:       req.ClientID,
		ProfessionalID: professionalID,
		Start:          start,
		End:            end,
		Modality:       domain.Modality(req.Modality),
		Price:          req.Price,
		MeetLink:       req.MeetLink,
	})
	if err != nil {
		httperr.Handle(c, err)
		return
	}

	httpresp.Created(c, ap)
}

// ======================================================
// SCHEDULE NEXT (continuação de série)
// ======================================================

func (h *AppointmentHandler) ScheduleNext(c *gin.Context) {
	professionalID := c.MustGet(middleware.ContextProfessionalID).(uint)

	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	start, err := parseDateTime(req.Date, req.Start)
	if err != nil {
		httperr.BadRequest(c, "invalid_date_or_time", "Data ou hora inválida.")
		return
	}
	end, err := parseDateTime(req.Date, req.End)
	if err != nil {
		httperr.BadRequest(c, "invalid_date_or_time", "Data ou hora inválida.")
		return
	}

	ap, err := h.scheduleNextUC.Execute(c.Request.Context(), ucAppointment.CreateAppointmentInput{
		ClientID:       req.ClientID,
		ProfessionalID: professionalID,
		Start:          start,
		End:            end,
		Modality:       domain.Modality(req.Modality),
		Price:          req.Price,
		MeetLink:       req.MeetLink,
	})
	if err != nil {
		httperr.Handle(c, err)
		return
	}

	httpresp.Created(c, ap)
}

// ======================================================
// RESCHEDULE
// ======================================================

func (h *AppointmentHandler) Reschedule(c *gin.Context) {
	appointmentID, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req RescheduleAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	start, err := parseDateTime(req.Date, req.Start)
	if err != nil {
		httperr.BadRequest(c, "invalid_date_or_time", "Data ou hora inválida.")
		return
	}
	end, err := parseDateTime(req.Date, req.End)
	if err != nil {
		httperr.BadRequest(c, "invalid_date_or_time", "Data ou hora inválida.")
		return
	}

	ap, err := h.rescheduleUC.Execute(c.Request.Context(), ucAppointment.RescheduleAppointmentInput{
		AppointmentID: appointmentID,
		ClientID:      req.ClientID,
		NewStart:      start,
		NewEnd:        end,
	})
	if err != nil {
		httperr.Handle(c, err)
		return
	}

	httpresp.OK(c, ap)
}

// ======================================================
// STATE CHANGES
// ======================================================

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	h.stateChange(c, h.cancelUC.Execute)
}

func (h *AppointmentHandler) Confirm(c *gin.Context) {
	h.stateChange(c, h.confirmUC.Execute)
}

func (h *AppointmentHandler) Start(c *gin.Context) {
	h.stateChange(c, h.startUC.Execute)
}

func (h *AppointmentHandler) Pause(c *gin.Context) {
	h.stateChange(c, h.pauseUC.Execute)
}

func (h *AppointmentHandler) Complete(c *gin.Context) {
	h.stateChange(c, h.completeUC.Execute)
}

// ======================================================
// LIST BY DATE
// ======================================================

func (h *AppointmentHandler) ListByDate(c *gin.Context) {
	professionalID := c.MustGet(middleware.ContextProfessionalID).(uint)

	date, err := parseDate(c.Query("date"))
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
		return
	}

	out, err := h.listByDateUC.Execute(c.Request.Context(), professionalID, date)
	if err != nil {
		httperr.Handle(c, err)
		return
	}

	httpresp.List(c, out)
}

// ======================================================
// HELPERS
// ======================================================

type stateChangeFn func(ctx context.Context, appointmentID, professionalID uint) (*models.Appointment, error)

func (h *AppointmentHandler) stateChange(c *gin.Context, fn stateChangeFn) {
	professionalID := c.MustGet(middleware.ContextProfessionalID).(uint)

	appointmentID, ok := paramID(c, "id")
	if !ok {
		return
	}

	ap, err := fn(c.Request.Context(), appointmentID, professionalID)
	if err != nil {
		httperr.Handle(c, err)
		return
	}

	httpresp.OK(c, ap)
}

func paramID(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return 0, false
	}
	return uint(id), true
}
