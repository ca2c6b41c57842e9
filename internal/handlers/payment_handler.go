package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/care-scheduler/internal/domain/transaction"
	"github.com/BruksfildServices01/care-scheduler/internal/httperr"
	"github.com/BruksfildServices01/care-scheduler/internal/httpresp"
	ucPayment "github.com/BruksfildServices01/care-scheduler/internal/usecase/payment"
)

type PaymentHandler struct {
	createUC  *ucPayment.CreatePayment
	confirmUC *ucPayment.ConfirmPayment
	failUC    *ucPayment.FailPayment
}

func NewPaymentHandler(
	createUC *ucPayment.CreatePayment,
	confirmUC *ucPayment.ConfirmPayment,
	failUC *ucPayment.FailPayment,
) *PaymentHandler {
	return &PaymentHandler{
		createUC:  createUC,
		confirmUC: confirmUC,
		failUC:    failUC,
	}
}

// ======================================================
// CREATE (cobrança de uma consulta)
// ======================================================

type CreatePaymentRequest struct {
	Provider string `json:"provider" binding:"required"`
}

func (h *PaymentHandler) Create(c *gin.Context) {
	appointmentID, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	tx, err := h.createUC.Execute(c.Request.Context(), ucPayment.CreatePaymentInput{
		AppointmentID: appointmentID,
		Provider:      transaction.Provider(req.Provider),
	})
	if err != nil {
		httperr.Handle(c, err)
		return
	}

	httpresp.Created(c, tx)
}

// ======================================================
// WEBHOOK (MercadoPago)
// ======================================================

type WebhookRequest struct {
	Action string `json:"action"`
	Data   struct {
		ID string `json:"id"`
	} `json:"data"`
	Status string `json:"status"`
}

// Webhook recebe a notificação do provedor. O corpo traz o id externo
// da cobrança e o status final; qualquer outro evento é ignorado com
// 200 para o provedor não reenviar.
func (h *PaymentHandler) Webhook(c *gin.Context) {
	var req WebhookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	switch req.Status {
	case "approved":
		if _, err := h.confirmUC.Execute(c.Request.Context(), req.Data.ID); err != nil {
			httperr.Handle(c, err)
			return
		}
	case "rejected", "cancelled":
		if _, err := h.failUC.Execute(c.Request.Context(), req.Data.ID); err != nil {
			httperr.Handle(c, err)
			return
		}
	}

	httpresp.OK(c, gin.H{"received": true})
}
