package httperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/care-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/care-scheduler/internal/domain/policy"
	"github.com/BruksfildServices01/care-scheduler/internal/domain/transaction"
)

// códigos de negócio que viram 404.
var notFoundCodes = map[string]bool{
	"appointment_not_found":         true,
	"client_not_found":              true,
	"professional_not_found":        true,
	"transaction_not_found":         true,
	"cancellation_policy_not_found": true,
	"no_completed_appointment":      true,
}

// Handle traduz qualquer erro dos casos de uso para a resposta HTTP.
// Conflito de horário e remarcação proibida respondem com o mesmo
// código "no_disponibility" que o front já conhece, ainda que
// internamente sejam erros distintos.
func Handle(c *gin.Context, err error) {
	if code, ok := BusinessCode(err); ok {
		if notFoundCodes[code] {
			NotFound(c, code, "Recurso não encontrado.")
			return
		}
		if code == "payment_provider_error" {
			Write(c, http.StatusBadGateway, code, "Falha no provedor de pagamento.")
			return
		}
		BadRequest(c, code, "Operação inválida.")
		return
	}

	switch {
	case errors.Is(err, appointment.ErrNotAllowed):
		Write(c, http.StatusForbidden, "not_allowed", err.Error())

	case errors.Is(err, appointment.ErrSchedulingConflict),
		errors.Is(err, policy.ErrRescheduleNotAllowed):
		Conflict(c, "no_disponibility", "Horário indisponível.")

	case errors.Is(err, appointment.ErrAlreadyCanceled):
		Conflict(c, "already_cancelled", "Consulta já cancelada.")

	case errors.Is(err, appointment.ErrCannotCancelPast):
		BadRequest(c, "cannot_cancel_past", "Consulta no passado não pode ser cancelada.")

	case errors.Is(err, appointment.ErrInvalidTransition):
		BadRequest(c, "invalid_state", "Transição de status inválida.")

	case errors.Is(err, appointment.ErrInvalidPeriod),
		errors.Is(err, appointment.ErrInvalidModality):
		BadRequest(c, "invalid_request", "Dados inválidos.")

	case errors.Is(err, appointment.ErrPaymentLinked):
		Conflict(c, "payment_already_linked", "Consulta já tem pagamento vinculado.")

	case errors.Is(err, transaction.ErrInvalidAmount):
		BadRequest(c, "invalid_amount", "Valor de pagamento inválido.")

	case errors.Is(err, transaction.ErrNotPending),
		errors.Is(err, transaction.ErrAlreadyPaid),
		errors.Is(err, transaction.ErrNotPaid):
		Conflict(c, "invalid_payment_state", "Estado do pagamento não permite a operação.")

	case errors.Is(err, policy.ErrInvalidMinHours),
		errors.Is(err, policy.ErrInvalidFeePercentage):
		BadRequest(c, "invalid_policy", "Política de cancelamento inválida.")

	default:
		Internal(c, "internal_error", "Erro interno.")
	}
}
