package payment

import (
	"context"
	"errors"
	"time"

	domain "github.com/BruksfildServices01/care-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/care-scheduler/internal/domain/transaction"
	"github.com/BruksfildServices01/care-scheduler/internal/events"
	"github.com/BruksfildServices01/care-scheduler/internal/httperr"
	"github.com/BruksfildServices01/care-scheduler/internal/timezone"
)

// CancelOnTimeout é disparado pelo worker quando o prazo de pagamento de
// uma transação pendente vence. Consulta já paga ou que já avançou de
// estado nunca é cancelada pelo timer; nesses casos a execução é no-op.
type CancelOnTimeout struct {
	appointments domain.Repository
	transactions transaction.Repository
	events       *events.Dispatcher

	now func() time.Time
}

func NewCancelOnTimeout(
	appointments domain.Repository,
	transactions transaction.Repository,
	events *events.Dispatcher,
) *CancelOnTimeout {
	return &CancelOnTimeout{
		appointments: appointments,
		transactions: transactions,
		events:       events,
		now:          timezone.Now,
	}
}

func (uc *CancelOnTimeout) Execute(ctx context.Context, transactionID uint) error {
	tx, err := uc.transactions.FindByID(ctx, transactionID)
	if err != nil {
		return httperr.ErrBusiness("transaction_not_found")
	}

	// Já saiu de pending (pagou, falhou...) → nada a fazer.
	if transaction.Status(tx.Status) != transaction.StatusPending {
		return nil
	}

	now := uc.now()

	ap, err := uc.appointments.FindByID(ctx, tx.AppointmentID)
	if err != nil {
		return httperr.ErrBusiness("appointment_not_found")
	}

	ev, err := domain.CancelDueToPaymentTimeout(ap, now)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidTransition) {
			return nil
		}
		return err
	}

	if err := transaction.MarkAsFailed(tx, now); err != nil {
		return err
	}

	if err := uc.transactions.Save(ctx, tx); err != nil {
		return err
	}
	if err := uc.appointments.Save(ctx, ap); err != nil {
		return err
	}

	uc.events.Publish(ev)

	return nil
}
