package payment

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/care-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/care-scheduler/internal/domain/transaction"
	"github.com/BruksfildServices01/care-scheduler/internal/httperr"
	"github.com/BruksfildServices01/care-scheduler/internal/models"
	"github.com/BruksfildServices01/care-scheduler/internal/timezone"
)

// ConfirmPayment processa a confirmação vinda do webhook do provedor:
// marca a transação como paga e sincroniza a flag is_paid da consulta.
type ConfirmPayment struct {
	appointments domain.Repository
	transactions transaction.Repository
	expiries     ExpiryStore

	now func() time.Time
}

func NewConfirmPayment(
	appointments domain.Repository,
	transactions transaction.Repository,
	expiries ExpiryStore,
) *ConfirmPayment {
	return &ConfirmPayment{
		appointments: appointments,
		transactions: transactions,
		expiries:     expiries,
		now:          timezone.Now,
	}
}

func (uc *ConfirmPayment) Execute(
	ctx context.Context,
	externalID string,
) (*models.Transaction, error) {

	tx, err := uc.transactions.FindByExternalID(ctx, externalID)
	if err != nil {
		return nil, httperr.ErrBusiness("transaction_not_found")
	}

	now := uc.now()

	if err := transaction.MarkAsPaid(tx, externalID, now); err != nil {
		return nil, err
	}

	if err := uc.transactions.Save(ctx, tx); err != nil {
		return nil, err
	}

	ap, err := uc.appointments.FindByID(ctx, tx.AppointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	domain.MarkPaid(ap, now)
	if err := uc.appointments.Save(ctx, ap); err != nil {
		return nil, err
	}

	// Pago → o prazo deixa de existir.
	_ = uc.expiries.Untrack(ctx, tx.ID)

	return tx, nil
}
