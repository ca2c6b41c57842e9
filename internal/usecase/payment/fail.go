package payment

import (
	"context"
	"time"

	"github.com/BruksfildServices01/care-scheduler/internal/domain/transaction"
	"github.com/BruksfildServices01/care-scheduler/internal/httperr"
	"github.com/BruksfildServices01/care-scheduler/internal/models"
	"github.com/BruksfildServices01/care-scheduler/internal/timezone"
)

type FailPayment struct {
	transactions transaction.Repository
	expiries     ExpiryStore

	now func() time.Time
}

func NewFailPayment(
	transactions transaction.Repository,
	expiries ExpiryStore,
) *FailPayment {
	return &FailPayment{
		transactions: transactions,
		expiries:     expiries,
		now:          timezone.Now,
	}
}

func (uc *FailPayment) Execute(
	ctx context.Context,
	externalID string,
) (*models.Transaction, error) {

	tx, err := uc.transactions.FindByExternalID(ctx, externalID)
	if err != nil {
		return nil, httperr.ErrBusiness("transaction_not_found")
	}

	if err := transaction.MarkAsFailed(tx, uc.now()); err != nil {
		return nil, err
	}

	if err := uc.transactions.Save(ctx, tx); err != nil {
		return nil, err
	}

	_ = uc.expiries.Untrack(ctx, tx.ID)

	return tx, nil
}
