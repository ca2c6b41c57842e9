package worker

import (
	"context"
	"time"

	"go.uber.org/zap"

	ucpayment "github.com/BruksfildServices01/care-scheduler/internal/usecase/payment"
)

// Watcher varre os prazos de pagamento vencidos e dispara o
// cancelamento por timeout. É o agendador externo do qual o domínio só
// conhece a transição CancelDueToPaymentTimeout.
type Watcher struct {
	store    *RedisExpiryStore
	cancel   *ucpayment.CancelOnTimeout
	interval time.Duration
	log      *zap.Logger
}

func NewWatcher(
	store *RedisExpiryStore,
	cancel *ucpayment.CancelOnTimeout,
	interval time.Duration,
	log *zap.Logger,
) *Watcher {
	if interval <= 0 {
		interval = time.Minute
	}

	return &Watcher{
		store:    store,
		cancel:   cancel,
		interval: interval,
		log:      log,
	}
}

// Run bloqueia até o contexto ser cancelado.
func (w *Watcher) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			w.sweep(ctx)
		}
	}
}

func (w *Watcher) sweep(ctx context.Context) {
	due, err := w.store.Due(ctx, time.Now())
	if err != nil {
		w.log.Error("failed to list due payment deadlines", zap.Error(err))
		return
	}

	for _, txID := range due {
		if err := w.cancel.Execute(ctx, txID); err != nil {
			w.log.Error("payment timeout cancel failed",
				zap.Uint("transaction_id", txID),
				zap.Error(err),
			)
			continue
		}

		if err := w.store.Untrack(ctx, txID); err != nil {
			w.log.Warn("failed to untrack deadline",
				zap.Uint("transaction_id", txID),
				zap.Error(err),
			)
		}
	}
}
