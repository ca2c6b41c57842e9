package payment

import (
	"context"
	"time"
)

// Gateway abstrai o provedor de cobrança (MercadoPago em produção).
type Gateway interface {
	CreateCharge(ctx context.Context, in ChargeInput) (*ChargeResult, error)
}

type ChargeInput struct {
	Amount      float64
	Description string
	PayerEmail  string
	Method      string // pix, credit_card, debit_card

	// Chave de idempotência repassada ao provedor; retries não podem
	// gerar cobrança dupla.
	IdempotencyKey string
}

type ChargeResult struct {
	ExternalID string
	LinkURL    string
}

// ExpiryStore agenda o prazo de pagamento de uma transação pendente.
// O worker consome os prazos vencidos e dispara o cancelamento.
type ExpiryStore interface {
	Track(ctx context.Context, transactionID uint, deadline time.Time) error
	Untrack(ctx context.Context, transactionID uint) error
}
