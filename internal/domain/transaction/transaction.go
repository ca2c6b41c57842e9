package transaction

import (
	"errors"
	"time"

	"github.com/BruksfildServices01/care-scheduler/internal/models"
)

// ===============================
// Transaction Status
// ===============================

type Status string

const (
	StatusPending  Status = "pending"
	StatusPaid     Status = "paid"
	StatusFailed   Status = "failed"
	StatusRefunded Status = "refunded"
)

type Provider string

const (
	ProviderPix             Provider = "pix"
	ProviderCreditCard      Provider = "credit_card"
	ProviderDebitCard       Provider = "debit_card"
	ProviderExternalGateway Provider = "external_gateway"
	ProviderCash            Provider = "cash"
)

func (p Provider) IsValid() bool {
	switch p {
	case ProviderPix, ProviderCreditCard, ProviderDebitCard, ProviderExternalGateway, ProviderCash:
		return true
	}
	return false
}

var (
	ErrNotFound        = errors.New("transaction not found")
	ErrInvalidAmount   = errors.New("transaction amount must be positive")
	ErrInvalidProvider = errors.New("invalid payment provider")
	ErrNotPending      = errors.New("transaction is not pending")
	ErrAlreadyPaid     = errors.New("paid transaction cannot be downgraded")
	ErrNotPaid         = errors.New("only paid transactions can be refunded")
)

// ===============================
// Factory / Domain Actions
// ===============================

func New(clientID, appointmentID uint, amount float64, provider Provider, now time.Time) (*models.Transaction, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}
	if !provider.IsValid() {
		return nil, ErrInvalidProvider
	}

	return &models.Transaction{
		ClientID:      clientID,
		AppointmentID: appointmentID,
		Amount:        amount,
		Provider:      string(provider),
		Status:        string(StatusPending),
		CreatedAt:     now,
		UpdatedAt:     now,
	}, nil
}

// MarkAsPaid só sai de "pending". Confirmar duas vezes, ou confirmar
// algo que já falhou, é erro de programação do caller.
func MarkAsPaid(tx *models.Transaction, externalID string, now time.Time) error {
	if Status(tx.Status) != StatusPending {
		return ErrNotPending
	}

	tx.Status = string(StatusPaid)
	tx.ExternalPaymentID = &externalID
	tx.UpdatedAt = now
	return nil
}

// MarkAsFailed nunca rebaixa uma transação já paga.
func MarkAsFailed(tx *models.Transaction, now time.Time) error {
	if Status(tx.Status) == StatusPaid {
		return ErrAlreadyPaid
	}

	tx.Status = string(StatusFailed)
	tx.UpdatedAt = now
	return nil
}

// Refund devolve uma transação paga (cancelamento com direito a
// reembolso, total ou parcial conforme a política).
func Refund(tx *models.Transaction, now time.Time) error {
	if Status(tx.Status) != StatusPaid {
		return ErrNotPaid
	}

	tx.Status = string(StatusRefunded)
	tx.UpdatedAt = now
	return nil
}

// SetExternalRef registra o id da cobrança no provedor, assim que ela é
// criada (antes da confirmação).
func SetExternalRef(tx *models.Transaction, externalID string, now time.Time) {
	tx.ExternalPaymentID = &externalID
	tx.UpdatedAt = now
}

// SetLink registra a URL de cobrança devolvida pelo provedor.
func SetLink(tx *models.Transaction, url string, now time.Time) {
	tx.LinkURL = &url
	tx.UpdatedAt = now
}
