package transaction

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/care-scheduler/internal/models"
)

var testNow = time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

func newPending(t *testing.T) *models.Transaction {
	t.Helper()

	tx, err := New(1, 10, 200, ProviderPix, testNow)
	require.NoError(t, err)
	return tx
}

func TestNew(t *testing.T) {
	tx := newPending(t)

	assert.Equal(t, string(StatusPending), tx.Status)
	assert.Equal(t, string(ProviderPix), tx.Provider)
	assert.Nil(t, tx.ExternalPaymentID)
	assert.Nil(t, tx.LinkURL)
}

func TestNew_RejectsNonPositiveAmount(t *testing.T) {
	_, err := New(1, 10, 0, ProviderPix, testNow)
	assert.ErrorIs(t, err, ErrInvalidAmount)

	_, err = New(1, 10, -50, ProviderPix, testNow)
	assert.ErrorIs(t, err, ErrInvalidAmount)
}

func TestNew_RejectsUnknownProvider(t *testing.T) {
	_, err := New(1, 10, 200, Provider("boleto"), testNow)
	assert.ErrorIs(t, err, ErrInvalidProvider)
}

func TestMarkAsPaid(t *testing.T) {
	tx := newPending(t)

	require.NoError(t, MarkAsPaid(tx, "mp-123", testNow))
	assert.Equal(t, string(StatusPaid), tx.Status)
	require.NotNil(t, tx.ExternalPaymentID)
	assert.Equal(t, "mp-123", *tx.ExternalPaymentID)

	// Confirmar de novo é erro: já não está pendente.
	assert.ErrorIs(t, MarkAsPaid(tx, "mp-123", testNow), ErrNotPending)
}

func TestMarkAsFailed_NeverDowngradesPaid(t *testing.T) {
	tx := newPending(t)
	require.NoError(t, MarkAsPaid(tx, "mp-123", testNow))

	assert.ErrorIs(t, MarkAsFailed(tx, testNow), ErrAlreadyPaid)
	assert.Equal(t, string(StatusPaid), tx.Status)
}

func TestMarkAsFailed(t *testing.T) {
	tx := newPending(t)

	require.NoError(t, MarkAsFailed(tx, testNow))
	assert.Equal(t, string(StatusFailed), tx.Status)
}

func TestRefund(t *testing.T) {
	tx := newPending(t)

	// Pendente não reembolsa.
	assert.ErrorIs(t, Refund(tx, testNow), ErrNotPaid)

	require.NoError(t, MarkAsPaid(tx, "mp-123", testNow))
	require.NoError(t, Refund(tx, testNow))
	assert.Equal(t, string(StatusRefunded), tx.Status)

	// Reembolsar de novo também é erro.
	assert.ErrorIs(t, Refund(tx, testNow), ErrNotPaid)
}

func TestSetExternalRefAndLink(t *testing.T) {
	tx := newPending(t)

	SetExternalRef(tx, "mp-999", testNow)
	SetLink(tx, "https://pay.example/mp-999", testNow)

	require.NotNil(t, tx.ExternalPaymentID)
	assert.Equal(t, "mp-999", *tx.ExternalPaymentID)
	require.NotNil(t, tx.LinkURL)
	assert.Equal(t, "https://pay.example/mp-999", *tx.LinkURL)
}
