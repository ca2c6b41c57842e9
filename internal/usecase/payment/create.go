package payment

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	domain "github.com/BruksfildServices01/care-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/care-scheduler/internal/domain/transaction"
	"github.com/BruksfildServices01/care-scheduler/internal/httperr"
	"github.com/BruksfildServices01/care-scheduler/internal/models"
	"github.com/BruksfildServices01/care-scheduler/internal/timezone"
)

// Prazo padrão para o cliente pagar antes do agendamento ser cancelado
// pelo worker.
const DefaultPaymentDeadline = 30 * time.Minute

// ======================================================
// CREATE PAYMENT
// ======================================================

type CreatePaymentInput struct {
	AppointmentID uint
	Provider      transaction.Provider
}

type CreatePayment struct {
	appointments domain.Repository
	clients      domain.ClientRepository
	transactions transaction.Repository
	gateway      Gateway
	expiries     ExpiryStore

	now func() time.Time
}

func NewCreatePayment(
	appointments domain.Repository,
	clients domain.ClientRepository,
	transactions transaction.Repository,
	gateway Gateway,
	expiries ExpiryStore,
) *CreatePayment {
	return &CreatePayment{
		appointments: appointments,
		clients:      clients,
		transactions: transactions,
		gateway:      gateway,
		expiries:     expiries,
		now:          timezone.Now,
	}
}

func (uc *CreatePayment) Execute(
	ctx context.Context,
	in CreatePaymentInput,
) (*models.Transaction, error) {

	ap, err := uc.appointments.FindByID(ctx, in.AppointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	if ap.PaymentID != nil {
		return nil, domain.ErrPaymentLinked
	}

	client, err := uc.clients.FindByID(ctx, ap.ClientID)
	if err != nil {
		return nil, httperr.ErrBusiness("client_not_found")
	}

	now := uc.now()

	tx, err := transaction.New(ap.ClientID, ap.ID, ap.Price, in.Provider, now)
	if err != nil {
		return nil, err
	}

	// Dinheiro em mãos não passa pelo gateway; a cobrança fica pendente
	// até o profissional confirmar o recebimento.
	if in.Provider != transaction.ProviderCash {
		res, err := uc.gateway.CreateCharge(ctx, ChargeInput{
			Amount:         tx.Amount,
			Description:    fmt.Sprintf("Consulta #%d", ap.ID),
			PayerEmail:     client.Email,
			Method:         string(in.Provider),
			IdempotencyKey: uuid.NewString(),
		})
		if err != nil {
			return nil, httperr.ErrBusiness("payment_provider_error")
		}

		transaction.SetExternalRef(tx, res.ExternalID, now)
		transaction.SetLink(tx, res.LinkURL, now)
	}

	if err := uc.transactions.Create(ctx, tx); err != nil {
		return nil, err
	}

	if err := domain.LinkPayment(ap, tx.ID, now); err != nil {
		return nil, err
	}
	if err := uc.appointments.Save(ctx, ap); err != nil {
		return nil, err
	}

	if err := uc.expiries.Track(ctx, tx.ID, now.Add(DefaultPaymentDeadline)); err != nil {
		// O rastreio do prazo é melhor-esforço; a cobrança já existe.
		return tx, nil
	}

	return tx, nil
}
