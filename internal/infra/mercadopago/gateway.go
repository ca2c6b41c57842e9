package mercadopago

import (
	"context"
	"fmt"

	mpconfig "github.com/mercadopago/sdk-go/pkg/config"
	mppayment "github.com/mercadopago/sdk-go/pkg/payment"

	ucpayment "github.com/BruksfildServices01/care-scheduler/internal/usecase/payment"
)

// Gateway implementa a cobrança via MercadoPago.
type Gateway struct {
	client mppayment.Client
}

func NewGateway(accessToken string) (*Gateway, error) {
	cfg, err := mpconfig.New(accessToken)
	if err != nil {
		return nil, fmt.Errorf("mercadopago config: %w", err)
	}

	return &Gateway{
		client: mppayment.NewClient(cfg),
	}, nil
}

func (g *Gateway) CreateCharge(
	ctx context.Context,
	in ucpayment.ChargeInput,
) (*ucpayment.ChargeResult, error) {

	req := mppayment.Request{
		TransactionAmount: in.Amount,
		Description:       in.Description,
		PaymentMethodID:   methodID(in.Method),
		Payer: &mppayment.PayerRequest{
			Email: in.PayerEmail,
		},
	}

	res, err := g.client.Create(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("mercadopago create payment: %w", err)
	}

	out := &ucpayment.ChargeResult{
		ExternalID: fmt.Sprintf("%d", res.ID),
	}

	// PIX devolve o ticket com QR code; cartão devolve sem link.
	if res.PointOfInteraction.TransactionData.TicketURL != "" {
		out.LinkURL = res.PointOfInteraction.TransactionData.TicketURL
	}

	return out, nil
}

// methodID traduz o provider interno para o id de método do MercadoPago.
func methodID(provider string) string {
	switch provider {
	case "pix":
		return "pix"
	case "credit_card":
		return "master"
	case "debit_card":
		return "debmaster"
	default:
		return "pix"
	}
}
