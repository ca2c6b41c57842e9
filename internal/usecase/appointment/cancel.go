package appointment

import (
	"context"
	"fmt"
	"time"

	domain "github.com/BruksfildServices01/care-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/care-scheduler/internal/domain/policy"
	"github.com/BruksfildServices01/care-scheduler/internal/domain/transaction"
	"github.com/BruksfildServices01/care-scheduler/internal/events"
	"github.com/BruksfildServices01/care-scheduler/internal/httperr"
	"github.com/BruksfildServices01/care-scheduler/internal/models"
	"github.com/BruksfildServices01/care-scheduler/internal/timezone"
)

type CancelAppointment struct {
	appointments  domain.Repository
	clients       domain.ClientRepository
	professionals domain.ProfessionalRepository
	policies      policy.Repository
	transactions  transaction.Repository
	events        *events.Dispatcher

	now func() time.Time
}

func NewCancelAppointment(
	appointments domain.Repository,
	clients domain.ClientRepository,
	professionals domain.ProfessionalRepository,
	policies policy.Repository,
	transactions transaction.Repository,
	events *events.Dispatcher,
) *CancelAppointment {
	return &CancelAppointment{
		appointments:  appointments,
		clients:       clients,
		professionals: professionals,
		policies:      policies,
		transactions:  transactions,
		events:        events,
		now:           timezone.Now,
	}
}

func (uc *CancelAppointment) Execute(
	ctx context.Context,
	appointmentID uint,
	professionalID uint,
) (*models.Appointment, error) {

	ap, err := uc.appointments.FindByID(ctx, appointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	if _, err := uc.clients.FindByID(ctx, ap.ClientID); err != nil {
		return nil, httperr.ErrBusiness("client_not_found")
	}
	if _, err := uc.professionals.FindByID(ctx, ap.ProfessionalID); err != nil {
		return nil, httperr.ErrBusiness("professional_not_found")
	}

	if ap.ProfessionalID != professionalID {
		return nil, domain.ErrNotAllowed
	}

	// Sem política de cancelamento configurada, o profissional não pode
	// cancelar: a multa ficaria indefinida.
	pol, err := uc.policies.FindByProfessionalID(ctx, ap.ProfessionalID)
	if err != nil {
		return nil, fmt.Errorf("%w: professional has no cancellation policy", domain.ErrNotAllowed)
	}

	now := uc.now()

	ev, err := domain.Cancel(ap, now)
	if err != nil {
		return nil, err
	}

	// Cancelou dentro da janela mínima de antecedência → o preço é
	// reduzido ao percentual de multa. Fora da janela, nada muda.
	if policy.InsideNoticeWindow(pol, ap.StartTime, now) {
		ap.Price = policy.FeeRetention(pol, ap.Price)
	}

	if err := uc.appointments.Save(ctx, ap); err != nil {
		return nil, err
	}

	// Pagamento já confirmado vira reembolso (parcial quando houve multa).
	if ap.PaymentID != nil {
		if err := uc.refundPaidTransaction(ctx, *ap.PaymentID, now); err != nil {
			return nil, err
		}
	}

	uc.events.Publish(ev)

	return ap, nil
}

func (uc *CancelAppointment) refundPaidTransaction(ctx context.Context, txID uint, now time.Time) error {
	tx, err := uc.transactions.FindByID(ctx, txID)
	if err != nil {
		return httperr.ErrBusiness("transaction_not_found")
	}

	if transaction.Status(tx.Status) != transaction.StatusPaid {
		return nil
	}

	if err := transaction.Refund(tx, now); err != nil {
		return err
	}
	return uc.transactions.Save(ctx, tx)
}
