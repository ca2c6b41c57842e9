package payment

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	domain "github.com/BruksfildServices01/care-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/care-scheduler/internal/domain/transaction"
	"github.com/BruksfildServices01/care-scheduler/internal/models"
)

// ======================================================
// Fakes em memória
// ======================================================

type fakeAppointmentRepo struct {
	mu     sync.Mutex
	nextID uint
	items  map[uint]*models.Appointment
}

func newFakeAppointmentRepo() *fakeAppointmentRepo {
	return &fakeAppointmentRepo{nextID: 1, items: map[uint]*models.Appointment{}}
}

func (r *fakeAppointmentRepo) Create(_ context.Context, ap *models.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	ap.ID = r.nextID
	r.nextID++
	cp := *ap
	r.items[ap.ID] = &cp
	return nil
}

func (r *fakeAppointmentRepo) FindByID(_ context.Context, id uint) (*models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ap, ok := r.items[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *ap
	return &cp, nil
}

func (r *fakeAppointmentRepo) FindOverlapping(
	_ context.Context, _ uint, _ time.Time, _ time.Time, _ *uint,
) ([]models.Appointment, error) {
	return nil, nil
}

func (r *fakeAppointmentRepo) FindManyByProfessionalID(_ context.Context, _ uint) ([]models.Appointment, error) {
	return nil, nil
}

func (r *fakeAppointmentRepo) FindManyByClientID(_ context.Context, _ uint) ([]models.Appointment, error) {
	return nil, nil
}

func (r *fakeAppointmentRepo) FindManyByStatus(_ context.Context, _ domain.Status) ([]models.Appointment, error) {
	return nil, nil
}

func (r *fakeAppointmentRepo) Save(_ context.Context, ap *models.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cp := *ap
	r.items[ap.ID] = &cp
	return nil
}

func (r *fakeAppointmentRepo) stored(id uint) *models.Appointment {
	r.mu.Lock()
	defer r.mu.Unlock()

	ap, ok := r.items[id]
	if !ok {
		return nil
	}
	cp := *ap
	return &cp
}

// ------------------------------------------------------

type fakeClientRepo struct {
	items map[uint]*models.Client
}

func (r *fakeClientRepo) Create(_ context.Context, c *models.Client) error {
	r.items[c.ID] = c
	return nil
}

func (r *fakeClientRepo) FindByID(_ context.Context, id uint) (*models.Client, error) {
	c, ok := r.items[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return c, nil
}

func (r *fakeClientRepo) Save(_ context.Context, c *models.Client) error {
	r.items[c.ID] = c
	return nil
}

// ------------------------------------------------------

type fakeTransactionRepo struct {
	mu     sync.Mutex
	nextID uint
	items  map[uint]*models.Transaction
}

func newFakeTransactionRepo() *fakeTransactionRepo {
	return &fakeTransactionRepo{nextID: 1, items: map[uint]*models.Transaction{}}
}

func (r *fakeTransactionRepo) Create(_ context.Context, tx *models.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	tx.ID = r.nextID
	r.nextID++
	cp := *tx
	r.items[tx.ID] = &cp
	return nil
}

func (r *fakeTransactionRepo) FindByID(_ context.Context, id uint) (*models.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	tx, ok := r.items[id]
	if !ok {
		return nil, transaction.ErrNotFound
	}
	cp := *tx
	return &cp, nil
}

func (r *fakeTransactionRepo) FindByExternalID(_ context.Context, externalID string) (*models.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, tx := range r.items {
		if tx.ExternalPaymentID != nil && *tx.ExternalPaymentID == externalID {
			cp := *tx
			return &cp, nil
		}
	}
	return nil, transaction.ErrNotFound
}

func (r *fakeTransactionRepo) Save(_ context.Context, tx *models.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cp := *tx
	r.items[tx.ID] = &cp
	return nil
}

func (r *fakeTransactionRepo) stored(id uint) *models.Transaction {
	r.mu.Lock()
	defer r.mu.Unlock()

	tx, ok := r.items[id]
	if !ok {
		return nil
	}
	cp := *tx
	return &cp
}

// ------------------------------------------------------

// fakeGateway devolve cobranças determinísticas e conta as chamadas.
type fakeGateway struct {
	mu    sync.Mutex
	calls []ChargeInput
	fail  bool
}

func (g *fakeGateway) CreateCharge(_ context.Context, in ChargeInput) (*ChargeResult, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.fail {
		return nil, errors.New("provider unavailable")
	}

	g.calls = append(g.calls, in)
	n := len(g.calls)
	return &ChargeResult{
		ExternalID: fmt.Sprintf("mp-%d", n),
		LinkURL:    fmt.Sprintf("https://pay.example/mp-%d", n),
	}, nil
}

// ------------------------------------------------------

type fakeExpiryStore struct {
	mu        sync.Mutex
	deadlines map[uint]time.Time
}

func newFakeExpiryStore() *fakeExpiryStore {
	return &fakeExpiryStore{deadlines: map[uint]time.Time{}}
}

func (s *fakeExpiryStore) Track(_ context.Context, transactionID uint, deadline time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.deadlines[transactionID] = deadline
	return nil
}

func (s *fakeExpiryStore) Untrack(_ context.Context, transactionID uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.deadlines, transactionID)
	return nil
}

func (s *fakeExpiryStore) tracked(transactionID uint) (time.Time, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, ok := s.deadlines[transactionID]
	return d, ok
}
