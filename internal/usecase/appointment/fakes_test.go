package appointment

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	domain "github.com/BruksfildServices01/care-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/care-scheduler/internal/domain/policy"
	"github.com/BruksfildServices01/care-scheduler/internal/domain/transaction"
	"github.com/BruksfildServices01/care-scheduler/internal/events"
	"github.com/BruksfildServices01/care-scheduler/internal/models"
)

// ======================================================
// Fakes em memória para os casos de uso
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
	_ context.Context,
	professionalID uint,
	start time.Time,
	end time.Time,
	excludeID *uint,
) ([]models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var existing []models.Appointment
	for _, ap := range r.items {
		if ap.ProfessionalID == professionalID {
			existing = append(existing, *ap)
		}
	}
	return domain.FilterConflicts(existing, start, end, excludeID), nil
}

func (r *fakeAppointmentRepo) FindManyByProfessionalID(_ context.Context, professionalID uint) ([]models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []models.Appointment
	for _, ap := range r.items {
		if ap.ProfessionalID == professionalID {
			out = append(out, *ap)
		}
	}
	return out, nil
}

func (r *fakeAppointmentRepo) FindManyByClientID(_ context.Context, clientID uint) ([]models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []models.Appointment
	for _, ap := range r.items {
		if ap.ClientID == clientID {
			out = append(out, *ap)
		}
	}
	return out, nil
}

func (r *fakeAppointmentRepo) FindManyByStatus(_ context.Context, status domain.Status) ([]models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []models.Appointment
	for _, ap := range r.items {
		if domain.Status(ap.Status) == status {
			out = append(out, *ap)
		}
	}
	return out, nil
}

func (r *fakeAppointmentRepo) Save(_ context.Context, ap *models.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cp := *ap
	r.items[ap.ID] = &cp
	return nil
}

// stored devolve o estado persistido, sem passar pelo caso de uso.
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
	mu     sync.Mutex
	nextID uint
	items  map[uint]*models.Client
}

func newFakeClientRepo() *fakeClientRepo {
	return &fakeClientRepo{nextID: 1, items: map[uint]*models.Client{}}
}

func (r *fakeClientRepo) Create(_ context.Context, c *models.Client) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	c.ID = r.nextID
	r.nextID++
	cp := *c
	r.items[c.ID] = &cp
	return nil
}

func (r *fakeClientRepo) FindByID(_ context.Context, id uint) (*models.Client, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.items[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *c
	return &cp, nil
}

func (r *fakeClientRepo) Save(_ context.Context, c *models.Client) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cp := *c
	r.items[c.ID] = &cp
	return nil
}

// ------------------------------------------------------

type fakeProfessionalRepo struct {
	mu     sync.Mutex
	nextID uint
	items  map[uint]*models.Professional
}

func newFakeProfessionalRepo() *fakeProfessionalRepo {
	return &fakeProfessionalRepo{nextID: 1, items: map[uint]*models.Professional{}}
}

func (r *fakeProfessionalRepo) Create(_ context.Context, p *models.Professional) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p.ID = r.nextID
	r.nextID++
	cp := *p
	r.items[p.ID] = &cp
	return nil
}

func (r *fakeProfessionalRepo) FindByID(_ context.Context, id uint) (*models.Professional, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.items[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProfessionalRepo) Save(_ context.Context, p *models.Professional) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cp := *p
	r.items[p.ID] = &cp
	return nil
}

// ------------------------------------------------------

type fakePolicyRepo struct {
	mu    sync.Mutex
	items map[uint]*models.CancellationPolicy
}

func newFakePolicyRepo() *fakePolicyRepo {
	return &fakePolicyRepo{items: map[uint]*models.CancellationPolicy{}}
}

func (r *fakePolicyRepo) Create(_ context.Context, p *models.CancellationPolicy) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cp := *p
	r.items[p.ProfessionalID] = &cp
	return nil
}

func (r *fakePolicyRepo) FindByProfessionalID(_ context.Context, professionalID uint) (*models.CancellationPolicy, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.items[professionalID]
	if !ok {
		return nil, policy.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *fakePolicyRepo) Save(_ context.Context, p *models.CancellationPolicy) error {
	return r.Create(context.Background(), p)
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

type memorySink struct {
	mu     sync.Mutex
	events []domain.Event
}

func (s *memorySink) Record(ev domain.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.events = append(s.events, ev)
	return nil
}

func (s *memorySink) names() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]string, 0, len(s.events))
	for _, ev := range s.events {
		out = append(out, ev.Name)
	}
	return out
}

// ======================================================
// Cenário base compartilhado pelos testes
// ======================================================

type scenario struct {
	appointments  *fakeAppointmentRepo
	clients       *fakeClientRepo
	professionals *fakeProfessionalRepo
	policies      *fakePolicyRepo
	transactions  *fakeTransactionRepo
	sink          *memorySink
	dispatcher    *events.Dispatcher

	client       *models.Client
	professional *models.Professional
	policy       *models.CancellationPolicy

	now time.Time
}

func newScenario() *scenario {
	s := &scenario{
		appointments:  newFakeAppointmentRepo(),
		clients:       newFakeClientRepo(),
		professionals: newFakeProfessionalRepo(),
		policies:      newFakePolicyRepo(),
		transactions:  newFakeTransactionRepo(),
		sink:          &memorySink{},
		now:           time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC),
	}
	s.dispatcher = events.NewDispatcher(s.sink, zap.NewNop())

	ctx := context.Background()

	s.client = &models.Client{Name: "Maria Souza", Email: "maria@exemplo.com"}
	_ = s.clients.Create(ctx, s.client)

	s.professional = &models.Professional{Name: "Dra. Ana Lima", Email: "ana@exemplo.com"}
	_ = s.professionals.Create(ctx, s.professional)

	pol, _ := policy.New(s.professional.ID, 24, 6, 20, true, "")
	s.policy = pol
	_ = s.policies.Create(ctx, pol)

	return s
}

func (s *scenario) clock() func() time.Time {
	return func() time.Time { return s.now }
}

// createInput monta um pedido de criação com horário relativo a s.now.
func (s *scenario) createInput(startOffset, duration time.Duration) CreateAppointmentInput {
	return CreateAppointmentInput{
		ClientID:       s.client.ID,
		ProfessionalID: s.professional.ID,
		Start:          s.now.Add(startOffset),
		End:            s.now.Add(startOffset + duration),
		Modality:       domain.ModalityOnline,
		Price:          200,
	}
}

// mustCreate agenda uma consulta direto no repositório fake.
func (s *scenario) mustCreate(start, end time.Time, status domain.Status) *models.Appointment {
	ap, err := domain.New(domain.NewAppointmentInput{
		ClientID:       s.client.ID,
		ProfessionalID: s.professional.ID,
		Start:          start,
		End:            end,
		Modality:       domain.ModalityOnline,
		Price:          200,
	}, s.now)
	if err != nil {
		panic(err)
	}
	ap.Status = string(status)

	if err := s.appointments.Create(context.Background(), ap); err != nil {
		panic(err)
	}
	return ap
}
