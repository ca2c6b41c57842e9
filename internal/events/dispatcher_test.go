package events

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	domain "github.com/BruksfildServices01/care-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/care-scheduler/internal/models"
)

// chanSink entrega cada evento num canal para o teste sincronizar com o
// worker do dispatcher.
type chanSink struct {
	received chan domain.Event
}

func (s *chanSink) Record(ev domain.Event) error {
	s.received <- ev
	return nil
}

func testAppointment(t *testing.T, now time.Time) *models.Appointment {
	t.Helper()

	ap, err := domain.New(domain.NewAppointmentInput{
		ClientID:       1,
		ProfessionalID: 2,
		Start:          now.Add(24 * time.Hour),
		End:            now.Add(25 * time.Hour),
		Modality:       domain.ModalityOnline,
		Price:          200,
	}, now)
	require.NoError(t, err)
	ap.ID = 7

	return ap
}

func TestDispatcher_DeliversToSink(t *testing.T) {
	sink := &chanSink{received: make(chan domain.Event, 10)}
	d := NewDispatcher(sink, zap.NewNop())

	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	ap := testAppointment(t, now)

	d.Publish(domain.Scheduled(ap, now))

	select {
	case got := <-sink.received:
		assert.Equal(t, domain.EventScheduled, got.Name)
		assert.Equal(t, uint(7), got.AppointmentID)
		assert.NotEmpty(t, got.ID)
	case <-time.After(time.Second):
		t.Fatal("event was not delivered")
	}
}

func TestDispatcher_SkipsEmptyEvents(t *testing.T) {
	sink := &chanSink{received: make(chan domain.Event, 10)}
	d := NewDispatcher(sink, zap.NewNop())

	d.Publish(domain.Event{})

	select {
	case <-sink.received:
		t.Fatal("empty event must not reach the sink")
	case <-time.After(100 * time.Millisecond):
	}
}

func TestDispatcher_PublishAll(t *testing.T) {
	sink := &chanSink{received: make(chan domain.Event, 10)}
	d := NewDispatcher(sink, zap.NewNop())

	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	ap := testAppointment(t, now)

	ev1 := domain.Scheduled(ap, now)
	ev2, err := domain.Cancel(ap, now)
	require.NoError(t, err)

	d.PublishAll([]domain.Event{ev1, ev2})

	names := make([]string, 0, 2)
	for i := 0; i < 2; i++ {
		select {
		case got := <-sink.received:
			names = append(names, got.Name)
		case <-time.After(time.Second):
			t.Fatal("events were not delivered")
		}
	}
	assert.Equal(t, []string{domain.EventScheduled, domain.EventCancelled}, names)
}
