package events

import (
	"go.uber.org/zap"

	"github.com/BruksfildServices01/care-scheduler/internal/domain/appointment"
)

// Sink recebe eventos de domínio já persistidos pelo caso de uso.
type Sink interface {
	Record(ev appointment.Event) error
}

// Dispatcher publica eventos de forma assíncrona. O caso de uso chama
// Publish depois do persist; a fila nunca bloqueia a requisição.
type Dispatcher struct {
	sink  Sink
	queue chan appointment.Event
	log   *zap.Logger
}

func NewDispatcher(sink Sink, log *zap.Logger) *Dispatcher {
	d := &Dispatcher{
		sink:  sink,
		queue: make(chan appointment.Event, 100), // buffer seguro
		log:   log,
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		if err := d.sink.Record(ev); err != nil {
			d.log.Error("event sink failed",
				zap.String("event", ev.Name),
				zap.Uint("appointment_id", ev.AppointmentID),
				zap.Error(err),
			)
		}
	}
}

func (d *Dispatcher) Publish(ev appointment.Event) {
	if ev.Name == "" {
		return
	}

	select {
	case d.queue <- ev:
		// enviado
	default:
		// fila cheia → descartamos o evento (nunca quebrar a API)
		d.log.Warn("event queue full, dropping event",
			zap.String("event", ev.Name),
			zap.Uint("appointment_id", ev.AppointmentID),
		)
	}
}

func (d *Dispatcher) PublishAll(evs []appointment.Event) {
	for _, ev := range evs {
		d.Publish(ev)
	}
}
