package queue

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/smartclinic/clinic-api/internal/core/domain"
	"github.com/smartclinic/clinic-api/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
	drainTimeout   = 5 * time.Second
)

// Dispatcher hands appointment events to a fixed set of workers, sharded by
// appointment ID so the events of one appointment are recorded in order.
type Dispatcher struct {
	workers []chan domain.AppointmentEvent
	service ports.AuditService
	log     zerolog.Logger
	wg      sync.WaitGroup
	onDrop  func()
}

var _ ports.AuditQueue = (*Dispatcher)(nil)

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, service ports.AuditService, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan domain.AppointmentEvent, numWorkers),
		service: service,
		log:     log,
		onDrop:  func() {},
	}
	for i := range d.workers {
		d.workers[i] = make(chan domain.AppointmentEvent, channelBuffer)
	}
	return d
}

// OnDrop registers a callback invoked for every event dropped on a full shard.
func (d *Dispatcher) OnDrop(fn func()) {
	if fn != nil {
		d.onDrop = fn
	}
}

// Start launches all worker goroutines. When ctx is cancelled the workers
// record what is already buffered and exit; Wait blocks until they have.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		d.wg.Add(1)
		go d.runWorker(ctx, i, ch)
	}
}

func (d *Dispatcher) Wait() {
	d.wg.Wait()
}

// Enqueue never blocks the request path: when the shard is full the event is
// dropped and logged.
func (d *Dispatcher) Enqueue(event domain.AppointmentEvent) {
	select {
	case d.workers[d.shardIndex(event.AppointmentID)] <- event:
	default:
		d.onDrop()
		d.log.Warn().
			Int64("appointment_id", event.AppointmentID).
			Str("kind", string(event.Kind)).
			Msg("audit queue full, event dropped")
	}
}

// Depth is the number of buffered events across all shards.
func (d *Dispatcher) Depth() int {
	n := 0
	for _, ch := range d.workers {
		n += len(ch)
	}
	return n
}

func (d *Dispatcher) shardIndex(appointmentID int64) int {
	if appointmentID < 0 {
		appointmentID = -appointmentID
	}
	return int(appointmentID % int64(len(d.workers)))
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan domain.AppointmentEvent) {
	defer d.wg.Done()
	for {
		select {
		case <-ctx.Done():
			d.drain(id, ch)
			return
		case event := <-ch:
			d.record(ctx, id, event)
		}
	}
}

func (d *Dispatcher) drain(id int, ch <-chan domain.AppointmentEvent) {
	ctx, cancel := context.WithTimeout(context.Background(), drainTimeout)
	defer cancel()
	for {
		select {
		case event := <-ch:
			d.record(ctx, id, event)
		default:
			return
		}
	}
}

func (d *Dispatcher) record(ctx context.Context, id int, event domain.AppointmentEvent) {
	if err := d.service.Record(ctx, event); err != nil {
		d.log.Error().Err(err).
			Int64("appointment_id", event.AppointmentID).
			Str("kind", string(event.Kind)).
			Int("worker_id", id).
			Msg("audit event recording failed")
	}
}
