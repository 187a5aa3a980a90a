package events

import (
	"context"
	"time"

	"github.com/nsdayo12311231-cmyk/family-helper-app/internal/ledger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog/log"
)

// Sink receives forwarded events. *Publisher is the production Sink.
type Sink interface {
	Publish(ctx context.Context, e ledger.Event) error
}

var forwarded = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "events_forwarded_total",
		Help: "Ledger events handed to the broker, partitioned by result.",
	},
	[]string{"result"},
)

// Collectors returns the Prometheus collectors of the event forwarder.
func Collectors() []prometheus.Collector {
	return []prometheus.Collector{forwarded}
}

// Forwarder moves events from a ledger notifier to a Sink.
//
// Notifier subscribers run synchronously with ledger writes, so events are
// queued and published from Run. When the queue is full, events are dropped.
type Forwarder struct {
	Sink     Sink
	Buffer   int                             // Queue size, defaults to 256
	Attempts int                             // Publish attempts per event, defaults to 3
	Backoff  func(attempt int) time.Duration // Defaults to ExponentialBackoff
}

// ExponentialBackoff returns 1s, 2s, 4s, ... capped at 30s.
func ExponentialBackoff(attempt int) time.Duration {
	d := time.Second << min(attempt, 5)
	return min(d, 30*time.Second)
}

// Run subscribes to all events of n and forwards them until ctx is done.
func (f *Forwarder) Run(ctx context.Context, n *ledger.Notifier) error {
	buffer := f.Buffer
	if buffer <= 0 {
		buffer = 256
	}

	queue := make(chan ledger.Event, buffer)
	unsubscribe := n.SubscribeAll(func(e ledger.Event) {
		select {
		case queue <- e:
		default:
			forwarded.WithLabelValues("dropped").Inc()
			log.Warn().Str("kind", string(e.Kind)).Str("member", e.MemberID.String()).Msg("event queue full, dropping event")
		}
	})
	defer unsubscribe()

	for {
		select {
		case <-ctx.Done():
			return nil
		case e := <-queue:
			f.publish(ctx, e)
		}
	}
}

func (f *Forwarder) publish(ctx context.Context, e ledger.Event) {
	attempts := f.Attempts
	if attempts <= 0 {
		attempts = 3
	}

	backoff := f.Backoff
	if backoff == nil {
		backoff = ExponentialBackoff
	}

	var err error
	for attempt := 0; attempt < attempts; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				forwarded.WithLabelValues("failed").Inc()
				return
			case <-time.After(backoff(attempt - 1)):
			}
		}

		if err = f.Sink.Publish(ctx, e); err == nil {
			forwarded.WithLabelValues("published").Inc()
			return
		}
	}

	forwarded.WithLabelValues("failed").Inc()
	log.Error().Err(err).Str("kind", string(e.Kind)).Str("member", e.MemberID.String()).Int("attempts", attempts).Msg("could not publish event")
}
