package metrics

import (
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/srodi/procmon/pkg/types"
)

// Recorder exports what each collection cycle observed.
type Recorder struct {
	gatherer prometheus.Gatherer

	collections prometheus.Counter
	errors      prometheus.Counter
	truncations prometheus.Counter
	entries     prometheus.Gauge
	excluded    prometheus.Gauge
	duration    prometheus.Histogram
}

// NewRecorder creates the collectors and registers them with reg.
// A nil reg uses a private registry.
func NewRecorder(reg *prometheus.Registry) (*Recorder, error) {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	r := &Recorder{
		gatherer: reg,
		collections: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "procmon",
			Subsystem: "snapshot",
			Name:      "collections_total",
			Help:      "Number of completed process snapshots.",
		}),
		errors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "procmon",
			Subsystem: "snapshot",
			Name:      "errors_total",
			Help:      "Number of collections that could not open the process listing.",
		}),
		truncations: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "procmon",
			Subsystem: "snapshot",
			Name:      "truncations_total",
			Help:      "Number of snapshots that reached capacity before the listing ended.",
		}),
		entries: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "procmon",
			Subsystem: "snapshot",
			Name:      "entries",
			Help:      "Processes kept in the latest snapshot.",
		}),
		excluded: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "procmon",
			Subsystem: "snapshot",
			Name:      "excluded",
			Help:      "Processes dropped from the latest snapshot for lack of resident memory.",
		}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "procmon",
			Subsystem: "snapshot",
			Name:      "duration_seconds",
			Help:      "Time spent building one snapshot.",
			Buckets:   prometheus.DefBuckets,
		}),
	}

	cs := []prometheus.Collector{r.collections, r.errors, r.truncations, r.entries, r.excluded, r.duration}
	for _, c := range cs {
		if err := reg.Register(c); err != nil {
			var are prometheus.AlreadyRegisteredError
			if errors.As(err, &are) {
				continue
			}
			return nil, err
		}
	}
	return r, nil
}

// ObserveSnapshot records a successful collection that took d.
func (r *Recorder) ObserveSnapshot(s *types.Snapshot, d time.Duration) {
	r.collections.Inc()
	r.entries.Set(float64(s.Len()))
	r.excluded.Set(float64(s.Stats.Excluded))
	if s.Stats.Truncated {
		r.truncations.Inc()
	}
	r.duration.Observe(d.Seconds())
}

// ObserveError records a collection that failed to open the listing.
func (r *Recorder) ObserveError() { r.errors.Inc() }

// Handler serves the recorder's registry in the Prometheus text format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.gatherer, promhttp.HandlerOpts{})
}
