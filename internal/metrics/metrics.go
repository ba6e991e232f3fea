// Package metrics exports per-tick simulation measurements to Prometheus.
package metrics

import (
	"log"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"voxel-ca/internal/rules"
	"voxel-ca/internal/voxel"
)

const namespace = "voxelca"

// Recorder implements the voxelca observer hook on top of Prometheus
// collectors.
type Recorder struct {
	ticks      prometheus.Counter
	duration   prometheus.Histogram
	population *prometheus.GaugeVec
	changes    *prometheus.CounterVec
}

// NewRecorder creates the collectors and registers them with reg. A nil reg
// selects the default registerer.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	r := &Recorder{
		ticks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ticks_total",
			Help:      "Number of completed simulation ticks.",
		}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "tick_duration_seconds",
			Help:      "Wall time spent in one tick.",
			Buckets:   []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25},
		}),
		population: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "population",
			Help:      "Cells holding each material after the last tick.",
		}, []string{"material"}),
		changes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cell_changes_total",
			Help:      "Cell writes by kind.",
		}, []string{"kind"}),
	}
	reg.MustRegister(r.ticks, r.duration, r.population, r.changes)
	return r
}

// ObserveTick records one tick.
func (r *Recorder) ObserveTick(elapsed time.Duration, stats rules.Stats, counts [voxel.MaterialCount]int) {
	r.ticks.Inc()
	r.duration.Observe(elapsed.Seconds())
	for m, c := range counts {
		r.population.WithLabelValues(voxel.Material(m).String()).Set(float64(c))
	}
	r.changes.WithLabelValues("move").Add(float64(stats.Moves))
	r.changes.WithLabelValues("birth").Add(float64(stats.Births))
	r.changes.WithLabelValues("death").Add(float64(stats.Deaths))
}

// Handler serves the metrics gathered by g in the Prometheus text format.
func Handler(g prometheus.Gatherer) http.Handler {
	if g == nil {
		g = prometheus.DefaultGatherer
	}
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}

// Serve exposes /metrics on addr in a background goroutine and returns the
// server so the caller can shut it down.
func Serve(addr string, g prometheus.Gatherer) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", Handler(g))
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		log.Printf("metrics: serving /metrics on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("metrics: server stopped: %v", err)
		}
	}()
	return srv
}
