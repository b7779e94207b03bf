// Package metrics exports simulation health as prometheus collectors
// Label values are bounded to event type and phase names; nothing is labeled per entity
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/lixenwraith/shoot/engine"
	"github.com/lixenwraith/shoot/event"
)

var phases = []engine.Phase{engine.PhaseNotStarted, engine.PhaseRunning, engine.PhaseGameOver}

// Collector implements engine.Observer on a private registry
type Collector struct {
	registry *prometheus.Registry

	tickDuration prometheus.Histogram
	ticks        prometheus.Counter
	entities     prometheus.Gauge
	score        prometheus.Gauge
	spawned      prometheus.Counter
	destroyed    prometheus.Counter
	events       *prometheus.CounterVec
	phase        *prometheus.GaugeVec
}

// NewCollector registers all collectors plus the Go runtime collectors
func NewCollector() *Collector {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	factory := promauto.With(reg)

	c := &Collector{
		registry: reg,
		tickDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "shoot_tick_duration_seconds",
			Help:    "Time spent in world tick",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.016},
		}),
		ticks: factory.NewCounter(prometheus.CounterOpts{
			Name: "shoot_ticks_total",
			Help: "Ticks processed",
		}),
		entities: factory.NewGauge(prometheus.GaugeOpts{
			Name: "shoot_entities_live",
			Help: "Committed entities after the last tick",
		}),
		score: factory.NewGauge(prometheus.GaugeOpts{
			Name: "shoot_score",
			Help: "Current score",
		}),
		spawned: factory.NewCounter(prometheus.CounterOpts{
			Name: "shoot_entities_spawned_total",
			Help: "Entities committed into the live set",
		}),
		destroyed: factory.NewCounter(prometheus.CounterOpts{
			Name: "shoot_entities_destroyed_total",
			Help: "Entities removed from the live set",
		}),
		events: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "shoot_events_total",
			Help: "Game events emitted",
		}, []string{"type"}), // Bounded: event.EventType names
		phase: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name: "shoot_phase",
			Help: "1 for the current phase, 0 otherwise",
		}, []string{"phase"}), // Bounded: engine.Phase names
	}

	for _, p := range phases {
		c.phase.WithLabelValues(p.String()).Set(0)
	}
	c.phase.WithLabelValues(engine.PhaseNotStarted.String()).Set(1)
	return c
}

// ObserveTick records one tick report
func (c *Collector) ObserveTick(rep *engine.Report, elapsed time.Duration, live int) {
	c.tickDuration.Observe(elapsed.Seconds())
	c.ticks.Inc()
	c.entities.Set(float64(live))
	c.score.Set(float64(rep.Score))
	c.spawned.Add(float64(len(rep.Spawned)))
	c.destroyed.Add(float64(len(rep.Destroyed)))

	for i := range rep.Events {
		c.events.WithLabelValues(rep.Events[i].Type.String()).Inc()
		if rep.Events[i].Type == event.EventPhaseChanged {
			c.setPhase(rep.Phase)
		}
	}
}

func (c *Collector) setPhase(current engine.Phase) {
	for _, p := range phases {
		v := 0.0
		if p == current {
			v = 1
		}
		c.phase.WithLabelValues(p.String()).Set(v)
	}
}

// Registry exposes the private registry for tests and custom gatherers
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// Handler serves the registry in the prometheus exposition format
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}
