package server

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"boomgates/internal/game"
)

// Metrics bundles the Prometheus collectors for the game host.
// A nil *Metrics records nothing.
type Metrics struct {
	gatherer prometheus.Gatherer

	Ticks            prometheus.Counter
	TickDuration     prometheus.Histogram
	Entities         *prometheus.GaugeVec
	Score            prometheus.Gauge
	Multiplier       prometheus.Gauge
	Explosions       prometheus.Counter
	EnemiesDestroyed prometheus.Counter
	PickupsConsumed  prometheus.Counter
	EnemiesSpawned   prometheus.Counter
	GatesSpawned     prometheus.Counter
	GameOvers        *prometheus.CounterVec
	Clients          prometheus.Gauge
}

// NewMetrics registers the host metrics against reg, defaulting to the global
// registry when nil.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	gatherer := prometheus.DefaultGatherer
	if g, ok := reg.(prometheus.Gatherer); ok {
		gatherer = g
	}

	m := &Metrics{
		gatherer: gatherer,
		Ticks: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "boomgates_ticks_total",
			Help: "Simulation ticks advanced while running.",
		}),
		TickDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "boomgates_tick_duration_seconds",
			Help:    "Wall time spent inside one simulation tick.",
			Buckets: []float64{0.00001, 0.00005, 0.0001, 0.0005, 0.001, 0.002, 0.004, 0.008},
		}),
		Entities: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "boomgates_entities",
			Help: "Live entities on the playfield, labeled by kind.",
		}, []string{"kind"}),
		Score: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "boomgates_score",
			Help: "Current score.",
		}),
		Multiplier: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "boomgates_multiplier",
			Help: "Current score multiplier.",
		}),
		Explosions: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "boomgates_explosions_total",
			Help: "Gates detonated by the player.",
		}),
		EnemiesDestroyed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "boomgates_enemies_destroyed_total",
			Help: "Enemies caught in explosions.",
		}),
		PickupsConsumed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "boomgates_pickups_consumed_total",
			Help: "Multiplier pickups collected by the player.",
		}),
		EnemiesSpawned: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "boomgates_enemies_spawned_total",
			Help: "Enemies created by spawn waves.",
		}),
		GatesSpawned: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "boomgates_gates_spawned_total",
			Help: "Gates created by the gate timer.",
		}),
		GameOvers: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "boomgates_game_overs_total",
			Help: "Finished games, labeled by the hazard that ended them.",
		}, []string{"cause"}),
		Clients: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "boomgates_clients",
			Help: "Connected websocket clients.",
		}),
	}

	var err error
	if m.Ticks, err = register(reg, m.Ticks, "boomgates_ticks_total"); err != nil {
		return nil, err
	}
	if m.TickDuration, err = register(reg, m.TickDuration, "boomgates_tick_duration_seconds"); err != nil {
		return nil, err
	}
	if m.Entities, err = register(reg, m.Entities, "boomgates_entities"); err != nil {
		return nil, err
	}
	if m.Score, err = register(reg, m.Score, "boomgates_score"); err != nil {
		return nil, err
	}
	if m.Multiplier, err = register(reg, m.Multiplier, "boomgates_multiplier"); err != nil {
		return nil, err
	}
	if m.Explosions, err = register(reg, m.Explosions, "boomgates_explosions_total"); err != nil {
		return nil, err
	}
	if m.EnemiesDestroyed, err = register(reg, m.EnemiesDestroyed, "boomgates_enemies_destroyed_total"); err != nil {
		return nil, err
	}
	if m.PickupsConsumed, err = register(reg, m.PickupsConsumed, "boomgates_pickups_consumed_total"); err != nil {
		return nil, err
	}
	if m.EnemiesSpawned, err = register(reg, m.EnemiesSpawned, "boomgates_enemies_spawned_total"); err != nil {
		return nil, err
	}
	if m.GatesSpawned, err = register(reg, m.GatesSpawned, "boomgates_gates_spawned_total"); err != nil {
		return nil, err
	}
	if m.GameOvers, err = register(reg, m.GameOvers, "boomgates_game_overs_total"); err != nil {
		return nil, err
	}
	if m.Clients, err = register(reg, m.Clients, "boomgates_clients"); err != nil {
		return nil, err
	}

	return m, nil
}

// register adds c to reg. A collector already registered under the same
// descriptor is reused so several worlds can share one registry.
func register[T prometheus.Collector](reg prometheus.Registerer, c T, name string) (T, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(T); ok {
				return existing, nil
			}
			return c, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return c, fmt.Errorf("register %s: %w", name, err)
	}
	return c, nil
}

// Handler serves the gathered metrics
func (m *Metrics) Handler() http.Handler {
	gatherer := prometheus.DefaultGatherer
	if m != nil && m.gatherer != nil {
		gatherer = m.gatherer
	}
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

// observeTick records one tick's outcome and the resulting game state
func (m *Metrics) observeTick(g *game.Game, res game.TickResult, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.Ticks.Inc()
	m.TickDuration.Observe(elapsed.Seconds())
	m.Explosions.Add(float64(res.Explosions))
	m.EnemiesDestroyed.Add(float64(res.EnemiesDestroyed))
	m.PickupsConsumed.Add(float64(res.PickupsConsumed))
	if res.GameOver {
		m.GameOvers.WithLabelValues(string(res.Cause)).Inc()
	}
	m.observeState(g)
}

// observeState refreshes the gauges from the current game
func (m *Metrics) observeState(g *game.Game) {
	if m == nil {
		return
	}
	m.Score.Set(float64(g.Score()))
	m.Multiplier.Set(float64(g.Multiplier()))
	for _, kind := range []game.EntityKind{game.KindEnemy, game.KindGate, game.KindPickup} {
		m.Entities.WithLabelValues(kind.String()).Set(float64(g.Count(kind)))
	}
}

func (m *Metrics) enemiesSpawned(n int) {
	if m == nil {
		return
	}
	m.EnemiesSpawned.Add(float64(n))
}

func (m *Metrics) gateSpawned() {
	if m == nil {
		return
	}
	m.GatesSpawned.Inc()
}

func (m *Metrics) setClients(n int) {
	if m == nil {
		return
	}
	m.Clients.Set(float64(n))
}
