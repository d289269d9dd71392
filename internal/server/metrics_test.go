package server

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"boomgates/internal/game"
)

func TestNewMetricsReusesRegisteredCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()
	first, err := NewMetrics(reg)
	if err != nil {
		t.Fatalf("first registration: %v", err)
	}
	second, err := NewMetrics(reg)
	if err != nil {
		t.Fatalf("second registration: %v", err)
	}

	second.Ticks.Inc()
	if got := testutil.ToFloat64(first.Ticks); got != 1 {
		t.Fatalf("shared ticks counter = %v, want 1", got)
	}
}

func TestNewMetricsRejectsIncompatibleCollector(t *testing.T) {
	reg := prometheus.NewRegistry()
	clash := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "boomgates_ticks_total",
		Help: "Something else entirely.",
	})
	reg.MustRegister(clash)

	if _, err := NewMetrics(reg); err == nil {
		t.Fatalf("expected an error for a clashing collector")
	}
}

func TestMetricsHandlerServesRegistry(t *testing.T) {
	w, m := newTestWorld(t)
	w.Step()

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body, _ := io.ReadAll(rec.Body)
	for _, name := range []string{"boomgates_ticks_total 1", "boomgates_tick_duration_seconds_count 1", "boomgates_score 0"} {
		if !strings.Contains(string(body), name) {
			t.Fatalf("metrics output missing %q", name)
		}
	}
}

func TestWorldWithoutMetrics(t *testing.T) {
	w := NewWorld(game.NewGame(game.WithSeed(1)))
	c := newTestClient(8)
	w.AddClient(c)
	w.SpawnEnemies()
	w.SpawnGate()
	w.Step()
	w.RemoveClient(c.ID)

	var m *Metrics
	if m.Handler() == nil {
		t.Fatalf("nil metrics has no handler")
	}
}
