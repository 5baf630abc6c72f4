package observability

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestMetrics_RecordSimulation(t *testing.T) {
	m := NewMetrics()
	m.RecordSimulation("cli", 24, time.Millisecond)
	m.RecordSimulation("cli", 12, time.Millisecond)
	m.RecordSimulation("api", 6, time.Millisecond)

	if got := m.Simulations("cli"); got != 2 {
		t.Fatalf("Simulations(cli) = %v, want 2", got)
	}
	if got := m.Simulations("tui"); got != 0 {
		t.Fatalf("Simulations(tui) = %v, want 0", got)
	}
	if got := m.SimulatedMonths(); got != 42 {
		t.Fatalf("SimulatedMonths() = %v, want 42", got)
	}

	families, err := m.Registry.Gather()
	if err != nil {
		t.Fatalf("Gather() error = %v", err)
	}
	found := false
	for _, f := range families {
		if f.GetName() == "creditsim_simulate_duration_seconds" {
			found = true
			if n := f.GetMetric()[0].GetHistogram().GetSampleCount(); n != 3 {
				t.Fatalf("histogram samples = %d, want 3", n)
			}
		}
	}
	if !found {
		t.Fatal("duration histogram not registered")
	}
}

func TestNewMetrics_Independent(t *testing.T) {
	a, b := NewMetrics(), NewMetrics()
	a.IncrRequest("ok")
	if b.Requests("ok") != 0 {
		t.Fatal("registries share state")
	}
	if a.Requests("ok") != 1 {
		t.Fatalf("Requests(ok) = %v, want 1", a.Requests("ok"))
	}
}

func TestZapLoggerMiddleware_Levels(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	logger := zap.New(core)

	handler := ZapLoggerMiddleware(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/bad":
			w.WriteHeader(http.StatusBadRequest)
		case "/boom":
			w.WriteHeader(http.StatusInternalServerError)
		default:
			_, _ = w.Write([]byte("ok"))
		}
	}))

	for _, path := range []string{"/ok", "/bad", "/boom"} {
		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	entries := logs.All()
	if len(entries) != 3 {
		t.Fatalf("entries = %d, want 3", len(entries))
	}
	want := []string{"info", "warn", "error"}
	for i, e := range entries {
		if e.Level.String() != want[i] {
			t.Fatalf("entry %d level = %s, want %s", i, e.Level, want[i])
		}
	}
	if got := entries[0].ContextMap()["status"]; got != int64(200) {
		t.Fatalf("status field = %v, want 200", got)
	}
}

func TestNewLogger_Levels(t *testing.T) {
	if l := NewLogger("warn"); l.Core().Enabled(zap.InfoLevel) {
		t.Fatal("warn logger has info enabled")
	}
	if l := NewLogger("debug"); !l.Core().Enabled(zap.DebugLevel) {
		t.Fatal("debug logger has debug disabled")
	}
	if l := NewLogger("bogus"); !l.Core().Enabled(zap.InfoLevel) {
		t.Fatal("unknown level should fall back to info")
	}
}
