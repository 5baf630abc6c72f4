package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/theirongolddev/creditsim/internal/export"
	"github.com/theirongolddev/creditsim/internal/model"
	"github.com/theirongolddev/creditsim/internal/pipeline"
	"github.com/theirongolddev/creditsim/internal/store"
)

// maxBodyBytes bounds request documents.
const maxBodyBytes = 1 << 20

type errorResponse struct {
	Error  string `json:"error"`
	Detail string `json:"detail,omitempty"`
}

// Status is served at /v1/status.
type Status struct {
	StartedAt       time.Time `json:"started_at"`
	Runs            int64     `json:"runs"`
	EventCount      int       `json:"event_count"`
	SubscriberCount int       `json:"subscriber_count"`
	Scenarios       bool      `json:"scenarios"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg, detail string) {
	writeJSON(w, status, errorResponse{Error: msg, Detail: detail})
}

func (s *Service) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok\n"))
}

func (s *Service) handleStatus(w http.ResponseWriter, _ *http.Request) {
	buffered, subscribers := s.feed.stats()
	s.mu.RLock()
	st := Status{
		StartedAt:       s.startedAt,
		Runs:            s.runCount,
		EventCount:      buffered,
		SubscriberCount: subscribers,
		Scenarios:       s.store != nil,
	}
	s.mu.RUnlock()
	writeJSON(w, http.StatusOK, st)
}

func (s *Service) handleExample(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, export.ExampleDocument())
}

// simulate runs doc and records metrics and an event. On bad input it
// writes the 400 response itself and returns false.
func (s *Service) simulate(w http.ResponseWriter, doc export.Document, source string) (model.Result, bool) {
	start := time.Now()
	res, err := pipeline.Run(doc.Params())
	if err != nil {
		s.metrics.IncrRequest("invalid")
		s.logger.Debug("rejected inputs", zap.Error(err))
		writeError(w, http.StatusBadRequest, "check your inputs", inputDetail(err))
		return model.Result{}, false
	}

	s.metrics.RecordSimulation(source, len(res.Rows), time.Since(start))
	s.metrics.IncrRequest("ok")
	s.recordRun(source, doc, res)
	return res, true
}

// inputDetail strips the "checking inputs" prefix from a Run error.
func inputDetail(err error) string {
	if inner := errors.Unwrap(err); inner != nil {
		return inner.Error()
	}
	return err.Error()
}

func (s *Service) decode(w http.ResponseWriter, r *http.Request) (export.Document, bool) {
	doc, err := export.Decode(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		s.metrics.IncrRequest("invalid")
		writeError(w, http.StatusBadRequest, "check your inputs", err.Error())
		return export.Document{}, false
	}
	return doc, true
}

func (s *Service) handleSimulate(w http.ResponseWriter, r *http.Request) {
	doc, ok := s.decode(w, r)
	if !ok {
		return
	}
	res, ok := s.simulate(w, doc, "api")
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (s *Service) handleSimulateCSV(w http.ResponseWriter, r *http.Request) {
	doc, ok := s.decode(w, r)
	if !ok {
		return
	}
	res, ok := s.simulate(w, doc, "api")
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="credit_simulation.csv"`)
	if err := export.WriteCSV(w, res.Rows); err != nil {
		s.logger.Error("writing csv", zap.Error(err))
	}
}

func (s *Service) requireStore(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.store == nil {
			writeError(w, http.StatusNotFound, "scenario library disabled", "")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Service) storeError(w http.ResponseWriter, err error) {
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "scenario not found", err.Error())
		return
	}
	if errors.Is(err, store.ErrEmptyName) {
		writeError(w, http.StatusBadRequest, "check your inputs", err.Error())
		return
	}
	s.logger.Error("scenario store", zap.Error(err))
	writeError(w, http.StatusInternalServerError, "internal error", "")
}

func (s *Service) handleListScenarios(w http.ResponseWriter, r *http.Request) {
	list, err := s.store.List(r.Context())
	if err != nil {
		s.storeError(w, err)
		return
	}
	if list == nil {
		list = []store.Scenario{}
	}
	writeJSON(w, http.StatusOK, list)
}

func (s *Service) handleGetScenario(w http.ResponseWriter, r *http.Request) {
	sc, err := s.store.Get(r.Context(), chi.URLParam(r, "name"))
	if err != nil {
		s.storeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sc)
}

func (s *Service) handlePutScenario(w http.ResponseWriter, r *http.Request) {
	doc, ok := s.decode(w, r)
	if !ok {
		return
	}
	sc, err := s.store.Save(r.Context(), chi.URLParam(r, "name"), doc)
	if err != nil {
		s.storeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sc)
}

func (s *Service) handleDeleteScenario(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Delete(r.Context(), chi.URLParam(r, "name")); err != nil {
		s.storeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Service) handleRunScenario(w http.ResponseWriter, r *http.Request) {
	sc, err := s.store.Get(r.Context(), chi.URLParam(r, "name"))
	if err != nil {
		s.storeError(w, err)
		return
	}
	res, ok := s.simulate(w, sc.Document, "scenario")
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, res)
}
