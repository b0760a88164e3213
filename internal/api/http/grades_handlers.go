package http

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/mind-engage/mindengage-grades/internal/grading"
	"github.com/mind-engage/mindengage-grades/internal/metrics"
	"github.com/mind-engage/mindengage-grades/internal/scores"
)

const (
	reportAvgClass = "avg_class"
	reportStats    = "stats"
)

// GradesAPI adapts the score store and the aggregation engine to HTTP.
type GradesAPI struct {
	Store   scores.Store
	Engine  *grading.Engine
	Metrics *metrics.Reports // optional
}

// Mount registers the report routes on r (mounted under /grades by the server).
func (a *GradesAPI) Mount(r chi.Router) {
	r.Get("/learner/{id}/avg-class", a.AverageByClassHandler())
	r.Get("/stats", a.StatsHandler())
}

// GET /grades/learner/{id}/avg-class
// Weighted average of the learner's grades, one row per class.
func (a *GradesAPI) AverageByClassHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		started := time.Now()
		id, err := strconv.ParseInt(strings.TrimSpace(chi.URLParam(r, "id")), 10, 64)
		if err != nil {
			a.Metrics.Observe(reportAvgClass, metrics.OutcomeInvalid, started)
			http.Error(w, "learner id must be an integer", http.StatusBadRequest)
			return
		}

		recs, err := a.Store.FetchScoreRecords(r.Context(), scores.ForLearner(id))
		if err != nil {
			log.Printf("avg-class learner=%d: %v", id, err)
			a.Metrics.Observe(reportAvgClass, metrics.OutcomeError, started)
			http.Error(w, "Failed to calculate averages", http.StatusInternalServerError)
			return
		}

		rows, err := a.Engine.AverageByClass(id, recs)
		switch {
		case errors.Is(err, grading.ErrUndefinedMean), errors.Is(err, grading.ErrComputation):
			a.Metrics.Observe(reportAvgClass, metrics.OutcomeInvalid, started)
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
			return
		case err != nil:
			log.Printf("avg-class learner=%d: %v", id, err)
			a.Metrics.Observe(reportAvgClass, metrics.OutcomeError, started)
			http.Error(w, "Failed to calculate averages", http.StatusInternalServerError)
			return
		case len(rows) == 0:
			a.Metrics.Observe(reportAvgClass, metrics.OutcomeNotFound, started)
			http.Error(w, "Not found", http.StatusNotFound)
			return
		}

		a.Metrics.Observe(reportAvgClass, metrics.OutcomeOK, started)
		writeJSON(w, http.StatusOK, rows)
	}
}

// GET /grades/stats
// Weighted total for every student, highest first.
func (a *GradesAPI) StatsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		started := time.Now()
		recs, err := a.Store.FetchScoreRecords(r.Context(), scores.All())
		if err != nil {
			log.Printf("stats: %v", err)
			a.Metrics.Observe(reportStats, metrics.OutcomeError, started)
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to calculate statistics"})
			return
		}
		a.Metrics.Observe(reportStats, metrics.OutcomeOK, started)
		writeJSON(w, http.StatusOK, a.Engine.RankAllStudents(recs))
	}
}

// Welcome serves GET /.
func Welcome(w http.ResponseWriter, _ *http.Request) {
	_, _ = w.Write([]byte("Welcome to the API."))
}

// Recoverer turns panics into the generic 500 response.
func Recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				log.Printf("panic serving %s %s: %v", r.Method, r.URL.Path, rec)
				http.Error(w, "Seems like we messed up somewhere...", http.StatusInternalServerError)
			}
		}()
		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
