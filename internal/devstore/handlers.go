package devstore

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/akazakov/jobtrack/internal/logging"
	"github.com/gorilla/mux"
)

// Service exposes a Store over HTTP with json-server routes.
type Service struct {
	store *Store
	log   logging.Logger
}

func NewService(store *Store, log logging.Logger) *Service {
	return &Service{store: store, log: log.With("component", "devstore")}
}

// Router builds the collection routes. Any top-level path segment is a
// collection; the store materializes collections on first write.
func (s *Service) Router() *mux.Router {
	r := mux.NewRouter()
	r.Use(s.logRequests)

	r.HandleFunc("/{collection}", s.handleList).Methods(http.MethodGet)
	r.HandleFunc("/{collection}", s.handleCreate).Methods(http.MethodPost)
	r.HandleFunc("/{collection}/{id}", s.handleGet).Methods(http.MethodGet)
	r.HandleFunc("/{collection}/{id}", s.handleReplace).Methods(http.MethodPut)
	r.HandleFunc("/{collection}/{id}", s.handleDelete).Methods(http.MethodDelete)
	return r
}

func (s *Service) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.log.Info(r.Context(), "request",
			"method", r.Method, "path", r.URL.Path,
			"request_id", r.Header.Get("X-Request-Id"),
			"duration", time.Since(start))
	})
}

func (s *Service) handleList(w http.ResponseWriter, r *http.Request) {
	collection := mux.Vars(r)["collection"]

	q := Query{Filters: map[string]string{}}
	for key, vals := range r.URL.Query() {
		if len(vals) == 0 {
			continue
		}
		switch key {
		case "q":
			q.FullText = vals[0]
		case "_sort":
			q.SortKey = vals[0]
		case "_order":
			q.Order = vals[0]
		default:
			q.Filters[key] = vals[0]
		}
	}

	writeJSON(w, http.StatusOK, s.store.List(collection, q))
}

func (s *Service) handleGet(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	rec, ok := s.store.Get(vars["collection"], vars["id"])
	if !ok {
		writeJSON(w, http.StatusNotFound, Record{})
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

func (s *Service) handleCreate(w http.ResponseWriter, r *http.Request) {
	collection := mux.Vars(r)["collection"]

	var rec Record
	if err := json.NewDecoder(r.Body).Decode(&rec); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON body"})
		return
	}

	writeJSON(w, http.StatusCreated, s.store.Create(collection, rec))
}

func (s *Service) handleReplace(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	var rec Record
	if err := json.NewDecoder(r.Body).Decode(&rec); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON body"})
		return
	}

	saved, ok := s.store.Replace(vars["collection"], vars["id"], rec)
	if !ok {
		writeJSON(w, http.StatusNotFound, Record{})
		return
	}
	writeJSON(w, http.StatusOK, saved)
}

func (s *Service) handleDelete(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	if !s.store.Delete(vars["collection"], vars["id"]) {
		writeJSON(w, http.StatusNotFound, Record{})
		return
	}
	writeJSON(w, http.StatusOK, Record{})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
