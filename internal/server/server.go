// Package server exposes the sync backend over HTTP: login and session
// checks on /auth, task sync on /tasks, and the leaderboard on /ranking.
// Responses use a {"success": ...} JSON envelope and every route answers
// CORS preflights.
package server

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/cristiano-superacao/superacao/internal/api"
	"github.com/cristiano-superacao/superacao/internal/errors"
	"github.com/cristiano-superacao/superacao/internal/repository/sqlite"
)

// Server is the HTTP layer over the backend API.
type Server struct {
	backend api.API
	log     zerolog.Logger
	mux     *http.ServeMux
}

// New wires the routes and returns the server.
func New(backend api.API, log zerolog.Logger) *Server {
	s := &Server{
		backend: backend,
		log:     log,
		mux:     http.NewServeMux(),
	}

	s.mux.HandleFunc("/auth", s.handleAuth)
	s.mux.HandleFunc("/tasks", s.handleTasks)
	s.mux.HandleFunc("/ranking", s.handleRanking)

	return s
}

// Handler returns the root handler with CORS and request logging applied.
func (s *Server) Handler() http.Handler {
	return s.logRequests(s.cors(s.mux))
}

func (s *Server) cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (rec *statusRecorder) WriteHeader(status int) {
	rec.status = status
	rec.ResponseWriter.WriteHeader(status)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		s.log.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", rec.status).
			Dur("duration", time.Since(start)).
			Msg("request")
	})
}

// userPayload is the account shape returned by /auth.
type userPayload struct {
	ID        int64   `json:"id"`
	Email     string  `json:"email"`
	Name      string  `json:"name"`
	AvatarURL *string `json:"avatarUrl"`
}

func toUserPayload(u *sqlite.User) userPayload {
	return userPayload{ID: u.ID, Email: u.Email, Name: u.Name, AvatarURL: u.AvatarURL}
}

// taskPayload is the synced-task shape returned by /tasks.
type taskPayload struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Description *string    `json:"description"`
	Points      int        `json:"points"`
	Completed   bool       `json:"completed"`
	DueDate     *time.Time `json:"dueDate"`
	CreatedAt   time.Time  `json:"createdAt"`
	CompletedAt *time.Time `json:"completedAt"`
}

func toTaskPayload(t *sqlite.UserTask) taskPayload {
	return taskPayload{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Points:      t.Points,
		Completed:   t.Completed,
		DueDate:     t.DueDate,
		CreatedAt:   t.CreatedAt,
		CompletedAt: t.CompletedAt,
	}
}

func (s *Server) handleAuth(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		var input api.LoginInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			s.writeError(w, http.StatusBadRequest, "invalid JSON body")
			return
		}

		result, err := s.backend.Login(r.Context(), input)
		if err != nil {
			s.writeAppError(w, err)
			return
		}

		s.writeJSON(w, http.StatusOK, map[string]interface{}{
			"success":      true,
			"user":         toUserPayload(result.User),
			"sessionToken": result.SessionToken,
		})

	case http.MethodGet:
		user, err := s.authenticate(r)
		if err != nil {
			s.writeAppError(w, err)
			return
		}

		s.writeJSON(w, http.StatusOK, map[string]interface{}{
			"success": true,
			"user":    toUserPayload(user),
		})

	default:
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (s *Server) handleTasks(w http.ResponseWriter, r *http.Request) {
	user, err := s.authenticate(r)
	if err != nil {
		s.writeAppError(w, err)
		return
	}

	switch r.Method {
	case http.MethodGet:
		tasks, err := s.backend.ListTasks(r.Context(), user.ID)
		if err != nil {
			s.writeAppError(w, err)
			return
		}

		payload := make([]taskPayload, len(tasks))
		for i, t := range tasks {
			payload[i] = toTaskPayload(t)
		}
		s.writeJSON(w, http.StatusOK, map[string]interface{}{
			"success": true,
			"tasks":   payload,
		})

	case http.MethodPost:
		var input api.CreateTaskInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			s.writeError(w, http.StatusBadRequest, "invalid JSON body")
			return
		}

		task, err := s.backend.CreateTask(r.Context(), user.ID, input)
		if err != nil {
			s.writeAppError(w, err)
			return
		}

		s.writeJSON(w, http.StatusCreated, map[string]interface{}{
			"success": true,
			"task":    toTaskPayload(task),
		})

	case http.MethodPut:
		taskID, err := strconv.ParseInt(r.URL.Query().Get("id"), 10, 64)
		if err != nil {
			s.writeError(w, http.StatusBadRequest, "task ID is required")
			return
		}

		task, err := s.backend.CompleteTask(r.Context(), user.ID, taskID)
		if err != nil {
			s.writeAppError(w, err)
			return
		}

		s.writeJSON(w, http.StatusOK, map[string]interface{}{
			"success": true,
			"task":    toTaskPayload(task),
			"message": "Task completed successfully!",
		})

	default:
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (s *Server) handleRanking(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	limit := 10
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			s.writeError(w, http.StatusBadRequest, "limit must be a number")
			return
		}
		limit = parsed
	}

	result, err := s.backend.Ranking(r.Context(), limit)
	if err != nil {
		s.writeAppError(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":     true,
		"ranking":     result.Entries,
		"totalUsers":  result.TotalUsers,
		"lastUpdated": result.LastUpdated,
	})
}

func (s *Server) authenticate(r *http.Request) (*sqlite.User, error) {
	token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
	return s.backend.Authenticate(r.Context(), token)
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Error().Err(err).Msg("encode response")
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, map[string]interface{}{
		"success": false,
		"error":   message,
	})
}

// writeAppError maps typed application errors to HTTP statuses.
func (s *Server) writeAppError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	message := "internal server error"

	if appErr, ok := errors.AsAppError(err); ok {
		switch appErr.Type {
		case errors.ErrorTypeValidation:
			status = http.StatusBadRequest
			message = appErr.Message
		case errors.ErrorTypeUnauthorized:
			status = http.StatusUnauthorized
			message = appErr.Message
		case errors.ErrorTypeNotFound:
			status = http.StatusNotFound
			message = appErr.Message
		default:
			s.log.Error().Err(err).Msg("request failed")
		}
	} else {
		s.log.Error().Err(err).Msg("request failed")
	}

	s.writeError(w, status, message)
}

// ListenAndServe runs the server until the context is canceled, then shuts
// down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:         addr,
		Handler:      s.Handler(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info().Str("addr", addr).Msg("server listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		return err
	}
}
