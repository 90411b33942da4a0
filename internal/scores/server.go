package scores

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
)

const topN = 10

// Server exposes the leaderboard over HTTP. Pure transport: it validates,
// forwards to the store, and fires the displacement notification; it
// computes nothing.
type Server struct {
	store    *Store
	notifier *Notifier
	log      *log.Logger
}

// NewServer wires the handlers. The notifier may be nil or disabled; score
// submission then skips notifications entirely.
func NewServer(store *Store, notifier *Notifier, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	return &Server{store: store, notifier: notifier, log: logger}
}

// Handler returns the HTTP routes.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/scores", s.handleScores)
	mux.HandleFunc("/api/notify", s.handleNotify)
	return mux
}

func (s *Server) handleScores(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.listScores(w, r)
	case http.MethodPost:
		s.submitScore(w, r)
	default:
		methodNotAllowed(w, http.MethodGet+", "+http.MethodPost)
	}
}

func (s *Server) listScores(w http.ResponseWriter, r *http.Request) {
	top, err := s.store.ListTop(r.Context(), topN)
	if err != nil {
		s.log.Printf("failed to load scores: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to load scores")
		return
	}
	if top == nil {
		top = []Score{}
	}
	writeJSON(w, http.StatusOK, top)
}

func (s *Server) submitScore(w http.ResponseWriter, r *http.Request) {
	var submission NewScore
	if err := json.NewDecoder(r.Body).Decode(&submission); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid score data")
		return
	}
	if err := submission.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid score data")
		return
	}

	displaced, hasDisplaced, err := s.store.Displaced(r.Context(), submission.Score)
	if err != nil {
		s.log.Printf("failed to check displaced score: %v", err)
		hasDisplaced = false
	}

	if err := s.store.Insert(r.Context(), submission); err != nil {
		if errors.Is(err, ErrValidation) {
			writeError(w, http.StatusBadRequest, "Invalid score data")
			return
		}
		s.log.Printf("failed to submit score: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to submit score")
		return
	}

	if hasDisplaced && s.notifier.Enabled() {
		note := Notification{
			Email:       displaced.Email,
			Username:    displaced.Username,
			Score:       displaced.Score,
			NewUsername: submission.Username,
			NewScore:    submission.Score,
		}
		if err := s.notifier.Send(r.Context(), note); err != nil {
			// Never fails the submission.
			s.log.Printf("failed to send notification: %v", err)
		}
	}

	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (s *Server) handleNotify(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, http.MethodPost)
		return
	}
	var note Notification
	if err := json.NewDecoder(r.Body).Decode(&note); err != nil {
		writeError(w, http.StatusBadRequest, "Missing required fields")
		return
	}
	if !note.Valid() {
		writeError(w, http.StatusBadRequest, "Missing required fields")
		return
	}
	s.log.Printf("sending notification to %s for user %s", note.Email, note.Username)
	if err := s.notifier.Send(r.Context(), note); err != nil {
		s.log.Printf("failed to send notification: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to send notification")
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		// The response is already committed.
		_ = err
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

func methodNotAllowed(w http.ResponseWriter, allow string) {
	w.Header().Set("Allow", allow)
	http.Error(w, "Method not allowed.", http.StatusMethodNotAllowed)
}
