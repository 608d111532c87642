package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/ameya/eduplan/internal/pipeline"
)

type startSessionRequest struct {
	Level string `json:"level"`
	Topic string `json:"topic"`
}

type startSessionResponse struct {
	SessionID    string         `json:"session_id"`
	Level        string         `json:"level"`
	Topic        string         `json:"topic"`
	SkillProfile map[string]int `json:"skill_profile"`
}

// quizQuestion is the client-facing quiz item. Reference answers stay
// server-side until grading.
type quizQuestion struct {
	Index    int    `json:"index"`
	Question string `json:"question"`
}

type runResponse struct {
	Plan       string         `json:"plan"`
	Score      float64        `json:"score"`
	Iterations int            `json:"iterations"`
	Quiz       []quizQuestion `json:"quiz"`
}

type submitQuizRequest struct {
	Answers []string `json:"answers"`
}

type submitQuizResponse struct {
	Correct  []bool  `json:"correct"`
	Accuracy float64 `json:"accuracy"`
}

type finalizeResponse struct {
	Status       string         `json:"status"`
	QuizAccuracy float64        `json:"quiz_accuracy"`
	SkillProfile map[string]int `json:"skill_profile"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleStartSession(w http.ResponseWriter, r *http.Request) {
	var req startSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	sess, err := s.svc.StartSession(r.Context(), req.Level, req.Topic)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	s.put(&sessionState{sess: sess})

	respondJSON(w, http.StatusCreated, startSessionResponse{
		SessionID:    sess.ID,
		Level:        sess.Level,
		Topic:        sess.Topic,
		SkillProfile: sess.Profile.Scores(),
	})
}

func (s *Server) handleRunPipeline(w http.ResponseWriter, r *http.Request) {
	state, ok := s.lookup(chi.URLParam(r, "sessionID"))
	if !ok {
		respondError(w, http.StatusNotFound, "unknown session")
		return
	}

	state.mu.Lock()
	defer state.mu.Unlock()
	if state.outcome != nil {
		respondError(w, http.StatusConflict, "pipeline already ran for this session")
		return
	}

	outcome, err := s.svc.RunPipeline(r.Context(), state.sess)
	if err != nil {
		respondError(w, http.StatusBadGateway, err.Error())
		return
	}
	state.outcome = outcome

	quiz := make([]quizQuestion, len(outcome.Quiz))
	for i, item := range outcome.Quiz {
		quiz[i] = quizQuestion{Index: i, Question: item.Question}
	}

	respondJSON(w, http.StatusOK, runResponse{
		Plan:       outcome.Plan,
		Score:      outcome.Score,
		Iterations: outcome.Iterations,
		Quiz:       quiz,
	})
}

func (s *Server) handleSubmitQuiz(w http.ResponseWriter, r *http.Request) {
	state, ok := s.lookup(chi.URLParam(r, "sessionID"))
	if !ok {
		respondError(w, http.StatusNotFound, "unknown session")
		return
	}

	state.mu.Lock()
	defer state.mu.Unlock()
	if state.outcome == nil {
		respondError(w, http.StatusConflict, "run the pipeline before submitting the quiz")
		return
	}

	var req submitQuizRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := s.svc.GradeQuiz(r.Context(), state.outcome.Quiz, req.Answers)
	if err != nil {
		var missing *pipeline.ErrConfigurationMissing
		if errors.As(err, &missing) {
			respondError(w, http.StatusConflict, err.Error())
			return
		}
		respondError(w, http.StatusBadGateway, err.Error())
		return
	}
	state.accuracy = result.Accuracy
	state.graded = true

	respondJSON(w, http.StatusOK, submitQuizResponse{
		Correct:  result.Correct,
		Accuracy: result.Accuracy,
	})
}

func (s *Server) handleFinalize(w http.ResponseWriter, r *http.Request) {
	state, ok := s.lookup(chi.URLParam(r, "sessionID"))
	if !ok {
		respondError(w, http.StatusNotFound, "unknown session")
		return
	}

	state.mu.Lock()
	defer state.mu.Unlock()
	if state.outcome == nil {
		respondError(w, http.StatusConflict, "run the pipeline before finalizing")
		return
	}
	// A session with quiz questions must grade them before finalizing.
	// A session whose quiz generation degraded finalizes at zero accuracy.
	if len(state.outcome.Quiz) > 0 && !state.graded {
		respondError(w, http.StatusConflict, "submit the quiz before finalizing")
		return
	}

	updated, status, err := s.svc.FinalizeSession(r.Context(), state.sess, state.accuracy)
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.evict(state.sess.ID)

	respondJSON(w, http.StatusOK, finalizeResponse{
		Status:       status,
		QuizAccuracy: state.accuracy,
		SkillProfile: updated.Scores(),
	})
}

func (s *Server) handleRecentSessions(w http.ResponseWriter, r *http.Request) {
	if s.events == nil {
		respondError(w, http.StatusNotFound, "session history is not enabled")
		return
	}

	limit := 10
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			respondError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = n
	}

	records, err := s.events.RecentSessions(r.Context(), limit)
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, records)
}

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, map[string]string{"error": msg})
}
