// Package httpapi exposes the curriculum registry over HTTP: read-only JSON
// views of the tree and answer grading, either per request or over a
// WebSocket.
package httpapi

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/p-n-ai/pai-curriculum/internal/curriculum"
	"github.com/p-n-ai/pai-curriculum/internal/grading"
)

// Handler serves the curriculum API.
type Handler struct {
	registry *curriculum.Registry
	mux      *http.ServeMux
}

// NewHandler wires routes onto a new mux.
func NewHandler(registry *curriculum.Registry) *Handler {
	h := &Handler{registry: registry, mux: http.NewServeMux()}
	h.mux.HandleFunc("GET /healthz", h.handleHealthz)
	h.mux.HandleFunc("GET /readyz", h.handleReadyz)
	h.mux.HandleFunc("GET /v1/epochs", h.handleEpochs)
	h.mux.HandleFunc("GET /v1/epochs/{id}", h.handleEpoch)
	h.mux.HandleFunc("GET /v1/lessons/{id}", h.handleLesson)
	h.mux.HandleFunc("POST /v1/grade", h.handleGrade)
	h.mux.HandleFunc("GET /v1/ws/grade", h.handleGradeSocket)
	return h
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

func (h *Handler) handleHealthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) handleReadyz(w http.ResponseWriter, r *http.Request) {
	if err := h.registry.Load(); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}

func (h *Handler) handleEpochs(w http.ResponseWriter, r *http.Request) {
	epochs, err := h.registry.Epochs()
	if err != nil {
		h.unavailable(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"epochs": epochs})
}

func (h *Handler) handleEpoch(w http.ResponseWriter, r *http.Request) {
	epoch, found, err := h.registry.EpochByID(r.PathValue("id"))
	if err != nil {
		h.unavailable(w, err)
		return
	}
	if !found {
		writeError(w, http.StatusNotFound, "epoch not found")
		return
	}
	writeJSON(w, http.StatusOK, epoch)
}

func (h *Handler) handleLesson(w http.ResponseWriter, r *http.Request) {
	lesson, found, err := h.registry.LessonByID(r.PathValue("id"))
	if err != nil {
		h.unavailable(w, err)
		return
	}
	if !found {
		writeError(w, http.StatusNotFound, "lesson not found")
		return
	}
	writeJSON(w, http.StatusOK, lesson)
}

// GradeRequest names one assessment item and the submitted key.
// Kind is "challenge" (ChallengeID) or "quiz" (LessonID and 0-based QuestionIndex).
type GradeRequest struct {
	Kind          string `json:"kind"`
	LessonID      string `json:"lesson_id,omitempty"`
	ChallengeID   string `json:"challenge_id,omitempty"`
	QuestionIndex int    `json:"question_index,omitempty"`
	Answer        string `json:"answer"`
}

// GradeResponse is the result of a GradeRequest. Error is only used on the
// WebSocket, where there is no status code.
type GradeResponse struct {
	Correct     bool   `json:"correct"`
	Explanation string `json:"explanation,omitempty"`
	Error       string `json:"error,omitempty"`
}

func (h *Handler) handleGrade(w http.ResponseWriter, r *http.Request) {
	var req GradeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	resp, err := h.grade(req)
	if err != nil {
		var ge *gradeError
		if errors.As(err, &ge) {
			writeError(w, ge.status, ge.msg)
			return
		}
		h.unavailable(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

type gradeError struct {
	status int
	msg    string
}

func (e *gradeError) Error() string { return e.msg }

// grade resolves the item and grades it. Lookup misses and malformed requests
// are *gradeError; anything else is a registry load failure.
func (h *Handler) grade(req GradeRequest) (GradeResponse, error) {
	answer := curriculum.AnswerKey(req.Answer)

	switch req.Kind {
	case "challenge":
		if req.ChallengeID == "" {
			return GradeResponse{}, &gradeError{http.StatusBadRequest, "challenge_id is required"}
		}
		c, found, err := h.registry.ChallengeByID(req.ChallengeID)
		if err != nil {
			return GradeResponse{}, err
		}
		if !found {
			return GradeResponse{}, &gradeError{http.StatusNotFound, "challenge not found"}
		}
		return GradeResponse{Correct: grading.GradeChallenge(c, answer)}, nil

	case "quiz":
		if req.LessonID == "" {
			return GradeResponse{}, &gradeError{http.StatusBadRequest, "lesson_id is required"}
		}
		lesson, found, err := h.registry.LessonByID(req.LessonID)
		if err != nil {
			return GradeResponse{}, err
		}
		if !found {
			return GradeResponse{}, &gradeError{http.StatusNotFound, "lesson not found"}
		}
		quiz := lesson.QuizQuestions()
		if req.QuestionIndex < 0 || req.QuestionIndex >= len(quiz) {
			return GradeResponse{}, &gradeError{http.StatusNotFound, "quiz question not found"}
		}
		res := grading.GradeQuizQuestion(quiz[req.QuestionIndex], answer)
		return GradeResponse{Correct: res.Correct, Explanation: res.Explanation}, nil

	default:
		return GradeResponse{}, &gradeError{http.StatusBadRequest, `kind must be "challenge" or "quiz"`}
	}
}

func (h *Handler) unavailable(w http.ResponseWriter, err error) {
	slog.Error("curriculum unavailable", "error", err)
	writeError(w, http.StatusServiceUnavailable, "curriculum unavailable")
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Warn("encoding response failed", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
