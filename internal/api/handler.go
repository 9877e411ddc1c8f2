//nolint:revive // "api" package name is intentionally concise for this layer.
package api

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

// maxRequestBodySize caps chat request bodies (64KB is generous for chat).
const maxRequestBodySize = 64 << 10

const maxSessionIDLength = 128

// errGeneric is the user-visible message for any service-level failure.
const errGeneric = "Something went wrong with the HR Buddy service."

// ChatService handles one chat message for a session.
type ChatService interface {
	Handle(ctx context.Context, sessionID, message string) (string, error)
}

// ChatRequest is the inbound message payload.
type ChatRequest struct {
	Message   string `json:"message"`
	SessionID string `json:"sessionId"`
}

// ChatResponse is the reply payload.
type ChatResponse struct {
	Response string `json:"response"`
}

// Handler provides the chat HTTP endpoints.
type Handler struct {
	bot ChatService
}

// NewHandler creates a new Handler.
func NewHandler(bot ChatService) *Handler {
	return &Handler{bot: bot}
}

// RegisterRoutes registers the chat endpoints on the router.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/api/hrbot", h.handleChat)
}

func (h *Handler) handleChat(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)

	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	// Client errors must not touch any session or leave state.
	if req.Message == "" || strings.TrimSpace(req.SessionID) == "" {
		Error(w, http.StatusBadRequest, "Missing message or sessionId")
		return
	}
	if len(req.SessionID) > maxSessionIDLength {
		Error(w, http.StatusBadRequest, "sessionId too long")
		return
	}

	reply, err := h.bot.Handle(r.Context(), req.SessionID, req.Message)
	if err != nil {
		slog.Error("chat turn failed", "session_id", req.SessionID, "error", err)
		Error(w, http.StatusInternalServerError, errGeneric)
		return
	}

	JSON(w, http.StatusOK, ChatResponse{Response: reply})
}

// JSON writes a JSON response with the given status code.
func JSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, `{"error": "failed to encode response"}`, http.StatusInternalServerError)
	}
}

// Error writes a JSON error response.
func Error(w http.ResponseWriter, status int, message string) {
	JSON(w, status, map[string]string{"error": message})
}
