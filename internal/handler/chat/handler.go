package chat

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/xivix/landing/backend/internal/model/chat"
	"github.com/xivix/landing/backend/pkg/utils"
)

const (
	errEmptyMessage = "메시지를 입력해 주세요."
	errServerFault  = "죄송합니다. 잠시 후 다시 시도해 주세요."
)

// Replier generates a sales persona reply for a user message and its
// conversation history.
type Replier interface {
	Reply(ctx context.Context, message string, history []chat.Turn) (string, error)
}

// Handler exposes the chat endpoint over HTTP.
type Handler struct {
	ai Replier
}

func New(ai Replier) *Handler {
	return &Handler{ai: ai}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/chat", h.handleChat)
}

func (h *Handler) handleChat(w http.ResponseWriter, r *http.Request) {
	var payload chat.Request

	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, errEmptyMessage)
		return
	}

	if strings.TrimSpace(payload.Message) == "" {
		utils.RespondError(w, http.StatusBadRequest, errEmptyMessage)
		return
	}

	reply, err := h.ai.Reply(r.Context(), payload.Message, payload.History)
	if err != nil {
		log.Printf("[chat] reply failed: %v", err)
		utils.RespondJSON(w, http.StatusInternalServerError, map[string]string{
			"error":   errServerFault,
			"details": err.Error(),
		})
		return
	}

	utils.RespondJSON(w, http.StatusOK, chat.Response{
		Success:  true,
		Response: reply,
	})
}
