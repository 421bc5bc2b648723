package completion

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/itf-dev/schedule-masters/internal/model/chat"
	completionService "github.com/itf-dev/schedule-masters/internal/service/completion"
	"github.com/itf-dev/schedule-masters/pkg/utils"
)

// Handler streams model completions over a progressive text body.
type Handler struct {
	svc *completionService.Service
}

// New creates the completion handler.
func New(svc *completionService.Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes mounts the completion endpoint.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/completion/{topicID}", h.handleComplete)
}

type completionRequest struct {
	Messages []wireMessage `json:"messages"`
}

// wireMessage is the browser-facing message shape.
type wireMessage struct {
	Type    string `json:"type"`
	Content string `json:"content"`
}

func (h *Handler) handleComplete(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		utils.RespondError(w, http.StatusInternalServerError, "streaming unsupported")
		return
	}

	var payload completionRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if len(payload.Messages) == 0 {
		utils.RespondError(w, http.StatusBadRequest, "messages must not be empty")
		return
	}

	topicID := chi.URLParam(r, "topicID")
	conversation := toConversation(payload.Messages)

	// Any provider failure surfaces here, before the first byte is written,
	// so the client sees either a clean stream or a single JSON error.
	stream, err := h.svc.Stream(r.Context(), topicID, conversation)
	if err != nil {
		log.Printf("[completion] provider call failed for topic=%s: %v", topicID, err)
		utils.RespondError(w, http.StatusBadGateway, "failed to generate text")
		return
	}
	defer stream.Close()

	utils.SetupStreamHeaders(w)
	w.WriteHeader(http.StatusOK)

	for {
		chunk, recvErr := stream.Recv()
		if errors.Is(recvErr, io.EOF) {
			return
		}
		if recvErr != nil {
			// Headers are gone; all we can do is close the connection early.
			log.Printf("[completion] stream interrupted for topic=%s: %v", topicID, recvErr)
			return
		}
		if chunk == nil {
			continue
		}

		utils.WriteStreamChunk(w, flusher, chunk.Content)
	}
}

// toConversation maps wire messages onto the transcript model. The browser
// client labels assistant turns "ai".
func toConversation(messages []wireMessage) []chat.Message {
	conversation := make([]chat.Message, 0, len(messages))
	for _, msg := range messages {
		role := chat.RoleAssistant
		if msg.Type == "user" {
			role = chat.RoleUser
		}
		conversation = append(conversation, chat.Message{Role: role, Content: msg.Content})
	}
	return conversation
}
