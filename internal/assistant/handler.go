package assistant

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/codigohunt/solutions-backend/internal/metrics"
	"github.com/codigohunt/solutions-backend/internal/middleware"
	"github.com/codigohunt/solutions-backend/pkg"
)

type chatRequest struct {
	Message string `json:"message"`
}

type chatResponse struct {
	Reply     string `json:"reply"`
	Fallback  bool   `json:"fallback"`
	ErrorType string `json:"errorType,omitempty"`
}

type replyGenerator interface {
	Generate(ctx context.Context, userMessage string) (string, error)
}

var _ replyGenerator = (*Client)(nil)

// Handler answers chat widget messages. The visitor always gets a reply:
// an API failure degrades to the keyword fallback, tagged with the error
// category, never an error status.
type Handler struct {
	client  replyGenerator
	metrics *metrics.Manager
}

func NewHandler(client replyGenerator, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		client:  client,
		metrics: metricsManager,
	}
}

func (handler *Handler) SetupRoutes(
	router *mux.Router,
	rateLimiter middleware.RequestRateLimiter,
	chatRateLimitAllowedPerMin int,
) {
	chatSubrouter := router.PathPrefix("/assistant").Subrouter()
	chatSubrouter.HandleFunc("/chat", handler.handleChat).Methods("POST", "OPTIONS").Name("assistant-chat")

	// the generative API behind the chat costs money per call
	chatSubrouter.Use(middleware.RateLimit(rateLimiter, "assistant-chat", chatRateLimitAllowedPerMin, handler.metrics))
}

func (handler *Handler) handleChat(w http.ResponseWriter, r *http.Request) {
	var chatReq chatRequest
	if err := json.NewDecoder(r.Body).Decode(&chatReq); err != nil {
		log.Errorf("chat, unmarshal json params: %s", err)
		http.Error(w, "chat failed", http.StatusBadRequest)
		return
	}

	message := strings.TrimSpace(chatReq.Message)
	if message == "" {
		http.Error(w, "error, message empty", http.StatusBadRequest)
		return
	}

	handler.metrics.CounterChatMessages.Inc()

	start := time.Now()
	reply, err := handler.client.Generate(r.Context(), message)
	handler.metrics.HistAssistantCallDuration.Observe(time.Since(start).Seconds())

	resp := chatResponse{Reply: reply}
	if err != nil {
		handler.metrics.CounterChatFallbacks.Inc()

		errorType := ErrorKindAPI
		var apiErr *APIError
		if errors.As(err, &apiErr) {
			errorType = apiErr.Kind
		}
		log.Errorf("chat generate reply failed [%s]: %s", errorType, err)

		resp = chatResponse{
			Reply:     FallbackReply(message),
			Fallback:  true,
			ErrorType: string(errorType),
		}
	}

	respJson, err := json.Marshal(resp)
	if err != nil {
		log.Errorf("marshal chat response: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusOK)
}
