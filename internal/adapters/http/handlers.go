package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/lexbridge/relay/internal/analysis"
	"github.com/lexbridge/relay/internal/app"
	"github.com/lexbridge/relay/internal/domain"
)

// minAnalyzeLen is the caller-side floor below which a query is not worth
// analyzing.
const minAnalyzeLen = 10

type Handlers struct {
	Gateway *app.Gateway
	Matcher *analysis.Matcher
	Search  *SearchProxy
}

func (h *Handlers) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":         "ok",
		"connectedUsers": h.Gateway.ConnectedUsers(),
	})
}

// IPCSearch forwards the query to the text-generation upstream and passes
// its JSON through untouched. Upstream trouble is a generic 500 envelope,
// never retried.
func (h *Handlers) IPCSearch(c *gin.Context) {
	var req struct {
		Query string `json:"query"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing or invalid query"})
		return
	}

	raw, err := h.Search.Do(c.Request.Context(), req.Query)
	if err != nil {
		log.Error().Str("module", "adapters.http").Err(err).Msg("ipc-search upstream")
		if errors.Is(err, ErrUpstreamStatus) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Hugging Face API error"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}
	c.Data(http.StatusOK, "application/json", raw)
}

// Analyze runs the keyword-to-statute matcher and, on a match, relays the
// synthetic assistant message into the conversation.
func (h *Handlers) Analyze(c *gin.Context) {
	var req struct {
		ConversationID string `json:"conversationId"`
		Text           string `json:"text"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing or invalid body"})
		return
	}

	text := strings.TrimSpace(req.Text)
	if len(text) < minAnalyzeLen {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query too short, need at least 10 characters"})
		return
	}
	if req.ConversationID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "conversationId is required"})
		return
	}

	section, err := h.Matcher.Analyze(c.Request.Context(), text)
	if errors.Is(err, analysis.ErrNoMatch) {
		c.JSON(http.StatusOK, gin.H{"match": false})
		return
	}
	if err != nil {
		log.Error().Str("module", "adapters.http").Err(err).Msg("analyze")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}

	msg := analysis.AIMessage(domain.ConversationID(req.ConversationID), section)
	res := h.Gateway.Relay(msg)
	log.Info().Str("module", "adapters.http").Str("conversation", req.ConversationID).Str("section", section.Number).Int("sent_to", res.SentTo).Msg("analysis relayed")

	c.JSON(http.StatusOK, gin.H{"match": true, "message": msg})
}
