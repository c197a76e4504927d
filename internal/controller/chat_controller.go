package controller

import (
	"net/http"
	"strings"

	"cs_chatbot_backend/internal/service"
	"cs_chatbot_backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ChatController struct {
	Chat *service.ChatService
}

func NewChatController(chat *service.ChatService) *ChatController {
	return &ChatController{Chat: chat}
}

// webhookEnvelope mirrors the messaging provider's nested payload. Only
// the sender id and message body are consumed.
type webhookEnvelope struct {
	Entry []struct {
		Changes []struct {
			Value struct {
				Messages []struct {
					From string `json:"from"`
					Text struct {
						Body string `json:"body"`
					} `json:"text"`
				} `json:"messages"`
			} `json:"value"`
		} `json:"changes"`
	} `json:"entry"`
}

// Query godoc
// @Summary Chat query (mobile)
// @Description Routes a query to feedback logging, past-question lookup or the LLM
// @Tags chat
// @Accept  json
// @Produce  json
// @Param   request body service.MobileChatRequest true "Chat query"
// @Success 200 {object} service.MobileChatResponse
// @Failure 500 {object} map[string]string
// @Router /api/chat [post]
func (ctrl *ChatController) Query(c *gin.Context) {
	var req service.MobileChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := ctrl.Chat.HandleMobileQuery(c.Request.Context(), req)
	if err != nil {
		logger.Log.Error("chat request failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// WhatsAppWebhook godoc
// @Summary WhatsApp inbound message webhook
// @Description Handles one provider envelope and replies via the send API
// @Tags chat
// @Accept  json
// @Produce  plain
// @Success 200 {string} string "OK"
// @Failure 400 {string} string "Invalid payload"
// @Failure 500 {string} string "Error processing request"
// @Router /api/chat/whatsapp-webhook [post]
func (ctrl *ChatController) WhatsAppWebhook(c *gin.Context) {
	var envelope webhookEnvelope
	if err := c.ShouldBindJSON(&envelope); err != nil {
		c.String(http.StatusBadRequest, "Invalid payload")
		return
	}

	from, query, ok := extractMessage(&envelope)
	if !ok {
		c.String(http.StatusBadRequest, "Invalid payload")
		return
	}

	if err := ctrl.Chat.HandleTextMessage(c.Request.Context(), from, query); err != nil {
		logger.Log.Error("webhook processing failed", zap.Error(err))
		c.String(http.StatusInternalServerError, "Error processing request")
		return
	}

	c.String(http.StatusOK, "OK")
}

// VerifyWebhook godoc
// @Summary Webhook readiness check
// @Tags chat
// @Produce  plain
// @Success 200 {string} string "Webhook ready"
// @Router /api/chat/whatsapp-webhook [get]
func (ctrl *ChatController) VerifyWebhook(c *gin.Context) {
	c.String(http.StatusOK, "Webhook ready")
}

// extractMessage walks the envelope's fixed nesting. Any missing level
// marks the payload malformed before processing starts.
func extractMessage(envelope *webhookEnvelope) (from, query string, ok bool) {
	if len(envelope.Entry) == 0 || len(envelope.Entry[0].Changes) == 0 {
		return "", "", false
	}
	messages := envelope.Entry[0].Changes[0].Value.Messages
	if len(messages) == 0 {
		return "", "", false
	}

	msg := messages[0]
	query = strings.TrimSpace(msg.Text.Body)
	if msg.From == "" || query == "" {
		return "", "", false
	}
	return msg.From, query, true
}
