package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"cs_chatbot_backend/internal/config"
)

const whatsAppSendPath = "/v3/transactionalWhatsApp/messages"

// WhatsAppService delivers replies through the Brevo transactional
// WhatsApp API.
type WhatsAppService struct {
	config config.WhatsAppConfig
	client *http.Client
}

func NewWhatsAppService(cfg config.WhatsAppConfig) *WhatsAppService {
	return &WhatsAppService{
		config: cfg,
		client: &http.Client{Timeout: 30 * time.Second},
	}
}

type whatsAppSendRequest struct {
	To   string           `json:"to"`
	From string           `json:"from"`
	Type string           `json:"type"`
	Text whatsAppTextBody `json:"text"`
}

type whatsAppTextBody struct {
	Body string `json:"body"`
}

// SendText delivers one text message to the given recipient.
func (s *WhatsAppService) SendText(ctx context.Context, to, body string) error {
	reqBody := whatsAppSendRequest{
		To:   to,
		From: s.config.WABAID,
		Type: "text",
		Text: whatsAppTextBody{Body: body},
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.config.BaseURL+whatsAppSendPath, bytes.NewBuffer(jsonData))
	if err != nil {
		return err
	}

	req.Header.Set("accept", "application/json")
	req.Header.Set("api-key", s.config.APIKey)
	req.Header.Set("content-type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusMultipleChoices {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("WhatsApp send failed (status %d): %s", resp.StatusCode, string(respBody))
	}

	return nil
}
