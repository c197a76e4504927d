package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"cs_chatbot_backend/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWhatsAppSendText(t *testing.T) {
	var captured whatsAppSendRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v3/transactionalWhatsApp/messages", r.URL.Path)
		assert.Equal(t, "brevo-key", r.Header.Get("api-key"))
		assert.Equal(t, "application/json", r.Header.Get("content-type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	svc := NewWhatsAppService(config.WhatsAppConfig{
		BaseURL: server.URL,
		APIKey:  "brevo-key",
		WABAID:  "15550001111",
	})

	err := svc.SendText(context.Background(), "2348012345678", "Thank you for your feedback!")
	require.NoError(t, err)

	assert.Equal(t, "2348012345678", captured.To)
	assert.Equal(t, "15550001111", captured.From)
	assert.Equal(t, "text", captured.Type)
	assert.Equal(t, "Thank you for your feedback!", captured.Text.Body)
}

func TestWhatsAppSendTextFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"message":"invalid recipient"}`))
	}))
	defer server.Close()

	svc := NewWhatsAppService(config.WhatsAppConfig{BaseURL: server.URL, APIKey: "brevo-key"})

	err := svc.SendText(context.Background(), "not-a-number", "hi")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 400")
}
