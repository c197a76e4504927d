package service

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"cs_chatbot_backend/internal/config"
	"cs_chatbot_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func aiTestConfig(baseURL string) config.AIConfig {
	return config.AIConfig{
		BaseURL:     baseURL,
		APIKey:      "test-key",
		Model:       "llama-3.1-8b-instant",
		MaxTokens:   4096,
		Temperature: 0.7,
	}
}

func TestAIChat(t *testing.T) {
	var captured ChatCompletionRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))

		json.NewEncoder(w).Encode(map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"role": "assistant", "content": "  The department offers 12 courses.  "}},
			},
		})
	}))
	defer server.Close()

	svc := NewAIService(aiTestConfig(server.URL))
	answer, err := svc.Chat(context.Background(), "how many courses?")
	require.NoError(t, err)

	assert.Equal(t, "The department offers 12 courses.", answer)
	assert.Equal(t, "llama-3.1-8b-instant", captured.Model)
	require.Len(t, captured.Messages, 2)
	assert.Equal(t, "system", captured.Messages[0].Role)
	assert.Equal(t, "user", captured.Messages[1].Role)
	assert.Equal(t, "how many courses?", captured.Messages[1].Content)
	assert.Equal(t, 4096, captured.MaxTokens)
}

func TestAIChatModelNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"error": map[string]string{"message": "model does not exist", "code": "model_not_found"},
		})
	}))
	defer server.Close()

	svc := NewAIService(aiTestConfig(server.URL))
	_, err := svc.Chat(context.Background(), "hello")
	assert.True(t, errors.Is(err, util.ErrModelNotFound))
}

func TestAIChatUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error":{"message":"rate limited"}}`))
	}))
	defer server.Close()

	svc := NewAIService(aiTestConfig(server.URL))
	_, err := svc.Chat(context.Background(), "hello")
	require.Error(t, err)
	assert.False(t, errors.Is(err, util.ErrModelNotFound))
	assert.Contains(t, err.Error(), "status 429")
}

func TestAIChatNoChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[]}`))
	}))
	defer server.Close()

	svc := NewAIService(aiTestConfig(server.URL))
	_, err := svc.Chat(context.Background(), "hello")
	assert.Error(t, err)
}
