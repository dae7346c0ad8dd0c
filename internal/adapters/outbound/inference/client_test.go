package inference_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/antekerwin/jeki/internal/adapters/outbound/inference"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestClient_Complete(t *testing.T) {
	tests := []struct {
		name       string
		response   interface{}
		statusCode int
		want       string
		wantErr    error
	}{
		{
			name:       "successful completion",
			response:   []map[string]string{{"generated_text": "  Monad TVL is up 40%. Thoughts?  "}},
			statusCode: http.StatusOK,
			want:       "Monad TVL is up 40%. Thoughts?",
		},
		{
			name:       "unauthorized",
			response:   map[string]string{"error": "unauthorized"},
			statusCode: http.StatusUnauthorized,
			wantErr:    inference.ErrAuthFailed,
		},
		{
			name:       "rate limit",
			response:   map[string]string{"error": "rate limit"},
			statusCode: http.StatusTooManyRequests,
			wantErr:    inference.ErrRateLimit,
		},
		{
			name:       "server error",
			response:   map[string]string{"error": "loading"},
			statusCode: http.StatusServiceUnavailable,
			wantErr:    inference.ErrRequestFailed,
		},
		{
			name:       "empty list",
			response:   []map[string]string{},
			statusCode: http.StatusOK,
			wantErr:    inference.ErrEmptyResponse,
		},
		{
			name:       "blank text",
			response:   []map[string]string{{"generated_text": "   "}},
			statusCode: http.StatusOK,
			wantErr:    inference.ErrEmptyResponse,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.statusCode)
				_ = json.NewEncoder(w).Encode(tt.response)
			}))
			defer server.Close()

			client := inference.New(inference.Config{URL: server.URL, Timeout: 5 * time.Second}, zap.NewNop(), nil)
			got, err := client.Complete(context.Background(), "prompt", 0.8)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClient_SendsPayloadAndAuth(t *testing.T) {
	var got struct {
		Inputs     string `json:"inputs"`
		Parameters struct {
			MaxNewTokens   int     `json:"max_new_tokens"`
			Temperature    float64 `json:"temperature"`
			ReturnFullText bool    `json:"return_full_text"`
		} `json:"parameters"`
	}
	var auth, contentType string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		contentType = r.Header.Get("Content-Type")
		_ = json.NewDecoder(r.Body).Decode(&got)
		_, _ = w.Write([]byte(`[{"generated_text":"ok"}]`))
	}))
	defer server.Close()

	client := inference.New(inference.Config{URL: server.URL, APIKey: "hf_test"}, zap.NewNop(), nil)
	_, err := client.Complete(context.Background(), "Generate a tweet", 0.83)
	require.NoError(t, err)

	assert.Equal(t, "Bearer hf_test", auth)
	assert.Equal(t, "application/json", contentType)
	assert.Equal(t, "Generate a tweet", got.Inputs)
	assert.Equal(t, 280, got.Parameters.MaxNewTokens)
	assert.Equal(t, 0.83, got.Parameters.Temperature)
	assert.False(t, got.Parameters.ReturnFullText)
}

func TestClient_NoAuthHeaderWithoutKey(t *testing.T) {
	var auth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`[{"generated_text":"ok"}]`))
	}))
	defer server.Close()

	client := inference.New(inference.Config{URL: server.URL}, zap.NewNop(), nil)
	_, err := client.Complete(context.Background(), "p", 0.7)
	require.NoError(t, err)
	assert.Empty(t, auth)
}

func TestClient_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-time.After(2 * time.Second):
		case <-r.Context().Done():
		}
	}))
	defer server.Close()

	client := inference.New(inference.Config{URL: server.URL, Timeout: 50 * time.Millisecond}, zap.NewNop(), nil)
	_, err := client.Complete(context.Background(), "p", 0.7)
	assert.Error(t, err)
}
