package webhook

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	assert.Nil(t, NewClient(Config{Enabled: false, URL: "http://example.com"}))
	assert.Nil(t, NewClient(Config{Enabled: true, URL: ""}))
	assert.NotNil(t, NewClient(Config{Enabled: true, URL: "http://example.com"}))
}

func TestForward(t *testing.T) {
	var received map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		_ = json.NewDecoder(r.Body).Decode(&received)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := NewClient(Config{Enabled: true, URL: srv.URL, TimeoutSeconds: 5})
	err := client.Forward(map[string]any{"studentEmail": "s1@example.edu"})

	require.NoError(t, err)
	assert.Equal(t, "s1@example.edu", received["studentEmail"])
}

func TestForwardNon2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	client := NewClient(Config{Enabled: true, URL: srv.URL, TimeoutSeconds: 5})
	err := client.Forward(map[string]any{"x": 1})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}
