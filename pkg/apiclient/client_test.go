package apiclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"videvida-booking-api/config"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(baseURL string) *Client {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return NewClient(config.UpstreamConfig{BaseURL: baseURL, Timeout: 2 * time.Second}, log)
}

func TestClientLogin(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		var creds Credentials
		require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
		assert.Equal(t, "paciente@email.com", creds.Email)
		json.NewEncoder(w).Encode(map[string]string{"token": "upstream-token"})
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	token, err := client.Login(context.Background(), Credentials{Email: "paciente@email.com", Password: "123456"})
	require.NoError(t, err)
	assert.Equal(t, "upstream-token", token)
	assert.Equal(t, "/auth/login", gotPath)
}

func TestClientLoginMissingToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{})
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.Login(context.Background(), Credentials{Email: "a@b.com", Password: "x"})
	assert.ErrorIs(t, err, ErrMissingToken)
}

func TestClientRegister(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(UserRecord{ID: "u-1", Name: "Ana", Email: "ana@email.com", Role: "patient"})
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	record, err := client.Register(context.Background(), RegisterPayload{Name: "Ana", Email: "ana@email.com", Password: "x", Role: "patient"})
	require.NoError(t, err)
	assert.Equal(t, "u-1", record.ID)
}

func TestClientRegisterMalformedRecord(t *testing.T) {
	tests := []struct {
		name   string
		record UserRecord
	}{
		{name: "missing id", record: UserRecord{Email: "ana@email.com", Role: "patient"}},
		{name: "unknown role", record: UserRecord{ID: "u-1", Email: "ana@email.com", Role: "superuser"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				json.NewEncoder(w).Encode(tt.record)
			}))
			defer server.Close()

			client := newTestClient(server.URL)
			_, err := client.Register(context.Background(), RegisterPayload{})
			assert.ErrorIs(t, err, ErrMalformedRecord)
		})
	}
}

func TestClientUpstreamErrorMessage(t *testing.T) {
	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"message": "invalid credentials"})
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.Login(context.Background(), Credentials{Email: "a@b.com", Password: "x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
	assert.Contains(t, err.Error(), "invalid credentials")
	// Error statuses are answers, not transport failures: no retry.
	assert.Equal(t, 1, requests)
}

func TestClientRetriesTransportFailure(t *testing.T) {
	// A server that is already closed produces a connection error on
	// every attempt.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	baseURL := server.URL
	server.Close()

	client := newTestClient(baseURL)
	_, err := client.Login(context.Background(), Credentials{Email: "a@b.com", Password: "x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "after retry")
}
