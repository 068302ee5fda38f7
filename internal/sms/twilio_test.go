package sms

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shenikar/crime_reporting_system/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTwilioClient(baseURL string) *TwilioClient {
	return &TwilioClient{
		accountSID: "AC_test",
		authToken:  "token",
		fromNumber: "+15005550006",
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: time.Second},
	}
}

func TestTwilioClient_SendMessage_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/Accounts/AC_test/Messages.json", r.URL.Path)

		user, pass, ok := r.BasicAuth()
		require.True(t, ok)
		assert.Equal(t, "AC_test", user)
		assert.Equal(t, "token", pass)

		require.NoError(t, r.ParseForm())
		assert.Equal(t, "+919876543210", r.PostFormValue("To"))
		assert.Equal(t, "+15005550006", r.PostFormValue("From"))
		assert.Equal(t, "hello", r.PostFormValue("Body"))

		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"sid": "SM42"}`))
	}))
	defer srv.Close()

	client := newTestTwilioClient(srv.URL)
	sid, err := client.SendMessage(context.Background(), "+919876543210", "hello")
	require.NoError(t, err)
	assert.Equal(t, "SM42", sid)
}

func TestTwilioClient_SendMessage_ProviderError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"code": 20003, "message": "Authenticate"}`))
	}))
	defer srv.Close()

	client := newTestTwilioClient(srv.URL)
	_, err := client.SendMessage(context.Background(), "+919876543210", "hello")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 401")
}

func TestNewTwilioClient_MissingCredentials(t *testing.T) {
	cfg := &config.Config{SimulateSMS: false}
	assert.Nil(t, NewTwilioClient(cfg))
}
