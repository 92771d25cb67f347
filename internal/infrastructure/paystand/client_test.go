package paystand

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNewClient_RequiresBaseURL(t *testing.T) {
	_, err := NewClient(Config{BaseURL: "  "})
	require.ErrorIs(t, err, ErrMissingBaseURL)
}

func TestClient_Post(t *testing.T) {
	var gotHeaders http.Header
	var gotPath string
	var gotBody map[string]interface{}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotHeaders = r.Header.Clone()
		gotPath = r.URL.Path
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusPaymentRequired)
		_, _ = w.Write([]byte(`{"error":{"status":402,"description":"insufficient funds"}}`))
	}))
	defer srv.Close()

	c, err := NewClient(Config{BaseURL: srv.URL + "/v3/", TenantHeader: "X-CUSTOMER-ID", TenantID: "cus_tenant", Timeout: time.Second})
	require.NoError(t, err)

	resp, err := c.Post(context.Background(), "/payments/secure", "Bearer tok", map[string]interface{}{"amount": "10.00"})
	require.NoError(t, err)
	require.Equal(t, http.StatusPaymentRequired, resp.StatusCode)
	require.JSONEq(t, `{"error":{"status":402,"description":"insufficient funds"}}`, string(resp.Body))

	require.Equal(t, "/v3/payments/secure", gotPath)
	require.Equal(t, "Bearer tok", gotHeaders.Get("Authorization"))
	require.Equal(t, "cus_tenant", gotHeaders.Get("X-CUSTOMER-ID"))
	require.Equal(t, "application/json", gotHeaders.Get("Accept"))
	require.Contains(t, gotHeaders.Get("Content-Type"), "application/json")
	require.Equal(t, "10.00", gotBody["amount"])
}

func TestClient_Post_WithoutAuthorization(t *testing.T) {
	var sawAuth bool
	var sawTenant bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, sawAuth = r.Header["Authorization"]
		_, sawTenant = r.Header["X-Customer-Id"]
		_, _ = w.Write([]byte(`{"access_token":"tok"}`))
	}))
	defer srv.Close()

	c, err := NewClient(Config{BaseURL: srv.URL, TenantHeader: "X-CUSTOMER-ID"})
	require.NoError(t, err)

	resp, err := c.Post(context.Background(), "/oauth/token", "", map[string]interface{}{"grant_type": "client_credentials"})
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.False(t, sawAuth)
	require.False(t, sawTenant)
}

func TestClient_Post_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	c, err := NewClient(Config{BaseURL: url, Timeout: time.Second})
	require.NoError(t, err)

	_, err = c.Post(context.Background(), "/payers", "Bearer tok", map[string]interface{}{})
	require.Error(t, err)
}

func TestClient_Post_Timeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	c, err := NewClient(Config{BaseURL: srv.URL, Timeout: 50 * time.Millisecond})
	require.NoError(t, err)

	_, err = c.Post(context.Background(), "/payers", "Bearer tok", map[string]interface{}{})
	require.Error(t, err)
}
