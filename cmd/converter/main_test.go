package main

import (
	"context"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"currency-converter/internal/service/conversion"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("APP_HOST", "")
	t.Setenv("APP_PORT", "")
	t.Setenv("APP_LOG_LEVEL", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0", cfg.HTTPHost)
	assert.Equal(t, "1234", cfg.HTTPPort)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, conversion.Rates{EURToUSD: 1.16, USDToGBP: 0.73}, cfg.Rates)
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("APP_HOST", "127.0.0.1")
	t.Setenv("APP_PORT", "3001")
	t.Setenv("APP_LOG_LEVEL", "debug")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1", cfg.HTTPHost)
	assert.Equal(t, "3001", cfg.HTTPPort)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadConfig_InvalidPort(t *testing.T) {
	t.Setenv("APP_PORT", "http")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "APP_PORT")
}

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	svc, err := conversion.New(conversion.Rates{EURToUSD: 1.16, USDToGBP: 0.73})
	require.NoError(t, err)

	srv := httptest.NewServer(newRouter(svc, zap.NewNop().Sugar()))
	t.Cleanup(srv.Close)
	return srv
}

func get(t *testing.T, url string) (int, string, http.Header) {
	t.Helper()

	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(body), resp.Header
}

func TestRouter_Endpoints(t *testing.T) {
	srv := newTestServer(t)

	tests := []struct {
		path       string
		wantStatus int
		wantBody   string
	}{
		{path: "/convert-eur-to-usd?eur=0", wantStatus: http.StatusOK, wantBody: "0 EUR = 0.00 USD"},
		{path: "/convert-eur-to-usd?eur=100", wantStatus: http.StatusOK, wantBody: "100 EUR = 116.00 USD"},
		{path: "/convert-usd-to-gbp?usd=100", wantStatus: http.StatusOK, wantBody: "100 USD = 73.00 GBP"},
		{path: "/convert-eur-to-usd?eur=abc", wantStatus: http.StatusBadRequest, wantBody: "Montant invalide sale con met un nombre positif"},
		{path: "/convert-usd-to-gbp?usd=-50", wantStatus: http.StatusBadRequest, wantBody: "Montant invalide: doit être un nombre positif"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			status, body, header := get(t, srv.URL+tt.path)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantBody, body)
			assert.NotEmpty(t, header.Get("X-Request-ID"))
		})
	}
}

func TestRouter_Page(t *testing.T) {
	srv := newTestServer(t)

	status, body, _ := get(t, srv.URL+"/")
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, "Convertisseur de devises")
	assert.Contains(t, body, "Convertisseur EUR → USD")
	assert.Contains(t, body, "Convertisseur USD → GBP")
}

func TestRouter_HealthAndSwagger(t *testing.T) {
	srv := newTestServer(t)

	status, body, _ := get(t, srv.URL+"/health")
	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"status":"healthy","service":"currency-converter"}`, body)

	status, body, _ = get(t, srv.URL+"/swagger/doc.json")
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, "/convert-eur-to-usd")
	assert.Contains(t, body, "/convert-usd-to-gbp")
}

func TestServeHTTP_Shutdown(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	defer ln.Close()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- serveHTTP(ctx, ln, http.NotFoundHandler(), zap.NewNop().Sugar())
	}()

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}
