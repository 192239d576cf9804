package middlewares

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"solamate_server/errors"
	"solamate_server/global"
	"solamate_server/helpers"

	"github.com/gagliardetto/solana-go"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequireWallet(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: errors.ErrorHandler})
	app.Get("/w", RequireWallet, func(c *fiber.Ctx) error {
		return c.SendString(c.Locals("wallet").(string))
	})

	wallet := solana.NewWallet().PublicKey().String()

	tests := []struct {
		name   string
		url    string
		status int
		body   string
	}{
		{name: "Valid", url: "/w?walletAddress=" + wallet, status: http.StatusOK, body: wallet},
		{name: "Missing", url: "/w", status: http.StatusBadRequest, body: "walletAddress is required"},
		{name: "Invalid", url: "/w?walletAddress=0xdeadbeef", status: http.StatusBadRequest, body: "walletAddress is wallet"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := app.Test(httptest.NewRequest(http.MethodGet, tt.url, nil))
			require.NoError(t, err)
			assert.Equal(t, tt.status, res.StatusCode)
			b, _ := io.ReadAll(res.Body)
			assert.Contains(t, string(b), tt.body)
		})
	}
}

func TestAuthenticateStream(t *testing.T) {
	global.JwtKey = []byte("stream-secret")
	app := fiber.New(fiber.Config{ErrorHandler: errors.ErrorHandler})
	app.Get("/stream", AuthenticateStream, func(c *fiber.Ctx) error {
		return c.SendString(c.Locals("wallet").(string))
	})

	wallet := solana.NewWallet().PublicKey().String()
	token, _, err := helpers.GenerateJWT(wallet, time.Now())
	require.NoError(t, err)
	expired, _, err := helpers.GenerateJWT(wallet, time.Now().Add(-48*time.Hour))
	require.NoError(t, err)

	upgrade := func(url string) *http.Request {
		req := httptest.NewRequest(http.MethodGet, url, nil)
		req.Header.Set("Connection", "Upgrade")
		req.Header.Set("Upgrade", "websocket")
		return req
	}

	tests := []struct {
		name   string
		req    *http.Request
		status int
	}{
		{name: "NotUpgrade", req: httptest.NewRequest(http.MethodGet, "/stream?token="+token, nil), status: http.StatusUpgradeRequired},
		{name: "NoToken", req: upgrade("/stream"), status: http.StatusUnauthorized},
		{name: "Expired", req: upgrade("/stream?token=" + expired), status: http.StatusBadRequest},
		{name: "Valid", req: upgrade("/stream?token=" + token), status: http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := app.Test(tt.req)
			require.NoError(t, err)
			assert.Equal(t, tt.status, res.StatusCode)
		})
	}
}

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)

	app := fiber.New(fiber.Config{ErrorHandler: errors.ErrorHandler})
	app.Use(m.Handler)
	app.Get("/ok", func(c *fiber.Ctx) error { return c.SendString("ok") })
	app.Get("/teapot", func(c *fiber.Ctx) error { return fiber.NewError(fiber.StatusTeapot, "no") })

	for _, url := range []string{"/ok", "/ok", "/teapot"} {
		_, err := app.Test(httptest.NewRequest(http.MethodGet, url, nil))
		require.NoError(t, err)
	}

	assert.Equal(t, 2.0, testutil.ToFloat64(m.requests.WithLabelValues("/ok", "GET", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.requests.WithLabelValues("/teapot", "GET", "418")))

	n, err := testutil.GatherAndCount(reg, "solamate_http_request_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}
