package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/jhoicas/almoxarifado-api/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/almoxarifado-api/pkg/jwt"
	"github.com/jhoicas/almoxarifado-api/pkg/logger"
)

func accessLog(t *testing.T, authHeader string) map[string]interface{} {
	t.Helper()
	var buf bytes.Buffer
	app := fiber.New(fiber.Config{ErrorHandler: apphttp.ErrorHandler})
	app.Use(apphttp.RequestLogger(logger.New(logger.Config{Env: "test", Level: "info", Out: &buf})))
	app.Get("/api/products", apphttp.AuthMiddleware(testJWTSecret, testIssuer), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
	if authHeader != "" {
		req.Header.Set(fiber.HeaderAuthorization, authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	resp.Body.Close()

	var event map[string]interface{}
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &event))
	return event
}

func TestRequestLogger_IncluyeUsuario(t *testing.T) {
	event := accessLog(t, tokenForRole(t, pkgjwt.RoleOperator))
	assert.Equal(t, "http request", event["message"])
	assert.Equal(t, "GET", event["method"])
	assert.Equal(t, float64(http.StatusOK), event["status"])
	assert.Equal(t, testUserID, event["user_id"])
}

func TestRequestLogger_SinTokenNoHayUsuario(t *testing.T) {
	event := accessLog(t, "")
	assert.Equal(t, float64(http.StatusUnauthorized), event["status"])
	assert.Equal(t, "warn", event["level"])
	assert.NotContains(t, event, "user_id")
}
