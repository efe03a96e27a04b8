package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/karimbadr/mohasib-api/internal/interfaces/http"
	"github.com/karimbadr/mohasib-api/internal/domain/entity"
	pkgjwt "github.com/karimbadr/mohasib-api/pkg/jwt"
)

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testUserID    = "00000000-0000-0000-0000-000000000001"
	testIssuer    = "mohasib-test"
	testExpMin    = 60
)

// buildTestApp wires AuthMiddleware in front of a handler that echoes the
// actor loaded into locals.
func buildTestApp() *fiber.App {
	app := fiber.New()
	app.Get("/protected", apphttp.AuthMiddleware(testJWTSecret), func(c *fiber.Ctx) error {
		actor := apphttp.GetActor(c)
		return c.JSON(fiber.Map{"user_id": actor.ID, "role": actor.Role})
	})
	return app
}

func doRequest(t *testing.T, app *fiber.App, authHeader string) (int, map[string]string) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var payload map[string]string
	require.NoError(t, json.Unmarshal(body, &payload))
	return resp.StatusCode, payload
}

func TestAuthMiddlewareValidToken(t *testing.T) {
	token, err := pkgjwt.Generate(testJWTSecret, testUserID, entity.RoleManager, testIssuer, testExpMin)
	require.NoError(t, err)

	status, payload := doRequest(t, buildTestApp(), "Bearer "+token)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, testUserID, payload["user_id"])
	assert.Equal(t, entity.RoleManager, payload["role"])
}

func TestAuthMiddlewareMissingHeader(t *testing.T) {
	status, payload := doRequest(t, buildTestApp(), "")
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "MISSING_TOKEN", payload["code"])
}

func TestAuthMiddlewareBadScheme(t *testing.T) {
	status, payload := doRequest(t, buildTestApp(), "Basic abc123")
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "INVALID_TOKEN", payload["code"])
}

func TestAuthMiddlewareGarbageToken(t *testing.T) {
	status, payload := doRequest(t, buildTestApp(), "Bearer not-a-jwt")
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "INVALID_TOKEN", payload["code"])
}

func TestAuthMiddlewareWrongSecret(t *testing.T) {
	token, err := pkgjwt.Generate("another-secret", testUserID, entity.RoleEmployee, testIssuer, testExpMin)
	require.NoError(t, err)

	status, payload := doRequest(t, buildTestApp(), "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "INVALID_TOKEN", payload["code"])
}
