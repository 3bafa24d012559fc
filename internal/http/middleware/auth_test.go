package middleware

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pawfectfind/internal/auth"
)

func authTestApp(t *testing.T, tokens *auth.TokenManager) *fiber.App {
	t.Helper()

	app := fiber.New()
	app.Use(RequestID())
	app.Get("/protected", RequireAuth(tokens), func(c *fiber.Ctx) error {
		id, ok := UserID(c)
		require.True(t, ok)
		return c.JSON(fiber.Map{"user_id": id})
	})

	return app
}

func TestRequireAuth_ValidToken(t *testing.T) {
	tokens := auth.NewTokenManager("test-secret", time.Hour)
	app := authTestApp(t, tokens)

	token, err := tokens.Issue(42)
	require.NoError(t, err)

	req := httptest.NewRequest(fiber.MethodGet, "/protected", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	var payload map[string]any
	require.NoError(t, json.Unmarshal(body, &payload))
	assert.Equal(t, float64(42), payload["user_id"])
}

func TestRequireAuth_Rejections(t *testing.T) {
	tokens := auth.NewTokenManager("test-secret", time.Hour)
	other := auth.NewTokenManager("other-secret", time.Hour)

	forged, err := other.Issue(42)
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
	}{
		{name: "missing header", header: ""},
		{name: "not bearer", header: "Basic abc"},
		{name: "empty token", header: "Bearer "},
		{name: "garbage token", header: "Bearer not-a-jwt"},
		{name: "wrong secret", header: "Bearer " + forged},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := authTestApp(t, tokens)

			req := httptest.NewRequest(fiber.MethodGet, "/protected", nil)
			if tt.header != "" {
				req.Header.Set(fiber.HeaderAuthorization, tt.header)
			}

			resp, err := app.Test(req)
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

			body, _ := io.ReadAll(resp.Body)
			var payload struct {
				RequestID string `json:"request_id"`
				Error     struct {
					Code    string `json:"code"`
					Message string `json:"message"`
				} `json:"error"`
			}
			require.NoError(t, json.Unmarshal(body, &payload))
			assert.Equal(t, "UNAUTHORIZED", payload.Error.Code)
			assert.NotEmpty(t, payload.RequestID)
		})
	}
}
