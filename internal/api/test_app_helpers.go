package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/noesis-app/noesis/internal/config"
	"github.com/noesis-app/noesis/internal/db"
	"gorm.io/gorm"
)

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	databasePath := filepath.Join(t.TempDir(), "noesis-test.db")
	database, err := db.OpenSQLite(databasePath)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("open sql db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	cfg := &config.Config{
		JWTSecret: "test-secret-key",
		JWTTTL:    time.Hour,
	}
	handler := NewHandler(database, cfg, time.UTC)

	app := fiber.New()
	RegisterRoutes(app, handler)
	return app, database
}

func jsonRequest(t *testing.T, method string, target string, payload any) *http.Request {
	t.Helper()

	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("encode request body: %v", err)
		}
		body = bytes.NewReader(encoded)
	}
	request := httptest.NewRequest(method, target, body)
	if payload != nil {
		request.Header.Set("Content-Type", "application/json")
	}
	return request
}

func decodeBody(t *testing.T, body io.Reader, target any) {
	t.Helper()

	raw, err := io.ReadAll(body)
	if err != nil {
		t.Fatalf("read response body: %v", err)
	}
	if err := json.Unmarshal(raw, target); err != nil {
		t.Fatalf("decode response body %q: %v", raw, err)
	}
}

func readAPIError(t *testing.T, body io.Reader) string {
	t.Helper()

	payload := map[string]string{}
	decodeBody(t, body, &payload)
	return payload["error"]
}

// signupTestUser registers a fresh account and returns its bearer token.
func signupTestUser(t *testing.T, app *fiber.App, email string, username string) string {
	t.Helper()

	request := jsonRequest(t, http.MethodPost, "/users/signup", map[string]any{
		"email":    email,
		"username": username,
		"password": "secret123",
	})
	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("signup request failed: %v", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusCreated {
		t.Fatalf("expected signup status 201, got %d", response.StatusCode)
	}

	payload := struct {
		Token string `json:"token"`
	}{}
	decodeBody(t, response.Body, &payload)
	if payload.Token == "" {
		t.Fatal("signup response has no token")
	}
	return payload.Token
}

func authedJSONRequest(t *testing.T, method string, target string, token string, payload any) *http.Request {
	t.Helper()

	request := jsonRequest(t, method, target, payload)
	request.Header.Set("Authorization", "Bearer "+token)
	return request
}
