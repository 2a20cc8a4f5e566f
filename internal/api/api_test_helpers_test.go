package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/nordvik/inkwell/internal/db"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	database, err := db.OpenSQLite(filepath.Join(t.TempDir(), "inkwell.db"))
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}

	handler := NewHandler(database, "test-secret", time.UTC, false)
	app := fiber.New()
	RegisterRoutes(app, handler)
	return app
}

func jsonRequest(t *testing.T, method string, target string, payload any) *http.Request {
	t.Helper()

	var body bytes.Buffer
	if payload != nil {
		if err := json.NewEncoder(&body).Encode(payload); err != nil {
			t.Fatalf("encode request body: %v", err)
		}
	}
	request := httptest.NewRequest(method, target, &body)
	request.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return request
}

func doJSON(t *testing.T, app *fiber.App, request *http.Request, wantStatus int) map[string]any {
	t.Helper()

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", request.Method, request.URL.Path, err)
	}
	defer response.Body.Close()

	if response.StatusCode != wantStatus {
		t.Fatalf("%s %s = %d, want %d", request.Method, request.URL.Path, response.StatusCode, wantStatus)
	}

	decoded := map[string]any{}
	if err := json.NewDecoder(response.Body).Decode(&decoded); err != nil {
		t.Fatalf("decode response body: %v", err)
	}
	return decoded
}

// registerOwner creates the instance's single account and returns the
// session cookie for subsequent requests.
func registerOwner(t *testing.T, app *fiber.App) *http.Cookie {
	t.Helper()

	request := jsonRequest(t, http.MethodPost, "/api/auth/register", map[string]any{
		"email":        "owner@example.com",
		"password":     "correct-horse-battery",
		"display_name": "Jane Doe",
	})
	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("register request: %v", err)
	}
	defer response.Body.Close()

	if response.StatusCode != fiber.StatusCreated {
		t.Fatalf("register = %d, want %d", response.StatusCode, fiber.StatusCreated)
	}
	for _, cookie := range response.Cookies() {
		if cookie.Name == authCookieName {
			return cookie
		}
	}
	t.Fatal("register response carries no auth cookie")
	return nil
}

func authedRequest(t *testing.T, method string, target string, payload any, cookie *http.Cookie) *http.Request {
	t.Helper()
	request := jsonRequest(t, method, target, payload)
	request.AddCookie(cookie)
	return request
}
