package auth

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/pashagolub/pgxmock/v3"
	"golang.org/x/crypto/bcrypt"
)

func TestLoginHandler(t *testing.T) {
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("mock pool: %v", err)
	}
	defer mock.Close()

	hash, _ := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.MinCost)
	mock.ExpectQuery(`SELECT id, password_hash FROM users`).
		WithArgs("dom@example.com").
		WillReturnRows(pgxmock.NewRows([]string{"id", "password_hash"}).AddRow("user-1", string(hash)))

	app := fiber.New()
	RegisterRoutes(app.Group("/auth"), NewService("secret", mock))

	body := []byte(`{"email":"dom@example.com","password":"hunter2"}`)
	req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil || resp.StatusCode != http.StatusOK {
		t.Fatalf("login status: %v", err)
	}

	raw, _ := io.ReadAll(resp.Body)
	var tokens TokenResponse
	if err := json.Unmarshal(raw, &tokens); err != nil || tokens.Token == "" {
		t.Fatalf("unexpected login body: %s", raw)
	}
}

func TestLoginHandlerBadRequest(t *testing.T) {
	app := fiber.New()
	RegisterRoutes(app.Group("/auth"), NewService("secret", nil))

	for _, body := range []string{`{`, `{}`, `{"email":"dom@example.com"}`} {
		req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader([]byte(body)))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)
		if err != nil || resp.StatusCode != http.StatusBadRequest {
			t.Fatalf("expected 400 for body %s", body)
		}
	}
}

func TestLoginHandlerUnauthorized(t *testing.T) {
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("mock pool: %v", err)
	}
	defer mock.Close()

	hash, _ := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.MinCost)
	mock.ExpectQuery(`SELECT id, password_hash FROM users`).
		WithArgs("dom@example.com").
		WillReturnRows(pgxmock.NewRows([]string{"id", "password_hash"}).AddRow("user-1", string(hash)))

	app := fiber.New()
	RegisterRoutes(app.Group("/auth"), NewService("secret", mock))

	body := []byte(`{"email":"dom@example.com","password":"wrong"}`)
	req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil || resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 for wrong password")
	}
}
