package handler

import (
	"context"
	"testing"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"

	"backend-queue/internal/models"
)

func TestLogin(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	hashed, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}

	fs := &fakeStore{
		adminFn: func(ctx context.Context, username string) (models.Admin, bool, error) {
			if username != "admin" {
				return models.Admin{}, false, nil
			}
			return models.Admin{ID: 1, Username: "admin", Password: string(hashed)}, true, nil
		},
	}
	app := newTestApp(fs)

	cases := []struct {
		name   string
		body   string
		status int
	}{
		{"missing fields", `{"username":"admin"}`, fiber.StatusBadRequest},
		{"unknown user", `{"username":"ghost","password":"s3cret"}`, fiber.StatusUnauthorized},
		{"wrong password", `{"username":"admin","password":"nope"}`, fiber.StatusUnauthorized},
		{"ok", `{"username":"admin","password":"s3cret"}`, fiber.StatusOK},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			status, body := doJSON(t, app, "POST", "/api/admin/login", tt.body)
			if status != tt.status {
				t.Fatalf("status = %d, want %d", status, tt.status)
			}
			if tt.status == fiber.StatusOK {
				token, _ := body["token"].(string)
				if token == "" {
					t.Fatalf("no token in %v", body)
				}
			}
		})
	}
}

func TestLoginMissingSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	hashed, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}

	fs := &fakeStore{
		adminFn: func(ctx context.Context, username string) (models.Admin, bool, error) {
			return models.Admin{ID: 1, Username: "admin", Password: string(hashed)}, true, nil
		},
	}
	app := newTestApp(fs)

	status, body := doJSON(t, app, "POST", "/api/admin/login", `{"username":"admin","password":"s3cret"}`)
	if status != fiber.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", status)
	}
	if body["error"] != "JWT_SECRET not configured" {
		t.Fatalf("error = %v", body["error"])
	}
}
