package middleware_test

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"app/config"
	"app/middleware"
	"app/models"
)

func protectedApp() *fiber.App {
	app := fiber.New()
	app.Get("/secure", middleware.Authenticate, func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"user": c.Locals("userID")})
	})
	return app
}

func signToken(t *testing.T, secret string) string {
	t.Helper()
	claims := models.JwtClaims{
		UserID: "tester",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return token
}

func TestAuthenticate(t *testing.T) {
	old := config.AppConfig.JWTSecret
	config.AppConfig.JWTSecret = "test-secret"
	t.Cleanup(func() { config.AppConfig.JWTSecret = old })

	app := protectedApp()

	// Valid token passes.
	req := httptest.NewRequest("GET", "/secure", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "test-secret"))
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Errorf("valid token: status = %d; want 200", resp.StatusCode)
	}

	// Wrong signing secret is rejected.
	req = httptest.NewRequest("GET", "/secure", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "other-secret"))
	resp, err = app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Errorf("forged token: status = %d; want 401", resp.StatusCode)
	}

	// Missing header is rejected.
	resp, err = app.Test(httptest.NewRequest("GET", "/secure", nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Errorf("missing header: status = %d; want 401", resp.StatusCode)
	}

	// Malformed scheme is rejected.
	req = httptest.NewRequest("GET", "/secure", nil)
	req.Header.Set("Authorization", "Token abc")
	resp, err = app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Errorf("bad scheme: status = %d; want 401", resp.StatusCode)
	}
}
