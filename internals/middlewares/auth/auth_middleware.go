// internals/middlewares/auth/auth_middleware.go
package auth

import (
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"tutorhub_backend/internals/configs"
)

// StaffAuthMiddleware memverifikasi bearer token staff dan menyimpan
// staff_id + staff_role ke locals.
func StaffAuthMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString, err := extractBearerToken(c)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, err.Error())
		}

		secretKey := configs.JWTSecret
		if secretKey == "" {
			log.Println("[ERROR] JWT_SECRET kosong")
			return fiber.NewError(fiber.StatusInternalServerError, "Missing JWT Secret")
		}

		claims := jwt.MapClaims{}
		if _, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(secretKey), nil
		}); err != nil {
			log.Println("[ERROR] Gagal parse token:", err)
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Token parse error")
		}

		if err := validateTokenExpiry(claims); err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Token expired")
		}

		staffID, _ := claims["sub"].(string)
		if strings.TrimSpace(staffID) == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Invalid or missing staff ID")
		}
		role, _ := claims["role"].(string)

		c.Locals("staff_id", staffID)
		c.Locals("staff_role", role)

		return c.Next()
	}
}

func extractBearerToken(c *fiber.Ctx) (string, error) {
	authHeader := c.Get("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer ")), nil
	}
	// fallback cookie (web)
	if cookie := c.Cookies("access_token"); cookie != "" {
		return cookie, nil
	}
	return "", fiber.ErrUnauthorized
}

func validateTokenExpiry(claims jwt.MapClaims) error {
	exp, ok := claims["exp"].(float64)
	if !ok {
		return jwt.ErrTokenInvalidClaims
	}
	if time.Now().After(time.Unix(int64(exp), 0).Add(30 * time.Second)) {
		return jwt.ErrTokenExpired
	}
	return nil
}
