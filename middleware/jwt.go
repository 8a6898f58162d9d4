package middleware

import (
	"egrow/config"
	"egrow/database"
	"egrow/models"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

// GenerateJWT generates a JWT token for the user
func GenerateJWT(userID uint, name, role, email string) (string, error) {
	claims := jwt.MapClaims{
		"userId": userID,
		"name":   name,
		"role":   role,
		"email":  email,
		"iat":    time.Now().Unix(),
		"exp":    time.Now().Add(24 * time.Hour).Unix(), // expiry 24h
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	jwtSecret := []byte(config.AppConfig.JWTKey)

	return token.SignedString(jwtSecret)
}

// extractToken pulls the session token from the Authorization header or the
// session cookie. Header wins when both are present.
func extractToken(c *fiber.Ctx) string {
	authHeader := c.Get("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return authHeader[len("Bearer "):]
	}
	return c.Cookies("session")
}

// parseToken validates the JWT signature and returns the userId claim
func parseToken(tokenString string) (uint, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(config.AppConfig.JWTKey), nil
	})
	if err != nil || !token.Valid {
		return 0, fmt.Errorf("invalid or expired token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || claims["userId"] == nil {
		return 0, fmt.Errorf("invalid token payload")
	}

	userID, ok := claims["userId"].(float64) // numeric JWT claims decode as float64
	if !ok {
		return 0, fmt.Errorf("invalid token payload")
	}
	return uint(userID), nil
}

// AuthMiddleware rejects requests without a valid session token. The token is
// accepted from "Authorization: Bearer" or the "session" cookie. When a stored
// session row exists for the token and has expired, the request fails with a
// session-expired error even if the JWT itself is still valid.
func AuthMiddleware(c *fiber.Ctx) error {
	tokenString := extractToken(c)
	if tokenString == "" {
		return ErrorResponse(c, fiber.StatusUnauthorized, "Unauthorized", "missing session token")
	}

	userID, err := parseToken(tokenString)
	if err != nil {
		return ErrorResponse(c, fiber.StatusUnauthorized, "Unauthorized", err.Error())
	}

	var session models.Session
	if dbErr := database.Database.Db.Where("token = ? AND is_deleted = ?", tokenString, false).
		First(&session).Error; dbErr == nil {
		if time.Now().After(session.ExpiresAt) {
			return ErrorResponse(c, fiber.StatusUnauthorized, "Session expired", "")
		}
	}

	c.Locals("userId", userID)
	return c.Next()
}

// OptionalAuthMiddleware sets userId when a valid token is present but never
// rejects the request. Handlers serving mixed public/gated content decide.
func OptionalAuthMiddleware(c *fiber.Ctx) error {
	tokenString := extractToken(c)
	if tokenString == "" {
		return c.Next()
	}

	userID, err := parseToken(tokenString)
	if err != nil {
		return c.Next()
	}

	var session models.Session
	if dbErr := database.Database.Db.Where("token = ? AND is_deleted = ?", tokenString, false).
		First(&session).Error; dbErr == nil {
		if time.Now().After(session.ExpiresAt) {
			return c.Next()
		}
	}

	c.Locals("userId", userID)
	return c.Next()
}
