package middleware

import (
	"context"
	"fmt"
	"strings"
	"time"

	"lingadmin/backend"
	"lingadmin/config"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

// GenerateSessionToken wraps a platform access token in a console-signed JWT.
// The console itself is stateless; the platform token travels inside the
// claims and is re-attached to every backend call.
func GenerateSessionToken(userID, email, name string, apiToken string) (string, error) {
	claims := jwt.MapClaims{
		"userId":   userID,
		"email":    email,
		"name":     name,
		"apiToken": apiToken,
		"iat":      time.Now().Unix(),
		"exp":      time.Now().Add(24 * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	jwtSecret := []byte(config.AppConfig.JWTKey)

	return token.SignedString(jwtSecret)
}

// SessionMiddleware checks for a valid console session token and stores the
// user id and the embedded platform token in the request context.
func SessionMiddleware(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"status":  false,
			"message": "Missing or invalid Authorization header",
		})
	}

	if !strings.HasPrefix(authHeader, "Bearer ") {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"status":  false,
			"message": "Invalid Authorization header format",
		})
	}

	tokenString := authHeader[len("Bearer "):]

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(config.AppConfig.JWTKey), nil
	})

	if err != nil || !token.Valid {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"status":  false,
			"message": "Invalid or expired token",
		})
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || claims["userId"] == nil || claims["apiToken"] == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"status":  false,
			"message": "Invalid token payload",
		})
	}

	userID, _ := claims["userId"].(string)
	apiToken, _ := claims["apiToken"].(string)
	if userID == "" || apiToken == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"status":  false,
			"message": "Invalid token payload",
		})
	}

	c.Locals("userId", userID)
	c.Locals("apiToken", apiToken)

	return c.Next()
}

// RequestContext builds the context for backend calls, carrying the session's
// platform token when present.
func RequestContext(c *fiber.Ctx) context.Context {
	ctx := c.UserContext()
	if tok, ok := c.Locals("apiToken").(string); ok && tok != "" {
		ctx = backend.WithToken(ctx, tok)
	}
	return ctx
}

func JsonResponse(c *fiber.Ctx, statusCode int, status bool, message string, data interface{}) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"status":  status,
		"message": message,
		"data":    data,
	})
}

func ValidationErrorResponse(c *fiber.Ctx, errors map[string]string) error {
	return JsonResponse(c, fiber.StatusUnprocessableEntity, false, "Validation failed!", errors)
}

// APIErrorResponse maps a failed backend call onto the console envelope.
func APIErrorResponse(c *fiber.Ctx, err error) error {
	if apiErr, ok := err.(*backend.APIError); ok {
		code := fiber.StatusBadGateway
		if apiErr.Status >= 400 && apiErr.Status < 500 {
			code = apiErr.Status
		}
		return JsonResponse(c, code, false, apiErr.Message, nil)
	}
	return JsonResponse(c, fiber.StatusBadGateway, false, "Something went wrong. Please try again.", nil)
}
