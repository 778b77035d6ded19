package handlers

import (
	"fmt"

	config "github.com/edmondkiprop/tutor_connect/configs"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

// currentUser pulls the authenticated user's id and role out of the JWT the
// Protected middleware already verified.
func currentUser(c *fiber.Ctx) (uuid.UUID, string) {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	userID, role, _ := claimsIdentity(claims)
	return userID, role
}

// claimsIdentity reads the user_id and role claims without trusting their
// shape; a signed token missing either is still rejected.
func claimsIdentity(claims jwt.MapClaims) (uuid.UUID, string, error) {
	rawID, ok := claims["user_id"].(string)
	if !ok {
		return uuid.Nil, "", fmt.Errorf("missing user_id claim")
	}
	userID, err := uuid.Parse(rawID)
	if err != nil {
		return uuid.Nil, "", fmt.Errorf("malformed user_id claim")
	}
	role, _ := claims["role"].(string)
	return userID, role, nil
}

func parseToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(config.Config("JWT_SECRET")), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	return claims, nil
}
