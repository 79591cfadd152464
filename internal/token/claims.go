// Package token reads identity claims out of upstream access tokens.
//
// The parse is deliberately unverified: the token is opaque proof for the
// upstream API, and the claims are used only as a display hint (showing
// edit/delete controls). The upstream independently enforces ownership.
package token

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Claims are the identity fields carried in an upstream access token.
type Claims struct {
	Username string `json:"username"`
	UserID   int64  `json:"user_id"`
}

// Decode extracts identity claims from a JWT without verifying its signature.
func Decode(accessToken string) (Claims, error) {
	var claims Claims

	parsed, _, err := jwt.NewParser().ParseUnverified(accessToken, jwt.MapClaims{})
	if err != nil {
		return Claims{}, fmt.Errorf("parse access token: %w", err)
	}

	mapClaims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return Claims{}, fmt.Errorf("unexpected claims type %T", parsed.Claims)
	}

	if username, ok := mapClaims["username"].(string); ok {
		claims.Username = username
	}
	if id, ok := mapClaims["user_id"].(float64); ok {
		claims.UserID = int64(id)
	}

	return claims, nil
}
