package model

import "github.com/golang-jwt/jwt"

// SessionClaims is the payload of the bearer token handed out on login
type SessionClaims struct {
	jwt.StandardClaims
	UserID   string `json:"user_id"`
	UserName string `json:"user_name"`
	Director bool   `json:"director"`
}
