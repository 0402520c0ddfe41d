package utils

import (
	"fmt"
	"time"

	"nexus-tube/domain/model"
	"nexus-tube/infrastructure/logger"

	"github.com/golang-jwt/jwt"
)

// SessionTTL bounds how long an issued session token stays valid
const SessionTTL = 12 * time.Hour

func GetCurrentTime() time.Time {
	return time.Now().UTC()
}

func GenerateToken(payload map[string]interface{}, secretKey string) (string, error) {
	var claims jwt.MapClaims = payload
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(secretKey))
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while generate token")
		return "", err
	}
	return tokenString, nil
}

// GenerateSessionToken signs a token for user valid for SessionTTL
func GenerateSessionToken(user model.User, secretKey string) (string, error) {
	now := GetCurrentTime()
	return GenerateToken(map[string]interface{}{
		"iss":       user.ID,
		"iat":       now.Unix(),
		"exp":       now.Add(SessionTTL).Unix(),
		"user_id":   user.ID,
		"user_name": user.Name,
		"director":  user.IsCreativeDirector,
	}, secretKey)
}

// ParseSessionToken verifies raw and returns its claims
func ParseSessionToken(raw, secretKey string) (model.SessionClaims, error) {
	var claims model.SessionClaims
	token, err := jwt.ParseWithClaims(raw, &claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return []byte(secretKey), nil
	})
	if err != nil {
		return claims, err
	}
	if !token.Valid {
		return claims, model.ErrUnauthorized
	}
	return claims, nil
}
