package utils

import (
	"errors"
	"time"

	"tably/config"

	"github.com/golang-jwt/jwt"
)

func secretKey() []byte {
	secret := config.AppConfig.JWTSecret
	if secret == "" {
		secret = "tably-dev-secret"
	}
	return []byte(secret)
}

// GenerateStaffToken creates a signed JWT for a back-office staff member.
// The subject is the staff email; tenantID scopes the token to one tenant.
func GenerateStaffToken(subject, tenantID, role string, duration time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub":    subject,
		"tenant": tenantID,
		"role":   role,
		"iat":    time.Now().Unix(),
		"exp":    time.Now().Add(duration).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secretKey())
}

// ParseStaffToken validates a staff token and returns its subject, tenant and role.
func ParseStaffToken(tokenString string) (subject, tenantID, role string, err error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secretKey(), nil
	})
	if err != nil || !token.Valid {
		return "", "", "", errors.New("invalid or expired token")
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", "", "", errors.New("invalid token claims")
	}
	subject, _ = claims["sub"].(string)
	tenantID, _ = claims["tenant"].(string)
	role, _ = claims["role"].(string)
	if subject == "" || tenantID == "" {
		return "", "", "", errors.New("token missing required claims")
	}
	return subject, tenantID, role, nil
}
