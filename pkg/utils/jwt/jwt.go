package jwt

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

const VisitorTokenTTL = 365 * 24 * time.Hour

var ErrInvalidToken = errors.New("invalid visitor token")

// VisitorClaims anonim ziyaretçi kimliği; görüntülenme ve onay kayıtlarında anahtar olarak kullanılır
type VisitorClaims struct {
	VisitorID string `json:"vid"`
	jwt.RegisteredClaims
}

var jwtSecret = []byte("emlakweb-visitor-secret")

// SetSecret imzalama anahtarını değiştirir
func SetSecret(secret string) {
	if secret != "" {
		jwtSecret = []byte(secret)
	}
}

// GenerateVisitorToken yeni bir ziyaretçi ID'si ile imzalı token üretir
func GenerateVisitorToken() (string, string, error) {
	visitorID := uuid.New().String()
	now := time.Now()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, VisitorClaims{
		VisitorID: visitorID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   visitorID,
			ExpiresAt: jwt.NewNumericDate(now.Add(VisitorTokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	})

	signed, err := token.SignedString(jwtSecret)
	if err != nil {
		return "", "", err
	}
	return signed, visitorID, nil
}

func ValidateVisitorToken(tokenString string) (*VisitorClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &VisitorClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return jwtSecret, nil
	})

	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*VisitorClaims); ok && token.Valid && claims.VisitorID != "" {
		return claims, nil
	}

	return nil, ErrInvalidToken
}
