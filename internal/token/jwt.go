package token

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/dtroode/marketplace-server/internal/model"
)

// Subject is the fixed OAuth2-style subject claim carried by session tokens.
const Subject = "MARKETPLACE-AUTH"

// Claims represents session token claims with user identity.
type Claims struct {
	jwt.RegisteredClaims
	UserID   uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Email    string    `json:"email"`
}

// JWT implements model.TokenManager backed by symmetric HMAC.
type JWT struct {
	secretKey string
	expiry    time.Duration
}

// NewJWT creates a JWT token manager with the provided secret key and
// token lifetime in minutes.
func NewJWT(secretKey string, expiryMinutes int) model.TokenManager {
	return &JWT{
		secretKey: secretKey,
		expiry:    time.Duration(expiryMinutes) * time.Minute,
	}
}

// Issue creates a signed session token asserting the user's identity.
func (j *JWT) Issue(user model.User) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   Subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(j.expiry)),
		},
		UserID:   user.ID,
		Username: user.Username,
		Email:    user.Email,
	})

	tokenString, err := token.SignedString([]byte(j.secretKey))
	if err != nil {
		return "", model.ErrInvalidToken
	}

	return tokenString, nil
}

// Decode verifies signature and expiry and extracts the user identity.
// Claims are never returned from a token that failed verification.
func (j *JWT) Decode(tokenString string) (model.TokenUser, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, model.ErrInvalidToken
		}
		return []byte(j.secretKey), nil
	})
	if err != nil {
		return model.TokenUser{}, model.ErrInvalidToken
	}
	if !token.Valid {
		return model.TokenUser{}, model.ErrInvalidToken
	}
	if claims.Subject != Subject {
		return model.TokenUser{}, model.ErrInvalidToken
	}
	if claims.UserID == uuid.Nil {
		return model.TokenUser{}, model.ErrInvalidToken
	}

	return model.TokenUser{
		ID:       claims.UserID,
		Username: claims.Username,
		Email:    claims.Email,
	}, nil
}
