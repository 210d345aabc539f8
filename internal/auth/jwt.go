package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims are what a session token carries.
type Claims struct {
	SessionID string
	IDNumber  string
	Role      string
	ExpiresAt time.Time
}

type TokenSigner struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenSigner(secret string, ttl time.Duration) (*TokenSigner, error) {
	if secret == "" {
		return nil, errors.New("JWT secret not set")
	}
	return &TokenSigner{secret: []byte(secret), ttl: ttl, now: time.Now}, nil
}

func (s *TokenSigner) GenerateToken(sessionID, idNumber, role string) (string, time.Time, error) {
	if sessionID == "" {
		return "", time.Time{}, errors.New("empty sessionID passed to GenerateToken")
	}

	exp := s.now().Add(s.ttl)
	claims := jwt.MapClaims{
		"sessionID": sessionID,
		"idNumber":  idNumber,
		"role":      role,
		"exp":       exp.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, exp, nil
}

func (s *TokenSigner) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now), jwt.WithExpirationRequired())
	if err != nil || !token.Valid {
		return nil, errors.New("invalid token")
	}

	mc, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid token claims")
	}

	claims := &Claims{}
	claims.SessionID, _ = mc["sessionID"].(string)
	claims.IDNumber, _ = mc["idNumber"].(string)
	claims.Role, _ = mc["role"].(string)
	if exp, err := mc.GetExpirationTime(); err == nil && exp != nil {
		claims.ExpiresAt = exp.Time
	}

	if claims.SessionID == "" {
		return nil, errors.New("invalid token claims")
	}
	return claims, nil
}
