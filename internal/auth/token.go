package auth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/AlenaMolokova/checks/internal/apperrors"
	"github.com/AlenaMolokova/checks/internal/constants"
)

var (
	ErrTokenExpired   = fmt.Errorf("%w: signature has expired", apperrors.ErrUnauthorized)
	ErrTokenInvalid   = fmt.Errorf("%w: invalid token", apperrors.ErrUnauthorized)
	ErrWrongTokenKind = fmt.Errorf("%w: wrong token type", apperrors.ErrUnauthorized)
)

type Claims struct {
	jwt.RegisteredClaims
	TokenType string `json:"token_type"`
}

// TokenHandler builds and validates the signed bearer tokens. Signing is
// HS256 with a single server secret; expiry per token kind comes from config.
type TokenHandler struct {
	secret        []byte
	accessExpiry  time.Duration
	refreshExpiry time.Duration
}

func NewTokenHandler(secret string, accessExpiry, refreshExpiry time.Duration) *TokenHandler {
	return &TokenHandler{
		secret:        []byte(secret),
		accessExpiry:  accessExpiry,
		refreshExpiry: refreshExpiry,
	}
}

// ExpiryFor returns the configured lifetime for a token kind. An unknown kind
// is a configuration error, not a token error.
func (h *TokenHandler) ExpiryFor(tokenType string) (time.Duration, error) {
	switch tokenType {
	case constants.TokenTypeAccess:
		return h.accessExpiry, nil
	case constants.TokenTypeRefresh:
		return h.refreshExpiry, nil
	default:
		return 0, fmt.Errorf("no expiry configured for token type %q", tokenType)
	}
}

func (h *TokenHandler) Issue(tokenType string, userID int64) (string, time.Time, error) {
	expiry, err := h.ExpiryFor(tokenType)
	if err != nil {
		return "", time.Time{}, err
	}

	now := time.Now()
	expiresAt := now.Add(expiry)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(userID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
		TokenType: tokenType,
	})

	signed, err := token.SignedString(h.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// Parse validates the signature and expiry and returns the subject user id.
// When expectedType is non-empty, a structurally valid token of the wrong
// kind is rejected: a refresh token must never pass as an access token.
func (h *TokenHandler) Parse(tokenString, expectedType string) (int64, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return h.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return 0, ErrTokenExpired
		}
		return 0, ErrTokenInvalid
	}
	if !token.Valid {
		return 0, ErrTokenInvalid
	}

	if expectedType != "" && claims.TokenType != expectedType {
		return 0, ErrWrongTokenKind
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return 0, ErrTokenInvalid
	}
	return userID, nil
}
