package utils

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// Session tokens are HS256-signed locally. There is no external identity
// provider; the token only carries the email the account was resolved by.

var signingSecret []byte

const SessionTTL = 24 * time.Hour

func InitTokenSigner(secret string) error {
	if secret == "" {
		return errors.New("session token secret is empty")
	}
	signingSecret = []byte(secret)
	return nil
}

type TokenData struct {
	Email string
	Exp   int64
}

// IssueSessionToken signs a token for the given account email. The email
// is stored exact-case, matching how the user record keeps it.
func IssueSessionToken(email string) (string, error) {
	if signingSecret == nil {
		return "", errors.New("token signer not initialized")
	}

	now := time.Now().UTC()
	claims := jwt.RegisteredClaims{
		Subject:   email,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(SessionTTL)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(signingSecret)
}

// ValidateToken parses AND validates the signature locally.
// It returns the data if the token is authentic and unexpired.
func ValidateToken(tokenString string) (*TokenData, error) {
	if signingSecret == nil {
		return nil, errors.New("token signer not initialized")
	}

	clean := sanitizeToken(tokenString)
	token, err := jwt.ParseWithClaims(clean, &jwt.RegisteredClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return signingSecret, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid {
		return nil, errors.New("token is not valid")
	}

	var exp int64
	if claims.ExpiresAt != nil {
		exp = claims.ExpiresAt.Unix()
	}
	return &TokenData{Email: claims.Subject, Exp: exp}, nil
}

func ParseTokenDataCtx(ctx echo.Context) (*TokenData, error) {
	token := ctx.Request().Header.Get(echo.HeaderAuthorization)
	if strings.TrimSpace(token) == "" {
		return nil, errors.New("missing authorization header")
	}
	return ValidateToken(token)
}

func sanitizeToken(token string) string {
	return strings.TrimSpace(strings.TrimPrefix(token, "Bearer "))
}
