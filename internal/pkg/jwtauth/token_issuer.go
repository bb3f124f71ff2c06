package jwtauth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"backoffice/internal/pkg/errs"
)

// ErrTokenInvalid is returned by Verify for any token that fails parsing,
// signature verification or standard claim validation.
var ErrTokenInvalid = errors.New("access token is invalid")

// Claims is the identity payload carried by an access token.
type Claims struct {
	Subject  string
	Name     string
	Email    string
	Role     string
	FullName string
}

type accessTokenClaims struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	FullName string `json:"full_name"`
	jwt.RegisteredClaims
}

// TokenIssuer signs and verifies HS256 access tokens.
type TokenIssuer struct {
	secret   []byte
	issuer   string
	audience string
	ttl      time.Duration
}

// NewTokenIssuer creates a TokenIssuer. The secret must not be empty and the
// ttl must be positive.
func NewTokenIssuer(secret, issuer, audience string, ttl time.Duration) (*TokenIssuer, error) {
	if secret == "" {
		return nil, errs.NewValueIsRequiredError("secret")
	}

	if ttl <= 0 {
		return nil, errs.NewValueIsInvalidError("ttl")
	}

	return &TokenIssuer{
		secret:   []byte(secret),
		issuer:   issuer,
		audience: audience,
		ttl:      ttl,
	}, nil
}

// Issue signs an access token for the given claims, valid for the issuer's
// configured ttl from now.
func (i *TokenIssuer) Issue(claims Claims, now time.Time) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, accessTokenClaims{
		Name:     claims.Name,
		Email:    claims.Email,
		Role:     claims.Role,
		FullName: claims.FullName,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   claims.Subject,
			Issuer:    i.issuer,
			Audience:  jwt.ClaimStrings{i.audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
		},
	})

	return token.SignedString(i.secret)
}

// Verify parses and validates an access token and returns its claims.
// Expired, malformed and wrongly signed tokens all come back as
// ErrTokenInvalid.
func (i *TokenIssuer) Verify(tokenString string) (Claims, error) {
	var parsed accessTokenClaims
	token, err := jwt.ParseWithClaims(
		tokenString,
		&parsed,
		func(*jwt.Token) (any, error) { return i.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(i.issuer),
		jwt.WithAudience(i.audience),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !token.Valid {
		return Claims{}, ErrTokenInvalid
	}

	return Claims{
		Subject:  parsed.Subject,
		Name:     parsed.Name,
		Email:    parsed.Email,
		Role:     parsed.Role,
		FullName: parsed.FullName,
	}, nil
}

// TTL returns the configured access token lifetime.
func (i *TokenIssuer) TTL() time.Duration {
	return i.ttl
}
