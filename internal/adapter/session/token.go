package session

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"taskboard/internal/core/domain"
	"taskboard/internal/core/ports"
)

type Claims struct {
	UserID uint64 `json:"userId"`
	jwt.RegisteredClaims
}

type TokenResolver struct {
	secret []byte
	ttl    time.Duration
	issuer string
	now    func() time.Time
}

var (
	_ Resolver            = (*TokenResolver)(nil)
	_ ports.SessionIssuer = (*TokenResolver)(nil)
	_ ports.SessionIssuer = HeaderResolver{}
)

func NewTokenResolver(secret string, ttl time.Duration, issuer string) *TokenResolver {
	return &TokenResolver{
		secret: []byte(secret),
		ttl:    ttl,
		issuer: issuer,
		now:    time.Now,
	}
}

func (t *TokenResolver) Issue(userID uint64) (string, error) {
	now := t.now()
	claims := Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    t.issuer,
			Subject:   strconv.FormatUint(userID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
	if err != nil {
		return "", fmt.Errorf("sign session token: %w", err)
	}
	return signed, nil
}

func (t *TokenResolver) Resolve(r *http.Request) (uint64, error) {
	raw, err := bearerToken(r)
	if err != nil {
		return 0, err
	}
	return t.Parse(raw)
}

func (t *TokenResolver) Parse(raw string) (uint64, error) {
	var claims Claims
	_, err := jwt.ParseWithClaims(raw, &claims, func(token *jwt.Token) (any, error) {
		return t.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(t.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(t.now),
	)
	if err != nil {
		return 0, errors.Join(domain.ErrInvalidUser, err)
	}
	if claims.UserID == 0 {
		return 0, domain.ErrInvalidUser
	}
	return claims.UserID, nil
}
