// Package session resolves the caller identity attached to a request.
//
// HeaderResolver reads the raw numeric X-User-Id header. Any client can
// claim any existing id with it; it is kept because it is the public
// contract. TokenResolver is the opt-in replacement that accepts only
// HS256 tokens issued at login.
package session

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"taskboard/internal/core/domain"
)

const (
	UserIDHeader        = "X-User-Id"
	AuthorizationHeader = "Authorization"
	bearerPrefix        = "Bearer "
)

// Resolver extracts the claimed user id from a request. It returns
// domain.ErrUnauthenticated when no credential is present and
// domain.ErrInvalidUser when one is present but unusable.
type Resolver interface {
	Resolve(r *http.Request) (uint64, error)
}

type HeaderResolver struct{}

func (HeaderResolver) Resolve(r *http.Request) (uint64, error) {
	raw := strings.TrimSpace(r.Header.Get(UserIDHeader))
	if raw == "" {
		return 0, domain.ErrUnauthenticated
	}
	return parseUserID(raw)
}

// Issue satisfies ports.SessionIssuer; the header scheme has no token.
func (HeaderResolver) Issue(uint64) (string, error) {
	return "", nil
}

func parseUserID(raw string) (uint64, error) {
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, domain.ErrInvalidUser
	}
	return id, nil
}

func bearerToken(r *http.Request) (string, error) {
	header := r.Header.Get(AuthorizationHeader)
	if header == "" {
		return "", domain.ErrUnauthenticated
	}
	if len(header) < len(bearerPrefix) || !strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
		return "", domain.ErrInvalidUser
	}
	token := strings.TrimSpace(header[len(bearerPrefix):])
	if token == "" {
		return "", errors.Join(domain.ErrInvalidUser, errors.New("empty bearer token"))
	}
	return token, nil
}
