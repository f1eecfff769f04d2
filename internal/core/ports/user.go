package ports

import (
	"context"
	"time"

	"taskboard/internal/core/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user domain.User) (domain.User, error)
	FindByEmail(ctx context.Context, email string) (domain.User, error)
	FindByID(ctx context.Context, id uint64) (domain.User, error)
}

type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(hash, password string) bool
}

type AuthService interface {
	Register(ctx context.Context, input domain.RegisterInput) (domain.User, error)
	Authenticate(ctx context.Context, credentials domain.Credentials) (domain.User, error)
	Lookup(ctx context.Context, id uint64) (domain.User, error)
}

// SessionIssuer hands out a bearer credential after a successful login.
// The header mode issuer returns an empty token.
type SessionIssuer interface {
	Issue(userID uint64) (string, error)
}

type RateLimiter interface {
	// Allow counts one hit for key and reports whether it is within the limit.
	Allow(ctx context.Context, key string) (RateLimitResult, error)
}

type RateLimitResult struct {
	Allowed   bool
	Limit     int
	Remaining int
	ResetAt   time.Time
}

// EventRecorder receives domain events for instrumentation.
type EventRecorder interface {
	AuthEvent(event, result string)
	TaskMutation(op string)
}
