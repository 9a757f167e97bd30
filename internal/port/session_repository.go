package port

import "context"

// SessionRepository persists the admin authenticated flag so a login
// survives a process or client restart. Sessions never expire; they
// exist until logout deletes them.
type SessionRepository interface {
	// Put marks the token as authenticated.
	Put(ctx context.Context, token string) error

	// Check reports whether the token is authenticated.
	Check(ctx context.Context, token string) (bool, error)

	// Delete removes the token.
	Delete(ctx context.Context, token string) error
}
