package services

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/rizkyamal/nusaview/internal/client/supabase"
)

// User-facing messages produced by the error classifier.
const (
	MsgInvalidCredentials = "incorrect email or password"
	MsgAlreadyRegistered  = "email is already registered"
	MsgWeakPassword       = "password must be at least 6 characters"
	MsgInvalidEmail       = "invalid email format"
	MsgNetworkProblem     = "network problem, check your connection"
)

// AuthService wraps the remote auth operations and owns all writes to the
// Session holder. Every failure it returns carries a translated, user-facing
// message.
type AuthService struct {
	auth    supabase.Auth
	session *Session
}

func NewAuthService(auth supabase.Auth, session *Session) *AuthService {
	return &AuthService{auth: auth, session: session}
}

// CheckStatus refreshes the session holder from the remote auth state. Any
// failure is treated as logged out; it never returns an error because there
// is nothing actionable for the caller.
func (a *AuthService) CheckStatus(ctx context.Context) {
	if _, ok := a.auth.CurrentSession(); !ok {
		a.session.Clear()
		return
	}

	user, err := a.auth.CurrentUser(ctx)
	if err != nil {
		log.Printf("status check failed, treating as logged out: %v", err)
		a.session.Clear()
		return
	}

	a.session.Set(user.ID, user.Email)
}

// Login authenticates with email/password. On success the session holder is
// set; on failure it is left untouched and the returned error message is
// user-facing.
func (a *AuthService) Login(ctx context.Context, email, password string) error {
	s, err := a.auth.SignIn(ctx, email, password)
	if err != nil {
		return errors.New(translateAuthError(err))
	}

	a.session.Set(s.User.ID, s.User.Email)
	return nil
}

// Register creates an account. The session holder is not touched: the user
// must verify their email and sign in manually afterwards.
func (a *AuthService) Register(ctx context.Context, email, password string) error {
	if _, err := a.auth.SignUp(ctx, email, password); err != nil {
		return errors.New(translateAuthError(err))
	}
	return nil
}

// Logout signs out remotely on a best-effort basis. Locally the session is
// always cleared, so the outcome is deterministic for the caller.
func (a *AuthService) Logout(ctx context.Context) {
	if err := a.auth.SignOut(ctx); err != nil {
		log.Printf("remote sign-out failed: %v", err)
	}
	a.session.Clear()
}

// translateAuthError maps raw backend error text to a user-facing message by
// keyword. Unknown errors fall back to the invalid-credentials message, which
// matches the shipped behavior even though it can mislabel server faults.
func translateAuthError(err error) string {
	if errors.Is(err, supabase.ErrUnavailable) {
		return MsgNetworkProblem
	}

	msg := err.Error()
	var apiErr *supabase.APIError
	if errors.As(err, &apiErr) {
		msg = apiErr.Message
	}
	lower := strings.ToLower(msg)

	switch {
	case strings.Contains(lower, "invalid login credentials"):
		return MsgInvalidCredentials
	case strings.Contains(lower, "already registered"):
		return MsgAlreadyRegistered
	case strings.Contains(lower, "password should be"):
		return MsgWeakPassword
	case strings.Contains(lower, "invalid email"),
		strings.Contains(lower, "unable to validate email"):
		return MsgInvalidEmail
	case strings.Contains(lower, "network"),
		strings.Contains(lower, "connection"):
		return MsgNetworkProblem
	default:
		return MsgInvalidCredentials
	}
}
