package services

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/rizkyamal/nusaview/internal/client/supabase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAuth implements supabase.Auth for AuthService unit tests.
type fakeAuth struct {
	signInSession *supabase.Session
	signInErr     error
	signInCalls   int

	signUpUser *supabase.User
	signUpErr  error

	signOutErr   error
	signOutCalls int

	curSession *supabase.Session
	curUser    *supabase.User
	curUserErr error
}

func (f *fakeAuth) SignIn(ctx context.Context, email, password string) (*supabase.Session, error) {
	f.signInCalls++
	return f.signInSession, f.signInErr
}

func (f *fakeAuth) SignUp(ctx context.Context, email, password string) (*supabase.User, error) {
	return f.signUpUser, f.signUpErr
}

func (f *fakeAuth) SignOut(ctx context.Context) error {
	f.signOutCalls++
	return f.signOutErr
}

func (f *fakeAuth) CurrentSession() (*supabase.Session, bool) {
	return f.curSession, f.curSession != nil
}

func (f *fakeAuth) CurrentUser(ctx context.Context) (*supabase.User, error) {
	return f.curUser, f.curUserErr
}

func TestLogin_SuccessSetsSession(t *testing.T) {
	fa := &fakeAuth{signInSession: &supabase.Session{
		AccessToken: "tok",
		User:        supabase.User{ID: "user-1", Email: "a@b.com"},
	}}
	session := NewSession()
	svc := NewAuthService(fa, session)

	require.NoError(t, svc.Login(context.Background(), "a@b.com", "secret1"))
	assert.True(t, session.Authenticated())
	assert.Equal(t, "user-1", session.UserID())
}

func TestLogin_FailureLeavesSessionUntouched(t *testing.T) {
	fa := &fakeAuth{signInErr: &supabase.APIError{Status: 400, Message: "Invalid login credentials"}}
	session := NewSession()
	svc := NewAuthService(fa, session)

	err := svc.Login(context.Background(), "a@b.com", "wrong")
	require.Error(t, err)
	assert.Equal(t, MsgInvalidCredentials, err.Error())
	assert.False(t, session.Authenticated())
}

func TestRegister_SuccessDoesNotAuthenticate(t *testing.T) {
	fa := &fakeAuth{signUpUser: &supabase.User{ID: "user-2", Email: "new@b.com"}}
	session := NewSession()
	svc := NewAuthService(fa, session)

	require.NoError(t, svc.Register(context.Background(), "new@b.com", "secret1"))
	// Email must be verified first; no session is established.
	assert.False(t, session.Authenticated())
}

func TestLogout_AlwaysClearsLocally(t *testing.T) {
	fa := &fakeAuth{signOutErr: errors.New("server exploded")}
	session := NewSession()
	session.Set("user-1", "a@b.com")
	svc := NewAuthService(fa, session)

	svc.Logout(context.Background())

	assert.Equal(t, 1, fa.signOutCalls)
	assert.False(t, session.Authenticated())
}

func TestCheckStatus_FailsOpenToLoggedOut(t *testing.T) {
	tests := []struct {
		name string
		fa   *fakeAuth
	}{
		{"no stored session", &fakeAuth{}},
		{"user lookup fails", &fakeAuth{
			curSession: &supabase.Session{AccessToken: "tok"},
			curUserErr: errors.New("boom"),
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			session := NewSession()
			session.Set("stale", "stale@b.com")
			NewAuthService(tt.fa, session).CheckStatus(context.Background())
			assert.False(t, session.Authenticated())
		})
	}
}

func TestCheckStatus_ValidSessionAuthenticates(t *testing.T) {
	fa := &fakeAuth{
		curSession: &supabase.Session{AccessToken: "tok"},
		curUser:    &supabase.User{ID: "user-1", Email: "a@b.com"},
	}
	session := NewSession()
	NewAuthService(fa, session).CheckStatus(context.Background())

	assert.True(t, session.Authenticated())
	assert.Equal(t, "user-1", session.UserID())
}

func TestTranslateAuthError(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{&supabase.APIError{Message: "Invalid login credentials"}, MsgInvalidCredentials},
		{&supabase.APIError{Message: "User already registered"}, MsgAlreadyRegistered},
		{&supabase.APIError{Message: "Password should be at least 6 characters"}, MsgWeakPassword},
		{&supabase.APIError{Message: "Unable to validate email address: invalid format"}, MsgInvalidEmail},
		{&supabase.APIError{Message: "invalid email"}, MsgInvalidEmail},
		{fmt.Errorf("%w: dial tcp: timeout", supabase.ErrUnavailable), MsgNetworkProblem},
		{errors.New("connection reset by peer"), MsgNetworkProblem},
		// Unknown errors collapse into the credentials message, matching the
		// shipped behavior.
		{&supabase.APIError{Message: "something nobody expected"}, MsgInvalidCredentials},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, translateAuthError(tt.err), "error %v", tt.err)
	}
}
