package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// User identifies an authenticated account.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// Session is the token pair returned by a successful sign-in.
type Session struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int    `json:"expires_in"`
	User         User   `json:"user"`
}

// Auth defines the authentication operations the client consumes.
//
// Contract:
//   - SignIn: authenticate with email/password; the session is retained for
//     subsequent requests.
//   - SignUp: create an account; no session is established (the user must
//     verify their email first).
//   - SignOut: revoke the current session server-side and drop it locally.
//   - CurrentSession: the retained session, if still valid.
//   - CurrentUser: the account behind the retained session.
type Auth interface {
	SignIn(ctx context.Context, email, password string) (*Session, error)
	SignUp(ctx context.Context, email, password string) (*User, error)
	SignOut(ctx context.Context) error
	CurrentSession() (*Session, bool)
	CurrentUser(ctx context.Context) (*User, error)
}

// AuthClient talks to the hosted auth endpoint of one backend project.
type AuthClient struct {
	baseURL string
	anonKey string
	http    *http.Client

	mu      sync.Mutex
	session *Session
}

func NewAuthClient(baseURL, anonKey string, httpClient *http.Client) *AuthClient {
	return &AuthClient{baseURL: baseURL, anonKey: anonKey, http: httpClient}
}

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// authErrorBody covers the error shapes the auth endpoint emits.
type authErrorBody struct {
	Msg              string `json:"msg"`
	Message          string `json:"message"`
	ErrorDescription string `json:"error_description"`
}

func (b authErrorBody) text() string {
	switch {
	case b.ErrorDescription != "":
		return b.ErrorDescription
	case b.Msg != "":
		return b.Msg
	default:
		return b.Message
	}
}

func (a *AuthClient) do(ctx context.Context, method, path string, body any, bearer string, out any) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, a.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("apikey", a.anonKey)
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	resp, err := a.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var eb authErrorBody
		_ = json.NewDecoder(resp.Body).Decode(&eb)
		return &APIError{Status: resp.StatusCode, Message: eb.text()}
	}

	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}

// SignIn performs a password grant and retains the returned session.
func (a *AuthClient) SignIn(ctx context.Context, email, password string) (*Session, error) {
	var s Session
	err := a.do(ctx, http.MethodPost, "/auth/v1/token?grant_type=password", credentials{Email: email, Password: password}, "", &s)
	if err != nil {
		return nil, err
	}

	a.mu.Lock()
	a.session = &s
	a.mu.Unlock()
	return &s, nil
}

// SignUp creates an account. The backend sends a verification email; no
// session is retained here.
func (a *AuthClient) SignUp(ctx context.Context, email, password string) (*User, error) {
	var u User
	err := a.do(ctx, http.MethodPost, "/auth/v1/signup", credentials{Email: email, Password: password}, "", &u)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// SignOut revokes the session server-side. The local session is dropped even
// when the remote call fails.
func (a *AuthClient) SignOut(ctx context.Context) error {
	a.mu.Lock()
	s := a.session
	a.session = nil
	a.mu.Unlock()

	if s == nil {
		return nil
	}
	return a.do(ctx, http.MethodPost, "/auth/v1/logout", nil, s.AccessToken, nil)
}

// CurrentSession returns the retained session if its access token has not
// expired. Expiry is read from the token claims locally; the server remains
// the authority on actual validity.
func (a *AuthClient) CurrentSession() (*Session, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.session == nil || tokenExpired(a.session.AccessToken) {
		return nil, false
	}
	return a.session, true
}

// CurrentUser fetches the account behind the retained session.
func (a *AuthClient) CurrentUser(ctx context.Context) (*User, error) {
	s, ok := a.CurrentSession()
	if !ok {
		return nil, ErrUnauthenticated
	}

	var u User
	if err := a.do(ctx, http.MethodGet, "/auth/v1/user", nil, s.AccessToken, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// AccessToken satisfies TokenSource so table requests can run as the
// signed-in user (row-level security is keyed on it).
func (a *AuthClient) AccessToken() (string, bool) {
	s, ok := a.CurrentSession()
	if !ok {
		return "", false
	}
	return s.AccessToken, true
}

// tokenExpired decodes the claims without signature verification, which is
// enough to know whether the token is worth sending at all.
func tokenExpired(token string) bool {
	claims := jwt.RegisteredClaims{}
	parser := jwt.NewParser(jwt.WithoutClaimsValidation())
	if _, _, err := parser.ParseUnverified(token, &claims); err != nil {
		return true
	}
	if claims.ExpiresAt == nil {
		return false
	}
	return time.Now().After(claims.ExpiresAt.Time)
}
