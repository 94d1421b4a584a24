package supabase

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// signedToken builds an HS256 token whose only interesting claim is exp.
func signedToken(t *testing.T, expiresAt time.Time) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "user-1",
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	})
	signed, err := tok.SignedString([]byte("unit-test-key"))
	require.NoError(t, err)
	return signed
}

func TestSignIn_RetainsSession(t *testing.T) {
	token := signedToken(t, time.Now().Add(time.Hour))

	var gotQuery, gotKey string
	var gotCreds credentials
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/auth/v1/token", r.URL.Path)
		gotQuery = r.URL.Query().Get("grant_type")
		gotKey = r.Header.Get("apikey")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotCreds))

		_ = json.NewEncoder(w).Encode(Session{
			AccessToken:  token,
			RefreshToken: "refresh",
			ExpiresIn:    3600,
			User:         User{ID: "user-1", Email: "a@b.com"},
		})
	}))
	defer srv.Close()

	a := NewAuthClient(srv.URL, "anon-key", srv.Client())
	s, err := a.SignIn(context.Background(), "a@b.com", "secret1")
	require.NoError(t, err)

	assert.Equal(t, "password", gotQuery)
	assert.Equal(t, "anon-key", gotKey)
	assert.Equal(t, credentials{Email: "a@b.com", Password: "secret1"}, gotCreds)
	assert.Equal(t, "user-1", s.User.ID)

	cur, ok := a.CurrentSession()
	require.True(t, ok)
	assert.Equal(t, token, cur.AccessToken)

	bearer, ok := a.AccessToken()
	require.True(t, ok)
	assert.Equal(t, token, bearer)
}

func TestSignUp_DoesNotRetainSession(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/auth/v1/signup", r.URL.Path)
		_ = json.NewEncoder(w).Encode(User{ID: "user-2", Email: "new@b.com"})
	}))
	defer srv.Close()

	a := NewAuthClient(srv.URL, "anon-key", srv.Client())
	u, err := a.SignUp(context.Background(), "new@b.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, "user-2", u.ID)

	_, ok := a.CurrentSession()
	assert.False(t, ok)
}

func TestSignOut_DropsSessionEvenOnServerError(t *testing.T) {
	token := signedToken(t, time.Now().Add(time.Hour))
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/auth/v1/token":
			_ = json.NewEncoder(w).Encode(Session{AccessToken: token})
		case "/auth/v1/logout":
			assert.Equal(t, "Bearer "+token, r.Header.Get("Authorization"))
			w.WriteHeader(http.StatusInternalServerError)
			_ = json.NewEncoder(w).Encode(map[string]string{"msg": "revocation failed"})
		}
	}))
	defer srv.Close()

	a := NewAuthClient(srv.URL, "anon-key", srv.Client())
	_, err := a.SignIn(context.Background(), "a@b.com", "secret1")
	require.NoError(t, err)

	err = a.SignOut(context.Background())
	require.Error(t, err)

	_, ok := a.CurrentSession()
	assert.False(t, ok)
}

func TestSignOut_NoSessionIsANoop(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("unexpected request to %s", r.URL.Path)
	}))
	defer srv.Close()

	a := NewAuthClient(srv.URL, "anon-key", srv.Client())
	require.NoError(t, a.SignOut(context.Background()))
}

func TestCurrentSession_ExpiredTokenIsGone(t *testing.T) {
	a := NewAuthClient("http://unused.invalid", "anon-key", http.DefaultClient)
	a.session = &Session{AccessToken: signedToken(t, time.Now().Add(-time.Minute))}

	_, ok := a.CurrentSession()
	assert.False(t, ok)
}

func TestCurrentUser_WithoutSession(t *testing.T) {
	a := NewAuthClient("http://unused.invalid", "anon-key", http.DefaultClient)
	_, err := a.CurrentUser(context.Background())
	require.ErrorIs(t, err, ErrUnauthenticated)
}

func TestCurrentUser_FetchesAccount(t *testing.T) {
	token := signedToken(t, time.Now().Add(time.Hour))
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/auth/v1/user", r.URL.Path)
		assert.Equal(t, "Bearer "+token, r.Header.Get("Authorization"))
		_ = json.NewEncoder(w).Encode(User{ID: "user-1", Email: "a@b.com"})
	}))
	defer srv.Close()

	a := NewAuthClient(srv.URL, "anon-key", srv.Client())
	a.session = &Session{AccessToken: token}

	u, err := a.CurrentUser(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "a@b.com", u.Email)
}

func TestSignIn_ErrorBodyShapes(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"error_description", `{"error_description":"Invalid login credentials"}`, "Invalid login credentials"},
		{"msg", `{"msg":"User already registered"}`, "User already registered"},
		{"message", `{"message":"Password should be at least 6 characters"}`, "Password should be at least 6 characters"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadRequest)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			a := NewAuthClient(srv.URL, "anon-key", srv.Client())
			_, err := a.SignIn(context.Background(), "a@b.com", "x")

			var apiErr *APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.want, apiErr.Message)
		})
	}
}

func TestTokenExpired(t *testing.T) {
	assert.False(t, tokenExpired(signedToken(t, time.Now().Add(time.Hour))))
	assert.True(t, tokenExpired(signedToken(t, time.Now().Add(-time.Hour))))
	assert.True(t, tokenExpired("not-a-jwt"), "garbage tokens are treated as expired")
}
