// Package supabase is the client for the hosted backend: authentication,
// relational tables over REST, and object storage over the S3-compatible
// endpoint. One Client corresponds to one backend project; the app holds two
// of them (the culinary tables live in a separate project).
package supabase

import (
	"net/http"
	"time"
)

// Client bundles the three remote interfaces of one backend project.
// Storage is attached separately because it needs storage credentials on top
// of the project URL and anon key.
type Client struct {
	Auth    Auth
	Tables  Tables
	Storage Storage
}

// New builds the auth and table clients for a project. The table client runs
// as the signed-in user whenever the auth client holds a session.
func New(projectURL, anonKey string, timeout time.Duration) *Client {
	httpClient := &http.Client{Timeout: timeout}
	auth := NewAuthClient(projectURL, anonKey, httpClient)
	return &Client{
		Auth:   auth,
		Tables: NewRESTClient(projectURL, anonKey, httpClient, auth),
	}
}

// NewAnonymous builds a table-only client for a project the app never signs
// in to. Requests run under the anonymous role.
func NewAnonymous(projectURL, anonKey string, timeout time.Duration) *Client {
	httpClient := &http.Client{Timeout: timeout}
	return &Client{
		Tables: NewRESTClient(projectURL, anonKey, httpClient, nil),
	}
}
