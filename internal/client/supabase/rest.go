package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// Tables defines the relational operations the client consumes: read-all with
// optional ordering, single insert, and equality-filtered update/delete.
type Tables interface {
	Select(ctx context.Context, table string, opts SelectOptions, dest any) error
	Insert(ctx context.Context, table string, row any, dest any) error
	UpdateByID(ctx context.Context, table, id string, patch any) error
	DeleteByID(ctx context.Context, table, id string) error
}

// SelectOptions narrows a read-all query.
type SelectOptions struct {
	OrderBy    string
	Descending bool
}

// TokenSource supplies the access token of the signed-in user, when there is
// one. Without a token, requests run under the anonymous role.
type TokenSource interface {
	AccessToken() (string, bool)
}

// RESTClient talks to the relational REST endpoint of one backend project.
type RESTClient struct {
	baseURL string
	anonKey string
	http    *http.Client
	tokens  TokenSource
}

// NewRESTClient builds a table client. tokens may be nil for projects that
// are only ever queried anonymously.
func NewRESTClient(baseURL, anonKey string, httpClient *http.Client, tokens TokenSource) *RESTClient {
	return &RESTClient{baseURL: baseURL, anonKey: anonKey, http: httpClient, tokens: tokens}
}

type restErrorBody struct {
	Message string `json:"message"`
	Details string `json:"details"`
}

func (c *RESTClient) do(ctx context.Context, method, table string, query url.Values, body any, prefer string, out any) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(raw)
	}

	u := c.baseURL + "/rest/v1/" + table
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return err
	}
	req.Header.Set("apikey", c.anonKey)
	req.Header.Set("Content-Type", "application/json")
	if prefer != "" {
		req.Header.Set("Prefer", prefer)
	}

	bearer := c.anonKey
	if c.tokens != nil {
		if tok, ok := c.tokens.AccessToken(); ok {
			bearer = tok
		}
	}
	req.Header.Set("Authorization", "Bearer "+bearer)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var eb restErrorBody
		_ = json.NewDecoder(resp.Body).Decode(&eb)
		msg := eb.Message
		if msg == "" {
			msg = eb.Details
		}
		return &APIError{Status: resp.StatusCode, Message: msg}
	}

	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}

// Select reads all rows of table into dest (a pointer to a slice).
func (c *RESTClient) Select(ctx context.Context, table string, opts SelectOptions, dest any) error {
	q := url.Values{}
	q.Set("select", "*")
	if opts.OrderBy != "" {
		dir := "asc"
		if opts.Descending {
			dir = "desc"
		}
		q.Set("order", opts.OrderBy+"."+dir)
	}
	return c.do(ctx, http.MethodGet, table, q, nil, "", dest)
}

// Insert writes a single row. The inserted representation is requested back
// in the same call and decoded into dest (a pointer to a slice) when dest is
// non-nil, so callers get read-after-write without sleeping on replication.
func (c *RESTClient) Insert(ctx context.Context, table string, row any, dest any) error {
	prefer := "return=minimal"
	if dest != nil {
		prefer = "return=representation"
	}
	return c.do(ctx, http.MethodPost, table, nil, row, prefer, dest)
}

// UpdateByID patches the row with the given id. Only the fields present in
// patch are touched.
func (c *RESTClient) UpdateByID(ctx context.Context, table, id string, patch any) error {
	q := url.Values{}
	q.Set("id", "eq."+id)
	return c.do(ctx, http.MethodPatch, table, q, patch, "return=minimal", nil)
}

// DeleteByID removes the row with the given id.
func (c *RESTClient) DeleteByID(ctx context.Context, table, id string) error {
	q := url.Values{}
	q.Set("id", "eq."+id)
	return c.do(ctx, http.MethodDelete, table, q, nil, "", nil)
}
