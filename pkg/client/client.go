// Package client is a Go SDK for the Mesto API. Client covers the card and
// profile operations; AuthClient handles registration, login and logoff.
// Both carry the session cookie through the http.Client's jar.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"strings"
	"time"
)

type User struct {
	ID     string `json:"_id"`
	Name   string `json:"name"`
	About  string `json:"about"`
	Avatar string `json:"avatar"`
	Email  string `json:"email"`
}

type Card struct {
	ID        string    `json:"_id"`
	Name      string    `json:"name"`
	Link      string    `json:"link"`
	Owner     string    `json:"owner"`
	Likes     []string  `json:"likes"`
	CreatedAt time.Time `json:"createdAt"`
}

// APIError is any non-OK response, carrying the status code and the
// server's message body.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api: %d %s", e.StatusCode, e.Message)
}

type Client struct {
	baseURL string
	httpc   *http.Client
}

// New builds a Client. Pass a shared http.Client to reuse a session cookie
// obtained through AuthClient; nil gets a fresh jar-backed client.
func New(baseURL string, httpc *http.Client) (*Client, error) {
	httpc, err := ensureJar(httpc)
	if err != nil {
		return nil, err
	}
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), httpc: httpc}, nil
}

func ensureJar(httpc *http.Client) (*http.Client, error) {
	if httpc != nil {
		return httpc, nil
	}
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}
	return &http.Client{Jar: jar, Timeout: 30 * time.Second}, nil
}

func doJSON(ctx context.Context, httpc *http.Client, method, url string, body, out any) error {
	var buf *bytes.Buffer
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		buf = bytes.NewBuffer(b)
	} else {
		buf = &bytes.Buffer{}
	}

	req, err := http.NewRequestWithContext(ctx, method, url, buf)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := httpc.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var apiErr struct {
			Message string `json:"message"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&apiErr)
		return &APIError{StatusCode: resp.StatusCode, Message: apiErr.Message}
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func (c *Client) GetCards(ctx context.Context) ([]Card, error) {
	var cards []Card
	if err := doJSON(ctx, c.httpc, http.MethodGet, c.baseURL+"/cards", nil, &cards); err != nil {
		return nil, err
	}
	return cards, nil
}

func (c *Client) CreateCard(ctx context.Context, name, link string) (*Card, error) {
	card := &Card{}
	in := map[string]string{"name": name, "link": link}
	if err := doJSON(ctx, c.httpc, http.MethodPost, c.baseURL+"/cards", in, card); err != nil {
		return nil, err
	}
	return card, nil
}

func (c *Client) DeleteCard(ctx context.Context, cardID string) error {
	return doJSON(ctx, c.httpc, http.MethodDelete, c.baseURL+"/cards/"+cardID, nil, nil)
}

func (c *Client) LikeCard(ctx context.Context, cardID string) (*Card, error) {
	card := &Card{}
	if err := doJSON(ctx, c.httpc, http.MethodPut, c.baseURL+"/cards/"+cardID+"/likes", nil, card); err != nil {
		return nil, err
	}
	return card, nil
}

func (c *Client) UnlikeCard(ctx context.Context, cardID string) (*Card, error) {
	card := &Card{}
	if err := doJSON(ctx, c.httpc, http.MethodDelete, c.baseURL+"/cards/"+cardID+"/likes", nil, card); err != nil {
		return nil, err
	}
	return card, nil
}

func (c *Client) GetUsers(ctx context.Context) ([]User, error) {
	var users []User
	if err := doJSON(ctx, c.httpc, http.MethodGet, c.baseURL+"/users", nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (c *Client) GetUser(ctx context.Context, userID string) (*User, error) {
	u := &User{}
	if err := doJSON(ctx, c.httpc, http.MethodGet, c.baseURL+"/users/"+userID, nil, u); err != nil {
		return nil, err
	}
	return u, nil
}

// GetProfile fetches the record of the logged-in user.
func (c *Client) GetProfile(ctx context.Context) (*User, error) {
	u := &User{}
	if err := doJSON(ctx, c.httpc, http.MethodGet, c.baseURL+"/users/me", nil, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (c *Client) UpdateProfile(ctx context.Context, name, about string) (*User, error) {
	u := &User{}
	in := map[string]string{"name": name, "about": about}
	if err := doJSON(ctx, c.httpc, http.MethodPatch, c.baseURL+"/users/me", in, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (c *Client) UpdateAvatar(ctx context.Context, avatar string) (*User, error) {
	u := &User{}
	in := map[string]string{"avatar": avatar}
	if err := doJSON(ctx, c.httpc, http.MethodPatch, c.baseURL+"/users/me/avatar", in, u); err != nil {
		return nil, err
	}
	return u, nil
}
