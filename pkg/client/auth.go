package client

import (
	"context"
	"net/http"
	"strings"
)

// AuthClient handles the credential endpoints separately from the main
// client, mirroring the split on the frontend. Give both the same
// http.Client so the session cookie from SignIn reaches the main client.
type AuthClient struct {
	baseURL string
	httpc   *http.Client
}

func NewAuth(baseURL string, httpc *http.Client) (*AuthClient, error) {
	httpc, err := ensureJar(httpc)
	if err != nil {
		return nil, err
	}
	return &AuthClient{baseURL: strings.TrimRight(baseURL, "/"), httpc: httpc}, nil
}

type SignUpInput struct {
	Name     string `json:"name,omitempty"`
	About    string `json:"about,omitempty"`
	Avatar   string `json:"avatar,omitempty"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (a *AuthClient) SignUp(ctx context.Context, in SignUpInput) (*User, error) {
	u := &User{}
	if err := doJSON(ctx, a.httpc, http.MethodPost, a.baseURL+"/signup", in, u); err != nil {
		return nil, err
	}
	return u, nil
}

// SignIn authenticates and stores the session cookie in the jar. The token
// is also returned for callers that want it directly.
func (a *AuthClient) SignIn(ctx context.Context, email, password string) (string, error) {
	var out struct {
		Message string `json:"message"`
		Token   string `json:"token"`
	}
	in := map[string]string{"email": email, "password": password}
	if err := doJSON(ctx, a.httpc, http.MethodPost, a.baseURL+"/signin", in, &out); err != nil {
		return "", err
	}
	return out.Token, nil
}

func (a *AuthClient) Logoff(ctx context.Context) error {
	return doJSON(ctx, a.httpc, http.MethodPost, a.baseURL+"/logoff", nil, nil)
}

// Check verifies the stored session by fetching the current user.
func (a *AuthClient) Check(ctx context.Context) (*User, error) {
	u := &User{}
	if err := doJSON(ctx, a.httpc, http.MethodGet, a.baseURL+"/users/me", nil, u); err != nil {
		return nil, err
	}
	return u, nil
}
