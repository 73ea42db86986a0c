package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubAPI records the last request and replies with a canned handler per
// method+path.
type stubAPI struct {
	t        *testing.T
	lastBody map[string]any
	routes   map[string]http.HandlerFunc
}

func newStubAPI(t *testing.T) (*stubAPI, *httptest.Server) {
	s := &stubAPI{t: t, routes: map[string]http.HandlerFunc{}}
	ts := httptest.NewServer(s)
	t.Cleanup(ts.Close)
	return s, ts
}

func (s *stubAPI) on(method, path string, h http.HandlerFunc) {
	s.routes[method+" "+path] = h
}

func (s *stubAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.lastBody = nil
	if r.Body != nil {
		var body map[string]any
		if err := json.NewDecoder(r.Body).Decode(&body); err == nil {
			s.lastBody = body
		}
	}
	h, ok := s.routes[r.Method+" "+r.URL.Path]
	if !ok {
		s.t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "Page not found"})
		return
	}
	h(w, r)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func TestGetCardsDecodesList(t *testing.T) {
	stub, ts := newStubAPI(t)
	stub.on(http.MethodGet, "/cards", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, []map[string]any{
			{"_id": "c1", "name": "Эльбрус", "link": "https://example.com/e.jpg", "owner": "u1", "likes": []string{"u2"}},
		})
	})

	c, err := New(ts.URL, nil)
	require.NoError(t, err)

	cards, err := c.GetCards(context.Background())
	require.NoError(t, err)
	require.Len(t, cards, 1)
	assert.Equal(t, "c1", cards[0].ID)
	assert.Equal(t, []string{"u2"}, cards[0].Likes)
}

func TestCreateCardSendsPayload(t *testing.T) {
	stub, ts := newStubAPI(t)
	stub.on(http.MethodPost, "/cards", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"_id": "c1", "name": "Эльбрус", "owner": "u1"})
	})

	c, err := New(ts.URL, nil)
	require.NoError(t, err)

	card, err := c.CreateCard(context.Background(), "Эльбрус", "https://example.com/e.jpg")
	require.NoError(t, err)
	assert.Equal(t, "c1", card.ID)
	assert.Equal(t, map[string]any{
		"name": "Эльбрус",
		"link": "https://example.com/e.jpg",
	}, stub.lastBody)
}

func TestLikeAndUnlikeUseLikesSubresource(t *testing.T) {
	stub, ts := newStubAPI(t)
	stub.on(http.MethodPut, "/cards/c1/likes", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"_id": "c1", "likes": []string{"u1"}})
	})
	stub.on(http.MethodDelete, "/cards/c1/likes", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"_id": "c1", "likes": []string{}})
	})

	c, err := New(ts.URL, nil)
	require.NoError(t, err)

	liked, err := c.LikeCard(context.Background(), "c1")
	require.NoError(t, err)
	assert.Equal(t, []string{"u1"}, liked.Likes)

	unliked, err := c.UnlikeCard(context.Background(), "c1")
	require.NoError(t, err)
	assert.Empty(t, unliked.Likes)
}

func TestErrorResponsesBecomeAPIError(t *testing.T) {
	stub, ts := newStubAPI(t)
	stub.on(http.MethodGet, "/users/me", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "Authorization required"})
	})

	c, err := New(ts.URL, nil)
	require.NoError(t, err)

	_, err = c.GetProfile(context.Background())
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.Equal(t, "Authorization required", apiErr.Message)
	assert.Contains(t, apiErr.Error(), "401")
}

func TestSignInStoresSessionCookieForClient(t *testing.T) {
	stub, ts := newStubAPI(t)
	stub.on(http.MethodPost, "/signin", func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, &http.Cookie{Name: "jwt", Value: "session-token", Path: "/"})
		writeJSON(w, http.StatusOK, map[string]string{
			"message": "Authentication successful",
			"token":   "session-token",
		})
	})
	stub.on(http.MethodGet, "/users/me", func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie("jwt")
		if err != nil || cookie.Value != "session-token" {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "Authorization required"})
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"_id": "u1", "email": "a@b.com"})
	})

	auth, err := NewAuth(ts.URL, nil)
	require.NoError(t, err)

	token, err := auth.SignIn(context.Background(), "a@b.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, "session-token", token)

	// the same http.Client shares the jar, so the session carries over
	c, err := New(ts.URL, auth.httpc)
	require.NoError(t, err)

	me, err := c.GetProfile(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "u1", me.ID)
}

func TestSignUpSendsOnlyProvidedFields(t *testing.T) {
	stub, ts := newStubAPI(t)
	stub.on(http.MethodPost, "/signup", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"_id": "u1", "email": "a@b.com"})
	})

	auth, err := NewAuth(ts.URL, nil)
	require.NoError(t, err)

	u, err := auth.SignUp(context.Background(), SignUpInput{Email: "a@b.com", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, "u1", u.ID)
	assert.Equal(t, map[string]any{
		"email":    "a@b.com",
		"password": "secret1",
	}, stub.lastBody)
}

func TestLogoffHitsLogoffEndpoint(t *testing.T) {
	stub, ts := newStubAPI(t)
	called := false
	stub.on(http.MethodPost, "/logoff", func(w http.ResponseWriter, r *http.Request) {
		called = true
		writeJSON(w, http.StatusOK, map[string]string{"message": "You are logged off"})
	})

	auth, err := NewAuth(ts.URL, nil)
	require.NoError(t, err)
	require.NoError(t, auth.Logoff(context.Background()))
	assert.True(t, called)
}
