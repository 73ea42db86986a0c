package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesto-app/mesto-api/pkg/helpers"
)

func newAuthTestRouter(jwt *helpers.JWTManager) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", Auth(jwt), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"userID": c.GetString(CtxUserIDKey)})
	})
	return r
}

func TestAuthRejectsMissingCookie(t *testing.T) {
	r := newAuthTestRouter(helpers.NewJWTManager("test-secret"))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"message":"Authorization required"}`, w.Body.String())
}

func TestAuthRejectsInvalidToken(t *testing.T) {
	r := newAuthTestRouter(helpers.NewJWTManager("test-secret"))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: helpers.SessionCookieName, Value: "garbage"})
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"message":"Authorization required"}`, w.Body.String())
}

func TestAuthRejectsTokenSignedWithOtherSecret(t *testing.T) {
	r := newAuthTestRouter(helpers.NewJWTManager("test-secret"))

	token, err := helpers.NewJWTManager("other-secret").Generate("user-1")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: helpers.SessionCookieName, Value: token})
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthInjectsIdentity(t *testing.T) {
	jwt := helpers.NewJWTManager("test-secret")
	r := newAuthTestRouter(jwt)

	token, err := jwt.Generate("user-1")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: helpers.SessionCookieName, Value: token})
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"userID":"user-1"}`, w.Body.String())
}
