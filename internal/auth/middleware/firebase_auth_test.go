package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	fbauth "firebase.google.com/go/v4/auth"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/clubnatacion/swimclub-backend/internal/auth/domain"
)

type fakeVerifier struct {
	token *fbauth.Token
	err   error
}

func (v *fakeVerifier) VerifyIDToken(*gin.Context, string) (*fbauth.Token, error) {
	return v.token, v.err
}

type fakeLookup struct {
	user *domain.User
	err  error
}

func (l *fakeLookup) EnsureUser(*gin.Context, string, string, string) (*domain.User, error) {
	return l.user, l.err
}

func newRouter(verifier TokenVerifier, lookup UserLookup, roles ...domain.Role) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	g := r.Group("/", FirebaseAuth(verifier, lookup))
	if len(roles) > 0 {
		g.Use(RequireRole(roles...))
	}
	g.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"uid": CurrentUser(c).UID})
	})
	return r
}

func doRequest(r *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestFirebaseAuth(t *testing.T) {
	token := &fbauth.Token{UID: "uid-1", Claims: map[string]interface{}{
		"email": "nadadora@club.cl",
		"name":  "Ana",
	}}
	user := &domain.User{UID: "uid-1", Role: domain.RoleCoach, Approved: true}

	t.Run("missing token", func(t *testing.T) {
		r := newRouter(&fakeVerifier{token: token}, &fakeLookup{user: user})
		w := doRequest(r, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("invalid token", func(t *testing.T) {
		r := newRouter(&fakeVerifier{err: errors.New("expired")}, &fakeLookup{user: user})
		w := doRequest(r, "Bearer bad")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("valid token resolves user", func(t *testing.T) {
		r := newRouter(&fakeVerifier{token: token}, &fakeLookup{user: user})
		w := doRequest(r, "Bearer good")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "uid-1")
	})

	t.Run("lookup failure", func(t *testing.T) {
		r := newRouter(&fakeVerifier{token: token}, &fakeLookup{err: errors.New("firestore down")})
		w := doRequest(r, "Bearer good")
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestRequireRole(t *testing.T) {
	token := &fbauth.Token{UID: "uid-1", Claims: map[string]interface{}{}}

	t.Run("approved matching role passes", func(t *testing.T) {
		user := &domain.User{UID: "uid-1", Role: domain.RoleCoach, Approved: true}
		r := newRouter(&fakeVerifier{token: token}, &fakeLookup{user: user}, domain.RoleAdmin, domain.RoleCoach)
		w := doRequest(r, "Bearer good")
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("unapproved account is forbidden", func(t *testing.T) {
		user := &domain.User{UID: "uid-1", Role: domain.RoleCoach, Approved: false}
		r := newRouter(&fakeVerifier{token: token}, &fakeLookup{user: user}, domain.RoleCoach)
		w := doRequest(r, "Bearer good")
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("wrong role is forbidden", func(t *testing.T) {
		user := &domain.User{UID: "uid-1", Role: domain.RoleAthlete, Approved: true}
		r := newRouter(&fakeVerifier{token: token}, &fakeLookup{user: user}, domain.RoleAdmin)
		w := doRequest(r, "Bearer good")
		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}
