package middleware

import (
	"net/http"
	"strings"

	"firebase.google.com/go/v4/auth"
	"github.com/gin-gonic/gin"

	"github.com/clubnatacion/swimclub-backend/internal/auth/domain"
)

// TokenVerifier is the slice of the Firebase Auth client the middleware
// needs; the interface keeps handler tests free of real credentials.
type TokenVerifier interface {
	VerifyIDToken(ctx *gin.Context, idToken string) (*auth.Token, error)
}

type firebaseVerifier struct {
	client *auth.Client
}

func (v *firebaseVerifier) VerifyIDToken(c *gin.Context, idToken string) (*auth.Token, error) {
	return v.client.VerifyIDToken(c.Request.Context(), idToken)
}

func NewTokenVerifier(client *auth.Client) TokenVerifier {
	return &firebaseVerifier{client: client}
}

// UserLookup resolves the account document for a verified UID, creating it on
// first sign-in.
type UserLookup interface {
	EnsureUser(c *gin.Context, uid, email, name string) (*domain.User, error)
}

// FirebaseAuth validates Firebase ID tokens, syncs the account document and
// stores the resolved user on the context.
func FirebaseAuth(verifier TokenVerifier, users UserLookup) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing authorization token"})
			c.Abort()
			return
		}

		decoded, err := verifier.VerifyIDToken(c, token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			c.Abort()
			return
		}

		email, _ := decoded.Claims["email"].(string)
		name, _ := decoded.Claims["name"].(string)

		user, err := users.EnsureUser(c, decoded.UID, email, name)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to resolve user"})
			c.Abort()
			return
		}

		c.Set("firebase_uid", decoded.UID)
		c.Set("user", user)

		c.Next()
	}
}

// RequireRole gates a route group to approved accounts holding one of the
// given roles.
func RequireRole(roles ...domain.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
			c.Abort()
			return
		}

		if !user.Approved {
			c.JSON(http.StatusForbidden, gin.H{"error": "account pending approval"})
			c.Abort()
			return
		}

		for _, r := range roles {
			if user.Role == r {
				c.Next()
				return
			}
		}

		c.JSON(http.StatusForbidden, gin.H{"error": "insufficient role"})
		c.Abort()
	}
}

// CurrentUser returns the user resolved by FirebaseAuth, or nil.
func CurrentUser(c *gin.Context) *domain.User {
	v, ok := c.Get("user")
	if !ok {
		return nil
	}
	user, _ := v.(*domain.User)
	return user
}

// extractToken extracts the Bearer token from the Authorization header
func extractToken(c *gin.Context) string {
	bearerToken := c.GetHeader("Authorization")
	if len(bearerToken) > 7 && strings.HasPrefix(bearerToken, "Bearer ") {
		return bearerToken[7:]
	}
	return ""
}
