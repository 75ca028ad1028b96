package auth

import (
	"github.com/gin-gonic/gin"

	"github.com/clubnatacion/swimclub-backend/internal/auth/domain"
	"github.com/clubnatacion/swimclub-backend/internal/auth/service"
)

// serviceLookup adapts AuthService to the middleware's UserLookup.
type serviceLookup struct {
	svc *service.AuthService
}

func NewUserLookup(svc *service.AuthService) *serviceLookup {
	return &serviceLookup{svc: svc}
}

func (l *serviceLookup) EnsureUser(c *gin.Context, uid, email, name string) (*domain.User, error) {
	return l.svc.SyncUser(c.Request.Context(), uid, email, name)
}
