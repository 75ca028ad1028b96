package service

import (
	"context"
	"errors"

	"github.com/clubnatacion/swimclub-backend/internal/auth/domain"
	"github.com/clubnatacion/swimclub-backend/internal/auth/repository"
)

type AuthService struct {
	userRepo *repository.UserRepository
}

func NewAuthService(userRepo *repository.UserRepository) *AuthService {
	return &AuthService{userRepo: userRepo}
}

// GetUser retrieves a user by Firebase UID.
func (s *AuthService) GetUser(ctx context.Context, uid string) (*domain.User, error) {
	return s.userRepo.GetByUID(ctx, uid)
}

// ListUsers returns every account document.
func (s *AuthService) ListUsers(ctx context.Context) ([]*domain.User, error) {
	return s.userRepo.List(ctx)
}

// SyncUser resolves the account for a verified token, creating it on first
// sign-in. New accounts always start as unapproved athletes; only SetRole can
// change that.
func (s *AuthService) SyncUser(ctx context.Context, uid, email, displayName string) (*domain.User, error) {
	user, err := s.userRepo.GetByUID(ctx, uid)
	if err == nil {
		// Last-login is advisory; a failed touch does not fail the request.
		_ = s.userRepo.TouchLastLogin(ctx, uid)
		return user, nil
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	user = &domain.User{
		UID:         uid,
		Email:       email,
		DisplayName: displayName,
		Role:        domain.RoleAthlete,
		Approved:    false,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// SetRole assigns role and approval. The HTTP layer restricts this to admins.
func (s *AuthService) SetRole(ctx context.Context, uid string, role domain.Role, approved bool) error {
	if !role.Valid() {
		return domain.ErrInvalidRole
	}
	return s.userRepo.UpdateRoleAndApproval(ctx, uid, role, approved)
}

// UpdateProfile merges the optional profile fields a user may edit themselves.
func (s *AuthService) UpdateProfile(ctx context.Context, uid string, phone *string, courses []string, photoURL *string) error {
	fields := map[string]interface{}{}
	if phone != nil {
		fields["phone"] = *phone
	}
	if courses != nil {
		fields["courses"] = courses
	}
	if photoURL != nil {
		fields["photoUrl"] = *photoURL
	}
	if len(fields) == 0 {
		return nil
	}
	return s.userRepo.UpdateProfile(ctx, uid, fields)
}
