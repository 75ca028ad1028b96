package service

import (
	"context"

	"github.com/clubnatacion/swimclub-backend/internal/groups/domain"
	"github.com/clubnatacion/swimclub-backend/internal/groups/repository"
	"github.com/clubnatacion/swimclub-backend/internal/meta"
)

type GroupService struct {
	repo    *repository.GroupRepository
	stamper *meta.Stamper
}

func NewGroupService(repo *repository.GroupRepository, stamper *meta.Stamper) *GroupService {
	return &GroupService{repo: repo, stamper: stamper}
}

func (s *GroupService) Get(ctx context.Context, id string) (*domain.Group, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *GroupService) List(ctx context.Context) ([]*domain.Group, error) {
	return s.repo.List(ctx)
}

func (s *GroupService) Create(ctx context.Context, g *domain.Group) error {
	if err := s.repo.Create(ctx, g); err != nil {
		return err
	}
	s.stamper.Touch(ctx, "groups")
	return nil
}

func (s *GroupService) Update(ctx context.Context, id string, fields map[string]interface{}) error {
	if err := s.repo.Update(ctx, id, fields); err != nil {
		return err
	}
	s.stamper.Touch(ctx, "groups")
	return nil
}

func (s *GroupService) RemoveMember(ctx context.Context, groupID, athleteID string) error {
	if err := s.repo.RemoveMember(ctx, groupID, athleteID); err != nil {
		return err
	}
	s.stamper.Touch(ctx, "groups")
	return nil
}

// MembershipIndex rebuilds the athlete-to-group lookup from a full scan.
func (s *GroupService) MembershipIndex(ctx context.Context) (*domain.MembershipIndex, error) {
	groups, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return domain.BuildMembershipIndex(groups), nil
}
