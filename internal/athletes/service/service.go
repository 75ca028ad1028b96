package service

import (
	"context"

	"github.com/clubnatacion/swimclub-backend/internal/athletes/domain"
	"github.com/clubnatacion/swimclub-backend/internal/athletes/repository"
	groupservice "github.com/clubnatacion/swimclub-backend/internal/groups/service"
	"github.com/clubnatacion/swimclub-backend/internal/meta"
	"github.com/clubnatacion/swimclub-backend/internal/swimtime"
)

// AthleteView is an athlete joined with its derived category and group name.
type AthleteView struct {
	*domain.Athlete
	Category  string `json:"category"`
	GroupID   string `json:"groupId,omitempty"`
	GroupName string `json:"groupName,omitempty"`
}

type AthleteService struct {
	repo       *repository.AthleteRepository
	groups     *groupservice.GroupService
	stamper    *meta.Stamper
	seasonYear int
}

func NewAthleteService(repo *repository.AthleteRepository, groups *groupservice.GroupService, stamper *meta.Stamper, seasonYear int) *AthleteService {
	return &AthleteService{repo: repo, groups: groups, stamper: stamper, seasonYear: seasonYear}
}

// Register creates a pending athlete. The RUT, when present, is validated and
// stored in both raw and display form.
func (s *AthleteService) Register(ctx context.Context, a *domain.Athlete, rut string) error {
	if _, err := swimtime.ParseISO(a.BirthDate); err != nil {
		return domain.ErrInvalidBirthDate
	}

	if rut != "" {
		normalized, err := domain.NormalizeRUT(rut)
		if err != nil {
			return err
		}
		display := domain.FormatRUT(normalized)
		a.RUT = &normalized
		a.RUTDisplay = &display
	}

	if a.SeasonYear == 0 {
		a.SeasonYear = s.seasonYear
	}
	a.Status = domain.StatusPending

	if err := s.repo.Create(ctx, a); err != nil {
		return err
	}
	s.stamper.Touch(ctx, "athletes")
	return nil
}

// Activate flips a pending athlete to active and adds it to a group, as one
// atomic write. Fails when the membership index already places the athlete in
// a different group.
func (s *AthleteService) Activate(ctx context.Context, athleteID, groupID string) error {
	idx, err := s.groups.MembershipIndex(ctx)
	if err != nil {
		return err
	}
	if g := idx.GroupOf(athleteID); g != nil && g.ID != groupID {
		return domain.ErrAlreadyInGroup
	}

	if err := s.repo.ActivateIntoGroup(ctx, athleteID, groupID); err != nil {
		return err
	}
	s.stamper.Touch(ctx, "athletes")
	s.stamper.Touch(ctx, "groups")
	return nil
}

// Deactivate marks an athlete inactive (rejection or retirement). Group
// member lists are left as-is; the membership index simply stops mattering
// for inactive athletes.
func (s *AthleteService) Deactivate(ctx context.Context, athleteID string) error {
	if err := s.repo.SetStatus(ctx, athleteID, domain.StatusInactive); err != nil {
		return err
	}
	s.stamper.Touch(ctx, "athletes")
	return nil
}

func (s *AthleteService) Get(ctx context.Context, id string) (*AthleteView, error) {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	views, err := s.annotate(ctx, []*domain.Athlete{a})
	if err != nil {
		return nil, err
	}
	return views[0], nil
}

// List returns athletes filtered server-side by status and client-side by a
// normalized search query, each annotated with category and group.
func (s *AthleteService) List(ctx context.Context, st domain.Status, search string) ([]*AthleteView, error) {
	athletes, err := s.repo.List(ctx, st)
	if err != nil {
		return nil, err
	}

	if search != "" {
		filtered := athletes[:0]
		for _, a := range athletes {
			if domain.MatchesSearch(a.Name, search) {
				filtered = append(filtered, a)
			}
		}
		athletes = filtered
	}

	return s.annotate(ctx, athletes)
}

// Update merges editable biographical fields.
func (s *AthleteService) Update(ctx context.Context, id string, fields map[string]interface{}) error {
	if err := s.repo.Update(ctx, id, fields); err != nil {
		return err
	}
	s.stamper.Touch(ctx, "athletes")
	return nil
}

func (s *AthleteService) annotate(ctx context.Context, athletes []*domain.Athlete) ([]*AthleteView, error) {
	idx, err := s.groups.MembershipIndex(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]*AthleteView, 0, len(athletes))
	for _, a := range athletes {
		v := &AthleteView{Athlete: a}

		if birth, err := swimtime.ParseISO(a.BirthDate); err == nil {
			season := a.SeasonYear
			if season == 0 {
				season = s.seasonYear
			}
			v.Category = swimtime.Category(birth.Year(), season)
		}

		if g := idx.GroupOf(a.ID); g != nil {
			v.GroupID = g.ID
			v.GroupName = g.Name
		}

		views = append(views, v)
	}
	return views, nil
}
