package service

import (
	"context"

	"github.com/clubnatacion/swimclub-backend/internal/events/domain"
	"github.com/clubnatacion/swimclub-backend/internal/events/repository"
	"github.com/clubnatacion/swimclub-backend/internal/meta"
	"github.com/clubnatacion/swimclub-backend/internal/swimtime"
)

type EventService struct {
	repo    *repository.EventRepository
	stamper *meta.Stamper
}

func NewEventService(repo *repository.EventRepository, stamper *meta.Stamper) *EventService {
	return &EventService{repo: repo, stamper: stamper}
}

func (s *EventService) Create(ctx context.Context, e *domain.Event) error {
	if _, err := swimtime.ParseISO(e.Date); err != nil {
		return err
	}
	if e.Status == "" {
		e.Status = domain.StatusOpen
	}

	if err := s.repo.Create(ctx, e); err != nil {
		return err
	}
	s.stamper.Touch(ctx, "events")
	return nil
}

func (s *EventService) Get(ctx context.Context, id string) (*domain.Event, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *EventService) List(ctx context.Context, onlyOpen bool) ([]*domain.Event, error) {
	return s.repo.List(ctx, onlyOpen)
}

// SetStatus toggles an event between abierto and cerrado.
func (s *EventService) SetStatus(ctx context.Context, id string, st domain.Status) error {
	if err := s.repo.SetStatus(ctx, id, st); err != nil {
		return err
	}
	s.stamper.Touch(ctx, "events")
	return nil
}
