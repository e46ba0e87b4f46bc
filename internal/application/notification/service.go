package notification

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-api-notifications/internal/domain"
	"github.com/rs/zerolog"
)

// Service exposes CRUD operations for notifications.
type Service interface {
	Create(ctx context.Context, n *domain.Notification) (*domain.Notification, error)
	GetByID(ctx context.Context, id int64) (*domain.Notification, error)
	GetAll(ctx context.Context, page domain.PageRequest) ([]domain.Notification, int64, error)
	UpdateByID(ctx context.Context, id int64, n *domain.Notification) (*domain.Notification, error)
	DeleteByID(ctx context.Context, id int64) (bool, error)
}

type notificationStore interface {
	Save(ctx context.Context, n *domain.Notification) (*domain.Notification, error)
	FindByID(ctx context.Context, id int64) (*domain.Notification, error)
	FindAll(ctx context.Context, page domain.PageRequest) ([]domain.Notification, int64, error)
	DeleteByID(ctx context.Context, id int64) error
}

type service struct {
	repo notificationStore
	log  zerolog.Logger
}

func NewService(repo notificationStore, log zerolog.Logger) Service {
	return &service{repo: repo, log: log}
}

func (s *service) Create(ctx context.Context, n *domain.Notification) (*domain.Notification, error) {
	s.log.Info().Str("user_id", n.UserID).Msg("create notification")
	return s.repo.Save(ctx, n)
}

func (s *service) GetByID(ctx context.Context, id int64) (*domain.Notification, error) {
	s.log.Info().Int64("id", id).Msg("get notification")
	n, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("notification with id %d does not exist: %w", id, domain.ErrNotFound)
		}
		return nil, err
	}
	return n, nil
}

func (s *service) GetAll(ctx context.Context, page domain.PageRequest) ([]domain.Notification, int64, error) {
	s.log.Info().Int("page", page.Page).Int("per_page", page.PerPage).Msg("list notifications")
	return s.repo.FindAll(ctx, page)
}

// UpdateByID replaces the record wholesale. The initial GetByID is an
// existence assertion only; its result is discarded and never merged
// into the incoming entity.
func (s *service) UpdateByID(ctx context.Context, id int64, n *domain.Notification) (*domain.Notification, error) {
	if _, err := s.GetByID(ctx, id); err != nil {
		return nil, err
	}
	n.ID = id
	s.log.Info().Int64("id", id).Msg("update notification")
	return s.repo.Save(ctx, n)
}

// DeleteByID requests deletion unconditionally; a missing row is not an
// error at this layer.
func (s *service) DeleteByID(ctx context.Context, id int64) (bool, error) {
	s.log.Info().Int64("id", id).Msg("delete notification")
	if err := s.repo.DeleteByID(ctx, id); err != nil {
		return false, err
	}
	return true, nil
}
