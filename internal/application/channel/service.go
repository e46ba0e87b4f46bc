package channel

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-api-notifications/internal/domain"
	"github.com/rs/zerolog"
)

// Service exposes CRUD operations for notification channels.
//
// The embedded notification reference is persisted exactly as submitted;
// this service performs no cross-entity resolution. The method service is
// the only one that validates its foreign keys.
type Service interface {
	Create(ctx context.Context, c *domain.NotificationChannel) (*domain.NotificationChannel, error)
	GetByID(ctx context.Context, id int64) (*domain.NotificationChannel, error)
	GetAll(ctx context.Context, page domain.PageRequest) ([]domain.NotificationChannel, int64, error)
	UpdateByID(ctx context.Context, id int64, c *domain.NotificationChannel) (*domain.NotificationChannel, error)
	DeleteByID(ctx context.Context, id int64) (bool, error)
}

type channelStore interface {
	Save(ctx context.Context, c *domain.NotificationChannel) (*domain.NotificationChannel, error)
	FindByID(ctx context.Context, id int64) (*domain.NotificationChannel, error)
	FindAll(ctx context.Context, page domain.PageRequest) ([]domain.NotificationChannel, int64, error)
	DeleteByID(ctx context.Context, id int64) error
}

type service struct {
	repo channelStore
	log  zerolog.Logger
}

func NewService(repo channelStore, log zerolog.Logger) Service {
	return &service{repo: repo, log: log}
}

func (s *service) Create(ctx context.Context, c *domain.NotificationChannel) (*domain.NotificationChannel, error) {
	s.log.Info().Str("user_id", c.UserID).Int64("notification_id", c.NotificationID).Msg("create channel")
	return s.repo.Save(ctx, c)
}

func (s *service) GetByID(ctx context.Context, id int64) (*domain.NotificationChannel, error) {
	s.log.Info().Int64("id", id).Msg("get channel")
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("notification channel with id %d does not exist: %w", id, domain.ErrNotFound)
		}
		return nil, err
	}
	return c, nil
}

func (s *service) GetAll(ctx context.Context, page domain.PageRequest) ([]domain.NotificationChannel, int64, error) {
	s.log.Info().Int("page", page.Page).Int("per_page", page.PerPage).Msg("list channels")
	return s.repo.FindAll(ctx, page)
}

// UpdateByID replaces the record wholesale after asserting it exists.
// The fetched row is discarded, not merged.
func (s *service) UpdateByID(ctx context.Context, id int64, c *domain.NotificationChannel) (*domain.NotificationChannel, error) {
	if _, err := s.GetByID(ctx, id); err != nil {
		return nil, err
	}
	c.ID = id
	s.log.Info().Int64("id", id).Msg("update channel")
	return s.repo.Save(ctx, c)
}

func (s *service) DeleteByID(ctx context.Context, id int64) (bool, error) {
	s.log.Info().Int64("id", id).Msg("delete channel")
	if err := s.repo.DeleteByID(ctx, id); err != nil {
		return false, err
	}
	return true, nil
}
