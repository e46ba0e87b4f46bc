package method

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-api-notifications/internal/application/channel"
	"github.com/go-api-notifications/internal/application/notification"
	"github.com/go-api-notifications/internal/domain"
	"github.com/rs/zerolog"
)

// Service exposes CRUD operations for notification methods. Create and
// update resolve the channel and notification references through the
// owning services before anything is written; a method row never carries
// an unvalidated foreign key.
type Service interface {
	Create(ctx context.Context, m *domain.NotificationMethod) (*domain.NotificationMethod, error)
	GetByID(ctx context.Context, id int64) (*domain.NotificationMethod, error)
	GetAll(ctx context.Context, page domain.PageRequest) ([]domain.NotificationMethod, int64, error)
	UpdateByID(ctx context.Context, id int64, m *domain.NotificationMethod) (*domain.NotificationMethod, error)
	DeleteByID(ctx context.Context, id int64) (bool, error)
}

type methodStore interface {
	Save(ctx context.Context, m *domain.NotificationMethod) (*domain.NotificationMethod, error)
	FindByID(ctx context.Context, id int64) (*domain.NotificationMethod, error)
	FindAll(ctx context.Context, page domain.PageRequest) ([]domain.NotificationMethod, int64, error)
	DeleteByID(ctx context.Context, id int64) error
}

type service struct {
	repo          methodStore
	channels      channel.Service
	notifications notification.Service
	log           zerolog.Logger
}

func NewService(repo methodStore, channels channel.Service, notifications notification.Service, log zerolog.Logger) Service {
	return &service{
		repo:          repo,
		channels:      channels,
		notifications: notifications,
		log:           log,
	}
}

func (s *service) Create(ctx context.Context, m *domain.NotificationMethod) (*domain.NotificationMethod, error) {
	s.log.Info().Str("user_id", m.UserID).
		Int64("channel_id", m.ChannelID).
		Int64("notification_id", m.NotificationID).
		Msg("create method")
	if err := s.resolveRefs(ctx, m); err != nil {
		return nil, err
	}
	return s.repo.Save(ctx, m)
}

func (s *service) GetByID(ctx context.Context, id int64) (*domain.NotificationMethod, error) {
	s.log.Info().Int64("id", id).Msg("get method")
	m, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("notification method with id %d does not exist: %w", id, domain.ErrNotFound)
		}
		return nil, err
	}
	return m, nil
}

func (s *service) GetAll(ctx context.Context, page domain.PageRequest) ([]domain.NotificationMethod, int64, error) {
	s.log.Info().Int("page", page.Page).Int("per_page", page.PerPage).Msg("list methods")
	return s.repo.FindAll(ctx, page)
}

// UpdateByID asserts the method exists (the fetched row is discarded),
// stamps the path id on the incoming entity, then performs the same
// resolution sequence as Create before the full-replace save.
func (s *service) UpdateByID(ctx context.Context, id int64, m *domain.NotificationMethod) (*domain.NotificationMethod, error) {
	if _, err := s.GetByID(ctx, id); err != nil {
		return nil, err
	}
	m.ID = id
	if err := s.resolveRefs(ctx, m); err != nil {
		return nil, err
	}
	s.log.Info().Int64("id", id).Msg("update method")
	return s.repo.Save(ctx, m)
}

func (s *service) DeleteByID(ctx context.Context, id int64) (bool, error) {
	s.log.Info().Int64("id", id).Msg("delete method")
	if err := s.repo.DeleteByID(ctx, id); err != nil {
		return false, err
	}
	return true, nil
}

// resolveRefs swaps the submitted reference ids for the full records.
// Channel first, notification second; a failed channel lookup returns
// before the notification lookup is attempted, and any failure here
// propagates unchanged so nothing reaches the store.
func (s *service) resolveRefs(ctx context.Context, m *domain.NotificationMethod) error {
	ch, err := s.channels.GetByID(ctx, m.ChannelID)
	if err != nil {
		return err
	}
	m.Channel = ch

	n, err := s.notifications.GetByID(ctx, m.NotificationID)
	if err != nil {
		return err
	}
	m.Notification = n
	return nil
}
