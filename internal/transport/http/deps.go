package http

import (
	"context"

	"github.com/go-api-notifications/internal/domain"
)

// NotificationStore is the minimal contract the router requires from a
// notification store.
type NotificationStore interface {
	Save(ctx context.Context, n *domain.Notification) (*domain.Notification, error)
	FindByID(ctx context.Context, id int64) (*domain.Notification, error)
	FindAll(ctx context.Context, page domain.PageRequest) ([]domain.Notification, int64, error)
	DeleteByID(ctx context.Context, id int64) error
}

// ChannelStore is the minimal contract the router requires from a
// notification-channel store.
type ChannelStore interface {
	Save(ctx context.Context, c *domain.NotificationChannel) (*domain.NotificationChannel, error)
	FindByID(ctx context.Context, id int64) (*domain.NotificationChannel, error)
	FindAll(ctx context.Context, page domain.PageRequest) ([]domain.NotificationChannel, int64, error)
	DeleteByID(ctx context.Context, id int64) error
}

// MethodStore is the minimal contract the router requires from a
// notification-method store.
type MethodStore interface {
	Save(ctx context.Context, m *domain.NotificationMethod) (*domain.NotificationMethod, error)
	FindByID(ctx context.Context, id int64) (*domain.NotificationMethod, error)
	FindAll(ctx context.Context, page domain.PageRequest) ([]domain.NotificationMethod, int64, error)
	DeleteByID(ctx context.Context, id int64) error
}
