package postgres

import (
	"context"
	"errors"

	"github.com/go-api-notifications/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var channelSortColumns = map[string]bool{
	"id":              true,
	"message_title":   true,
	"amount":          true,
	"user_id":         true,
	"sent_at":         true,
	"price":           true,
	"notification_id": true,
}

// ChannelRepo provides typed postgres operations for the notification_channels table.
type ChannelRepo struct {
	db *gorm.DB
}

func NewChannelRepo(db *gorm.DB) *ChannelRepo {
	return &ChannelRepo{db: db}
}

func (r *ChannelRepo) Save(ctx context.Context, c *domain.NotificationChannel) (*domain.NotificationChannel, error) {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Save(c).Error; err != nil {
		return nil, err
	}
	return c, nil
}

func (r *ChannelRepo) FindByID(ctx context.Context, id int64) (*domain.NotificationChannel, error) {
	var c domain.NotificationChannel
	err := r.db.WithContext(ctx).Preload("Notification").First(&c, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *ChannelRepo) FindAll(ctx context.Context, page domain.PageRequest) ([]domain.NotificationChannel, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&domain.NotificationChannel{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var items []domain.NotificationChannel
	err := r.db.WithContext(ctx).
		Order(orderExpr(page.Sort, channelSortColumns)).
		Offset(page.Offset()).
		Limit(page.PerPage).
		Find(&items).Error
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (r *ChannelRepo) DeleteByID(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&domain.NotificationChannel{}, id).Error
}
