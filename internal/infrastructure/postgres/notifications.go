package postgres

import (
	"context"
	"errors"

	"github.com/go-api-notifications/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var notificationSortColumns = map[string]bool{
	"id":         true,
	"message":    true,
	"amount":     true,
	"user_id":    true,
	"created_at": true,
	"price":      true,
}

// NotificationRepo provides typed postgres operations for the notifications table.
type NotificationRepo struct {
	db *gorm.DB
}

func NewNotificationRepo(db *gorm.DB) *NotificationRepo {
	return &NotificationRepo{db: db}
}

// Save inserts the entity when its id is zero and replaces the row
// otherwise. Associations are never written through this path; created_at
// is create-only and survives the replace.
func (r *NotificationRepo) Save(ctx context.Context, n *domain.Notification) (*domain.Notification, error) {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Save(n).Error; err != nil {
		return nil, err
	}
	return n, nil
}

func (r *NotificationRepo) FindByID(ctx context.Context, id int64) (*domain.Notification, error) {
	var n domain.Notification
	if err := r.db.WithContext(ctx).First(&n, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &n, nil
}

func (r *NotificationRepo) FindAll(ctx context.Context, page domain.PageRequest) ([]domain.Notification, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&domain.Notification{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var items []domain.Notification
	err := r.db.WithContext(ctx).
		Order(orderExpr(page.Sort, notificationSortColumns)).
		Offset(page.Offset()).
		Limit(page.PerPage).
		Find(&items).Error
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (r *NotificationRepo) DeleteByID(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&domain.Notification{}, id).Error
}
