package postgres

import (
	"context"
	"errors"

	"github.com/go-api-notifications/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var methodSortColumns = map[string]bool{
	"id":              true,
	"message_title":   true,
	"cost":            true,
	"user_id":         true,
	"price":           true,
	"channel_id":      true,
	"notification_id": true,
}

// MethodRepo provides typed postgres operations for the notification_methods table.
type MethodRepo struct {
	db *gorm.DB
}

func NewMethodRepo(db *gorm.DB) *MethodRepo {
	return &MethodRepo{db: db}
}

func (r *MethodRepo) Save(ctx context.Context, m *domain.NotificationMethod) (*domain.NotificationMethod, error) {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Save(m).Error; err != nil {
		return nil, err
	}
	return m, nil
}

func (r *MethodRepo) FindByID(ctx context.Context, id int64) (*domain.NotificationMethod, error) {
	var m domain.NotificationMethod
	err := r.db.WithContext(ctx).
		Preload("Channel").
		Preload("Notification").
		First(&m, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &m, nil
}

func (r *MethodRepo) FindAll(ctx context.Context, page domain.PageRequest) ([]domain.NotificationMethod, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&domain.NotificationMethod{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var items []domain.NotificationMethod
	err := r.db.WithContext(ctx).
		Preload("Channel").
		Preload("Notification").
		Order(orderExpr(page.Sort, methodSortColumns)).
		Offset(page.Offset()).
		Limit(page.PerPage).
		Find(&items).Error
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (r *MethodRepo) DeleteByID(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&domain.NotificationMethod{}, id).Error
}
