package domain

import "time"

// NotificationChannel is a delivery-channel record belonging to one
// notification. The notification reference is persisted exactly as
// submitted; the channel service does not resolve it.
type NotificationChannel struct {
	ID           int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	MessageTitle string    `json:"message_title" gorm:"column:message_title"`
	Amount       int64     `json:"amount" gorm:"column:amount"`
	UserID       string    `json:"user_id" gorm:"column:user_id"`
	SentAt       time.Time `json:"sent_at" gorm:"column:sent_at;autoCreateTime;<-:create"`
	Price        float64   `json:"price" gorm:"column:price"`

	NotificationID int64         `json:"notification_id" gorm:"column:notification_id"`
	Notification   *Notification `json:"notification,omitempty" gorm:"foreignKey:NotificationID"`
}

// NotificationChannelRequest is the create/update payload for a channel.
type NotificationChannelRequest struct {
	MessageTitle   string  `json:"message_title" validate:"required"`
	Amount         int64   `json:"amount" validate:"required,gt=0"`
	UserID         string  `json:"user_id" validate:"required"`
	Price          float64 `json:"price" validate:"required,gt=0"`
	NotificationID int64   `json:"notification_id" validate:"required,gt=0"`
}

func (r NotificationChannelRequest) ToModel() *NotificationChannel {
	return &NotificationChannel{
		MessageTitle:   r.MessageTitle,
		Amount:         r.Amount,
		UserID:         r.UserID,
		Price:          r.Price,
		NotificationID: r.NotificationID,
	}
}
