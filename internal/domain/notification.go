package domain

import "time"

// Notification is the root record: a message with an amount and price
// tied to a user. Channels reference it via their foreign key.
type Notification struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Message   string    `json:"message" gorm:"column:message"`
	Amount    float64   `json:"amount" gorm:"column:amount"`
	UserID    string    `json:"user_id" gorm:"column:user_id"`
	CreatedAt time.Time `json:"created_at" gorm:"column:created_at;autoCreateTime;<-:create"`
	Price     float64   `json:"price" gorm:"column:price"`

	Channels []NotificationChannel `json:"channels,omitempty" gorm:"foreignKey:NotificationID"`
}

// NotificationRequest is the create/update payload for a notification.
type NotificationRequest struct {
	Message string  `json:"message" validate:"required"`
	Amount  float64 `json:"amount" validate:"required,gt=0"`
	UserID  string  `json:"user_id" validate:"required"`
	Price   float64 `json:"price" validate:"required,gt=0"`
}

// ToModel maps the request onto a fresh entity. ID and CreatedAt stay
// zero; the store assigns both on first persist.
func (r NotificationRequest) ToModel() *Notification {
	return &Notification{
		Message: r.Message,
		Amount:  r.Amount,
		UserID:  r.UserID,
		Price:   r.Price,
	}
}
