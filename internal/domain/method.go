package domain

// NotificationMethod is a billing/cost record tied to exactly one
// channel and one notification. The ID fields carry the references as
// submitted; the pointer fields hold the resolved records the method
// service looks up before every save.
type NotificationMethod struct {
	ID           int64   `json:"id" gorm:"primaryKey;autoIncrement"`
	MessageTitle string  `json:"message_title" gorm:"column:message_title"`
	Cost         float64 `json:"cost" gorm:"column:cost"`
	UserID       string  `json:"user_id" gorm:"column:user_id"`
	Price        float64 `json:"price" gorm:"column:price"`

	ChannelID      int64                `json:"channel_id" gorm:"column:channel_id"`
	Channel        *NotificationChannel `json:"channel,omitempty" gorm:"foreignKey:ChannelID"`
	NotificationID int64                `json:"notification_id" gorm:"column:notification_id"`
	Notification   *Notification        `json:"notification,omitempty" gorm:"foreignKey:NotificationID"`
}

// NotificationMethodRequest is the create/update payload for a method.
type NotificationMethodRequest struct {
	MessageTitle   string  `json:"message_title" validate:"required"`
	Cost           float64 `json:"cost" validate:"required,gt=0"`
	UserID         string  `json:"user_id" validate:"required"`
	Price          float64 `json:"price" validate:"required,gt=0"`
	ChannelID      int64   `json:"channel_id" validate:"required,gt=0"`
	NotificationID int64   `json:"notification_id" validate:"required,gt=0"`
}

func (r NotificationMethodRequest) ToModel() *NotificationMethod {
	return &NotificationMethod{
		MessageTitle:   r.MessageTitle,
		Cost:           r.Cost,
		UserID:         r.UserID,
		Price:          r.Price,
		ChannelID:      r.ChannelID,
		NotificationID: r.NotificationID,
	}
}
