package schemas

import "time"

// NotificationSchema struct
type NotificationSchema struct {
	ID            string                 `json:"id"`
	WalletAddress string                 `json:"walletAddress"`
	Type          string                 `json:"type"`
	Title         string                 `json:"title"`
	Message       string                 `json:"message"`
	Data          map[string]interface{} `json:"data,omitempty"`
	Read          bool                   `json:"read"`
	CreatedAt     time.Time              `json:"createdAt"`
}

// NotificationsQuery struct
type NotificationsQuery struct {
	WalletAddress string `query:"walletAddress" json:"walletAddress" validate:"required,wallet"`
	UnreadOnly    bool   `query:"unreadOnly" json:"unreadOnly"`
}

// NotificationsResponse struct
type NotificationsResponse struct {
	Success       bool                 `json:"success"`
	Notifications []NotificationSchema `json:"notifications"`
	UnreadCount   int                  `json:"unreadCount"`
}

// CreateNotificationSchema struct
type CreateNotificationSchema struct {
	WalletAddress string                 `json:"walletAddress" validate:"required,wallet"`
	Type          string                 `json:"type" validate:"required,max=50"`
	Title         string                 `json:"title" validate:"required,max=200"`
	Message       string                 `json:"message" validate:"required,max=2000"`
	Data          map[string]interface{} `json:"data"`
}

// NotificationResponse struct
type NotificationResponse struct {
	Success      bool               `json:"success"`
	Notification NotificationSchema `json:"notification"`
}

// DeleteNotificationsQuery struct; one of ID or WalletAddress is required
type DeleteNotificationsQuery struct {
	ID            string `query:"id" json:"id" validate:"required_without=WalletAddress"`
	WalletAddress string `query:"walletAddress" json:"walletAddress" validate:"omitempty,wallet"`
}

// DeleteNotificationsResponse struct
type DeleteNotificationsResponse struct {
	Success bool `json:"success"`
	Deleted int  `json:"deleted"`
}

// MarkReadQuery struct
type MarkReadQuery struct {
	ID string `query:"id" json:"id" validate:"required"`
}
