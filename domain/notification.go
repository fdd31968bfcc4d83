package domain

import "time"

// NotificationType identifies what triggered a notification.
type NotificationType string

const (
	NotificationLike    NotificationType = "like"
	NotificationComment NotificationType = "comment"
	NotificationFollow  NotificationType = "follow"
)

// Notification is a read-only activity entry. Content is set only for
// comment notifications.
type Notification struct {
	ID        string
	Type      NotificationType
	User      User
	Content   string
	Timestamp time.Time
}
