package app

import (
	"context"

	"chucklechain/domain"
)

// MessageService fetches the session user's direct-message threads.
type MessageService interface {
	Conversations(ctx context.Context) ([]domain.Conversation, error)
}

// NotificationService fetches the session user's activity feed.
type NotificationService interface {
	Notifications(ctx context.Context) ([]domain.Notification, error)
}
