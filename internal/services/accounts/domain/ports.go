package domain

import (
	"context"
	"time"
)

// NotificationPage is one page of inbox entries plus the unread counter
type NotificationPage struct {
	Total         int64          `json:"total"`
	Unread        int64          `json:"unread"`
	Notifications []Notification `json:"notifications"`
}

// ServicePort is the account surface other modules and transports consume
type ServicePort interface {
	// Login upserts the account and allocates a session slot in one transaction
	Login(ctx context.Context, id string, handle int64, username string, t SessionType, ttlMs int64) (SessionData, error)
	// Authenticate resolves a live session token to its account
	Authenticate(ctx context.Context, token string) (Account, error)

	GetByHandle(ctx context.Context, handle int64) (Account, error)
	GetPublic(ctx context.Context, id string) (PublicAccount, error)
	GetPublicBatch(ctx context.Context, ids []string) ([]PublicAccount, error)
	Stats(ctx context.Context, id string) (Stats, error)

	SetRole(ctx context.Context, id string, role Role) error
	SetBanned(ctx context.Context, id string, banned bool) error
	Delete(ctx context.Context, id string, confirm bool) error
	SetUploadCooldown(ctx context.Context, id string, d time.Duration) error

	LinkOAuth(ctx context.Context, id string, p Provider, tok OAuthTokens) error
	UnlinkOAuth(ctx context.Context, id string, p Provider) error
	GetOAuth(ctx context.Context, id string, p Provider) (OAuthTokens, error)

	AddNotification(ctx context.Context, userID, title, content string) error
	Notifications(ctx context.Context, userID string, limit, page int, onlyUnread bool) (NotificationPage, error)
	Notification(ctx context.Context, id, userID string) (Notification, error)
	SetNotificationRead(ctx context.Context, id, userID string, read bool) (Notification, error)
	DeleteNotification(ctx context.Context, id, userID string) (Notification, error)

	// CanModerate satisfies the charts authz seam without an import between the modules
	CanModerate(ctx context.Context, accountID string) (bool, error)
}
