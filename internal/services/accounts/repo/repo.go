// Package repo persists accounts, session slots, oauth links, and
// notifications through the platform store seam
package repo

import (
	"context"

	"chartbox/internal/modkit/repokit"
	"chartbox/internal/services/accounts/domain"
)

type (
	pg     struct{ q repokit.Queryer }
	binder struct{}
)

// NewPG constructs a new repo binder for Postgres
func NewPG() repokit.Binder[Storage] { return binder{} }

// Bind implements repokit.Binder
func (binder) Bind(q repokit.Queryer) Storage { return &pg{q: q} }

// Storage is the accounts repository
type Storage interface {
	Upsert(ctx context.Context, id string, handle int64, username string) error
	AllocateSession(ctx context.Context, id string, t domain.SessionType, token string, nowMs, expiresMs int64) (domain.SessionData, error)
	BySession(ctx context.Context, token string, nowMs int64) (domain.Account, error)

	ByHandle(ctx context.Context, handle int64) (domain.Account, error)
	Public(ctx context.Context, id string) (domain.PublicAccount, error)
	PublicBatch(ctx context.Context, ids []string) ([]domain.PublicAccount, error)
	Stats(ctx context.Context, id string) (domain.Stats, error)

	SetRole(ctx context.Context, id string, role domain.Role) error
	SetBanned(ctx context.Context, id string, banned bool) error
	Delete(ctx context.Context, id string) error
	SetUploadCooldown(ctx context.Context, id string, untilUnix int64) error

	LinkOAuth(ctx context.Context, id string, p domain.Provider, tok domain.OAuthTokens) error
	UnlinkOAuth(ctx context.Context, id string, p domain.Provider) error
	GetOAuth(ctx context.Context, id string, p domain.Provider) (domain.OAuthTokens, error)

	AddNotification(ctx context.Context, userID, title, content string) error
	Notifications(ctx context.Context, userID string, limit, offset int, onlyUnread bool) ([]domain.Notification, error)
	NotificationCounts(ctx context.Context, userID string) (total, unread int64, err error)
	ReadNotification(ctx context.Context, id, userID string) (domain.Notification, error)
	SetNotificationRead(ctx context.Context, id, userID string, read bool) (domain.Notification, error)
	DeleteNotification(ctx context.Context, id, userID string) (domain.Notification, error)
}

const accountColumns = `
	id, handle, username, mod, admin, banned,
	upload_cooldown, created_at, updated_at`

func scanAccount(r repokit.Row) (domain.Account, error) {
	var (
		a          domain.Account
		mod, admin bool
	)
	if err := r.Scan(
		&a.ID, &a.Handle, &a.Username, &mod, &admin, &a.Banned,
		&a.UploadCooldown, &a.CreatedAt, &a.UpdatedAt,
	); err != nil {
		return domain.Account{}, err
	}
	a.Role = domain.RoleOf(mod, admin)
	return a, nil
}

func scanPublic(r repokit.Row) (domain.PublicAccount, error) {
	var (
		p          domain.PublicAccount
		mod, admin bool
	)
	if err := r.Scan(&p.ID, &p.Handle, &p.Username, &mod, &admin, &p.Banned); err != nil {
		return domain.PublicAccount{}, err
	}
	p.Role = domain.RoleOf(mod, admin)
	return p, nil
}
