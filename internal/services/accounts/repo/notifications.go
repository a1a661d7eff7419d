package repo

import (
	"context"
	"strings"

	"chartbox/internal/platform/store"
	"chartbox/internal/services/accounts/domain"
)

func (s *pg) AddNotification(ctx context.Context, userID, title, content string) error {
	return store.ExecOne(ctx, s.q, `
		INSERT INTO notifications (user_id, title, content)
		VALUES ($1, $2, $3)`, userID, title, content)
}

func scanNotificationRow(r store.Row) (domain.Notification, error) {
	var n domain.Notification
	if err := r.Scan(&n.ID, &n.UserID, &n.Title, &n.Content, &n.Read, &n.CreatedAt); err != nil {
		return domain.Notification{}, err
	}
	return n, nil
}

// Notifications lists inbox entries newest first; content stays out of the
// list projection and is only loaded on single fetch
func (s *pg) Notifications(
	ctx context.Context,
	userID string,
	limit, offset int,
	onlyUnread bool,
) ([]domain.Notification, error) {
	var b strings.Builder
	b.WriteString(`
		SELECT id, title, is_read, created_at
		FROM notifications
		WHERE user_id = $1`)
	if onlyUnread {
		b.WriteString(` AND is_read = FALSE`)
	}
	b.WriteString(`
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`)

	return store.Many(ctx, s.q, func(r store.Row) (domain.Notification, error) {
		var n domain.Notification
		if err := r.Scan(&n.ID, &n.Title, &n.Read, &n.CreatedAt); err != nil {
			return domain.Notification{}, err
		}
		return n, nil
	}, b.String(), userID, limit, offset)
}

func (s *pg) NotificationCounts(ctx context.Context, userID string) (total, unread int64, err error) {
	r := s.q.QueryRow(ctx, `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE is_read = FALSE)
		FROM notifications
		WHERE user_id = $1`, userID)
	if err := r.Scan(&total, &unread); err != nil {
		return 0, 0, err
	}
	return total, unread, nil
}

// ReadNotification fetches one entry and marks it read in the same statement
func (s *pg) ReadNotification(ctx context.Context, id, userID string) (domain.Notification, error) {
	return store.One(ctx, s.q, scanNotificationRow, `
		UPDATE notifications
		SET is_read = TRUE
		WHERE id = $1 AND user_id = $2
		RETURNING id, user_id, title, content, is_read, created_at`, id, userID)
}

func (s *pg) SetNotificationRead(ctx context.Context, id, userID string, read bool) (domain.Notification, error) {
	return store.One(ctx, s.q, scanNotificationRow, `
		UPDATE notifications
		SET is_read = $3
		WHERE id = $1 AND user_id = $2
		RETURNING id, user_id, title, content, is_read, created_at`, id, userID, read)
}

func (s *pg) DeleteNotification(ctx context.Context, id, userID string) (domain.Notification, error) {
	return store.One(ctx, s.q, scanNotificationRow, `
		DELETE FROM notifications
		WHERE id = $1 AND user_id = $2
		RETURNING id, user_id, title, content, is_read, created_at`, id, userID)
}
