package repo

import (
	"context"

	"chartbox/internal/platform/store"
	"chartbox/internal/services/accounts/domain"
)

func (s *pg) ByHandle(ctx context.Context, handle int64) (domain.Account, error) {
	return store.One(ctx, s.q, scanAccount, `
		SELECT `+accountColumns+`
		FROM accounts
		WHERE handle = $1
		LIMIT 1`, handle)
}

func (s *pg) Public(ctx context.Context, id string) (domain.PublicAccount, error) {
	return store.One(ctx, s.q, scanPublic, `
		SELECT id, handle, username, mod, admin, banned
		FROM accounts
		WHERE id = $1
		LIMIT 1`, id)
}

func (s *pg) PublicBatch(ctx context.Context, ids []string) ([]domain.PublicAccount, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	return store.Many(ctx, s.q, scanPublic, `
		SELECT id, handle, username, mod, admin, banned
		FROM accounts
		WHERE id = ANY($1::text[])`, ids)
}

func (s *pg) Delete(ctx context.Context, id string) error {
	// sessions, oauth links, and notifications go with the row via cascade
	return store.ExecOne(ctx, s.q, `DELETE FROM accounts WHERE id = $1`, id)
}

func (s *pg) SetUploadCooldown(ctx context.Context, id string, untilUnix int64) error {
	return store.ExecOne(ctx, s.q, `
		UPDATE accounts
		SET upload_cooldown = to_timestamp($1), updated_at = CURRENT_TIMESTAMP
		WHERE id = $2`, untilUnix, id)
}
