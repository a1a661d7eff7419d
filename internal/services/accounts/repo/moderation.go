package repo

import (
	"context"

	"chartbox/internal/platform/store"
	"chartbox/internal/services/accounts/domain"
)

// SetRole writes both stored flags in one statement so the lattice can
// never be observed half-applied
func (s *pg) SetRole(ctx context.Context, id string, role domain.Role) error {
	mod, admin := role.Flags()
	return store.ExecOne(ctx, s.q, `
		UPDATE accounts
		SET mod = $1, admin = $2, updated_at = CURRENT_TIMESTAMP
		WHERE id = $3`, mod, admin, id)
}

func (s *pg) SetBanned(ctx context.Context, id string, banned bool) error {
	return store.ExecOne(ctx, s.q, `
		UPDATE accounts
		SET banned = $1, updated_at = CURRENT_TIMESTAMP
		WHERE id = $2`, banned, id)
}
