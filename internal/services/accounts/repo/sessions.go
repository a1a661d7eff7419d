package repo

import (
	"context"

	"chartbox/internal/platform/store"
	"chartbox/internal/services/accounts/domain"
)

// Upsert inserts or refreshes the account row and seeds its fixed session
// slots. The username always follows the latest login; the handle is only
// written on first insert
const upsertSQL = `
	WITH up AS (
		INSERT INTO accounts (id, handle, username)
		VALUES ($1, $2, $3)
		ON CONFLICT (id) DO UPDATE
		SET username = EXCLUDED.username, updated_at = CURRENT_TIMESTAMP
		RETURNING id
	)
	INSERT INTO account_sessions (account_id, session_type, slot)
	SELECT up.id, t.session_type, s.slot
	FROM up
	CROSS JOIN (VALUES ('game'), ('external')) AS t(session_type)
	CROSS JOIN generate_series(0, 2) AS s(slot)
	ON CONFLICT (account_id, session_type, slot) DO NOTHING`

func (s *pg) Upsert(ctx context.Context, id string, handle int64, username string) error {
	_, err := store.Exec(ctx, s.q, upsertSQL, id, handle, username)
	return err
}

// allocateSQL picks and overwrites a slot in one statement. The ordering is
// the slot policy: free slots (never used or expired at $3) first by index,
// then the soonest-expiring live slot, ties by index. The locked CTE takes
// row locks on the whole slot set before any ordering, so a concurrent
// allocation blocks there and then orders over the committed writes of the
// winner rather than a stale snapshot; ordering after LIMIT 1 FOR UPDATE
// would let two logins pick the same slot under read committed
const allocateSQL = `
	WITH locked AS (
		SELECT slot, token, expires_at_ms
		FROM account_sessions
		WHERE account_id = $1 AND session_type = $2
		ORDER BY slot
		FOR UPDATE
	),
	pick AS (
		SELECT slot
		FROM locked
		ORDER BY
			(token IS NULL OR expires_at_ms <= $3) DESC,
			CASE WHEN token IS NULL OR expires_at_ms <= $3 THEN slot END ASC,
			expires_at_ms ASC,
			slot ASC
		LIMIT 1
	)
	UPDATE account_sessions s
	SET token = $4, expires_at_ms = $5
	FROM pick
	WHERE s.account_id = $1 AND s.session_type = $2 AND s.slot = pick.slot
	RETURNING s.token, s.expires_at_ms`

func (s *pg) AllocateSession(
	ctx context.Context,
	id string,
	t domain.SessionType,
	token string,
	nowMs, expiresMs int64,
) (domain.SessionData, error) {
	return store.One(ctx, s.q, func(r store.Row) (domain.SessionData, error) {
		var sd domain.SessionData
		if err := r.Scan(&sd.Token, &sd.ExpiresAt); err != nil {
			return domain.SessionData{}, err
		}
		return sd, nil
	}, allocateSQL, id, string(t), nowMs, token, expiresMs)
}

const bySessionSQL = `
	SELECT
		a.id, a.handle, a.username, a.mod, a.admin, a.banned,
		a.upload_cooldown, a.created_at, a.updated_at
	FROM accounts a
	JOIN account_sessions s ON s.account_id = a.id
	WHERE s.token = $1 AND s.expires_at_ms > $2
	LIMIT 1`

// BySession matches a token across live slots only; expired tokens are as
// good as absent
func (s *pg) BySession(ctx context.Context, token string, nowMs int64) (domain.Account, error) {
	return store.One(ctx, s.q, scanAccount, bySessionSQL, token, nowMs)
}
