package repo

import (
	"context"

	"chartbox/internal/platform/store"
	"chartbox/internal/services/accounts/domain"
)

func (s *pg) LinkOAuth(ctx context.Context, id string, p domain.Provider, tok domain.OAuthTokens) error {
	_, err := store.Exec(ctx, s.q, `
		INSERT INTO account_oauth (account_id, provider, external_id, access_token, refresh_token, expires_at_ms)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (account_id, provider) DO UPDATE
		SET external_id = EXCLUDED.external_id,
			access_token = EXCLUDED.access_token,
			refresh_token = EXCLUDED.refresh_token,
			expires_at_ms = EXCLUDED.expires_at_ms`,
		id, string(p), tok.ExternalID, tok.AccessToken, tok.RefreshToken, tok.ExpiresAt)
	return err
}

func (s *pg) UnlinkOAuth(ctx context.Context, id string, p domain.Provider) error {
	return store.ExecOne(ctx, s.q, `
		DELETE FROM account_oauth
		WHERE account_id = $1 AND provider = $2`, id, string(p))
}

func (s *pg) GetOAuth(ctx context.Context, id string, p domain.Provider) (domain.OAuthTokens, error) {
	return store.One(ctx, s.q, func(r store.Row) (domain.OAuthTokens, error) {
		var t domain.OAuthTokens
		if err := r.Scan(&t.ExternalID, &t.AccessToken, &t.RefreshToken, &t.ExpiresAt); err != nil {
			return domain.OAuthTokens{}, err
		}
		return t, nil
	}, `
		SELECT external_id, access_token, refresh_token, expires_at_ms
		FROM account_oauth
		WHERE account_id = $1 AND provider = $2`, id, string(p))
}
