package repo

import (
	"context"

	"chartbox/internal/modkit/repokit"
	"chartbox/internal/platform/store"
	"chartbox/internal/services/charts/domain"
)

// AddLike records a like when the chart is visible to the account.
// Idempotent: a duplicate like is silently ignored
func (s *pg) AddLike(ctx context.Context, id, account string) error {
	_, err := s.q.Exec(ctx, `
	INSERT INTO chart_likes (chart_id, account_id, created_at)
	SELECT $1, $2, CURRENT_TIMESTAMP
	WHERE EXISTS (
		SELECT 1 FROM charts
		WHERE id = $1
		AND (
			status IN ('UNLISTED', 'PUBLIC')
			OR (status = 'PRIVATE' AND author = $2)
		)
	)
	ON CONFLICT DO NOTHING`, id, account)
	return err
}

// RemoveLike deletes a like under the same visibility guard as AddLike
func (s *pg) RemoveLike(ctx context.Context, id, account string) error {
	_, err := s.q.Exec(ctx, `
	DELETE FROM chart_likes
	WHERE chart_id = $1
	AND account_id = $2
	AND EXISTS (
		SELECT 1 FROM charts
		WHERE id = $1
		AND (
			status IN ('UNLISTED', 'PUBLIC')
			OR (status = 'PRIVATE' AND author = $2)
		)
	)`, id, account)
	return err
}

// LikeTrend returns the cumulative like count per day over the last week.
// Private charts yield an all-zero series rather than an error
func (s *pg) LikeTrend(ctx context.Context, id string) ([]domain.LikeTrendPoint, error) {
	return store.Many(ctx, s.q, func(row repokit.Row) (domain.LikeTrendPoint, error) {
		var p domain.LikeTrendPoint
		err := row.Scan(&p.Day, &p.Likes)
		return p, err
	}, `
	WITH days AS (
		SELECT
			generate_series(
				CURRENT_DATE - INTERVAL '6 days',
				CURRENT_DATE,
				INTERVAL '1 day'
			)::date AS day
	)
	SELECT
		d.day,
		COUNT(cl.chart_id) AS total_likes
	FROM days d
	LEFT JOIN charts ch
		ON ch.id = $1
		AND ch.status <> 'PRIVATE'
	LEFT JOIN chart_likes cl
		ON cl.chart_id = ch.id
		AND cl.created_at::date <= d.day
	GROUP BY d.day
	ORDER BY d.day ASC`, id)
}
