package repo

import (
	"context"

	"chartbox/internal/platform/store"
	"chartbox/internal/services/accounts/domain"
)

// Stats gathers the five interaction counters as correlated subqueries so
// one round trip covers the whole profile card
const statsSQL = `
	SELECT
		a.id,
		a.handle,
		(
			SELECT COUNT(*)
			FROM chart_likes cl
			WHERE cl.account_id = a.id
		) AS liked_charts_count,
		(
			SELECT COUNT(*)
			FROM comments c
			WHERE c.commenter = a.id
		) AS comments_count,
		(
			SELECT COUNT(*)
			FROM charts ch
			WHERE ch.author = a.id
			AND ch.status = 'PUBLIC'
		) AS charts_published,
		(
			SELECT COUNT(*)
			FROM chart_likes cl
			JOIN charts ch ON ch.id = cl.chart_id
			WHERE ch.author = a.id
		) AS likes_received,
		(
			SELECT COUNT(*)
			FROM comments c
			JOIN charts ch ON ch.id = c.chart_id
			WHERE ch.author = a.id
		) AS comments_received
	FROM accounts a
	WHERE a.id = $1`

func (s *pg) Stats(ctx context.Context, id string) (domain.Stats, error) {
	return store.One(ctx, s.q, func(r store.Row) (domain.Stats, error) {
		var st domain.Stats
		if err := r.Scan(
			&st.ID, &st.Handle,
			&st.LikedCharts, &st.Comments,
			&st.ChartsPublished, &st.LikesReceived, &st.CommentsReceived,
		); err != nil {
			return domain.Stats{}, err
		}
		return st, nil
	}, statsSQL, id)
}
