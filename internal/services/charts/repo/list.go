package repo

import (
	"context"
	"fmt"
	"strings"

	"chartbox/internal/modkit/repokit"
	"chartbox/internal/platform/store"
	"chartbox/internal/services/charts/domain"
)

// List runs the compiled count/page pair and returns total plus one page
func (s *pg) List(
	ctx context.Context,
	f domain.FilterSpec,
	r domain.RankingSpec,
	p domain.Pagination,
	viewer string,
) (domain.ListResult, error) {
	q := compileList(f, r, p, viewer)

	total, err := store.Scalar[int64](ctx, s.q, q.CountSQL, q.CountArgs...)
	if err != nil {
		return domain.ListResult{}, err
	}

	charts, err := store.Many(ctx, s.q, func(row repokit.Row) (domain.Chart, error) {
		return scanChart(row, q.HasLiked)
	}, q.PageSQL, q.PageArgs...)
	if err != nil {
		return domain.ListResult{}, err
	}

	return domain.ListResult{Total: total, Charts: charts}, nil
}

// Random returns up to count public charts in uniform-random order.
// A smaller viewer-aware variant of List without a paired count
func (s *pg) Random(ctx context.Context, count int, viewer string, staffPick *bool) ([]domain.Chart, error) {
	var sb strings.Builder
	args := []any{count}
	arg := func(v any) string { args = append(args, v); return fmt.Sprintf("$%d", len(args)) }

	sb.WriteString("SELECT ")
	sb.WriteString(chartColumns)
	if viewer != "" {
		sb.WriteString(", CASE WHEN cl.account_id IS NULL THEN FALSE ELSE TRUE END AS liked")
	}
	sb.WriteString(`
	FROM charts c
	JOIN accounts a ON c.author = a.id`)
	if viewer != "" {
		sb.WriteString("\n\tLEFT JOIN chart_likes cl ON c.id = cl.chart_id AND cl.account_id = " + arg(viewer))
	}
	sb.WriteString(" WHERE c.status = 'PUBLIC'")
	if staffPick != nil {
		sb.WriteString(" AND c.staff_pick = " + arg(*staffPick) + "::bool")
	}
	sb.WriteString(" ORDER BY RANDOM() LIMIT $1")

	return store.Many(ctx, s.q, func(row repokit.Row) (domain.Chart, error) {
		return scanChart(row, viewer != "")
	}, sb.String(), args...)
}

// Get returns one chart by id; with a viewer it also carries the liked flag
func (s *pg) Get(ctx context.Context, id string, viewer string) (domain.Chart, error) {
	var sb strings.Builder
	args := []any{id}

	sb.WriteString("SELECT ")
	sb.WriteString(chartColumns)
	if viewer != "" {
		args = append(args, viewer)
		sb.WriteString(", (cl.account_id IS NOT NULL) AS liked")
	}
	sb.WriteString(`
	FROM charts c
	JOIN accounts a ON c.author = a.id`)
	if viewer != "" {
		sb.WriteString("\n\tLEFT JOIN chart_likes cl ON c.id = cl.chart_id AND cl.account_id = $2")
	}
	sb.WriteString("\n\tWHERE c.id = $1")

	return store.One(ctx, s.q, func(row repokit.Row) (domain.Chart, error) {
		return scanChart(row, viewer != "")
	}, sb.String(), args...)
}

// GetBatch returns the charts whose ids are in the given set
func (s *pg) GetBatch(ctx context.Context, ids []string) ([]domain.Chart, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	sql := "SELECT " + chartColumns + `
	FROM charts c
	JOIN accounts a ON c.author = a.id
	WHERE c.id = ANY($1::text[])`

	return store.Many(ctx, s.q, func(row repokit.Row) (domain.Chart, error) {
		return scanChart(row, false)
	}, sql, ids)
}
