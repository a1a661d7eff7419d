package repo

import (
	"context"
	"fmt"
	"strings"

	"chartbox/internal/modkit/repokit"
	"chartbox/internal/platform/store"
	"chartbox/internal/services/charts/domain"
)

// Create inserts a chart; status is always PRIVATE and timestamps are
// assigned server-side
func (s *pg) Create(ctx context.Context, d domain.Draft) (string, error) {
	tags := d.Tags
	if tags == nil {
		tags = []string{}
	}
	return store.Scalar[string](ctx, s.q, `
	INSERT INTO charts
		(id, author, rating, description, designer, title, artists, tags,
		jacket_hash, music_hash, chart_hash, preview_hash, background_hash,
		background_v1_hash, background_v3_hash, status, created_at, updated_at)
	VALUES
		($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15,
		'PRIVATE', CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
	RETURNING id`,
		d.ID, d.Author, d.Rating, d.Description, d.Designer, d.Title,
		d.Artists, tags, d.Files.Jacket, d.Files.Music, d.Files.Chart,
		d.Files.Preview, d.Files.Background,
		d.Files.BackgroundV1, d.Files.BackgroundV3,
	)
}

// Delete removes a chart and returns the deleted row. With owner set the
// delete only matches when the chart belongs to that account; a mismatch
// yields an empty result, not an error
func (s *pg) Delete(ctx context.Context, id, owner string) (domain.Chart, error) {
	var sb strings.Builder
	args := []any{id}

	sb.WriteString(`
	DELETE FROM charts c
	USING accounts a
	WHERE c.id = $1
	AND c.author = a.id`)
	if owner != "" {
		args = append(args, owner)
		sb.WriteString("\n\tAND c.author = $2")
	}
	sb.WriteString(`
	RETURNING ` + deletedColumns)

	return store.One(ctx, s.q, func(row repokit.Row) (domain.Chart, error) {
		return scanChart(row, false)
	}, sb.String(), args...)
}

// deletedColumns mirrors chartColumns with the deleted row's alias
const deletedColumns = `
		c.id, c.title, c.artists, c.description, c.tags, c.author,
		c.staff_pick, c.jacket_hash, c.music_hash, c.chart_hash,
		c.preview_hash, c.background_hash, c.background_v3_hash,
		c.background_v1_hash, c.status, c.rating, c.like_count,
		c.comment_count, c.created_at, c.published_at, c.updated_at,
		c.designer || '#' || a.handle, a.handle, c.designer, c.scheduled_at`

// UpdateMetadata applies a present-optional SET list; the service layer
// guarantees at least one field is set before this is called
func (s *pg) UpdateMetadata(ctx context.Context, id string, p domain.MetadataPatch) error {
	var sets []string
	var args []any
	set := func(col string, v any) {
		args = append(args, v)
		sets = append(sets, fmt.Sprintf("%s = $%d", col, len(args)))
	}

	if p.Rating != nil {
		set("rating", *p.Rating)
	}
	if p.Designer != nil {
		set("designer", *p.Designer)
	}
	switch {
	case p.Description != nil:
		set("description", *p.Description)
	case p.ClearDescription:
		sets = append(sets, "description = NULL")
	}
	if p.Title != nil {
		set("title", *p.Title)
	}
	if p.Artists != nil {
		set("artists", *p.Artists)
	}
	if p.Tags != nil {
		set("tags", *p.Tags)
	}
	sets = append(sets, "updated_at = CURRENT_TIMESTAMP")

	args = append(args, id)
	sql := fmt.Sprintf("UPDATE charts SET %s WHERE id = $%d", strings.Join(sets, ", "), len(args))
	_, err := s.q.Exec(ctx, sql, args...)
	return err
}

// UpdateFiles applies a present-optional SET list over asset hashes
func (s *pg) UpdateFiles(ctx context.Context, id string, p domain.FilePatch) error {
	var sets []string
	var args []any
	set := func(col string, v any) {
		args = append(args, v)
		sets = append(sets, fmt.Sprintf("%s = $%d", col, len(args)))
	}

	if p.Jacket != nil {
		set("jacket_hash", *p.Jacket)
	}
	if p.BackgroundV1 != nil {
		set("background_v1_hash", *p.BackgroundV1)
	}
	if p.BackgroundV3 != nil {
		set("background_v3_hash", *p.BackgroundV3)
	}
	if p.Music != nil {
		set("music_hash", *p.Music)
	}
	if p.Chart != nil {
		set("chart_hash", *p.Chart)
	}
	switch {
	case p.Preview != nil:
		set("preview_hash", *p.Preview)
	case p.ClearPreview:
		sets = append(sets, "preview_hash = NULL")
	}
	switch {
	case p.Background != nil:
		set("background_hash", *p.Background)
	case p.ClearBackground:
		sets = append(sets, "background_hash = NULL")
	}
	sets = append(sets, "updated_at = CURRENT_TIMESTAMP")

	args = append(args, id)
	sql := fmt.Sprintf("UPDATE charts SET %s WHERE id = $%d", strings.Join(sets, ", "), len(args))
	_, err := s.q.Exec(ctx, sql, args...)
	return err
}

// UpdateStatus sets visibility; the first transition to PUBLIC stamps
// published_at and the result reports whether that happened. With owner
// set the update only matches the owner's chart
func (s *pg) UpdateStatus(ctx context.Context, id string, st domain.Status, owner string) (domain.StatusResult, error) {
	args := []any{string(st), id}
	where := "WHERE c.id = $2 AND prev.id = c.id"
	if owner != "" {
		args = append(args, owner)
		where += " AND c.author = $3"
	}

	// prev is the pre-update snapshot; c reads back the new values in
	// RETURNING, so the first-publish flag compares old against new
	sql := `
	UPDATE charts c
	SET
		status = $1::chart_status,
		updated_at = CURRENT_TIMESTAMP,
		published_at = CASE
			WHEN $1::chart_status = 'PUBLIC' AND c.published_at IS NULL THEN CURRENT_TIMESTAMP
			ELSE c.published_at
		END
	FROM charts prev
	JOIN accounts a ON prev.author = a.id
	` + where + `
	RETURNING ` + chartColumns + `,
		(prev.published_at IS NULL AND c.published_at IS NOT NULL) AS is_first_publish`

	return store.One(ctx, s.q, func(row repokit.Row) (domain.StatusResult, error) {
		var out domain.StatusResult
		ch, err := scanChartExtra(row, &out.FirstPublish)
		out.Chart = ch
		return out, err
	}, sql, args...)
}

// UpdateSchedule sets or clears the scheduled publish time and reports
// whether the value actually changed
func (s *pg) UpdateSchedule(ctx context.Context, id string, publishAtUnix *int64, owner string) (domain.ScheduleResult, error) {
	args := []any{publishAtUnix, id}
	where := "WHERE c.id = $2 AND prev.id = c.id"
	if owner != "" {
		args = append(args, owner)
		where += " AND c.author = $3"
	}

	sql := `
	UPDATE charts c
	SET
		scheduled_at = CASE
			WHEN $1::bigint IS NULL THEN NULL
			ELSE to_timestamp($1::double precision)
		END,
		updated_at = CURRENT_TIMESTAMP
	FROM charts prev
	JOIN accounts a ON prev.author = a.id
	` + where + `
	RETURNING ` + chartColumns + `,
		(c.scheduled_at IS DISTINCT FROM prev.scheduled_at) AS schedule_changed`

	return store.One(ctx, s.q, func(row repokit.Row) (domain.ScheduleResult, error) {
		var out domain.ScheduleResult
		ch, err := scanChartExtra(row, &out.Changed)
		out.Chart = ch
		return out, err
	}, sql, args...)
}

// SetStaffPick flips the staff pick flag and returns the updated chart
func (s *pg) SetStaffPick(ctx context.Context, id string, value bool) (domain.Chart, error) {
	sql := `
	UPDATE charts c
	SET staff_pick = $2::bool,
		updated_at = CURRENT_TIMESTAMP
	FROM accounts a
	WHERE c.id = $1 AND c.author = a.id
	RETURNING ` + chartColumns

	return store.One(ctx, s.q, func(row repokit.Row) (domain.Chart, error) {
		return scanChart(row, false)
	}, sql, id, value)
}

// scanChartExtra scans a chart row plus one trailing boolean column
func scanChartExtra(r repokit.Row, extra *bool) (domain.Chart, error) {
	var c domain.Chart
	dst := []any{
		&c.ID, &c.Title, &c.Artists, &c.Description, &c.Tags,
		&c.Author, &c.StaffPick,
		&c.Files.Jacket, &c.Files.Music, &c.Files.Chart,
		&c.Files.Preview, &c.Files.Background,
		&c.Files.BackgroundV3, &c.Files.BackgroundV1,
		&c.Status, &c.Rating, &c.LikeCount, &c.Comments,
		&c.CreatedAt, &c.PublishedAt, &c.UpdatedAt,
		&c.AuthorFull, &c.Handle, &c.Designer, &c.ScheduledAt,
		extra,
	}
	if err := r.Scan(dst...); err != nil {
		return domain.Chart{}, err
	}
	return c, nil
}
