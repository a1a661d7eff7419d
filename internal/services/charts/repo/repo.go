// Package repo compiles discovery filters into parameterized SQL and runs it
// through the platform store seam
package repo

import (
	"context"

	"chartbox/internal/modkit/repokit"
	"chartbox/internal/services/charts/domain"
)

type (
	pg     struct{ q repokit.Queryer }
	binder struct{}
)

// NewPG constructs a new repo binder for Postgres
func NewPG() repokit.Binder[Storage] { return binder{} }

// Bind implements repokit.Binder
func (binder) Bind(q repokit.Queryer) Storage { return &pg{q: q} }

// Storage is the chart catalog repository
type Storage interface {
	List(ctx context.Context, f domain.FilterSpec, r domain.RankingSpec, p domain.Pagination, viewer string) (domain.ListResult, error)
	Random(ctx context.Context, count int, viewer string, staffPick *bool) ([]domain.Chart, error)
	Get(ctx context.Context, id string, viewer string) (domain.Chart, error)
	GetBatch(ctx context.Context, ids []string) ([]domain.Chart, error)

	Create(ctx context.Context, d domain.Draft) (string, error)
	Delete(ctx context.Context, id, owner string) (domain.Chart, error)
	UpdateMetadata(ctx context.Context, id string, p domain.MetadataPatch) error
	UpdateFiles(ctx context.Context, id string, p domain.FilePatch) error
	UpdateStatus(ctx context.Context, id string, s domain.Status, owner string) (domain.StatusResult, error)
	UpdateSchedule(ctx context.Context, id string, publishAtUnix *int64, owner string) (domain.ScheduleResult, error)
	SetStaffPick(ctx context.Context, id string, value bool) (domain.Chart, error)

	AddLike(ctx context.Context, id, account string) error
	RemoveLike(ctx context.Context, id, account string) error
	LikeTrend(ctx context.Context, id string) ([]domain.LikeTrendPoint, error)
}

// scanChart reads one projected chart row; when hasLiked is set the row
// carries the trailing viewer liked flag
func scanChart(r repokit.Row, hasLiked bool) (domain.Chart, error) {
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
	}
	if hasLiked {
		var liked bool
		dst = append(dst, &liked)
		if err := r.Scan(dst...); err != nil {
			return domain.Chart{}, err
		}
		c.Liked = &liked
		return c, nil
	}
	if err := r.Scan(dst...); err != nil {
		return domain.Chart{}, err
	}
	return c, nil
}
