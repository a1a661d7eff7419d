package domain

import "context"

// ListResult bundles a page of charts with the total match count
type ListResult struct {
	Total  int64   `json:"total"`
	Charts []Chart `json:"charts"`
}

// QueryPort is the read surface of the chart catalog
type QueryPort interface {
	List(ctx context.Context, f FilterSpec, r RankingSpec, p Pagination, viewer string) (ListResult, error)
	Random(ctx context.Context, count int, viewer string, staffPick *bool) ([]Chart, error)
	Get(ctx context.Context, id string, viewer string) (Chart, error)
	GetBatch(ctx context.Context, ids []string) ([]Chart, error)
	LikeTrend(ctx context.Context, id string) ([]LikeTrendPoint, error)
}

// AuthzPort answers moderation questions; implemented by the accounts module.
// A moderator bypasses ownership checks on delete, status, and schedule
type AuthzPort interface {
	CanModerate(ctx context.Context, accountID string) (bool, error)
}

// MutationPort is the write surface of the chart catalog
type MutationPort interface {
	Create(ctx context.Context, d Draft) (string, error)
	Delete(ctx context.Context, id, owner string, confirm bool) (Chart, error)
	UpdateMetadata(ctx context.Context, id string, p MetadataPatch) error
	UpdateFiles(ctx context.Context, id string, p FilePatch) error
	UpdateStatus(ctx context.Context, id string, s Status, owner string) (StatusResult, error)
	UpdateSchedule(ctx context.Context, id string, publishAtUnix *int64, owner string) (ScheduleResult, error)
	SetStaffPick(ctx context.Context, id string, value bool) (Chart, error)
	AddLike(ctx context.Context, id, account string) error
	RemoveLike(ctx context.Context, id, account string) error
}
