// Package service enforces validation ahead of the chart repository:
// zero-field patches, confirmation flags, and the jacket hash rule all
// fail here before any storage call
package service

import (
	"context"

	"github.com/google/uuid"

	perr "chartbox/internal/platform/errors"

	"chartbox/internal/modkit/repokit"
	"chartbox/internal/services/charts/domain"
	"chartbox/internal/services/charts/repo"
)

// Config for the charts service
type Config struct {
	MaxPageSize    int
	MaxRandomCount int
	MaxBatchSize   int
}

// Service implements domain.QueryPort and domain.MutationPort
type Service struct {
	db     repokit.TxRunner
	binder repokit.Binder[repo.Storage]
	cfg    Config
}

// New constructs the charts service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Storage], cfg Config) *Service {
	if cfg.MaxPageSize <= 0 {
		cfg.MaxPageSize = 100
	}
	if cfg.MaxRandomCount <= 0 {
		cfg.MaxRandomCount = 20
	}
	if cfg.MaxBatchSize <= 0 {
		cfg.MaxBatchSize = 50
	}
	return &Service{db: db, binder: binder, cfg: cfg}
}

func (s *Service) storage() repo.Storage { return s.binder.Bind(s.db) }

// List implements domain.QueryPort
func (s *Service) List(
	ctx context.Context,
	f domain.FilterSpec,
	r domain.RankingSpec,
	p domain.Pagination,
	viewer string,
) (domain.ListResult, error) {
	if p.Page < 0 {
		return domain.ListResult{}, perr.Validationf("page must be non-negative")
	}
	if p.Size <= 0 || p.Size > s.cfg.MaxPageSize {
		p.Size = s.cfg.MaxPageSize
	}
	if f.Status != nil && !f.Status.Valid() {
		return domain.ListResult{}, perr.Validationf("unknown status %q", *f.Status)
	}
	return s.storage().List(ctx, f, r, p, viewer)
}

// Random implements domain.QueryPort
func (s *Service) Random(ctx context.Context, count int, viewer string, staffPick *bool) ([]domain.Chart, error) {
	if count <= 0 || count > s.cfg.MaxRandomCount {
		count = s.cfg.MaxRandomCount
	}
	return s.storage().Random(ctx, count, viewer, staffPick)
}

// Get implements domain.QueryPort
func (s *Service) Get(ctx context.Context, id string, viewer string) (domain.Chart, error) {
	if id == "" {
		return domain.Chart{}, perr.Validationf("chart id required")
	}
	return s.storage().Get(ctx, id, viewer)
}

// GetBatch implements domain.QueryPort
func (s *Service) GetBatch(ctx context.Context, ids []string) ([]domain.Chart, error) {
	if len(ids) > s.cfg.MaxBatchSize {
		return nil, perr.Validationf("at most %d ids per batch", s.cfg.MaxBatchSize)
	}
	return s.storage().GetBatch(ctx, ids)
}

// LikeTrend implements domain.QueryPort
func (s *Service) LikeTrend(ctx context.Context, id string) ([]domain.LikeTrendPoint, error) {
	if id == "" {
		return nil, perr.Validationf("chart id required")
	}
	return s.storage().LikeTrend(ctx, id)
}

// Create implements domain.MutationPort; a missing id is assigned here
func (s *Service) Create(ctx context.Context, d domain.Draft) (string, error) {
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	if d.Author == "" || d.Title == "" || d.Artists == "" || d.Designer == "" {
		return "", perr.Validationf("author, title, artists, and chart_design are required")
	}
	if d.Files.Jacket == "" || d.Files.Music == "" || d.Files.Chart == "" {
		return "", perr.Validationf("jacket, music, and chart file hashes are required")
	}
	if d.Files.BackgroundV1 == "" || d.Files.BackgroundV3 == "" {
		return "", perr.Validationf("v1 and v3 background hashes are required")
	}
	return s.storage().Create(ctx, d)
}

// Delete implements domain.MutationPort. The confirm flag signals the
// caller owns cleanup of dependent media blobs; an ownership mismatch
// surfaces as not found, never as a storage error
func (s *Service) Delete(ctx context.Context, id, owner string, confirm bool) (domain.Chart, error) {
	if !confirm {
		return domain.Chart{}, perr.Validationf("deletion not confirmed; dependent files must be purged separately")
	}
	if id == "" {
		return domain.Chart{}, perr.Validationf("chart id required")
	}
	return s.storage().Delete(ctx, id, owner)
}

// UpdateMetadata implements domain.MutationPort
func (s *Service) UpdateMetadata(ctx context.Context, id string, p domain.MetadataPatch) error {
	if id == "" {
		return perr.Validationf("chart id required")
	}
	if p.Empty() {
		return perr.Validationf("at least one field must be updated")
	}
	return s.storage().UpdateMetadata(ctx, id, p)
}

// UpdateFiles implements domain.MutationPort. A jacket change must carry
// regenerated v1 and v3 background hashes
func (s *Service) UpdateFiles(ctx context.Context, id string, p domain.FilePatch) error {
	if !p.Confirm {
		return perr.Validationf("file hash change not confirmed; stale files must be purged separately")
	}
	if id == "" {
		return perr.Validationf("chart id required")
	}
	if p.Empty() {
		return perr.Validationf("at least one file hash must be updated")
	}
	if p.Jacket != nil && (p.BackgroundV1 == nil || p.BackgroundV3 == nil) {
		return perr.Validationf("jacket change requires regenerated v1 and v3 background hashes")
	}
	return s.storage().UpdateFiles(ctx, id, p)
}

// UpdateStatus implements domain.MutationPort
func (s *Service) UpdateStatus(ctx context.Context, id string, st domain.Status, owner string) (domain.StatusResult, error) {
	if id == "" {
		return domain.StatusResult{}, perr.Validationf("chart id required")
	}
	if !st.Valid() {
		return domain.StatusResult{}, perr.Validationf("unknown status %q", st)
	}
	return s.storage().UpdateStatus(ctx, id, st, owner)
}

// UpdateSchedule implements domain.MutationPort; nil clears the schedule
func (s *Service) UpdateSchedule(ctx context.Context, id string, publishAtUnix *int64, owner string) (domain.ScheduleResult, error) {
	if id == "" {
		return domain.ScheduleResult{}, perr.Validationf("chart id required")
	}
	return s.storage().UpdateSchedule(ctx, id, publishAtUnix, owner)
}

// SetStaffPick implements domain.MutationPort
func (s *Service) SetStaffPick(ctx context.Context, id string, value bool) (domain.Chart, error) {
	if id == "" {
		return domain.Chart{}, perr.Validationf("chart id required")
	}
	return s.storage().SetStaffPick(ctx, id, value)
}

// AddLike implements domain.MutationPort
func (s *Service) AddLike(ctx context.Context, id, account string) error {
	if id == "" || account == "" {
		return perr.Validationf("chart id and account required")
	}
	return s.storage().AddLike(ctx, id, account)
}

// RemoveLike implements domain.MutationPort
func (s *Service) RemoveLike(ctx context.Context, id, account string) error {
	if id == "" || account == "" {
		return perr.Validationf("chart id and account required")
	}
	return s.storage().RemoveLike(ctx, id, account)
}
