package service

import (
	"context"
	"testing"

	perr "chartbox/internal/platform/errors"

	"chartbox/internal/modkit/repokit"
	"chartbox/internal/services/charts/domain"
	"chartbox/internal/services/charts/repo"
)

// fakeStorage records calls; validation failures must never reach it
type fakeStorage struct {
	repo.Storage
	calls []string
}

func (f *fakeStorage) record(op string) { f.calls = append(f.calls, op) }

func (f *fakeStorage) UpdateMetadata(_ context.Context, _ string, _ domain.MetadataPatch) error {
	f.record("UpdateMetadata")
	return nil
}

func (f *fakeStorage) UpdateFiles(_ context.Context, _ string, _ domain.FilePatch) error {
	f.record("UpdateFiles")
	return nil
}

func (f *fakeStorage) Delete(_ context.Context, _, _ string) (domain.Chart, error) {
	f.record("Delete")
	return domain.Chart{}, perr.ErrNotFound
}

func (f *fakeStorage) List(_ context.Context, _ domain.FilterSpec, _ domain.RankingSpec, p domain.Pagination, _ string) (domain.ListResult, error) {
	f.record("List")
	return domain.ListResult{}, nil
}

type fakeBinder struct{ st *fakeStorage }

func (b fakeBinder) Bind(_ repokit.Queryer) repo.Storage { return b.st }

func newSvc(st *fakeStorage) *Service {
	return New(nil, fakeBinder{st: st}, Config{})
}

func TestUpdateMetadata_ZeroFieldsFailsBeforeStorage(t *testing.T) {
	st := &fakeStorage{}
	s := newSvc(st)

	err := s.UpdateMetadata(context.Background(), "chart-1", domain.MetadataPatch{})
	if !perr.IsCode(err, perr.ErrorCodeValidation) {
		t.Fatalf("want validation error, got %v", err)
	}
	if len(st.calls) != 0 {
		t.Fatalf("storage must not be called, got %v", st.calls)
	}
}

func TestUpdateMetadata_ClearDescriptionCountsAsField(t *testing.T) {
	st := &fakeStorage{}
	s := newSvc(st)

	if err := s.UpdateMetadata(context.Background(), "chart-1", domain.MetadataPatch{ClearDescription: true}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(st.calls) != 1 || st.calls[0] != "UpdateMetadata" {
		t.Fatalf("expected one UpdateMetadata call, got %v", st.calls)
	}
}

func TestUpdateFiles_RequiresConfirm(t *testing.T) {
	st := &fakeStorage{}
	s := newSvc(st)

	hash := "abc"
	err := s.UpdateFiles(context.Background(), "chart-1", domain.FilePatch{Music: &hash})
	if !perr.IsCode(err, perr.ErrorCodeValidation) {
		t.Fatalf("want validation error for missing confirm, got %v", err)
	}
	if len(st.calls) != 0 {
		t.Fatalf("storage must not be called, got %v", st.calls)
	}
}

func TestUpdateFiles_JacketNeedsRegeneratedBackgrounds(t *testing.T) {
	st := &fakeStorage{}
	s := newSvc(st)

	jacket, v1, v3 := "j", "v1", "v3"

	err := s.UpdateFiles(context.Background(), "chart-1", domain.FilePatch{Jacket: &jacket, Confirm: true})
	if !perr.IsCode(err, perr.ErrorCodeValidation) {
		t.Fatalf("want validation error for jacket without v1/v3, got %v", err)
	}

	err = s.UpdateFiles(context.Background(), "chart-1", domain.FilePatch{
		Jacket: &jacket, BackgroundV1: &v1, BackgroundV3: &v3, Confirm: true,
	})
	if err != nil {
		t.Fatalf("unexpected error with full set: %v", err)
	}
	if len(st.calls) != 1 {
		t.Fatalf("expected exactly one storage call, got %v", st.calls)
	}
}

func TestDelete_RequiresConfirm(t *testing.T) {
	st := &fakeStorage{}
	s := newSvc(st)

	_, err := s.Delete(context.Background(), "chart-1", "", false)
	if !perr.IsCode(err, perr.ErrorCodeValidation) {
		t.Fatalf("want validation error, got %v", err)
	}
	if len(st.calls) != 0 {
		t.Fatalf("storage must not be called, got %v", st.calls)
	}
}

func TestDelete_OwnershipMismatchSurfacesNotFound(t *testing.T) {
	st := &fakeStorage{}
	s := newSvc(st)

	_, err := s.Delete(context.Background(), "chart-1", "someone-else", true)
	if !perr.IsCode(err, perr.ErrorCodeNotFound) {
		t.Fatalf("want not found for ownership mismatch, got %v", err)
	}
}

func TestList_NegativePageRejected(t *testing.T) {
	st := &fakeStorage{}
	s := newSvc(st)

	_, err := s.List(context.Background(), domain.FilterSpec{}, domain.RankingSpec{}, domain.Pagination{Page: -1, Size: 10}, "")
	if !perr.IsCode(err, perr.ErrorCodeValidation) {
		t.Fatalf("want validation error, got %v", err)
	}
	if len(st.calls) != 0 {
		t.Fatalf("storage must not be called, got %v", st.calls)
	}
}

func TestUpdateStatus_UnknownStatusRejected(t *testing.T) {
	st := &fakeStorage{}
	s := newSvc(st)

	_, err := s.UpdateStatus(context.Background(), "chart-1", "HIDDEN", "")
	if !perr.IsCode(err, perr.ErrorCodeValidation) {
		t.Fatalf("want validation error, got %v", err)
	}
}
