package repokit_test

import (
	"context"
	"errors"
	"testing"

	"chartbox/internal/modkit/repokit"
	"chartbox/internal/platform/store"
	"chartbox/internal/platform/testkit"
)

// fakeDB satisfies TxRunner; Tx hands fn the same querier and records
// whether the callback reported an error
type fakeDB struct {
	store.RowQuerier
	txCalls int
	txErr   error
}

func (f *fakeDB) Tx(ctx context.Context, fn func(q store.RowQuerier) error) error {
	f.txCalls++
	f.txErr = fn(f.RowQuerier)
	return f.txErr
}

type chartRepo struct{ q repokit.Queryer }

type chartBinder struct{}

func (chartBinder) Bind(q repokit.Queryer) *chartRepo { return &chartRepo{q: q} }

func TestBinder_PinsQuerier(t *testing.T) {
	db := &fakeDB{}
	var b repokit.Binder[*chartRepo] = chartBinder{}

	r := b.Bind(db)
	if r.q != repokit.Queryer(db) {
		t.Fatal("bound repo does not hold the querier it was pinned to")
	}
}

func TestWithTx_PropagatesCallbackError(t *testing.T) {
	db := &fakeDB{}
	want := errors.New("session slot conflict")

	err := repokit.WithTx(context.Background(), db, func(repokit.Queryer) error { return want })
	if !errors.Is(err, want) {
		t.Fatalf("WithTx error = %v, want %v", err, want)
	}
	if db.txCalls != 1 {
		t.Fatalf("expected exactly one transaction, got %d", db.txCalls)
	}
}

func TestWithTx_NilErrorCommits(t *testing.T) {
	db := &fakeDB{}
	if err := repokit.WithTx(context.Background(), db, func(repokit.Queryer) error { return nil }); err != nil {
		t.Fatalf("WithTx unexpected error: %v", err)
	}
}

type guardStub struct{ err error }

func (g guardStub) Guard(context.Context) error { return g.err }

func TestMustGuard(t *testing.T) {
	repokit.MustGuard(context.Background(), guardStub{}) // healthy, no panic

	testkit.MustPanic(t, func() {
		repokit.MustGuard(context.Background(), guardStub{err: errors.New("pg down")})
	})
}
