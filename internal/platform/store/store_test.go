package store

import (
	"context"
	"errors"
	"testing"
)

// fakeBackend stands in for the pg gateway
type fakeBackend struct {
	RowQuerier
	pingErr error
	closed  bool
}

func (f *fakeBackend) Tx(ctx context.Context, fn func(q RowQuerier) error) error {
	return fn(f.RowQuerier)
}

func (f *fakeBackend) Ping(context.Context) error { return f.pingErr }
func (f *fakeBackend) Close() error               { f.closed = true; return nil }

func TestGuard(t *testing.T) {
	if err := (&Store{}).Guard(context.Background()); err != nil {
		t.Fatalf("Guard with no backends: %v", err)
	}

	s := &Store{PG: &fakeBackend{}}
	if err := s.Guard(context.Background()); err != nil {
		t.Fatalf("Guard healthy: %v", err)
	}

	s = &Store{PG: &fakeBackend{pingErr: errors.New("refused")}}
	if err := s.Guard(context.Background()); err == nil {
		t.Fatal("Guard should surface a failed ping")
	}
}

func TestCloseShutsBackendsDown(t *testing.T) {
	be := &fakeBackend{}
	s := &Store{PG: be}
	if err := s.Close(context.Background()); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if !be.closed {
		t.Fatal("backend was not closed")
	}
}
