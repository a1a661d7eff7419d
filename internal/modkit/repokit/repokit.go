// Package repokit is the seam between services and the storage gateway.
// A service holds a Binder for its repo and a TxRunner for the pool; the
// same repo code then serves both pool-scoped reads and writes bound to
// an open transaction
package repokit

import (
	"context"
	"fmt"

	"chartbox/internal/platform/store"
)

type (
	// Queryer is the read/write surface a repo executes compiled SQL against
	Queryer = store.RowQuerier

	// Row is the single-row scan contract repos map records from
	Row = store.Row

	// TxRunner runs a function inside one storage transaction
	TxRunner = store.TxRunner
)

// Binder pins a domain repo to a specific Queryer
type Binder[T any] interface {
	Bind(Queryer) T
}

// WithTx runs fn inside a single transaction on tx. Slot allocation and
// the like/counter updates depend on this being one atomic unit
func WithTx(ctx context.Context, tx TxRunner, fn func(q Queryer) error) error {
	return tx.Tx(ctx, fn)
}

// MustGuard panics when a configured backend fails its readiness check.
// Called once from main so a dead database fails the boot, not the first request
func MustGuard(ctx context.Context, st interface{ Guard(context.Context) error }) {
	if err := st.Guard(ctx); err != nil {
		panic(fmt.Errorf("storage guard failed: %w", err))
	}
}
