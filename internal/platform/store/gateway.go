package store

import (
	"context"
	"errors"
	"time"

	"chartbox/internal/platform/store/pg"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// gateway implements RowQuerier and TxRunner over the pgx pool. Statements
// run inside Tx go through the same tracing as pool statements
type gateway struct {
	client *pg.PG
	traced
}

func newGateway(client *pg.PG) *gateway {
	return &gateway{
		client: client,
		traced: traced{tracer: client.Tracer, slowUS: int64(client.SlowMs) * 1000},
	}
}

func (g *gateway) Ping(ctx context.Context) error {
	if g == nil {
		return errors.New("pg: nil gateway")
	}
	var one int
	return g.QueryRow(ctx, "SELECT 1").Scan(&one)
}

func (g *gateway) Close() error { g.client.Close(); return nil }

func (g *gateway) Exec(ctx context.Context, sql string, args ...any) (CommandTag, error) {
	start := time.Now()
	ct, err := g.client.Pool.Exec(ctx, sql, args...)
	g.observe(ctx, sql, args, start, err)
	return tag{ct}, err
}

func (g *gateway) Query(ctx context.Context, sql string, args ...any) (Rows, error) {
	start := time.Now()
	rs, err := g.client.Pool.Query(ctx, sql, args...)
	// traced on open; scan time is not included
	g.observe(ctx, sql, args, start, err)
	if err != nil {
		return nil, err
	}
	return rows{r: rs}, nil
}

func (g *gateway) QueryRow(ctx context.Context, sql string, args ...any) Row {
	start := time.Now()
	r := g.client.Pool.QueryRow(ctx, sql, args...)
	// wrapped so the trace event carries the Scan error
	return row{r: r, after: func(scanErr error) {
		g.observe(ctx, sql, args, start, scanErr)
	}}
}

// Tx runs fn inside one transaction; any error from fn rolls back
func (g *gateway) Tx(ctx context.Context, fn func(q RowQuerier) error) error {
	tx, err := g.client.Pool.Begin(ctx)
	if err != nil {
		return err
	}
	if err := fn(txGateway{tx: tx, traced: g.traced}); err != nil {
		_ = tx.Rollback(ctx)
		return err
	}
	return tx.Commit(ctx)
}

// txGateway is the in-transaction view of the gateway
type txGateway struct {
	tx pgx.Tx
	traced
}

func (t txGateway) Exec(ctx context.Context, sql string, args ...any) (CommandTag, error) {
	start := time.Now()
	ct, err := t.tx.Exec(ctx, sql, args...)
	t.observe(ctx, sql, args, start, err)
	return tag{ct}, err
}

func (t txGateway) Query(ctx context.Context, sql string, args ...any) (Rows, error) {
	start := time.Now()
	rs, err := t.tx.Query(ctx, sql, args...)
	t.observe(ctx, sql, args, start, err)
	if err != nil {
		return nil, err
	}
	return rows{r: rs}, nil
}

func (t txGateway) QueryRow(ctx context.Context, sql string, args ...any) Row {
	start := time.Now()
	r := t.tx.QueryRow(ctx, sql, args...)
	return row{r: r, after: func(scanErr error) {
		t.observe(ctx, sql, args, start, scanErr)
	}}
}

// traced emits one event per statement when a tracer is configured
type traced struct {
	tracer pg.QueryTracer
	slowUS int64
}

func (t traced) observe(ctx context.Context, sql string, args []any, start time.Time, err error) {
	if t.tracer == nil {
		return
	}
	elapsedUS := time.Since(start).Microseconds()
	t.tracer.OnQuery(ctx, pg.QueryEvent{
		SQL:       sql,
		Args:      args,
		ElapsedUS: elapsedUS,
		Err:       err,
		Slow:      t.slowUS > 0 && elapsedUS >= t.slowUS,
	})
}

// thin wrappers from pgx types to the driver-free seams

type row struct {
	r     pgx.Row
	after func(error)
}

func (x row) Scan(dst ...any) error {
	err := x.r.Scan(dst...)
	if x.after != nil {
		x.after(err)
	}
	return err
}

type rows struct{ r pgx.Rows }

func (x rows) Next() bool            { return x.r.Next() }
func (x rows) Scan(dst ...any) error { return x.r.Scan(dst...) }
func (x rows) Err() error            { return x.r.Err() }
func (x rows) Close()                { x.r.Close() }

func (x rows) Columns() []string {
	fields := x.r.FieldDescriptions()
	out := make([]string, len(fields))
	for i := range fields {
		out[i] = string(fields[i].Name)
	}
	return out
}

type tag struct{ t pgconn.CommandTag }

func (t tag) String() string      { return t.t.String() }
func (t tag) RowsAffected() int64 { return t.t.RowsAffected() }
