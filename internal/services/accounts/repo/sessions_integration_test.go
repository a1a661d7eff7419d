//go:build integration_pg
// +build integration_pg

package repo

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"chartbox/internal/platform/store"
	"chartbox/internal/services/accounts/domain"
)

func startPostgres(t *testing.T) (dsn string, stop func()) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)

	req := tc.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "postgres",
			"POSTGRES_PASSWORD": "postgres",
			"POSTGRES_DB":       "postgres",
		},
		WaitingFor: wait.ForAll(
			wait.ForListeningPort("5432/tcp"),
			wait.ForLog("database system is ready to accept connections"),
		).WithDeadline(2 * time.Minute),
	}
	c, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		cancel()
		t.Fatalf("failed to start postgres container: %v", err)
	}

	host, err := c.Host(ctx)
	if err != nil {
		_ = c.Terminate(context.Background())
		cancel()
		t.Fatalf("failed to get container host: %v", err)
	}
	mapped, err := c.MappedPort(ctx, "5432/tcp")
	if err != nil {
		_ = c.Terminate(context.Background())
		cancel()
		t.Fatalf("failed to get mapped port: %v", err)
	}

	dsn = fmt.Sprintf("postgres://postgres:postgres@%s:%s/postgres?sslmode=disable", host, mapped.Port())
	stop = func() {
		_ = c.Terminate(context.Background())
		cancel()
	}
	return dsn, stop
}

const schemaSQL = `
	CREATE TABLE accounts (
		id TEXT PRIMARY KEY,
		handle BIGINT NOT NULL UNIQUE,
		username TEXT NOT NULL,
		mod BOOLEAN NOT NULL DEFAULT FALSE,
		admin BOOLEAN NOT NULL DEFAULT FALSE,
		banned BOOLEAN NOT NULL DEFAULT FALSE,
		upload_cooldown TIMESTAMPTZ,
		created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
	);
	CREATE TABLE account_sessions (
		account_id TEXT NOT NULL REFERENCES accounts(id) ON DELETE CASCADE,
		session_type TEXT NOT NULL,
		slot SMALLINT NOT NULL,
		token TEXT,
		expires_at_ms BIGINT NOT NULL DEFAULT 0,
		PRIMARY KEY (account_id, session_type, slot)
	);
	CREATE UNIQUE INDEX account_sessions_token ON account_sessions (token) WHERE token IS NOT NULL;`

func openStorage(t *testing.T, ctx context.Context, dsn string) (Storage, func()) {
	t.Helper()

	st, err := store.Open(ctx, store.Config{
		AppName: "chartbox-sessions-integration",
		PG:      store.PGConfig{Enabled: true, URL: dsn, MaxConns: 4},
	})
	if err != nil {
		t.Fatalf("store.Open: %v", err)
	}
	if _, err := st.PG.Exec(ctx, schemaSQL); err != nil {
		t.Fatalf("schema: %v", err)
	}
	return NewPG().Bind(st.PG), func() { _ = st.Close(context.Background()) }
}

func TestSessionSlotAllocator_Integration(t *testing.T) {
	dsn, stop := startPostgres(t)
	defer stop()

	ctx, cancel := context.WithTimeout(context.Background(), 90*time.Second)
	defer cancel()

	repo, closeStore := openStorage(t, ctx, dsn)
	defer closeStore()

	if err := repo.Upsert(ctx, "acc-1", 42, "alice"); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	now := time.Now().UnixMilli()
	ttl := int64(domain.DefaultSessionTTLMs)

	// three logins fill the slots; each returns its own persisted token
	tokens := make([]string, 0, 3)
	for i := 0; i < 3; i++ {
		tok := fmt.Sprintf("tok-%d", i)
		sd, err := repo.AllocateSession(ctx, "acc-1", domain.SessionGame, tok, now, now+ttl+int64(i))
		if err != nil {
			t.Fatalf("allocate %d: %v", i, err)
		}
		if sd.Token != tok {
			t.Fatalf("allocate %d: want token %q, got %q", i, tok, sd.Token)
		}
		tokens = append(tokens, sd.Token)
	}

	// all three still resolve
	for _, tok := range tokens {
		if _, err := repo.BySession(ctx, tok, now); err != nil {
			t.Fatalf("session %q should be live: %v", tok, err)
		}
	}

	// a fourth login evicts the soonest-expiring slot (tok-0)
	sd, err := repo.AllocateSession(ctx, "acc-1", domain.SessionGame, "tok-3", now, now+2*ttl)
	if err != nil {
		t.Fatalf("allocate eviction: %v", err)
	}
	if sd.Token != "tok-3" {
		t.Fatalf("want tok-3 persisted, got %q", sd.Token)
	}
	if _, err := repo.BySession(ctx, "tok-0", now); err == nil {
		t.Fatal("evicted token must no longer resolve")
	}
	if _, err := repo.BySession(ctx, "tok-1", now); err != nil {
		t.Fatalf("untouched slot lost its session: %v", err)
	}

	// the external slot set is independent
	if _, err := repo.AllocateSession(ctx, "acc-1", domain.SessionExternal, "ext-0", now, now+ttl); err != nil {
		t.Fatalf("external allocate: %v", err)
	}
	if _, err := repo.BySession(ctx, "tok-3", now); err != nil {
		t.Fatalf("game session affected by external allocate: %v", err)
	}

	// expired tokens do not resolve even though the row still holds them
	if _, err := repo.BySession(ctx, "tok-1", now+3*ttl); err == nil {
		t.Fatal("expired token must not resolve")
	}

	// an expired slot is reclaimed before any eviction
	past := now - 1
	if _, err := repo.AllocateSession(ctx, "acc-1", domain.SessionExternal, "ext-dead", now, past); err != nil {
		t.Fatalf("seed expired slot: %v", err)
	}
	sd, err = repo.AllocateSession(ctx, "acc-1", domain.SessionExternal, "ext-1", now, now+ttl)
	if err != nil {
		t.Fatalf("reclaim allocate: %v", err)
	}
	if sd.Token != "ext-1" {
		t.Fatalf("want ext-1 persisted, got %q", sd.Token)
	}
	if _, err := repo.BySession(ctx, "ext-dead", now); err == nil {
		t.Fatal("reclaimed token must no longer resolve")
	}
	if _, err := repo.BySession(ctx, "ext-0", now); err != nil {
		t.Fatalf("live slot should survive reclaim: %v", err)
	}
}

func TestSessionSlotAllocator_Integration_ConcurrentLogins(t *testing.T) {
	dsn, stop := startPostgres(t)
	defer stop()

	ctx, cancel := context.WithTimeout(context.Background(), 90*time.Second)
	defer cancel()

	repo, closeStore := openStorage(t, ctx, dsn)
	defer closeStore()

	if err := repo.Upsert(ctx, "acc-1", 42, "alice"); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	// three simultaneous logins on empty slots must land in three distinct
	// slots; the allocator locks the slot set before ordering, so no two
	// can settle on the same slot and silently drop a session
	now := time.Now().UnixMilli()
	ttl := int64(domain.DefaultSessionTTLMs)
	tokens := []string{"con-0", "con-1", "con-2"}

	var wg sync.WaitGroup
	errs := make([]error, len(tokens))
	for i, tok := range tokens {
		wg.Add(1)
		go func(i int, tok string) {
			defer wg.Done()
			sd, err := repo.AllocateSession(ctx, "acc-1", domain.SessionGame, tok, now, now+ttl)
			if err == nil && sd.Token != tok {
				err = fmt.Errorf("persisted token %q, want %q", sd.Token, tok)
			}
			errs[i] = err
		}(i, tok)
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			t.Fatalf("concurrent allocate %d: %v", i, err)
		}
	}
	for _, tok := range tokens {
		if _, err := repo.BySession(ctx, tok, now); err != nil {
			t.Fatalf("session %q lost to a concurrent login: %v", tok, err)
		}
	}
}

func TestUpsert_Integration_KeepsHandleAndSeedsOnce(t *testing.T) {
	dsn, stop := startPostgres(t)
	defer stop()

	ctx, cancel := context.WithTimeout(context.Background(), 90*time.Second)
	defer cancel()

	repo, closeStore := openStorage(t, ctx, dsn)
	defer closeStore()

	if err := repo.Upsert(ctx, "acc-1", 42, "alice"); err != nil {
		t.Fatalf("first upsert: %v", err)
	}
	now := time.Now().UnixMilli()
	if _, err := repo.AllocateSession(ctx, "acc-1", domain.SessionGame, "tok", now, now+1000); err != nil {
		t.Fatalf("allocate: %v", err)
	}

	// relogin updates the username, keeps the handle, and must not wipe slots
	if err := repo.Upsert(ctx, "acc-1", 999, "alice2"); err != nil {
		t.Fatalf("second upsert: %v", err)
	}
	a, err := repo.ByHandle(ctx, 42)
	if err != nil {
		t.Fatalf("by handle: %v", err)
	}
	if a.Username != "alice2" {
		t.Fatalf("username not refreshed: %q", a.Username)
	}
	if _, err := repo.BySession(ctx, "tok", now); err != nil {
		t.Fatalf("existing session lost on relogin: %v", err)
	}
}
