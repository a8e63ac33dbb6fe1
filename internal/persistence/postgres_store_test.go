package persistence

import (
	"context"
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/helpdesk/internal/config"
)

func setupPostgresStore(t *testing.T) *PostgresStore {
	t.Helper()
	dsn := os.Getenv("TEST_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("TEST_POSTGRES_DSN not set")
	}
	ctx := context.Background()
	pool, err := OpenPostgres(ctx, config.PostgresConfig{DSN: dsn}, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	require.NoError(t, RunMigrations(ctx, pool, zap.NewNop()))
	// a second run finds everything recorded and applies nothing
	require.NoError(t, RunMigrations(ctx, pool, zap.NewNop()))
	_, err = pool.Exec(ctx, `DELETE FROM record_collections WHERE name LIKE 'test_%'`)
	require.NoError(t, err)
	return NewPostgresStore(pool)
}

func TestPostgresStore_RoundTrip(t *testing.T) {
	store := setupPostgresStore(t)
	ctx := context.Background()

	empty, err := store.Load(ctx, "test_tickets")
	require.NoError(t, err)
	assert.Empty(t, empty)

	in := []json.RawMessage{json.RawMessage(`{"id":"1"}`), json.RawMessage(`{"id":"2"}`)}
	require.NoError(t, store.Save(ctx, "test_tickets", in))
	require.NoError(t, store.Save(ctx, "test_tickets", in[:1]))

	out, err := store.Load(ctx, "test_tickets")
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.JSONEq(t, `{"id":"1"}`, string(out[0]))
	assert.NoError(t, store.Ping(ctx))
}

func TestOpenPostgres_RequiresDSN(t *testing.T) {
	_, err := OpenPostgres(context.Background(), config.PostgresConfig{}, zap.NewNop())

	assert.Error(t, err)
}
