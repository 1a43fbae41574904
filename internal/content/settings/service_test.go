package settings

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"github.com/davicafu/tablero/internal/content"
	"github.com/davicafu/tablero/internal/platform/cache"
	"github.com/davicafu/tablero/internal/store"
)

func setupService(t *testing.T) (*Service, *cache.MemoryCache) {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, content.InitSQLite(db))

	mem := cache.NewMemoryCache(time.Minute)
	st := store.New(db, store.SQLite, zap.NewNop())
	return NewService(st, mem, zap.NewNop()), mem
}

func TestSetAndGet(t *testing.T) {
	service, _ := setupService(t)
	ctx := context.Background()

	require.NoError(t, service.Set(ctx, "site_title", "Tablero"))

	value, found, err := service.Get(ctx, "site_title")
	assert.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "Tablero", value)
}

func TestGet_Missing(t *testing.T) {
	service, _ := setupService(t)

	_, found, err := service.Get(context.Background(), "nope")

	assert.NoError(t, err)
	assert.False(t, found)
}

func TestGet_PopulatesCache(t *testing.T) {
	service, mem := setupService(t)
	ctx := context.Background()

	require.NoError(t, service.Set(ctx, "theme", "dark"))
	_, _, err := service.Get(ctx, "theme")
	require.NoError(t, err)

	var cached string
	hit, err := mem.Get(ctx, "settings:theme", &cached)
	assert.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, "dark", cached)
}

func TestSet_InvalidatesCache(t *testing.T) {
	service, mem := setupService(t)
	ctx := context.Background()

	require.NoError(t, service.Set(ctx, "theme", "dark"))
	_, _, err := service.Get(ctx, "theme") // puebla la caché
	require.NoError(t, err)

	require.NoError(t, service.Set(ctx, "theme", "light"))

	// La mutación invalidó la entrada...
	var cached string
	hit, err := mem.Get(ctx, "settings:theme", &cached)
	assert.NoError(t, err)
	assert.False(t, hit)

	// ...y la siguiente lectura trae el valor nuevo de la base.
	value, found, err := service.Get(ctx, "theme")
	assert.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "light", value)
}

func TestAll(t *testing.T) {
	service, _ := setupService(t)
	ctx := context.Background()

	require.NoError(t, service.Set(ctx, "a", "1"))
	require.NoError(t, service.Set(ctx, "b", "2"))

	all, err := service.All(ctx)
	assert.NoError(t, err)
	assert.Equal(t, map[string]string{"a": "1", "b": "2"}, all)
}

func TestDelete(t *testing.T) {
	service, _ := setupService(t)
	ctx := context.Background()

	require.NoError(t, service.Set(ctx, "ephemeral", "x"))

	res, err := service.Delete(ctx, "ephemeral")
	assert.NoError(t, err)
	assert.EqualValues(t, 1, res.AffectedRows)

	_, found, err := service.Get(ctx, "ephemeral")
	assert.NoError(t, err)
	assert.False(t, found)

	// Borrar lo ya borrado no afecta filas.
	res, err = service.Delete(ctx, "ephemeral")
	assert.NoError(t, err)
	assert.EqualValues(t, 0, res.AffectedRows)
}
