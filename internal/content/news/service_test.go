package news

import (
	"context"
	"database/sql"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"github.com/davicafu/tablero/internal/content"
	"github.com/davicafu/tablero/internal/store"
)

func setupService(t *testing.T) *Service {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, content.InitSQLite(db))

	return NewService(store.New(db, store.SQLite, zap.NewNop()), zap.NewNop())
}

func TestListByStatusWithPagination(t *testing.T) {
	service := setupService(t)
	ctx := context.Background()

	for i := 1; i <= 15; i++ {
		res, err := service.Create(ctx, fmt.Sprintf("nota %d", i), "cuerpo")
		require.NoError(t, err)
		if i%3 == 0 {
			_, err = service.Update(ctx, res.InsertID, store.Record{"status": "published"})
			require.NoError(t, err)
		}
	}

	page, err := service.List(ctx, "published", store.PageParams{Page: 1, Limit: 2})
	assert.NoError(t, err)
	assert.Len(t, page.Data, 2)
	assert.EqualValues(t, 5, page.Pagination.Total)
	assert.Equal(t, 3, page.Pagination.TotalPages)
	assert.True(t, page.Pagination.HasNext)
	assert.False(t, page.Pagination.HasPrev)
}

func TestSearch(t *testing.T) {
	service := setupService(t)
	ctx := context.Background()

	_, err := service.Create(ctx, "presupuesto municipal 2026", "")
	require.NoError(t, err)
	_, err = service.Create(ctx, "obras en el centro", "")
	require.NoError(t, err)

	rows, err := service.Search(ctx, "presupuesto", false)
	assert.NoError(t, err)
	assert.Len(t, rows, 1)

	rows, err = service.Search(ctx, "presupuesto", true)
	assert.NoError(t, err)
	assert.Empty(t, rows)
}

func TestPurgeReachesSoftDeleted(t *testing.T) {
	service := setupService(t)
	ctx := context.Background()

	res, err := service.Create(ctx, "efímera", "")
	require.NoError(t, err)

	_, err = service.Delete(ctx, res.InsertID)
	require.NoError(t, err)

	// Una vez borrada lógicamente, update es no-op...
	upd, err := service.Update(ctx, res.InsertID, store.Record{"title": "zombi"})
	assert.NoError(t, err)
	assert.EqualValues(t, 0, upd.AffectedRows)

	// ...pero el purge físico sí la alcanza.
	purged, err := service.Purge(ctx, res.InsertID)
	assert.NoError(t, err)
	assert.EqualValues(t, 1, purged.AffectedRows)
}
