package polls

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"github.com/davicafu/tablero/internal/content"
	"github.com/davicafu/tablero/internal/store"
)

func setupService(t *testing.T) (*Service, *store.Store) {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, content.InitSQLite(db))

	st := store.New(db, store.SQLite, zap.NewNop())
	return NewService(st, zap.NewNop()), st
}

func TestCreateWithOptions_Success(t *testing.T) {
	service, st := setupService(t)
	ctx := context.Background()

	pollID, err := service.CreateWithOptions(ctx, "¿Color favorito?", []string{"rojo", "verde", "azul"})
	assert.NoError(t, err)
	assert.NotZero(t, pollID)

	poll, options, err := service.Get(ctx, pollID)
	assert.NoError(t, err)
	require.NotNil(t, poll)
	assert.Equal(t, "¿Color favorito?", poll["title"])
	require.Len(t, options, 3)
	assert.Equal(t, "rojo", options[0]["label"])

	total, _ := st.Count(ctx, "poll_options", nil, false)
	assert.EqualValues(t, 3, total)
}

func TestCreateWithOptions_EmptyOptionsRollsBackPoll(t *testing.T) {
	service, st := setupService(t)
	ctx := context.Background()

	// El lote vacío falla dentro de la transacción: la encuesta del primer
	// paso no debe sobrevivir.
	_, err := service.CreateWithOptions(ctx, "huérfana", nil)
	assert.ErrorIs(t, err, store.ErrEmptyBatch)

	total, countErr := st.Count(ctx, "polls", nil, true)
	assert.NoError(t, countErr)
	assert.EqualValues(t, 0, total)
}

func TestVoteAndResults(t *testing.T) {
	service, _ := setupService(t)
	ctx := context.Background()

	pollID, err := service.CreateWithOptions(ctx, "¿Sí o no?", []string{"sí", "no"})
	require.NoError(t, err)

	_, options, err := service.Get(ctx, pollID)
	require.NoError(t, err)
	require.Len(t, options, 2)

	yesID := options[0]["id"].(int64)
	noID := options[1]["id"].(int64)

	require.NoError(t, service.Vote(ctx, yesID, "10.0.0.1"))
	require.NoError(t, service.Vote(ctx, yesID, "10.0.0.2"))
	require.NoError(t, service.Vote(ctx, noID, "10.0.0.3"))

	results, err := service.Results(ctx, pollID)
	assert.NoError(t, err)
	require.Len(t, results, 2)
	assert.EqualValues(t, 2, results[0]["votes"])
	assert.EqualValues(t, 1, results[1]["votes"])
}

func TestVote_UnknownOption(t *testing.T) {
	service, _ := setupService(t)

	err := service.Vote(context.Background(), 424242, "10.0.0.1")

	assert.ErrorIs(t, err, ErrOptionNotFound)
}

func TestDeleteAndRestore(t *testing.T) {
	service, _ := setupService(t)
	ctx := context.Background()

	pollID, err := service.CreateWithOptions(ctx, "temporal", []string{"a"})
	require.NoError(t, err)

	res, err := service.Delete(ctx, pollID)
	assert.NoError(t, err)
	assert.EqualValues(t, 1, res.AffectedRows)

	poll, _, err := service.Get(ctx, pollID)
	assert.NoError(t, err)
	assert.Nil(t, poll)

	_, err = service.Restore(ctx, pollID)
	assert.NoError(t, err)

	poll, _, err = service.Get(ctx, pollID)
	assert.NoError(t, err)
	assert.NotNil(t, poll)
}
