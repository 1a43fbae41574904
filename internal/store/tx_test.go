package store

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithinTx_CommitsOnSuccess(t *testing.T) {
	st := setupTestStore(t)
	ctx := context.Background()

	var pollID int64
	err := st.WithinTx(ctx, func(tx *Tx) error {
		res, err := tx.Insert(ctx, "polls", Record{"title": "dentro"})
		if err != nil {
			return err
		}
		pollID = res.InsertID
		_, err = tx.UpdateByID(ctx, "polls", pollID, Record{"status": "published"})
		return err
	})
	assert.NoError(t, err)

	got, err := st.FindByID(ctx, "polls", pollID)
	assert.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "published", got["status"])
}

func TestWithinTx_RollsBackAndPreservesError(t *testing.T) {
	st := setupTestStore(t)
	ctx := context.Background()
	errBoom := errors.New("boom")

	err := st.WithinTx(ctx, func(tx *Tx) error {
		if _, err := tx.Insert(ctx, "polls", Record{"title": "parcial"}); err != nil {
			return err
		}
		return errBoom
	})

	// El error vuelve con su identidad intacta, sin envolver.
	assert.ErrorIs(t, err, errBoom)

	// Y la escritura del primer paso no sobrevive al rollback.
	total, countErr := st.Count(ctx, "polls", nil, true)
	assert.NoError(t, countErr)
	assert.EqualValues(t, 0, total)
}

func TestWithinTx_DriverErrorRollsBack(t *testing.T) {
	st := setupTestStore(t)
	ctx := context.Background()

	err := st.WithinTx(ctx, func(tx *Tx) error {
		if _, err := tx.Insert(ctx, "polls", Record{"title": "padre"}); err != nil {
			return err
		}
		// El segundo paso apunta a una tabla inexistente: error del driver.
		_, err := tx.BatchInsert(ctx, "poll_options_missing", []Record{{"label": "a"}})
		return err
	})
	require.Error(t, err)

	got, findErr := st.FindAll(ctx, "polls", Options{IncludeDeleted: true})
	assert.NoError(t, findErr)
	assert.Empty(t, got)
}

func TestWithinTx_QueriesSeeUncommittedWrites(t *testing.T) {
	st := setupTestStore(t)
	ctx := context.Background()

	err := st.WithinTx(ctx, func(tx *Tx) error {
		res, err := tx.Insert(ctx, "polls", Record{"title": "visible dentro"})
		if err != nil {
			return err
		}
		got, err := tx.FindByID(ctx, "polls", res.InsertID)
		if err != nil {
			return err
		}
		assert.NotNil(t, got)
		return nil
	})
	assert.NoError(t, err)
}
