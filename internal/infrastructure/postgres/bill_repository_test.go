package postgres

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingQuerier cuenta las consultas; QueryRow nunca devuelve filas.
type countingQuerier struct {
	calls int
}

func (q *countingQuerier) Exec(context.Context, string, ...any) (pgconn.CommandTag, error) {
	q.calls++
	return pgconn.CommandTag{}, nil
}

func (q *countingQuerier) Query(context.Context, string, ...any) (pgx.Rows, error) {
	q.calls++
	return nil, pgx.ErrNoRows
}

func (q *countingQuerier) QueryRow(context.Context, string, ...any) pgx.Row {
	q.calls++
	return errRow{}
}

type errRow struct{}

func (errRow) Scan(...any) error { return pgx.ErrNoRows }

func TestGetByID_IDNoUUID_NoConsulta(t *testing.T) {
	q := &countingQuerier{}
	repo := NewBillRepository(q)

	for _, id := range []string{"abc", "1234", "", "'; DROP TABLE bills; --"} {
		b, err := repo.GetByID(context.Background(), id)
		require.NoError(t, err, id)
		assert.Nil(t, b, id)
	}
	assert.Zero(t, q.calls)
}

func TestGetByID_Inexistente(t *testing.T) {
	q := &countingQuerier{}
	repo := NewBillRepository(q)

	b, err := repo.GetByID(context.Background(), "4f1c2b9e-8d7a-4c3e-9b21-5a6d7e8f9012")
	require.NoError(t, err)
	assert.Nil(t, b)
	assert.Equal(t, 1, q.calls)
}
