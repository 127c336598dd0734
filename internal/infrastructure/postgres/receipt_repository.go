package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/billed/internal/domain/entity"
	"github.com/jhoicas/billed/internal/domain/repository"
)

var _ repository.ReceiptRepository = (*ReceiptRepo)(nil)

// ReceiptRepo guarda los justificantes en la tabla receipts (BYTEA).
type ReceiptRepo struct {
	q Querier
}

// NewReceiptRepository construye el adaptador.
func NewReceiptRepository(q Querier) *ReceiptRepo {
	return &ReceiptRepo{q: q}
}

// Save persiste (o reemplaza) el justificante.
func (r *ReceiptRepo) Save(ctx context.Context, rc *entity.Receipt) error {
	query := `
		INSERT INTO receipts (key, file_name, content_type, data, created_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (key) DO UPDATE
		SET file_name = EXCLUDED.file_name, content_type = EXCLUDED.content_type, data = EXCLUDED.data`
	_, err := r.q.Exec(ctx, query, rc.Key, rc.FileName, rc.ContentType, rc.Data, rc.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert receipt: %w", err)
	}
	return nil
}

// GetByKey obtiene el justificante (nil si no existe).
func (r *ReceiptRepo) GetByKey(ctx context.Context, key string) (*entity.Receipt, error) {
	query := `SELECT key, file_name, content_type, data, created_at FROM receipts WHERE key = $1`
	var rc entity.Receipt
	err := r.q.QueryRow(ctx, query, key).Scan(&rc.Key, &rc.FileName, &rc.ContentType, &rc.Data, &rc.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get receipt: %w", err)
	}
	return &rc, nil
}

// Delete borra el justificante. Borrar una clave inexistente no es error.
func (r *ReceiptRepo) Delete(ctx context.Context, key string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM receipts WHERE key = $1`, key); err != nil {
		return fmt.Errorf("delete receipt: %w", err)
	}
	return nil
}
