package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/billed/internal/domain"
	"github.com/jhoicas/billed/internal/domain/entity"
	"github.com/jhoicas/billed/internal/domain/repository"
)

var _ repository.BillRepository = (*BillRepo)(nil)

const billColumns = `id, email, type, name, amount, date, vat, pct, commentary, file_url, file_name, status, created_at, updated_at`

// BillRepo implementación de BillRepository sobre PostgreSQL (usable con pool o tx).
type BillRepo struct {
	q Querier
}

// NewBillRepository construye el adaptador. Pasar pool o tx (Querier).
func NewBillRepository(q Querier) *BillRepo {
	return &BillRepo{q: q}
}

// CreateDraft persiste el borrador creado al subir el justificante.
func (r *BillRepo) CreateDraft(ctx context.Context, b *entity.Bill) error {
	query := `
		INSERT INTO bills (id, email, file_url, file_name, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query,
		b.ID, b.Email, b.FileURL, b.FileName, entity.BillStatusDraft, b.CreatedAt, b.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: nota %s ya existe", domain.ErrConflict, b.ID)
		}
		return fmt.Errorf("insert bill: %w", err)
	}
	return nil
}

// Submit completa el borrador y lo deja en pending.
// La condición status = 'draft' impide un segundo envío concurrente.
func (r *BillRepo) Submit(ctx context.Context, b *entity.Bill) error {
	query := `
		UPDATE bills
		SET type = $2, name = $3, amount = $4, date = $5, vat = $6, pct = $7,
		    commentary = $8, status = $9, updated_at = $10
		WHERE id = $1 AND status = 'draft'`
	tag, err := r.q.Exec(ctx, query,
		b.ID, b.Type, b.Name, b.Amount, b.Date, b.VAT, b.Pct,
		b.Commentary, entity.BillStatusPending, b.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update bill: %w", err)
	}
	if tag.RowsAffected() == 0 {
		existing, err := r.GetByID(ctx, b.ID)
		if err != nil {
			return err
		}
		if existing == nil {
			return domain.ErrNotFound
		}
		return domain.ErrConflict
	}
	return nil
}

// GetByID obtiene una nota por ID (nil si no existe).
func (r *BillRepo) GetByID(ctx context.Context, id string) (*entity.Bill, error) {
	// bills.id es UUID: cualquier otro valor haría fallar el cast en PostgreSQL.
	if _, err := uuid.Parse(id); err != nil {
		return nil, nil
	}
	query := `SELECT ` + billColumns + ` FROM bills WHERE id = $1`
	b, err := scanBill(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get bill: %w", err)
	}
	return b, nil
}

// ListByEmail lista las notas enviadas del empleado. El orden de presentación
// lo decide la página; aquí solo se ordena para que la salida sea estable.
func (r *BillRepo) ListByEmail(ctx context.Context, email string) ([]*entity.Bill, error) {
	query := `SELECT ` + billColumns + `
		FROM bills WHERE email = $1 AND status <> 'draft'
		ORDER BY created_at DESC`
	rows, err := r.q.Query(ctx, query, email)
	if err != nil {
		return nil, fmt.Errorf("list bills: %w", err)
	}
	defer rows.Close()
	var list []*entity.Bill
	for rows.Next() {
		b, err := scanBill(rows)
		if err != nil {
			return nil, fmt.Errorf("scan bill: %w", err)
		}
		list = append(list, b)
	}
	return list, rows.Err()
}

func scanBill(row pgx.Row) (*entity.Bill, error) {
	var b entity.Bill
	err := row.Scan(
		&b.ID, &b.Email, &b.Type, &b.Name, &b.Amount, &b.Date, &b.VAT, &b.Pct,
		&b.Commentary, &b.FileURL, &b.FileName, &b.Status, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}
