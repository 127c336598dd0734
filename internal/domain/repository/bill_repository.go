package repository

import (
	"context"

	"github.com/jhoicas/billed/internal/domain/entity"
)

// BillRepository define el puerto de persistencia para las notas de gastos.
type BillRepository interface {
	// CreateDraft persiste una nota en estado draft (recibo ya subido).
	CreateDraft(ctx context.Context, bill *entity.Bill) error
	// Submit completa un borrador y lo pasa a pending. Devuelve domain.ErrNotFound
	// si no existe y domain.ErrConflict si la nota ya no está en draft.
	Submit(ctx context.Context, bill *entity.Bill) error
	GetByID(ctx context.Context, id string) (*entity.Bill, error)
	// ListByEmail devuelve las notas enviadas del empleado (sin borradores).
	ListByEmail(ctx context.Context, email string) ([]*entity.Bill, error)
}
