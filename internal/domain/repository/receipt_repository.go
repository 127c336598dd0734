package repository

import (
	"context"

	"github.com/jhoicas/billed/internal/domain/entity"
)

// ReceiptRepository guarda los justificantes cuando no hay bucket configurado.
type ReceiptRepository interface {
	Save(ctx context.Context, receipt *entity.Receipt) error
	GetByKey(ctx context.Context, key string) (*entity.Receipt, error)
	Delete(ctx context.Context, key string) error
}
