package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/billed/internal/application/store"
	"github.com/jhoicas/billed/internal/domain/entity"
	"github.com/jhoicas/billed/internal/domain/repository"
)

// ReceiptsPathPrefix ruta HTTP desde la que se sirven los justificantes guardados en base de datos.
const ReceiptsPathPrefix = "/receipts"

var _ store.ReceiptStorage = (*DatabaseReceiptStorage)(nil)

// DatabaseReceiptStorage guarda los justificantes en PostgreSQL.
type DatabaseReceiptStorage struct {
	repo repository.ReceiptRepository
	now  func() time.Time
}

// NewDatabaseReceiptStorage construye el almacenamiento sobre el repositorio.
func NewDatabaseReceiptStorage(repo repository.ReceiptRepository) *DatabaseReceiptStorage {
	return &DatabaseReceiptStorage{repo: repo, now: time.Now}
}

// Put guarda el justificante y devuelve la URL relativa desde la que se sirve.
func (s *DatabaseReceiptStorage) Put(ctx context.Context, key, fileName, contentType string, data []byte) (string, error) {
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	err := s.repo.Save(ctx, &entity.Receipt{
		Key:         key,
		FileName:    fileName,
		ContentType: contentType,
		Data:        data,
		CreatedAt:   s.now(),
	})
	if err != nil {
		return "", fmt.Errorf("guardar justificante: %w", err)
	}
	return objectURL(ReceiptsPathPrefix, key), nil
}

// Delete borra el justificante guardado bajo key.
func (s *DatabaseReceiptStorage) Delete(ctx context.Context, key string) error {
	if err := s.repo.Delete(ctx, key); err != nil {
		return fmt.Errorf("borrar justificante: %w", err)
	}
	return nil
}
