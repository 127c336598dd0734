// Package storage implementa el almacenamiento de justificantes:
// Google Cloud Storage o, sin bucket configurado, la tabla receipts de PostgreSQL.
package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strings"
	"time"

	gcs "cloud.google.com/go/storage"

	"github.com/jhoicas/billed/internal/application/store"
)

var _ store.ReceiptStorage = (*GCSReceiptStorage)(nil)

// GCSReceiptStorage sube los justificantes a un bucket de GCS.
// Usa Application Default Credentials.
type GCSReceiptStorage struct {
	client  *gcs.Client
	bucket  string
	baseURL string
	timeout time.Duration
}

// NewGCSReceiptStorage crea el cliente de GCS. Cerrar con Close al apagar.
func NewGCSReceiptStorage(ctx context.Context, bucket, baseURL string) (*GCSReceiptStorage, error) {
	client, err := gcs.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("create storage client: %w", err)
	}
	return &GCSReceiptStorage{
		client:  client,
		bucket:  bucket,
		baseURL: strings.TrimRight(baseURL, "/"),
		timeout: 2 * time.Minute,
	}, nil
}

// Put sube el justificante bajo "receipts/<key>" y devuelve su URL pública.
func (s *GCSReceiptStorage) Put(ctx context.Context, key, fileName, contentType string, data []byte) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	objectName := "receipts/" + key
	w := s.client.Bucket(s.bucket).Object(objectName).NewWriter(ctx)
	w.ContentType = contentType
	w.ContentDisposition = fmt.Sprintf("inline; filename=%q", fileName)

	if _, err := io.Copy(w, bytes.NewReader(data)); err != nil {
		_ = w.Close()
		return "", fmt.Errorf("copy file to GCS writer: %w", err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("finalize upload: %w", err)
	}
	return objectURL(s.baseURL, objectName), nil
}

// Delete borra el objeto "receipts/<key>". Un objeto inexistente no es error.
func (s *GCSReceiptStorage) Delete(ctx context.Context, key string) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	err := s.client.Bucket(s.bucket).Object("receipts/" + key).Delete(ctx)
	if err != nil && !errors.Is(err, gcs.ErrObjectNotExist) {
		return fmt.Errorf("delete object: %w", err)
	}
	return nil
}

// Close libera el cliente de GCS.
func (s *GCSReceiptStorage) Close() error {
	return s.client.Close()
}

// objectURL concatena base y nombre de objeto escapando cada segmento.
func objectURL(base, objectName string) string {
	parts := strings.Split(objectName, "/")
	for i, p := range parts {
		parts[i] = url.PathEscape(p)
	}
	return strings.TrimRight(base, "/") + "/" + strings.Join(parts, "/")
}
