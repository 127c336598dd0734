package store

import (
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jhoicas/billed/internal/application/session"
	"github.com/jhoicas/billed/internal/domain"
	"github.com/jhoicas/billed/internal/domain/entity"
	"github.com/jhoicas/billed/internal/domain/repository"
)

// ReceiptStorage guarda el justificante y devuelve su URL pública.
type ReceiptStorage interface {
	Put(ctx context.Context, key, fileName, contentType string, data []byte) (string, error)
	Delete(ctx context.Context, key string) error
}

// RepositoryStore implementación del almacén sobre BillRepository y ReceiptStorage.
type RepositoryStore struct {
	bills    repository.BillRepository
	receipts ReceiptStorage
	log      zerolog.Logger
	now      func() time.Time
}

// NewRepositoryStore construye el almacén.
func NewRepositoryStore(bills repository.BillRepository, receipts ReceiptStorage, log zerolog.Logger) *RepositoryStore {
	return &RepositoryStore{bills: bills, receipts: receipts, log: log, now: time.Now}
}

// ForSession devuelve el cliente restringido a las notas del usuario conectado.
func (s *RepositoryStore) ForSession(sess session.Session) Store {
	return sessionStore{parent: s, sess: sess}
}

type sessionStore struct {
	parent *RepositoryStore
	sess   session.Session
}

func (s sessionStore) Bills() BillsClient {
	return billsClient(s)
}

type billsClient struct {
	parent *RepositoryStore
	sess   session.Session
}

// List notas enviadas del usuario de la sesión.
func (c billsClient) List(ctx context.Context) ([]entity.Bill, error) {
	if !c.sess.Valid() {
		return nil, AsTransportError(domain.ErrUnauthorized)
	}
	list, err := c.parent.bills.ListByEmail(ctx, c.sess.Email)
	if err != nil {
		c.parent.log.Error().Err(err).Str("email", c.sess.Email).Msg("listar notas")
		return nil, AsTransportError(err)
	}
	out := make([]entity.Bill, 0, len(list))
	for _, b := range list {
		out = append(out, *b)
	}
	return out, nil
}

// Create sube el justificante y crea el borrador que lo referencia.
func (c billsClient) Create(ctx context.Context, in CreateRequest) (*CreateResult, error) {
	if !c.sess.Valid() {
		return nil, AsTransportError(domain.ErrUnauthorized)
	}
	fileName := path.Base(strings.ReplaceAll(in.FileName, "\\", "/"))
	if fileName == "" || fileName == "." || fileName == "/" || len(in.Data) == 0 {
		return nil, AsTransportError(domain.ErrInvalidInput)
	}

	billID := uuid.New().String()
	key := billID + "/" + fileName
	url, err := c.parent.receipts.Put(ctx, key, fileName, entity.ReceiptContentType(fileName), in.Data)
	if err != nil {
		c.parent.log.Error().Err(err).Str("key", key).Msg("subir justificante")
		return nil, AsTransportError(fmt.Errorf("subir justificante: %w", err))
	}

	now := c.parent.now()
	draft := &entity.Bill{
		ID:        billID,
		Email:     c.sess.Email,
		FileURL:   url,
		FileName:  fileName,
		Status:    entity.BillStatusDraft,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := c.parent.bills.CreateDraft(ctx, draft); err != nil {
		c.parent.log.Error().Err(err).Str("bill_id", billID).Msg("crear borrador")
		if derr := c.parent.receipts.Delete(ctx, key); derr != nil {
			c.parent.log.Warn().Err(derr).Str("key", key).Msg("justificante huérfano")
		}
		return nil, AsTransportError(err)
	}
	return &CreateResult{FileURL: url, Key: billID}, nil
}

// Update envía el borrador: solo el propietario y solo mientras esté en draft.
// El justificante del borrador se conserva; el del payload se ignora.
func (c billsClient) Update(ctx context.Context, in UpdateRequest) (*entity.Bill, error) {
	if !c.sess.Valid() {
		return nil, AsTransportError(domain.ErrUnauthorized)
	}
	if in.Selector == "" {
		return nil, AsTransportError(domain.ErrInvalidInput)
	}
	if _, err := uuid.Parse(in.Selector); err != nil {
		return nil, AsTransportError(domain.ErrNotFound)
	}
	existing, err := c.parent.bills.GetByID(ctx, in.Selector)
	if err != nil {
		return nil, AsTransportError(err)
	}
	if existing == nil {
		return nil, AsTransportError(domain.ErrNotFound)
	}
	if existing.Email != c.sess.Email {
		return nil, AsTransportError(domain.ErrForbidden)
	}
	if existing.Status != entity.BillStatusDraft {
		return nil, AsTransportError(domain.ErrConflict)
	}

	b := in.Bill
	b.ID = existing.ID
	b.Email = existing.Email
	b.FileURL = existing.FileURL
	b.FileName = existing.FileName
	b.Status = entity.BillStatusPending
	b.CreatedAt = existing.CreatedAt
	b.UpdatedAt = c.parent.now()
	if err := c.parent.bills.Submit(ctx, &b); err != nil {
		c.parent.log.Error().Err(err).Str("bill_id", b.ID).Msg("enviar nota")
		return nil, AsTransportError(err)
	}
	return &b, nil
}
