// Package store define el cliente del almacén remoto de notas de gastos y su
// implementación sobre los repositorios.
package store

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/jhoicas/billed/internal/domain"
	"github.com/jhoicas/billed/internal/domain/entity"
)

// Store punto de entrada del cliente: store.Bills().List(ctx), etc.
type Store interface {
	Bills() BillsClient
}

// BillsClient operaciones remotas sobre las notas del usuario de la sesión.
// Todo fallo se devuelve como *TransportError.
type BillsClient interface {
	List(ctx context.Context) ([]entity.Bill, error)
	Create(ctx context.Context, in CreateRequest) (*CreateResult, error)
	Update(ctx context.Context, in UpdateRequest) (*entity.Bill, error)
}

// CreateRequest subida del justificante que abre un borrador.
// El tipo MIME se deduce de la extensión del archivo.
type CreateRequest struct {
	FileName string
	Data     []byte
}

// CreateResult URL del justificante y clave (ID) del borrador creado.
type CreateResult struct {
	FileURL string
	Key     string
}

// UpdateRequest envío del borrador identificado por Selector.
type UpdateRequest struct {
	Selector string
	Bill     entity.Bill
}

// ErrNoStore el contenedor se construyó sin almacén.
var ErrNoStore = errors.New("almacén no configurado")

// TransportError fallo de una llamada al almacén. Su mensaje es el que se
// muestra en la página de error ("Erreur 404", "Erreur 500").
type TransportError struct {
	Status int
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("Erreur %d", e.Status)
}

func (e *TransportError) Unwrap() error { return e.Err }

// NewTransportError construye un error de transporte con el status indicado.
func NewTransportError(status int, err error) *TransportError {
	return &TransportError{Status: status, Err: err}
}

// AsTransportError traduce cualquier error a *TransportError según el error de dominio.
func AsTransportError(err error) *TransportError {
	if err == nil {
		return nil
	}
	var te *TransportError
	if errors.As(err, &te) {
		return te
	}
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, domain.ErrConflict):
		status = http.StatusConflict
	case errors.Is(err, domain.ErrForbidden):
		status = http.StatusForbidden
	case errors.Is(err, domain.ErrUnauthorized):
		status = http.StatusUnauthorized
	case errors.Is(err, domain.ErrInvalidInput):
		status = http.StatusBadRequest
	}
	return &TransportError{Status: status, Err: err}
}
