// Package newbill implementa el formulario de nueva nota de gastos:
// validación y subida del justificante y envío del borrador.
package newbill

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/billed/internal/application/routes"
	"github.com/jhoicas/billed/internal/application/session"
	"github.com/jhoicas/billed/internal/application/store"
	"github.com/jhoicas/billed/internal/domain"
	billfmt "github.com/jhoicas/billed/internal/domain/bill"
	"github.com/jhoicas/billed/internal/domain/entity"
)

// FileErrorMessage mensaje visible cuando la extensión no es aceptada.
const FileErrorMessage = "image extension must be png, jpeg or jpg"

var (
	// ErrInvalidFileExtension extensión fuera de {png, jpg, jpeg}.
	ErrInvalidFileExtension = errors.New(FileErrorMessage)
	// ErrAlreadySubmitted el borrador ya fue enviado desde este formulario.
	ErrAlreadySubmitted = errors.New("la nota ya fue enviada")
	// ErrMissingReceipt envío sin justificante subido.
	ErrMissingReceipt = fmt.Errorf("%w: justificante requerido", domain.ErrInvalidInput)
)

var acceptedExtensions = map[string]bool{"png": true, "jpg": true, "jpeg": true}

// State estado del borrador.
type State int

const (
	StateEmpty State = iota
	StateFileSelected
	StateSubmitted
)

func (s State) String() string {
	switch s {
	case StateFileSelected:
		return "file-selected"
	case StateSubmitted:
		return "submitted"
	default:
		return "empty"
	}
}

// Draft metadatos del justificante ya subido.
type Draft struct {
	BillID   string
	FileURL  string
	FileName string
}

// FileInput archivo elegido en el campo "file".
type FileInput struct {
	Name string
	Data []byte
}

// FileResult estado del campo tras el cambio: valor mostrado y mensaje de error.
type FileResult struct {
	Accepted     bool
	InputValue   string
	ErrorMessage string
	ErrorVisible bool
}

// Form valores de los campos del formulario.
type Form struct {
	Type       string
	Name       string
	Amount     string
	Date       string
	VAT        string
	Pct        string
	Commentary string
}

// Deps dependencias de la página.
type Deps struct {
	Session   session.Session
	Store     store.Store
	Navigator routes.Navigator
	Logger    zerolog.Logger
}

// Container página NewBill.
type Container struct {
	session   session.Session
	store     store.Store
	nav       routes.Navigator
	log       zerolog.Logger
	draft     Draft
	submitted bool
}

// New construye la página a partir de la sesión explícita.
func New(deps Deps) *Container {
	return &Container{
		session: deps.Session,
		store:   deps.Store,
		nav:     deps.Navigator,
		log:     deps.Logger,
	}
}

// Restore recupera un borrador subido en una petición anterior.
func (c *Container) Restore(d Draft) {
	c.draft = d
}

// Draft devuelve el borrador actual.
func (c *Container) Draft() Draft {
	return c.draft
}

// State devuelve el estado del borrador.
func (c *Container) State() State {
	switch {
	case c.submitted:
		return StateSubmitted
	case c.draft.BillID != "":
		return StateFileSelected
	default:
		return StateEmpty
	}
}

// IsAcceptedFile indica si el nombre tiene extensión png, jpg o jpeg (sin distinguir mayúsculas).
func IsAcceptedFile(name string) bool {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(name)), ".")
	return acceptedExtensions[ext]
}

// HandleChangeFile valida la extensión y sube el justificante.
// Si se rechaza, el campo se vacía, el mensaje queda visible, no se sube nada
// y se devuelve ErrInvalidFileExtension junto con el FileResult a mostrar.
func (c *Container) HandleChangeFile(ctx context.Context, in FileInput) (FileResult, error) {
	if c.submitted {
		return FileResult{}, ErrAlreadySubmitted
	}
	if !IsAcceptedFile(in.Name) {
		c.log.Debug().Str("file", in.Name).Msg("extensión de justificante rechazada")
		return FileResult{
			InputValue:   "",
			ErrorMessage: FileErrorMessage,
			ErrorVisible: true,
		}, ErrInvalidFileExtension
	}

	if c.store == nil {
		return FileResult{}, store.AsTransportError(store.ErrNoStore)
	}
	res, err := c.store.Bills().Create(ctx, store.CreateRequest{
		FileName: in.Name,
		Data:     in.Data,
	})
	if err != nil {
		return FileResult{}, err
	}

	c.draft = Draft{BillID: res.Key, FileURL: res.FileURL, FileName: in.Name}
	return FileResult{Accepted: true, InputValue: in.Name}, nil
}

// HandleSubmit arma la nota con los campos del formulario y el justificante,
// la envía en estado pending con una única llamada y vuelve al listado.
// Los errores del almacén se devuelven sin reintento.
func (c *Container) HandleSubmit(ctx context.Context, form Form) error {
	if c.submitted {
		return ErrAlreadySubmitted
	}
	b, err := c.buildBill(form)
	if err != nil {
		return err
	}
	if err := c.UpdateBill(ctx, b); err != nil {
		return err
	}
	c.submitted = true
	return c.nav.Navigate(routes.Bills)
}

// UpdateBill envía la nota al almacén usando el borrador como selector.
func (c *Container) UpdateBill(ctx context.Context, b entity.Bill) error {
	if c.store == nil {
		return store.AsTransportError(store.ErrNoStore)
	}
	_, err := c.store.Bills().Update(ctx, store.UpdateRequest{Selector: c.draft.BillID, Bill: b})
	return err
}

func (c *Container) buildBill(form Form) (entity.Bill, error) {
	if c.draft.BillID == "" {
		return entity.Bill{}, ErrMissingReceipt
	}
	if !entity.IsValidExpenseType(form.Type) {
		return entity.Bill{}, fmt.Errorf("%w: tipo de gasto %q", domain.ErrInvalidInput, form.Type)
	}
	amount, err := decimal.NewFromString(strings.TrimSpace(form.Amount))
	if err != nil || amount.IsNegative() {
		return entity.Bill{}, fmt.Errorf("%w: importe %q", domain.ErrInvalidInput, form.Amount)
	}
	if _, err := billfmt.ParseDate(form.Date); err != nil {
		return entity.Bill{}, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	pct, err := strconv.Atoi(strings.TrimSpace(form.Pct))
	if err != nil || pct == 0 {
		pct = entity.DefaultPct
	}

	return entity.Bill{
		ID:         c.draft.BillID,
		Email:      c.session.Email,
		Type:       form.Type,
		Name:       strings.TrimSpace(form.Name),
		Amount:     amount,
		Date:       strings.TrimSpace(form.Date),
		VAT:        strings.TrimSpace(form.VAT),
		Pct:        pct,
		Commentary: form.Commentary,
		FileURL:    c.draft.FileURL,
		FileName:   c.draft.FileName,
		Status:     entity.BillStatusPending,
	}, nil
}
