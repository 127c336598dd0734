// Package bills implementa la página de listado de notas de gastos del empleado.
package bills

import (
	"context"
	"fmt"
	"slices"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/billed/internal/application/routes"
	"github.com/jhoicas/billed/internal/application/session"
	"github.com/jhoicas/billed/internal/application/store"
	"github.com/jhoicas/billed/internal/domain"
	billfmt "github.com/jhoicas/billed/internal/domain/bill"
)

// DefaultModalWidth ancho del modal del justificante cuando no se informa.
const DefaultModalWidth = 800

// BillRow nota lista para mostrar. RawDate conserva la fecha ISO para ordenar.
type BillRow struct {
	ID         string
	Type       string
	Name       string
	Amount     decimal.Decimal
	Date       string
	RawDate    string
	Status     string
	StatusCode string
	FileURL    string
	FileName   string
}

// Icon icono "ojo" pulsado en una fila.
type Icon struct {
	BillURL    string
	ModalWidth int
}

// ReceiptModal contenido del modal que muestra el justificante.
type ReceiptModal struct {
	ImageURL string
	Width    int
}

// Deps dependencias de la página.
type Deps struct {
	Session   session.Session
	Store     store.Store
	Navigator routes.Navigator
	Logger    zerolog.Logger
}

// Container página Bills: listado, botón "nouvelle note" e icono ojo.
type Container struct {
	session session.Session
	store   store.Store
	nav     routes.Navigator
	log     zerolog.Logger
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

// HandleClickNewBill navega al formulario de nueva nota.
func (c *Container) HandleClickNewBill() error {
	return c.nav.Navigate(routes.NewBill)
}

// HandleClickIconEye prepara el modal con la imagen del justificante. No llama al almacén.
func (c *Container) HandleClickIconEye(icon Icon) (ReceiptModal, error) {
	if icon.BillURL == "" {
		return ReceiptModal{}, fmt.Errorf("%w: justificante sin URL", domain.ErrInvalidInput)
	}
	width := icon.ModalWidth
	if width <= 0 {
		width = DefaultModalWidth
	}
	return ReceiptModal{ImageURL: icon.BillURL, Width: width / 2}, nil
}

// GetBills lista las notas del almacén con fecha y estado formateados,
// de la más reciente a la más antigua. Si una fecha no se puede formatear se
// conserva la fecha en bruto solo para esa nota. Los fallos del almacén se
// devuelven sin tocar para que la página de error muestre su mensaje.
func (c *Container) GetBills(ctx context.Context) ([]BillRow, error) {
	if c.store == nil {
		return nil, store.AsTransportError(store.ErrNoStore)
	}
	list, err := c.store.Bills().List(ctx)
	if err != nil {
		return nil, err
	}

	rows := make([]BillRow, 0, len(list))
	for _, b := range list {
		row := BillRow{
			ID:         b.ID,
			Type:       b.Type,
			Name:       b.Name,
			Amount:     b.Amount,
			Date:       b.Date,
			RawDate:    b.Date,
			Status:     billfmt.FormatStatus(b.Status),
			StatusCode: b.Status,
			FileURL:    b.FileURL,
			FileName:   b.FileName,
		}
		if formatted, ferr := billfmt.FormatDate(b.Date); ferr != nil {
			c.log.Warn().Err(ferr).Str("bill_id", b.ID).Msg("fecha sin formato, se conserva en bruto")
		} else {
			row.Date = formatted
		}
		rows = append(rows, row)
	}

	SortByDateDesc(rows)
	return rows, nil
}

// SortByDateDesc ordena por fecha ISO, la más reciente primero.
func SortByDateDesc(rows []BillRow) {
	slices.SortStableFunc(rows, func(a, b BillRow) int {
		return billfmt.CompareDatesDesc(a.RawDate, b.RawDate)
	})
}
