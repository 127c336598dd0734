// Package pdf genera el resumen en PDF de las notas de gastos de un empleado.
//
// Layout de la página A4:
//
//	┌──────────────────────────────────────────────────────┐
//	│  HEADER: "Mes notes de frais" + email │ fecha         │
//	│  ──────────────────────────────────────────────────  │
//	│  TABLA: Type | Nom | Date | Montant | Statut          │
//	│  ──────────────────────────────────────────────────  │
//	│  TOTAL por estado                                    │
//	└──────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/billed/internal/application/bills"
	billfmt "github.com/jhoicas/billed/internal/domain/bill"
	"github.com/jhoicas/billed/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 11, Green: 97, Blue: 167}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ bills.PDFGenerator = (*MarotoBillsReport)(nil)

// MarotoBillsReport implementa bills.PDFGenerator usando Maroto v2.
type MarotoBillsReport struct{}

// NewMarotoBillsReport construye el generador.
func NewMarotoBillsReport() *MarotoBillsReport { return &MarotoBillsReport{} }

// GenerateBillsPDF genera el PDF y devuelve sus bytes.
func (g *MarotoBillsReport) GenerateBillsPDF(_ context.Context, email string, rows []bills.BillRow, generatedAt time.Time) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(12).WithRightMargin(12).
		WithTopMargin(12).WithBottomMargin(12).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Mes notes de frais", true).
		WithAuthor(email, true).
		Build()

	m := maroto.New(cfg)
	m.AddRows(headerRow(email, generatedAt))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow())
	m.AddRows(tableRows(rows)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRows(rows)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

func headerRow(email string, generatedAt time.Time) core.Row {
	return row.New(16).Add(
		col.New(8).Add(
			text.New("Mes notes de frais", props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 1,
			}),
			text.New(email, props.Text{Size: 9, Top: 9, Color: colorGray}),
		),
		col.New(4).Add(
			text.New("Édité le "+generatedAt.Format("02/01/2006"), props.Text{
				Size: 8, Align: align.Right, Top: 2, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimary, Top: 2,
		}))
	}
	return row.New(8).Add(
		h("Type", 3, align.Left),
		h("Nom", 3, align.Left),
		h("Date", 2, align.Center),
		h("Montant", 2, align.Right),
		h("Statut", 2, align.Center),
	)
}

func tableRows(list []bills.BillRow) []core.Row {
	out := make([]core.Row, 0, len(list))
	for _, b := range list {
		out = append(out, row.New(7).Add(
			col.New(3).Add(text.New(b.Type, props.Text{Size: 8, Top: 1})),
			col.New(3).Add(text.New(b.Name, props.Text{Size: 8, Top: 1})),
			col.New(2).Add(text.New(b.Date, props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(2).Add(text.New(euros(b.Amount), props.Text{Size: 8, Align: align.Right, Top: 1})),
			col.New(2).Add(text.New(b.Status, props.Text{Size: 8, Align: align.Center, Top: 1})),
		))
	}
	if len(out) == 0 {
		out = append(out, row.New(8).Add(col.New(12).Add(
			text.New("Aucune note de frais", props.Text{Size: 8, Align: align.Center, Top: 2, Color: colorGray}),
		)))
	}
	return out
}

// totalsRows: un total por estado, en el orden pending, accepted, refused.
func totalsRows(list []bills.BillRow) []core.Row {
	totals := map[string]decimal.Decimal{}
	for _, b := range list {
		totals[b.StatusCode] = totals[b.StatusCode].Add(b.Amount)
	}
	var out []core.Row
	for _, status := range []string{entity.BillStatusPending, entity.BillStatusAccepted, entity.BillStatusRefused} {
		total, ok := totals[status]
		if !ok {
			continue
		}
		out = append(out, row.New(6).Add(
			col.New(8).Add(text.New(billfmt.FormatStatus(status)+" :", props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
			})),
			col.New(4).Add(text.New(euros(total), props.Text{Size: 9, Align: align.Right})),
		))
	}
	return out
}

func euros(d decimal.Decimal) string {
	return d.StringFixed(2) + " €"
}
