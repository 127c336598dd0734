package bills

import (
	"context"
	"fmt"
	"time"
)

// PDFGenerator genera el resumen en PDF de las notas del empleado.
type PDFGenerator interface {
	GenerateBillsPDF(ctx context.Context, email string, rows []BillRow, generatedAt time.Time) ([]byte, error)
}

// ExportPDF lista las notas y genera el resumen en PDF.
// Devuelve los bytes y el nombre de archivo sugerido.
func (c *Container) ExportPDF(ctx context.Context, gen PDFGenerator) ([]byte, string, error) {
	rows, err := c.GetBills(ctx)
	if err != nil {
		return nil, "", err
	}
	now := time.Now()
	doc, err := gen.GenerateBillsPDF(ctx, c.session.Email, rows, now)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: generación fallida: %w", err)
	}
	return doc, fmt.Sprintf("notes-de-frais_%s.pdf", now.Format("20060102")), nil
}
