package pdf_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/billed/internal/application/bills"
	"github.com/jhoicas/billed/internal/infrastructure/pdf"
)

func TestGenerateBillsPDF_GeneraDocumento(t *testing.T) {
	rows := []bills.BillRow{
		{Type: "Transports", Name: "encore", Amount: decimal.NewFromInt(400), Date: "4 Avr. 04", RawDate: "2004-04-04", Status: "En attente", StatusCode: "pending"},
		{Type: "Hôtel et logement", Name: "test1", Amount: decimal.NewFromInt(100), Date: "1 Jan. 01", RawDate: "2001-01-01", Status: "Refused", StatusCode: "refused"},
	}

	doc, err := pdf.NewMarotoBillsReport().GenerateBillsPDF(context.Background(), "a@a", rows, time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.NotEmpty(t, doc)
	assert.Equal(t, "%PDF", string(doc[:4]))
}

func TestGenerateBillsPDF_SinNotas(t *testing.T) {
	doc, err := pdf.NewMarotoBillsReport().GenerateBillsPDF(context.Background(), "a@a", nil, time.Now())
	require.NoError(t, err)
	assert.NotEmpty(t, doc)
}
