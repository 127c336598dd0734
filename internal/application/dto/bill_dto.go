package dto

import "github.com/shopspring/decimal"

// BillResponse nota en las respuestas del API del almacén.
type BillResponse struct {
	ID         string          `json:"id"`
	Email      string          `json:"email"`
	Type       string          `json:"type"`
	Name       string          `json:"name"`
	Amount     decimal.Decimal `json:"amount"`
	Date       string          `json:"date"`
	VAT        string          `json:"vat"`
	Pct        int             `json:"pct"`
	Commentary string          `json:"commentary"`
	FileURL    string          `json:"fileUrl"`
	FileName   string          `json:"fileName"`
	Status     string          `json:"status"`
}

// BillListResponse listado de notas.
type BillListResponse struct {
	Items []BillResponse `json:"items"`
	Total int            `json:"total"`
}

// CreateBillResponse respuesta de la subida del justificante.
type CreateBillResponse struct {
	FileURL string `json:"fileUrl"`
	Key     string `json:"key"`
}

// UpdateBillRequest body de PATCH /api/bills/:id.
type UpdateBillRequest struct {
	Type       string          `json:"type"`
	Name       string          `json:"name"`
	Amount     decimal.Decimal `json:"amount"`
	Date       string          `json:"date"`
	VAT        string          `json:"vat"`
	Pct        int             `json:"pct"`
	Commentary string          `json:"commentary"`
}
