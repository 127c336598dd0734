package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una nota de frais.
const (
	BillStatusDraft    = "draft"    // Recibo subido, formulario aún no enviado (nunca se lista)
	BillStatusPending  = "pending"  // Enviada, en espera del aprobador
	BillStatusAccepted = "accepted" // Aceptada por el aprobador
	BillStatusRefused  = "refused"  // Rechazada por el aprobador
)

// DateLayout formato ISO con el que se guarda y ordena la fecha de la nota.
const DateLayout = "2006-01-02"

// DefaultPct porcentaje por defecto cuando el formulario no lo informa.
const DefaultPct = 20

// ExpenseTypes tipos de gasto ofrecidos en el formulario.
var ExpenseTypes = []string{
	"Transports",
	"Restaurants et bars",
	"Hôtel et logement",
	"Services en ligne",
	"IT et électronique",
	"Equipement et matériel",
	"Fournitures de bureau",
}

// Bill representa una nota de gastos enviada por un empleado.
// Date guarda la fecha ISO (YYYY-MM-DD) sin interpretar; el formato de
// presentación se calcula al listar.
type Bill struct {
	ID         string
	Email      string
	Type       string
	Name       string
	Amount     decimal.Decimal
	Date       string
	VAT        string
	Pct        int
	Commentary string
	FileURL    string
	FileName   string
	Status     string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// IsValidStatus indica si status es un estado visible (no borrador).
func IsValidStatus(status string) bool {
	switch status {
	case BillStatusPending, BillStatusAccepted, BillStatusRefused:
		return true
	}
	return false
}

// IsValidExpenseType indica si t pertenece al catálogo de tipos de gasto.
func IsValidExpenseType(t string) bool {
	for _, et := range ExpenseTypes {
		if et == t {
			return true
		}
	}
	return false
}
