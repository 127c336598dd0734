// Package views renderiza las páginas HTML de la aplicación. Cada función es
// pura: recibe un modelo de vista y devuelve el HTML.
package views

import (
	"bytes"
	"embed"
	"html/template"
	"slices"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/billed/internal/application/bills"
	"github.com/jhoicas/billed/internal/application/newbill"
	"github.com/jhoicas/billed/internal/domain/entity"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static/style.css
var stylesheet []byte

// Iconos activos del menú vertical.
const (
	ActiveBills   = "bills"
	ActiveNewBill = "newbill"
)

var templates = template.Must(template.New("billed").Funcs(template.FuncMap{
	"euros": func(d decimal.Decimal) string { return d.StringFixed(2) + " €" },
}).ParseFS(templateFS, "templates/*.html"))

// Layout datos del menú vertical.
type Layout struct {
	Active string
	Email  string
}

// BillsPage modelo de la página de listado.
type BillsPage struct {
	Layout  Layout
	Rows    []bills.BillRow
	Loading bool
	Error   string
}

// FileField estado del campo justificante y del borrador asociado.
type FileField struct {
	InputValue   string
	ErrorMessage string
	ErrorVisible bool
	BillID       string
	FileURL      string
	FileName     string
}

// NewBillPage modelo del formulario de nueva nota.
type NewBillPage struct {
	Layout    Layout
	Types     []string
	Form      newbill.Form
	File      FileField
	FormError string
}

// LoginPage modelo de la página de conexión.
type LoginPage struct {
	Email string
	Error string
}

type errorPage struct {
	Layout  Layout
	Message string
}

type loadingPage struct {
	Layout Layout
}

// BillsUI renderiza el listado. Con Loading muestra la página de carga y con
// Error la página de error; si no, las filas de la más reciente a la más antigua.
func BillsUI(p BillsPage) (string, error) {
	if p.Loading {
		return render("loading", loadingPage{Layout: p.Layout})
	}
	if p.Error != "" {
		return render("error", errorPage{Layout: p.Layout, Message: p.Error})
	}
	rows := slices.Clone(p.Rows)
	bills.SortByDateDesc(rows)
	p.Rows = rows
	return render("bills", p)
}

// NewBillUI renderiza el formulario de nueva nota.
func NewBillUI(p NewBillPage) (string, error) {
	if len(p.Types) == 0 {
		p.Types = entity.ExpenseTypes
	}
	if p.Form.Type == "" && len(p.Types) > 0 {
		p.Form.Type = p.Types[0]
	}
	if p.File.ErrorMessage == "" {
		p.File.ErrorMessage = newbill.FileErrorMessage
	}
	return render("newbill", p)
}

// FileFieldUI renderiza solo el campo justificante (respuesta a la subida).
func FileFieldUI(f FileField) (string, error) {
	if f.ErrorMessage == "" {
		f.ErrorMessage = newbill.FileErrorMessage
	}
	return render("file-field", f)
}

// ErrorPage página de error con el mensaje del servidor.
func ErrorPage(layout Layout, message string) (string, error) {
	return render("error", errorPage{Layout: layout, Message: message})
}

// LoadingPage página de carga.
func LoadingPage(layout Layout) (string, error) {
	return render("loading", loadingPage{Layout: layout})
}

// LoginUI página de conexión.
func LoginUI(p LoginPage) (string, error) {
	return render("login", p)
}

// ReceiptModal contenido del modal del justificante.
func ReceiptModal(m bills.ReceiptModal) (string, error) {
	return render("receipt-modal", m)
}

// Stylesheet hoja de estilos embebida.
func Stylesheet() []byte {
	return stylesheet
}

func render(name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
