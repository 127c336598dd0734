package bills_test

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/billed/internal/application/bills"
	"github.com/jhoicas/billed/internal/application/routes"
	"github.com/jhoicas/billed/internal/application/session"
	"github.com/jhoicas/billed/internal/application/store"
	"github.com/jhoicas/billed/internal/domain"
	"github.com/jhoicas/billed/internal/domain/entity"
)

type listOnlyBills struct {
	list  []entity.Bill
	err   error
	calls int
}

func (f *listOnlyBills) List(context.Context) ([]entity.Bill, error) {
	f.calls++
	return f.list, f.err
}

func (f *listOnlyBills) Create(context.Context, store.CreateRequest) (*store.CreateResult, error) {
	return nil, errors.New("no usado")
}

func (f *listOnlyBills) Update(context.Context, store.UpdateRequest) (*entity.Bill, error) {
	return nil, errors.New("no usado")
}

type fakeStore struct{ bills *listOnlyBills }

func (s fakeStore) Bills() store.BillsClient { return s.bills }

type recordingNav struct{ paths []string }

func (n *recordingNav) Navigate(path string) error {
	n.paths = append(n.paths, path)
	return nil
}

var employee = session.Session{UserID: "u1", Email: "a@a", Type: entity.UserTypeEmployee}

func newContainer(fb *listOnlyBills, nav routes.Navigator, log zerolog.Logger) *bills.Container {
	var st store.Store
	if fb != nil {
		st = fakeStore{bills: fb}
	}
	return bills.New(bills.Deps{Session: employee, Store: st, Navigator: nav, Logger: log})
}

func fixtures() []entity.Bill {
	return []entity.Bill{
		{ID: "47qAXb6fIm2zOKkLzMro", Type: "Hôtel et logement", Name: "encore", Amount: decimal.NewFromInt(400), Date: "2004-04-04", Status: "pending", FileURL: "https://example.com/a.jpg"},
		{ID: "BeKy5Mo4jkmdfPGYpTxZ", Type: "Transports", Name: "test1", Amount: decimal.NewFromInt(100), Date: "2002-02-02", Status: "refused", FileURL: "https://example.com/b.jpg"},
		{ID: "UIUZtnPQvnbFnB0ozvJh", Type: "Services en ligne", Name: "test3", Amount: decimal.NewFromInt(300), Date: "2003-03-03", Status: "accepted", FileURL: "https://example.com/c.jpg"},
	}
}

func TestGetBills_OrdenaDeMasRecienteAMasAntigua(t *testing.T) {
	ctr := newContainer(&listOnlyBills{list: fixtures()}, &recordingNav{}, zerolog.Nop())

	rows, err := ctr.GetBills(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 3)

	raw := []string{rows[0].RawDate, rows[1].RawDate, rows[2].RawDate}
	assert.Equal(t, []string{"2004-04-04", "2003-03-03", "2002-02-02"}, raw)
	assert.Equal(t, "4 Avr. 04", rows[0].Date)
	assert.Equal(t, "En attente", rows[0].Status)
	assert.Equal(t, "pending", rows[0].StatusCode)
	assert.Equal(t, "Accepté", rows[1].Status)
	assert.Equal(t, "Refused", rows[2].Status)
}

func TestGetBills_FechaInvalidaSeConservaYSeRegistra(t *testing.T) {
	list := fixtures()
	list[1].Date = "pas-une-date"
	var logs bytes.Buffer
	ctr := newContainer(&listOnlyBills{list: list}, &recordingNav{}, zerolog.New(&logs))

	rows, err := ctr.GetBills(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 3, "la nota con fecha inválida no se descarta")

	assert.Equal(t, "pas-une-date", rows[2].Date, "las fechas inválidas van al final")
	assert.Equal(t, "pas-une-date", rows[2].RawDate)
	assert.Equal(t, "4 Avr. 04", rows[0].Date)
	assert.Contains(t, logs.String(), "BeKy5Mo4jkmdfPGYpTxZ")
}

func TestGetBills_ErrorDelAlmacenSinTocar(t *testing.T) {
	for _, status := range []int{http.StatusNotFound, http.StatusInternalServerError} {
		te := store.NewTransportError(status, nil)
		ctr := newContainer(&listOnlyBills{err: te}, &recordingNav{}, zerolog.Nop())

		rows, err := ctr.GetBills(context.Background())
		assert.Nil(t, rows)
		var got *store.TransportError
		require.ErrorAs(t, err, &got)
		assert.Same(t, te, got)
	}
	assert.EqualError(t, store.NewTransportError(404, nil), "Erreur 404")
}

// Sin almacén la página de error se muestra en lugar de un listado vacío.
func TestGetBills_SinAlmacen_Erreur500(t *testing.T) {
	ctr := newContainer(nil, &recordingNav{}, zerolog.Nop())
	rows, err := ctr.GetBills(context.Background())
	assert.EqualError(t, err, "Erreur 500")
	assert.ErrorIs(t, err, store.ErrNoStore)
	assert.Nil(t, rows)
}

func TestHandleClickNewBill_NavegaAlFormulario(t *testing.T) {
	nav := &recordingNav{}
	fb := &listOnlyBills{}
	ctr := newContainer(fb, nav, zerolog.Nop())

	require.NoError(t, ctr.HandleClickNewBill())
	assert.Equal(t, []string{routes.NewBill}, nav.paths)
	assert.Zero(t, fb.calls)
}

func TestHandleClickIconEye(t *testing.T) {
	fb := &listOnlyBills{}
	ctr := newContainer(fb, &recordingNav{}, zerolog.Nop())

	modal, err := ctr.HandleClickIconEye(bills.Icon{BillURL: "https://example.com/a.jpg", ModalWidth: 1000})
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/a.jpg", modal.ImageURL)
	assert.Equal(t, 500, modal.Width)

	modal, err = ctr.HandleClickIconEye(bills.Icon{BillURL: "https://example.com/a.jpg"})
	require.NoError(t, err)
	assert.Equal(t, bills.DefaultModalWidth/2, modal.Width)

	_, err = ctr.HandleClickIconEye(bills.Icon{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Zero(t, fb.calls, "el icono no consulta el almacén")
}

type fakePDF struct {
	email string
	rows  []bills.BillRow
	err   error
}

func (f *fakePDF) GenerateBillsPDF(_ context.Context, email string, rows []bills.BillRow, _ time.Time) ([]byte, error) {
	f.email, f.rows = email, rows
	if f.err != nil {
		return nil, f.err
	}
	return []byte("%PDF"), nil
}

func TestExportPDF(t *testing.T) {
	gen := &fakePDF{}
	ctr := newContainer(&listOnlyBills{list: fixtures()}, &recordingNav{}, zerolog.Nop())

	doc, name, err := ctr.ExportPDF(context.Background(), gen)
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF"), doc)
	assert.Regexp(t, `^notes-de-frais_\d{8}\.pdf$`, name)
	assert.Equal(t, "a@a", gen.email)
	require.Len(t, gen.rows, 3)
	assert.Equal(t, "2004-04-04", gen.rows[0].RawDate)
}

func TestExportPDF_ErrorDelAlmacen(t *testing.T) {
	gen := &fakePDF{}
	ctr := newContainer(&listOnlyBills{err: store.NewTransportError(500, nil)}, &recordingNav{}, zerolog.Nop())

	_, _, err := ctr.ExportPDF(context.Background(), gen)
	assert.EqualError(t, err, "Erreur 500")
	assert.Nil(t, gen.rows)
}

func TestSortByDateDesc_Estable(t *testing.T) {
	rows := []bills.BillRow{
		{ID: "a", RawDate: "2003-03-03"},
		{ID: "b", RawDate: "2004-04-04"},
		{ID: "c", RawDate: "2003-03-03"},
	}
	bills.SortByDateDesc(rows)
	assert.Equal(t, "b", rows[0].ID)
	assert.Equal(t, "a", rows[1].ID)
	assert.Equal(t, "c", rows[2].ID)
}
