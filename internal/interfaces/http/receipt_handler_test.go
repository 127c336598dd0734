package http_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/billed/internal/domain/entity"
	apphttp "github.com/jhoicas/billed/internal/interfaces/http"
)

const receiptBillID = "4f1c2b9e-8d7a-4c3e-9b21-5a6d7e8f9012"

type memReceipts struct {
	saved map[string]*entity.Receipt
}

func (m *memReceipts) Save(_ context.Context, rc *entity.Receipt) error {
	m.saved[rc.Key] = rc
	return nil
}

func (m *memReceipts) GetByKey(_ context.Context, key string) (*entity.Receipt, error) {
	return m.saved[key], nil
}

func (m *memReceipts) Delete(_ context.Context, key string) error {
	delete(m.saved, key)
	return nil
}

// memBillRepo solo resuelve GetByID; lookups cuenta las consultas.
type memBillRepo struct {
	bills   map[string]*entity.Bill
	lookups int
}

func (m *memBillRepo) CreateDraft(context.Context, *entity.Bill) error { return nil }

func (m *memBillRepo) Submit(context.Context, *entity.Bill) error { return nil }

func (m *memBillRepo) ListByEmail(context.Context, string) ([]*entity.Bill, error) { return nil, nil }

func (m *memBillRepo) GetByID(_ context.Context, id string) (*entity.Bill, error) {
	m.lookups++
	return m.bills[id], nil
}

func newReceiptApp(bills *memBillRepo) *fiber.App {
	receipts := &memReceipts{saved: map[string]*entity.Receipt{
		receiptBillID + "/facture.png": {
			Key:         receiptBillID + "/facture.png",
			FileName:    "facture.png",
			ContentType: "text/html",
			Data:        []byte("<script>alert(1)</script>"),
		},
	}}
	app := fiber.New()
	app.Get("/receipts/*", apphttp.SessionMiddleware(newAuthUC(nil)), apphttp.NewReceiptHandler(receipts, bills).Get)
	return app
}

func getReceipt(t *testing.T, app *fiber.App, path string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.AddCookie(&http.Cookie{Name: apphttp.SessionCookie, Value: tokenFor(t, testEmail, "Employee")})
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func ownBills() *memBillRepo {
	return &memBillRepo{bills: map[string]*entity.Bill{
		receiptBillID: {ID: receiptBillID, Email: testEmail, FileName: "facture.png"},
	}}
}

// El tipo servido sale de la extensión guardada, nunca del Content-Type subido.
func TestReceiptHandler_ContentTypePorExtension(t *testing.T) {
	resp := getReceipt(t, newReceiptApp(ownBills()), "/receipts/"+receiptBillID+"/facture.png")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "image/png", resp.Header.Get("Content-Type"))
	assert.Equal(t, "nosniff", resp.Header.Get("X-Content-Type-Options"))
	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, "<script>alert(1)</script>", string(body))
}

func TestReceiptHandler_IDNoUUID_404(t *testing.T) {
	bills := ownBills()
	app := newReceiptApp(bills)

	for _, path := range []string{"/receipts/abc/facture.png", "/receipts/1234/x.jpg"} {
		resp := getReceipt(t, app, path)
		resp.Body.Close()
		assert.Equal(t, http.StatusNotFound, resp.StatusCode, path)
	}
	assert.Zero(t, bills.lookups)
}

func TestReceiptHandler_DeOtroEmpleado_404(t *testing.T) {
	bills := ownBills()
	bills.bills[receiptBillID].Email = "b@b"

	resp := getReceipt(t, newReceiptApp(bills), "/receipts/"+receiptBillID+"/facture.png")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
