package http

import (
	"net/url"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/jhoicas/billed/internal/domain/entity"
	"github.com/jhoicas/billed/internal/domain/repository"
)

// ReceiptHandler sirve los justificantes guardados en la base de datos.
// Solo el propietario de la nota puede leerlos.
type ReceiptHandler struct {
	receipts repository.ReceiptRepository
	bills    repository.BillRepository
}

// NewReceiptHandler construye el handler.
func NewReceiptHandler(receipts repository.ReceiptRepository, bills repository.BillRepository) *ReceiptHandler {
	return &ReceiptHandler{receipts: receipts, bills: bills}
}

// Get GET /receipts/<bill_id>/<archivo>.
func (h *ReceiptHandler) Get(c *fiber.Ctx) error {
	key, err := url.PathUnescape(c.Params("*"))
	if err != nil || key == "" {
		return fiber.ErrNotFound
	}
	billID, _, ok := strings.Cut(key, "/")
	if !ok {
		return fiber.ErrNotFound
	}
	if _, err := uuid.Parse(billID); err != nil {
		return fiber.ErrNotFound
	}
	bill, err := h.bills.GetByID(c.UserContext(), billID)
	if err != nil {
		return err
	}
	if bill == nil || bill.Email != GetSession(c).Email {
		return fiber.ErrNotFound
	}
	receipt, err := h.receipts.GetByKey(c.UserContext(), key)
	if err != nil {
		return err
	}
	if receipt == nil {
		return fiber.ErrNotFound
	}
	c.Set(fiber.HeaderContentType, entity.ReceiptContentType(receipt.FileName))
	c.Set(fiber.HeaderXContentTypeOptions, "nosniff")
	c.Set(fiber.HeaderCacheControl, "private, max-age=3600")
	return c.Send(receipt.Data)
}
