package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/billed/internal/application/dto"
	"github.com/jhoicas/billed/internal/application/newbill"
	"github.com/jhoicas/billed/internal/application/store"
	billfmt "github.com/jhoicas/billed/internal/domain/bill"
	"github.com/jhoicas/billed/internal/domain/entity"
)

// APIBillsHandler API JSON del almacén de notas (Bearer JWT).
type APIBillsHandler struct {
	stores StoreProvider
}

// NewAPIBillsHandler construye el handler.
func NewAPIBillsHandler(stores StoreProvider) *APIBillsHandler {
	return &APIBillsHandler{stores: stores}
}

func (h *APIBillsHandler) client(c *fiber.Ctx) store.BillsClient {
	return h.stores.ForSession(GetSession(c)).Bills()
}

// List godoc
// @Summary      Listar notas del usuario
// @Tags         bills
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.BillListResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/bills [get]
func (h *APIBillsHandler) List(c *fiber.Ctx) error {
	list, err := h.client(c).List(c.UserContext())
	if err != nil {
		return writeStoreError(c, err)
	}
	items := make([]dto.BillResponse, 0, len(list))
	for i := range list {
		items = append(items, toBillResponse(&list[i]))
	}
	return c.JSON(dto.BillListResponse{Items: items, Total: len(items)})
}

// Create godoc
// @Summary      Subir justificante y abrir borrador
// @Tags         bills
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        file  formData  file  true  "justificante png, jpg o jpeg"
// @Success      201   {object}  dto.CreateBillResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/bills [post]
func (h *APIBillsHandler) Create(c *fiber.Ctx) error {
	in, err := readFileInput(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "archivo ilegible"})
	}
	if !newbill.IsAcceptedFile(in.Name) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FILE", Message: newbill.FileErrorMessage})
	}
	res, err := h.client(c).Create(c.UserContext(), store.CreateRequest{FileName: in.Name, Data: in.Data})
	if err != nil {
		return writeStoreError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.CreateBillResponse{FileURL: res.FileURL, Key: res.Key})
}

// Update godoc
// @Summary      Enviar borrador (pasa a pending)
// @Tags         bills
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string                 true  "ID del borrador"
// @Param        body  body  dto.UpdateBillRequest  true  "campos de la nota"
// @Success      200   {object}  dto.BillResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/bills/{id} [patch]
func (h *APIBillsHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateBillRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if !entity.IsValidExpenseType(in.Type) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "type no pertenece al catálogo"})
	}
	if in.Amount.IsNegative() {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "amount no puede ser negativo"})
	}
	if _, err := billfmt.ParseDate(in.Date); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "date debe tener formato YYYY-MM-DD"})
	}
	pct := in.Pct
	if pct == 0 {
		pct = entity.DefaultPct
	}
	b, err := h.client(c).Update(c.UserContext(), store.UpdateRequest{
		Selector: c.Params("id"),
		Bill: entity.Bill{
			Type:       in.Type,
			Name:       in.Name,
			Amount:     in.Amount,
			Date:       in.Date,
			VAT:        in.VAT,
			Pct:        pct,
			Commentary: in.Commentary,
		},
	})
	if err != nil {
		return writeStoreError(c, err)
	}
	return c.JSON(toBillResponse(b))
}

func writeStoreError(c *fiber.Ctx, err error) error {
	te := store.AsTransportError(err)
	return c.Status(te.Status).JSON(dto.ErrorResponse{Code: storeErrorCode(te.Status), Message: te.Error()})
}

func toBillResponse(b *entity.Bill) dto.BillResponse {
	return dto.BillResponse{
		ID:         b.ID,
		Email:      b.Email,
		Type:       b.Type,
		Name:       b.Name,
		Amount:     b.Amount,
		Date:       b.Date,
		VAT:        b.VAT,
		Pct:        b.Pct,
		Commentary: b.Commentary,
		FileURL:    b.FileURL,
		FileName:   b.FileName,
		Status:     b.Status,
	}
}
