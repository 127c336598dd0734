package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/billed/internal/application/bills"
	"github.com/jhoicas/billed/internal/application/session"
	"github.com/jhoicas/billed/internal/application/store"
	"github.com/jhoicas/billed/internal/interfaces/http/views"
)

// StoreProvider entrega el cliente del almacén restringido al usuario de la sesión.
type StoreProvider interface {
	ForSession(sess session.Session) store.Store
}

// BillsHandler página de listado de notas.
type BillsHandler struct {
	stores StoreProvider
	pdf    bills.PDFGenerator
	log    zerolog.Logger
}

// NewBillsHandler construye el handler.
func NewBillsHandler(stores StoreProvider, pdf bills.PDFGenerator, log zerolog.Logger) *BillsHandler {
	return &BillsHandler{stores: stores, pdf: pdf, log: log}
}

func (h *BillsHandler) container(c *fiber.Ctx, nav *redirectNavigator) *bills.Container {
	sess := GetSession(c)
	return bills.New(bills.Deps{
		Session:   sess,
		Store:     h.stores.ForSession(sess),
		Navigator: nav,
		Logger:    h.log,
	})
}

func billsLayout(c *fiber.Ctx) views.Layout {
	return views.Layout{Active: views.ActiveBills, Email: GetSession(c).Email}
}

// List muestra las notas del empleado o la página de error del almacén.
func (h *BillsHandler) List(c *fiber.Ctx) error {
	rows, err := h.container(c, &redirectNavigator{}).GetBills(c.UserContext())
	if err != nil {
		return renderStoreError(c, billsLayout(c), err)
	}
	html, err := views.BillsUI(views.BillsPage{Layout: billsLayout(c), Rows: rows})
	return renderHTML(c, fiber.StatusOK, html, err)
}

// NewBill botón "Nouvelle note de frais".
func (h *BillsHandler) NewBill(c *fiber.Ctx) error {
	nav := &redirectNavigator{}
	if err := h.container(c, nav).HandleClickNewBill(); err != nil {
		return err
	}
	return nav.redirect(c)
}

// Receipt devuelve el contenido del modal del justificante (?url=&width=).
func (h *BillsHandler) Receipt(c *fiber.Ctx) error {
	modal, err := h.container(c, &redirectNavigator{}).HandleClickIconEye(bills.Icon{
		BillURL:    c.Query("url"),
		ModalWidth: c.QueryInt("width", bills.DefaultModalWidth),
	})
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	html, err := views.ReceiptModal(modal)
	return renderHTML(c, fiber.StatusOK, html, err)
}

// ExportPDF descarga el resumen en PDF de las notas.
func (h *BillsHandler) ExportPDF(c *fiber.Ctx) error {
	doc, filename, err := h.container(c, &redirectNavigator{}).ExportPDF(c.UserContext(), h.pdf)
	if err != nil {
		var te *store.TransportError
		if errors.As(err, &te) {
			return renderStoreError(c, billsLayout(c), te)
		}
		return err
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Send(doc)
}
