package http

import (
	"errors"
	"io"
	"mime/multipart"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/billed/internal/application/newbill"
	"github.com/jhoicas/billed/internal/domain"
	"github.com/jhoicas/billed/internal/domain/entity"
	"github.com/jhoicas/billed/internal/interfaces/http/views"
)

// NewBillHandler formulario de nueva nota: subida del justificante y envío.
type NewBillHandler struct {
	stores StoreProvider
	log    zerolog.Logger
}

// NewNewBillHandler construye el handler.
func NewNewBillHandler(stores StoreProvider, log zerolog.Logger) *NewBillHandler {
	return &NewBillHandler{stores: stores, log: log}
}

// container reconstruye la página con el borrador que viaja en los campos ocultos.
func (h *NewBillHandler) container(c *fiber.Ctx, nav *redirectNavigator) *newbill.Container {
	sess := GetSession(c)
	ctr := newbill.New(newbill.Deps{
		Session:   sess,
		Store:     h.stores.ForSession(sess),
		Navigator: nav,
		Logger:    h.log,
	})
	ctr.Restore(newbill.Draft{
		BillID:   c.FormValue("bill-id"),
		FileURL:  c.FormValue("file-url"),
		FileName: c.FormValue("file-name"),
	})
	return ctr
}

func newBillLayout(c *fiber.Ctx) views.Layout {
	return views.Layout{Active: views.ActiveNewBill, Email: GetSession(c).Email}
}

func fileField(res newbill.FileResult, d newbill.Draft) views.FileField {
	return views.FileField{
		InputValue:   res.InputValue,
		ErrorMessage: res.ErrorMessage,
		ErrorVisible: res.ErrorVisible,
		BillID:       d.BillID,
		FileURL:      d.FileURL,
		FileName:     d.FileName,
	}
}

// Form muestra el formulario vacío.
func (h *NewBillHandler) Form(c *fiber.Ctx) error {
	html, err := views.NewBillUI(views.NewBillPage{Layout: newBillLayout(c), Types: entity.ExpenseTypes})
	return renderHTML(c, fiber.StatusOK, html, err)
}

// ChangeFile valida y sube el justificante; responde con el campo "file" actualizado.
// Una extensión rechazada responde 422 con el mensaje visible y sin subir nada.
func (h *NewBillHandler) ChangeFile(c *fiber.Ctx) error {
	ctr := h.container(c, &redirectNavigator{})
	in, err := readFileInput(c)
	if err != nil {
		return err
	}
	res, err := ctr.HandleChangeFile(c.UserContext(), in)
	switch {
	case errors.Is(err, newbill.ErrInvalidFileExtension):
		html, rerr := views.FileFieldUI(fileField(res, ctr.Draft()))
		return renderHTML(c, fiber.StatusUnprocessableEntity, html, rerr)
	case err != nil:
		return renderStoreError(c, newBillLayout(c), err)
	}
	html, err := views.FileFieldUI(fileField(res, ctr.Draft()))
	return renderHTML(c, fiber.StatusOK, html, err)
}

// Submit envía la nota y vuelve al listado. Un campo inválido vuelve a mostrar
// el formulario; un fallo del almacén muestra la página de error.
func (h *NewBillHandler) Submit(c *fiber.Ctx) error {
	nav := &redirectNavigator{}
	ctr := h.container(c, nav)
	form := newbill.Form{
		Type:       c.FormValue("expense-type"),
		Name:       c.FormValue("expense-name"),
		Amount:     c.FormValue("amount"),
		Date:       c.FormValue("datepicker"),
		VAT:        c.FormValue("vat"),
		Pct:        c.FormValue("pct"),
		Commentary: c.FormValue("commentary"),
	}
	err := ctr.HandleSubmit(c.UserContext(), form)
	if errors.Is(err, domain.ErrInvalidInput) {
		d := ctr.Draft()
		html, rerr := views.NewBillUI(views.NewBillPage{
			Layout:    newBillLayout(c),
			Types:     entity.ExpenseTypes,
			Form:      form,
			File:      views.FileField{InputValue: d.FileName, BillID: d.BillID, FileURL: d.FileURL, FileName: d.FileName},
			FormError: err.Error(),
		})
		return renderHTML(c, fiber.StatusUnprocessableEntity, html, rerr)
	}
	if err != nil {
		return renderStoreError(c, newBillLayout(c), err)
	}
	return nav.redirect(c)
}

// readFileInput lee el archivo "file" del multipart. Sin archivo devuelve un
// FileInput vacío, que la página rechaza como extensión inválida.
func readFileInput(c *fiber.Ctx) (newbill.FileInput, error) {
	fh, err := c.FormFile("file")
	if err != nil {
		return newbill.FileInput{}, nil
	}
	data, err := readMultipart(fh)
	if err != nil {
		return newbill.FileInput{}, err
	}
	return newbill.FileInput{Name: fh.Filename, Data: data}, nil
}

func readMultipart(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}
