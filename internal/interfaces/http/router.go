package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/billed/internal/application/auth"
	"github.com/jhoicas/billed/internal/application/bills"
	"github.com/jhoicas/billed/internal/domain/repository"
	"github.com/jhoicas/billed/internal/infrastructure/storage"
	"github.com/jhoicas/billed/internal/interfaces/http/views"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       *auth.AuthUseCase
	Stores       StoreProvider
	PDF          bills.PDFGenerator
	BillRepo     repository.BillRepository
	ReceiptRepo  repository.ReceiptRepository
	Logger       zerolog.Logger
	SecureCookie bool
}

// Router registra las páginas, el API del almacén y los justificantes.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/static/style.css", func(c *fiber.Ctx) error {
		c.Set(fiber.HeaderContentType, "text/css; charset=utf-8")
		return c.Send(views.Stylesheet())
	})

	// Login (público)
	authHandler := NewAuthHandler(deps.AuthUC, deps.SecureCookie)
	app.Get("/", authHandler.LoginPage)
	app.Post("/login", authHandler.Login)
	app.Post("/logout", authHandler.Logout)

	// Páginas del empleado (cookie de sesión)
	employee := app.Group("/employee", SessionMiddleware(deps.AuthUC), RequireEmployee())
	billsHandler := NewBillsHandler(deps.Stores, deps.PDF, deps.Logger)
	employee.Get("/bills", billsHandler.List)
	employee.Get("/bills/receipt", billsHandler.Receipt)
	employee.Get("/bills/export.pdf", billsHandler.ExportPDF)
	employee.Post("/bills/new", billsHandler.NewBill)

	newBillHandler := NewNewBillHandler(deps.Stores, deps.Logger)
	employee.Get("/bill/new", newBillHandler.Form)
	employee.Post("/bill/new/file", newBillHandler.ChangeFile)
	employee.Post("/bill/new", newBillHandler.Submit)

	// Justificantes guardados en base de datos
	if deps.ReceiptRepo != nil {
		receiptHandler := NewReceiptHandler(deps.ReceiptRepo, deps.BillRepo)
		app.Get(storage.ReceiptsPathPrefix+"/*", SessionMiddleware(deps.AuthUC), receiptHandler.Get)
	}

	// API del almacén (Bearer Token)
	api := app.Group("/api")
	api.Post("/auth/login", authHandler.APILogin)

	apiBills := api.Group("/bills", AuthMiddleware(deps.AuthUC))
	apiBillsHandler := NewAPIBillsHandler(deps.Stores)
	apiBills.Get("/", apiBillsHandler.List)
	apiBills.Post("/", apiBillsHandler.Create)
	apiBills.Patch("/:id", apiBillsHandler.Update)
}
