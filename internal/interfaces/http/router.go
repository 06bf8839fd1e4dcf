package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/resto-caja/internal/application/auth"
	appfinance "github.com/tu-usuario/resto-caja/internal/application/finance"
	"github.com/tu-usuario/resto-caja/internal/application/orders"
	"github.com/tu-usuario/resto-caja/internal/application/usecase"
	"github.com/tu-usuario/resto-caja/internal/domain/entity"
	"github.com/tu-usuario/resto-caja/internal/infrastructure/htmlexport"
	"github.com/tu-usuario/resto-caja/internal/infrastructure/pdf"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC        *auth.AuthUseCase
	ProductUC     *usecase.ProductUseCase
	CustomerUC    *usecase.CustomerUseCase
	TransactionUC *usecase.TransactionUseCase
	ReservationUC *usecase.ReservationUseCase
	OrderUC       *orders.OrderUseCase
	ReportUC      *appfinance.ReportUseCase
	ResetUC       *appfinance.ResetUseCase
	ImportUC      *appfinance.ImportUseCase
	PDFGen        *pdf.FinanceReportGenerator
	HTMLGen       *htmlexport.ReportBuilder
	JWTSecret     string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	staff := []string{entity.RoleAdmin, entity.RoleCajero, entity.RoleMesero}
	caja := []string{entity.RoleAdmin, entity.RoleCajero}

	// Products (catálogo: edición solo admin/cajero, lectura todo el staff)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", RequireRole(staff...), productHandler.List)
	products.Get("/:id", RequireRole(staff...), productHandler.GetByID)
	products.Post("/", RequireRole(caja...), productHandler.Create)
	products.Put("/:id", RequireRole(caja...), productHandler.Update)
	products.Delete("/:id", RequireRole(entity.RoleAdmin), productHandler.Delete)

	// Orders (todo el staff crea y avanza pedidos; pagar y corregir es de caja)
	ordersGroup := protected.Group("/orders")
	orderHandler := NewOrderHandler(deps.OrderUC)
	ordersGroup.Post("/", RequireRole(staff...), orderHandler.Checkout)
	ordersGroup.Get("/", RequireRole(staff...), orderHandler.List)
	ordersGroup.Get("/:id", RequireRole(staff...), orderHandler.GetByID)
	ordersGroup.Patch("/:id/status", RequireRole(staff...), orderHandler.UpdateStatus)
	ordersGroup.Post("/:id/pay", RequireRole(caja...), orderHandler.Pay)
	ordersGroup.Patch("/:id/total", RequireRole(caja...), orderHandler.UpdateTotal)

	// Transactions (caja)
	transactions := protected.Group("/transactions")
	transactionHandler := NewTransactionHandler(deps.TransactionUC)
	transactions.Post("/", RequireRole(caja...), transactionHandler.Create)
	transactions.Get("/", RequireRole(caja...), transactionHandler.List)

	// Customers (CRM)
	customers := protected.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Post("/", RequireRole(caja...), customerHandler.Create)
	customers.Get("/", RequireRole(staff...), customerHandler.List)
	customers.Get("/:id", RequireRole(staff...), customerHandler.GetByID)
	customers.Put("/:id", RequireRole(caja...), customerHandler.Update)
	customers.Delete("/:id", RequireRole(entity.RoleAdmin), customerHandler.Delete)

	// Reservations
	reservations := protected.Group("/reservations")
	reservationHandler := NewReservationHandler(deps.ReservationUC)
	reservations.Post("/", RequireRole(staff...), reservationHandler.Create)
	reservations.Get("/", RequireRole(staff...), reservationHandler.List)
	reservations.Put("/:id", RequireRole(staff...), reservationHandler.Update)
	reservations.Delete("/:id", RequireRole(caja...), reservationHandler.Delete)

	// Finance (dashboard y exportación para caja; reset e import solo admin)
	finance := protected.Group("/finance")
	financeHandler := NewFinanceHandler(deps.ReportUC, deps.ResetUC, deps.ImportUC, deps.PDFGen, deps.HTMLGen)
	finance.Get("/report", RequireRole(caja...), financeHandler.Report)
	finance.Get("/report/pdf", RequireRole(caja...), financeHandler.ReportPDF)
	finance.Get("/report/html", RequireRole(caja...), financeHandler.ReportHTML)
	finance.Post("/reset", RequireRole(entity.RoleAdmin), financeHandler.Reset)
	finance.Post("/import", RequireRole(entity.RoleAdmin), financeHandler.Import)
}
