package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/erp-pro/erp-pro-api/internal/application/analytics"
	"github.com/erp-pro/erp-pro-api/internal/application/auth"
	"github.com/erp-pro/erp-pro-api/internal/application/inventory"
	"github.com/erp-pro/erp-pro-api/internal/application/pos"
	"github.com/erp-pro/erp-pro-api/internal/application/usecase"
	"github.com/erp-pro/erp-pro-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.UseCase
	ProductUC   *usecase.ProductUseCase
	ClientUC    *usecase.ClientUseCase
	ExpenseUC   *usecase.ExpenseUseCase
	AccessUC    *usecase.AccessUseCase
	ReceivingUC *inventory.ReceivingUseCase
	CheckoutUC  *pos.CheckoutUseCase
	ReceiptUC   *pos.ReceiptUseCase
	DashboardUC *analytics.DashboardUseCase
	JWTSecret   string
}

// Router registra las rutas de la API. Las eliminaciones y la administración
// de usuarios requieren rol admin; el resto, cualquier usuario autenticado.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	adminOnly := RequireRole(entity.RoleAdmin)

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	authGroup2 := protected.Group("/auth")
	authGroup2.Get("/me", authHandler.Me)

	// Products (protegido)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	// registrada antes de /:id para que "low-stock" no se tome como ID
	products.Get("/low-stock", productHandler.LowStock)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", adminOnly, productHandler.Delete)

	// Batches (protegido)
	batches := protected.Group("/batches")
	batchHandler := NewBatchHandler(deps.ReceivingUC)
	batches.Post("/", batchHandler.Receive)
	batches.Get("/", batchHandler.List)
	batches.Delete("/:id", adminOnly, batchHandler.Delete)

	// Sales (protegido)
	sales := protected.Group("/sales")
	saleHandler := NewSaleHandler(deps.CheckoutUC, deps.ReceiptUC)
	sales.Post("/", saleHandler.Checkout)
	sales.Get("/", saleHandler.List)
	sales.Get("/:id", saleHandler.GetByID)
	sales.Get("/:id/receipt", saleHandler.Receipt)
	sales.Delete("/:id", adminOnly, saleHandler.Delete)

	// Clients (protegido)
	clients := protected.Group("/clients")
	clientHandler := NewClientHandler(deps.ClientUC)
	clients.Post("/", clientHandler.Create)
	clients.Get("/", clientHandler.List)
	clients.Get("/:id", clientHandler.GetByID)
	clients.Put("/:id", clientHandler.Update)
	clients.Delete("/:id", adminOnly, clientHandler.Delete)

	// Expenses (protegido)
	expenses := protected.Group("/expenses")
	expenseHandler := NewExpenseHandler(deps.ExpenseUC)
	expenses.Post("/", expenseHandler.Create)
	expenses.Get("/", expenseHandler.List)
	expenses.Delete("/:id", adminOnly, expenseHandler.Delete)

	// Users y concesiones de acceso (solo admin)
	users := protected.Group("/users", adminOnly)
	userHandler := NewUserHandler(deps.AccessUC)
	users.Get("/profiles", userHandler.ListProfiles)
	users.Put("/profiles/:id/role", userHandler.UpdateRole)
	users.Get("/allowed-emails", userHandler.ListGrants)
	users.Post("/allowed-emails", userHandler.GrantAccess)
	users.Delete("/allowed-emails/:id", userHandler.RevokeAccess)

	// Dashboard (protegido)
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard", dashboardHandler.Summary)
}
