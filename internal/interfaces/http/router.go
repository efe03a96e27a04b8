package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/karimbadr/mohasib-api/internal/application/auth"
	"github.com/karimbadr/mohasib-api/internal/application/inventory"
	"github.com/karimbadr/mohasib-api/internal/application/ledger"
	"github.com/karimbadr/mohasib-api/internal/application/project"
	"github.com/karimbadr/mohasib-api/internal/application/report"
	"github.com/karimbadr/mohasib-api/internal/application/usecase"
)

// RouterDeps are the dependencies the router wires into handlers.
type RouterDeps struct {
	AuthUC        *auth.AuthUseCase
	TransactionUC *ledger.TransactionUseCase
	InventoryUC   *inventory.UseCase
	ProjectUC     *project.UseCase
	ReportUC      *report.UseCase
	UserUC        *usecase.UserUseCase
	JWTSecret     string
}

// Router registers the API routes.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (public)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	// Everything else requires a Bearer token.
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Ledger
	transactions := protected.Group("/transactions")
	transactionHandler := NewTransactionHandler(deps.TransactionUC)
	transactions.Post("/", transactionHandler.Create)
	transactions.Get("/", transactionHandler.List)
	transactions.Post("/:id/approve", transactionHandler.Approve)
	transactions.Delete("/:id", transactionHandler.Delete)

	// Inventory
	inventoryGroup := protected.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.InventoryUC)
	inventoryGroup.Post("/items", inventoryHandler.CreateItem)
	inventoryGroup.Get("/items", inventoryHandler.ListItems)
	inventoryGroup.Get("/items/:id/movements", inventoryHandler.ItemMovements)
	inventoryGroup.Delete("/items/:id", inventoryHandler.DeleteItem)
	inventoryGroup.Post("/receipts", inventoryHandler.Receipt)
	inventoryGroup.Post("/issues", inventoryHandler.Issue)
	inventoryGroup.Get("/movements", inventoryHandler.ListMovements)

	// Projects
	projects := protected.Group("/projects")
	projectHandler := NewProjectHandler(deps.ProjectUC)
	projects.Post("/", projectHandler.Create)
	projects.Get("/", projectHandler.List)
	// Cost/sale deletes sit above /:id so Fiber does not swallow them as IDs.
	projects.Delete("/costs/:costId", projectHandler.DeleteCost)
	projects.Delete("/sales/:saleId", projectHandler.DeleteSale)
	projects.Get("/:id", projectHandler.Get)
	projects.Delete("/:id", projectHandler.Delete)
	projects.Post("/:id/costs", projectHandler.AddCost)
	projects.Post("/:id/sales", projectHandler.AddSale)

	// Reports
	reportHandler := NewReportHandler(deps.ReportUC)
	protected.Get("/reports/:kind", reportHandler.Get)

	// Account administration (manager only, enforced in the use case)
	admin := protected.Group("/admin/users")
	userHandler := NewUserHandler(deps.UserUC)
	admin.Get("/", userHandler.List)
	admin.Post("/", userHandler.Create)
	admin.Put("/:id", userHandler.Update)
	admin.Delete("/:id", userHandler.Delete)
}
