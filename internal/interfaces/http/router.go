package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/almacen-api/internal/application/auth"
	"github.com/jhoicas/almacen-api/internal/application/stock"
	"github.com/jhoicas/almacen-api/internal/application/usecase"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       *auth.AuthUseCase
	ProductUC    *usecase.ProductUseCase
	LocationUC   *usecase.LocationUseCase
	UserUC       *usecase.UserUseCase
	HistoryUC    *usecase.HistoryUseCase
	StatsUC      *usecase.StatsUseCase
	StockQueryUC *usecase.StockQueryUseCase
	Engine       *stock.MovementUseCase
	StockAdminUC *stock.AdminUseCase
	JWTSecret    string
	MobileAppKey string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token, cualquier rol)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	productHandler := NewProductHandler(deps.ProductUC)
	locationHandler := NewLocationHandler(deps.LocationUC)
	stockHandler := NewStockHandler(deps.StockQueryUC, deps.Engine, deps.StockAdminUC)

	protected.Get("/products", productHandler.List)
	protected.Get("/locations", locationHandler.List)
	protected.Get("/stock", stockHandler.List)
	protected.Get("/stock/product/:id", stockHandler.ByProduct)

	// Movimientos: trabajadores y admins; los viewers solo consultan
	protected.Post("/stock/move",
		RequireRole(entity.RoleWorker, entity.RoleAdmin), stockHandler.Move)

	// Panel admin
	admin := protected.Group("/admin", RequireRole(entity.RoleAdmin))

	userHandler := NewUserHandler(deps.UserUC)
	admin.Get("/users", userHandler.List)
	admin.Post("/users", userHandler.Create)
	admin.Put("/users/:id", userHandler.Update)
	admin.Delete("/users/:id", userHandler.Delete)

	admin.Get("/products", productHandler.List)
	admin.Post("/products", productHandler.Create)
	admin.Put("/products/:id", productHandler.Update)
	admin.Delete("/products/:id", productHandler.Delete)

	admin.Post("/locations", locationHandler.Create)
	admin.Put("/locations/:id", locationHandler.Update)
	admin.Delete("/locations/:id", locationHandler.Delete)

	admin.Put("/stock/:id", stockHandler.SetQuantity)
	admin.Delete("/stock/:id", stockHandler.RemoveEntry)

	historyHandler := NewHistoryHandler(deps.HistoryUC, deps.StatsUC)
	admin.Get("/history", historyHandler.List)
	admin.Get("/stats", historyHandler.Stats)

	// Canal móvil: clave de aplicación en lugar de JWT
	mobile := api.Group("/mobile", MobileKeyMiddleware(deps.MobileAppKey))
	mobileHandler := NewMobileHandler(deps.ProductUC, deps.LocationUC, deps.StockQueryUC, deps.Engine)
	mobile.Get("/products", mobileHandler.ListProducts)
	mobile.Post("/products", mobileHandler.CreateProduct)
	mobile.Get("/locations", mobileHandler.ListLocations)
	mobile.Get("/stock/by-qr", mobileHandler.StockByQR)
	mobile.Get("/stock/by-location", mobileHandler.StockByLocation)
	mobile.Post("/stock/add", mobileHandler.AddStock)
	mobile.Post("/stock/move", mobileHandler.MoveStock)
}
