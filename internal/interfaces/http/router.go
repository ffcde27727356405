package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/swaggo/swag"

	"github.com/jhoicas/dailycare-store/internal/application/analytics"
	"github.com/jhoicas/dailycare-store/internal/application/auth"
	"github.com/jhoicas/dailycare-store/internal/application/dto"
	"github.com/jhoicas/dailycare-store/internal/application/usecase"
	"github.com/jhoicas/dailycare-store/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC     *auth.AuthUseCase
	ProductUC  *usecase.ProductUseCase
	CategoryUC *usecase.CategoryUseCase
	CartUC     *usecase.CartUseCase
	WishlistUC *usecase.WishlistUseCase
	OrderUC    *usecase.OrderUseCase
	UserUC     *usecase.UserUseCase
	AdminUC    *usecase.AdminUseCase
	UploadUC   *usecase.UploadUseCase
	StatsUC    *analytics.StatsUseCase
	JWTSecret  string
	Log        *logger.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	log := deps.Log
	if log == nil {
		log = logger.Nop()
	}

	authHandler := NewAuthHandler(deps.AuthUC, log.Component("auth"))
	productHandler := NewProductHandler(deps.ProductUC, log.Component("catalog"))
	categoryHandler := NewCategoryHandler(deps.CategoryUC, log.Component("catalog"))
	cartHandler := NewCartHandler(deps.CartUC, log.Component("cart"))
	wishlistHandler := NewWishlistHandler(deps.WishlistUC, log.Component("wishlist"))
	orderHandler := NewOrderHandler(deps.OrderUC, log.Component("orders"))
	adminHandler := NewAdminHandler(deps.StatsUC, deps.UserUC, deps.AdminUC, log.Component("admin"))
	uploadHandler := NewUploadHandler(deps.UploadUC, log.Component("upload"))

	requireAuth := AuthMiddleware(deps.JWTSecret)
	requireAdmin := RequireRole(RoleAdmin)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "Daily Care Store API", "status": "running"})
	})
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "healthy"})
	})

	api := app.Group("/api")

	api.Get("/docs.json", func(c *fiber.Ctx) error {
		doc, err := swag.ReadDoc()
		if err != nil {
			return respondError(c, log, err)
		}
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSONCharsetUTF8)
		return c.SendString(doc)
	})

	// Auth (público salvo /me)
	authGroup := api.Group("/auth")
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/send-otp", authHandler.SendOTP)
	authGroup.Post("/verify-otp", authHandler.VerifyOTP)
	authGroup.Post("/forgot-password", authHandler.ForgotPassword)
	authGroup.Post("/reset-password", authHandler.ResetPassword)
	authGroup.Get("/me", requireAuth, authHandler.Me)
	authGroup.Put("/me", requireAuth, authHandler.UpdateMe)

	// Catálogo: lectura pública, escritura solo admin. Las rutas fijas van antes de /:id.
	products := api.Group("/products")
	products.Get("/", productHandler.List)
	products.Get("/bestsellers", productHandler.Bestsellers)
	products.Get("/new-arrivals", productHandler.NewArrivals)
	products.Get("/slug/:slug", productHandler.GetBySlug)
	products.Get("/:id", productHandler.GetByID)
	products.Post("/", requireAuth, requireAdmin, productHandler.Create)
	products.Put("/:id", requireAuth, requireAdmin, productHandler.Update)
	products.Delete("/:id", requireAuth, requireAdmin, productHandler.Delete)

	categories := api.Group("/categories")
	categories.Get("/", categoryHandler.List)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Post("/", requireAuth, requireAdmin, categoryHandler.Create)

	api.Get("/feeds/products.xml", productHandler.Feed)

	// Rutas protegidas (requieren Bearer Token)
	cart := api.Group("/cart", requireAuth)
	cart.Get("/", cartHandler.List)
	cart.Get("/summary", cartHandler.Summary)
	cart.Post("/", cartHandler.Add)
	cart.Put("/:item_id", cartHandler.UpdateQuantity)
	cart.Delete("/:item_id", cartHandler.Remove)
	cart.Delete("/", cartHandler.Clear)

	wishlist := api.Group("/wishlist", requireAuth)
	wishlist.Get("/", wishlistHandler.List)
	wishlist.Post("/", wishlistHandler.Add)
	wishlist.Delete("/:product_id", wishlistHandler.Remove)

	orders := api.Group("/orders", requireAuth)
	orders.Get("/", orderHandler.List)
	orders.Post("/", orderHandler.Create)
	orders.Get("/:id", orderHandler.GetByID)
	orders.Get("/:id/invoice", orderHandler.Invoice)

	// Administración
	admin := api.Group("/admin", requireAuth, requireAdmin)
	admin.Get("/stats", adminHandler.Stats)
	admin.Get("/users", adminHandler.ListUsers)
	admin.Get("/users/:id", adminHandler.GetUser)
	admin.Put("/users/:id", adminHandler.UpdateUser)
	admin.Put("/users/:id/toggle-admin", adminHandler.ToggleAdmin)
	admin.Put("/users/:id/toggle-active", adminHandler.ToggleActive)
	admin.Post("/products", productHandler.Create)
	admin.Put("/products/:id", productHandler.Update)
	admin.Delete("/products/:id", productHandler.Delete)
	admin.Post("/categories", categoryHandler.Create)
	admin.Delete("/categories/:id", categoryHandler.Delete)
	admin.Get("/orders", adminHandler.ListOrders)
	admin.Put("/orders/:id/status", adminHandler.UpdateOrderStatus)
	admin.Get("/notifications", adminHandler.Notifications)
	admin.Delete("/notifications/:id", adminHandler.ClearNotification)

	upload := api.Group("/upload", requireAuth, requireAdmin)
	upload.Post("/image", uploadHandler.UploadImage)

	// Cualquier otra ruta: 404 con el mismo formato de error
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Detail: "Not Found"})
	})
}
