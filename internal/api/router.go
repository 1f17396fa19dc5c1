package api

import (
	"github.com/betoquiroga/edmoney-backend/internal/api/handlers"
	"github.com/betoquiroga/edmoney-backend/pkg/auth"
	"github.com/betoquiroga/edmoney-backend/pkg/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"
)

func SetupRouter(
	metricsHandler *handlers.MetricsHandler,
	txHandler *handlers.TransactionHandler,
	categoryHandler *handlers.CategoryHandler,
	pmHandler *handlers.PaymentMethodHandler,
	imHandler *handlers.InputMethodHandler,
	jwtManager *auth.JWTManager,
	appLogger *zap.Logger,
) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	// Middleware
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization",
	}))
	app.Use(logger.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// Every route below requires a verified token; issuance happens
	// upstream.
	protected := app.Group("/api/v1", middleware.AuthMiddleware(jwtManager, appLogger))

	protected.Get("/metrics", metricsHandler.GetMetrics)

	transactions := protected.Group("/transactions")
	transactions.Get("/summary", txHandler.Summary)
	transactions.Get("/recent", txHandler.Recent)
	transactions.Get("/totals-by-period", txHandler.TotalsByPeriod)
	transactions.Get("/recurring/:recurringId", txHandler.Recurring)
	transactions.Post("", txHandler.Create)
	transactions.Get("", txHandler.List)
	transactions.Get("/:id", txHandler.Get)
	transactions.Put("/:id", txHandler.Update)
	transactions.Delete("/:id", txHandler.Delete)

	categories := protected.Group("/categories")
	categories.Post("", categoryHandler.Create)
	categories.Get("", categoryHandler.List)
	categories.Get("/:id", categoryHandler.Get)
	categories.Put("/:id", categoryHandler.Update)
	categories.Delete("/:id", categoryHandler.Delete)

	paymentMethods := protected.Group("/payment-methods")
	paymentMethods.Post("", pmHandler.Create)
	paymentMethods.Get("", pmHandler.List)
	paymentMethods.Get("/:id", pmHandler.Get)
	paymentMethods.Put("/:id", pmHandler.Update)
	paymentMethods.Delete("/:id", pmHandler.Delete)

	inputMethods := protected.Group("/input-methods")
	inputMethods.Post("", imHandler.Create)
	inputMethods.Get("", imHandler.List)
	inputMethods.Get("/:id", imHandler.Get)
	inputMethods.Put("/:id", imHandler.Update)
	inputMethods.Delete("/:id", imHandler.Delete)

	return app
}
