package api

import (
	"finsight/internal/api/handlers"
	"finsight/pkg/auth"
	"finsight/pkg/config"
	"finsight/pkg/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"
)

func SetupRouter(
	cfg *config.Config,
	authHandler *handlers.AuthHandler,
	stmtHandler *handlers.StatementHandler,
	summaryHandler *handlers.SummaryHandler,
	jwtManager *auth.JWTManager,
	appLogger *zap.Logger,
) *fiber.App {
	app := fiber.New(fiber.Config{
		BodyLimit:    int(cfg.Upload.MaxFileSize),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
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

	// Auth routes (public)
	authGroup := app.Group("/user/auth")
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/refresh", authHandler.RefreshToken)

	// Protected routes
	protected := app.Group("/api/v1", middleware.AuthMiddleware(jwtManager, appLogger))

	statements := protected.Group("/statements")
	statements.Post("/upload", stmtHandler.UploadStatement)
	statements.Get("", stmtHandler.ListStatements)
	statements.Delete("/:id", stmtHandler.DeleteStatement)

	protected.Get("/transactions", stmtHandler.ListTransactions)

	summary := protected.Group("/summary")
	summary.Get("/daily", summaryHandler.Daily)
	summary.Get("/weekly", summaryHandler.Weekly)
	summary.Get("/monthly", summaryHandler.Monthly)
	summary.Get("/category", summaryHandler.ByCategory)
	summary.Get("/current-fy", summaryHandler.CurrentFiscalYear)
	summary.Get("/last-3-fy", summaryHandler.LastThreeFiscalYears)

	return app
}
