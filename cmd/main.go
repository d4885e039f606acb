package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/laciaimperator/Online-store/internal/config"
	"github.com/laciaimperator/Online-store/internal/handlers"
	"github.com/laciaimperator/Online-store/internal/httpx"
	"github.com/laciaimperator/Online-store/internal/messaging"
	"github.com/laciaimperator/Online-store/internal/repository"
	"github.com/laciaimperator/Online-store/internal/service"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}
	setLogLevel(cfg.LogLevel)

	log.Info().Str("appName", cfg.AppName).Msg("Store service starting")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	store, err := repository.Connect(ctx, cfg)
	cancel()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to MongoDB")
	}
	defer func() {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		if err := store.Disconnect(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("MongoDB disconnect error")
		}
	}()

	ctx, cancel = context.WithTimeout(context.Background(), 10*time.Second)
	err = store.EnsureIndexes(ctx)
	cancel()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create indexes")
	}

	var publisher service.EventPublisher
	if cfg.EventsEnabled {
		rabbitClient := messaging.NewRabbitMQClient(messaging.Config{
			URL:        cfg.RabbitMQURL,
			Exchange:   cfg.RabbitMQExchange,
			RetryCount: cfg.RabbitMQRetryCount,
			RetryDelay: cfg.RabbitMQRetryDelay,
		})
		if err := rabbitClient.Connect(); err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to RabbitMQ")
		}
		defer rabbitClient.Close()
		publisher = messaging.NewPublisher(rabbitClient)
	}

	productService := service.NewProductService(store.Products)
	customerService := service.NewCustomerService(store.Customers)
	orderService := service.NewOrderService(store.Orders, store.Customers, store.Products, publisher, cfg.RabbitMQRetryCount)
	reportService := service.NewReportService(store.Orders)

	productHandler := handlers.NewProductHandler(productService)
	customerHandler := handlers.NewCustomerHandler(customerService)
	orderHandler := handlers.NewOrderHandler(orderService)
	reportHandler := handlers.NewReportHandler(reportService)

	app := setupFiberApp(cfg)
	setupRoutes(app, productHandler, customerHandler, orderHandler, reportHandler)

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Info().Msg("Store service shutting down")
		if err := app.Shutdown(); err != nil {
			log.Error().Err(err).Msg("Shutdown error")
		}
	}()

	log.Info().Str("port", cfg.Port).Msg("Store service listening")
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("Server start error")
	}
}

func setLogLevel(level string) {
	switch strings.ToLower(level) {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "warn":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}

func setupFiberApp(cfg config.Config) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      cfg.AppName,
		ErrorHandler: errorHandler,
	})

	app.Use(recover.New())
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format: "[${time}] ${status} - ${method} ${path} - ${latency}\n",
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PATCH,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization,X-Request-ID",
	}))

	return app
}

func setupRoutes(app *fiber.App, products *handlers.ProductHandler, customers *handlers.CustomerHandler,
	orders *handlers.OrderHandler, reports *handlers.ReportHandler) {
	api := app.Group("/api/v1")

	api.Get("/health", reports.HealthCheck)

	productRoutes := api.Group("/products")
	productRoutes.Post("/", products.Create)
	productRoutes.Get("/", products.List)
	productRoutes.Get("/:id", products.Get)
	productRoutes.Patch("/:id", products.Update)
	productRoutes.Delete("/:id", products.Delete)

	customerRoutes := api.Group("/customers")
	customerRoutes.Post("/", customers.Create)
	customerRoutes.Get("/", customers.List)
	customerRoutes.Get("/:id", customers.Get)
	customerRoutes.Patch("/:id", customers.Update)
	customerRoutes.Delete("/:id", customers.Delete)
	customerRoutes.Get("/:customer_id/orders", orders.GetByCustomer)

	orderRoutes := api.Group("/orders")
	orderRoutes.Post("/", orders.Create)
	orderRoutes.Get("/:id", orders.Get)
	orderRoutes.Delete("/:id", orders.Delete)

	reportRoutes := api.Group("/reports")
	reportRoutes.Get("/orders-per-customer", reports.OrdersPerCustomer)
	reportRoutes.Get("/total-spent-per-customer", reports.TotalSpentPerCustomer)

	app.Use("*", func(c *fiber.Ctx) error {
		return httpx.NotFoundResponse(c, "Route not found")
	})
}

func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal Server Error"

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	log.Error().Err(err).Msg("Unhandled request error")

	return c.Status(code).JSON(fiber.Map{
		"success": false,
		"message": message,
	})
}
