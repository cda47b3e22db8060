package main

import (
	"context"
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"distribution/cmd"
	httpadapter "distribution/internal/adapters/in/http"
	"distribution/internal/adapters/out/postgres/customerrepo"
	"distribution/internal/adapters/out/postgres/invoicerepo"
	"distribution/internal/adapters/out/postgres/orderrepo"
	"distribution/internal/adapters/out/postgres/pricerepo"
	"distribution/internal/adapters/out/postgres/shipmentrepo"
	"distribution/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	configs := getConfigs(logger)

	gormDB, err := openDatabase(configs)
	if err != nil {
		logger.Error("database connection failed", "error", err)
		os.Exit(1)
	}

	app := cmd.NewCompositionRoot(configs, gormDB, logger)
	defer func() {
		if closeErr := app.Close(); closeErr != nil {
			logger.Warn("composition root close", "error", closeErr)
		}
	}()

	jobManager := jobs.NewJobManager(
		app.CreateMarkOverdueInvoicesCommandHandler(),
		configs.OverdueSweepSchedule,
		logger,
	)
	if err := jobManager.StartAll(); err != nil {
		logger.Error("job startup failed", "error", err)
		os.Exit(1)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort, logger)
}

func getConfigs(logger *slog.Logger) cmd.Config {
	if err := godotenv.Load(".env"); err != nil {
		logger.Info("no .env file, using process environment")
	}

	config := cmd.Config{
		HTTPPort:                envOrDefault("HTTP_PORT", "8080"),
		DBHost:                  envOrDefault("DB_HOST", "localhost"),
		DBPort:                  envOrDefault("DB_PORT", "5432"),
		DBUser:                  os.Getenv("DB_USER"),
		DBPassword:              os.Getenv("DB_PASSWORD"),
		DBName:                  os.Getenv("DB_NAME"),
		DBSslMode:               envOrDefault("DB_SSLMODE", "disable"),
		KafkaNotificationsTopic: envOrDefault("KAFKA_NOTIFICATIONS_TOPIC", "notifications"),
		RedisAddr:               os.Getenv("REDIS_ADDR"),
		OverdueSweepSchedule:    envOrDefault("OVERDUE_SWEEP_SCHEDULE", "0 0 * * * *"),
	}

	if brokers := os.Getenv("KAFKA_BROKERS"); brokers != "" {
		config.KafkaBrokers = strings.Split(brokers, ",")
	}

	return config
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func openDatabase(configs cmd.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword,
		configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	err = gormDB.AutoMigrate(
		&customerrepo.CustomerDTO{},
		&orderrepo.OrderDTO{},
		&shipmentrepo.ShipmentDTO{},
		&invoicerepo.InvoiceDTO{},
		&pricerepo.PriceDTO{},
	)
	if err != nil {
		return nil, err
	}

	return gormDB, nil
}

func startWebServer(app *cmd.CompositionRoot, port string, logger *slog.Logger) {
	e := echo.New()
	e.HideBanner = true

	e.GET("/health", func(c echo.Context) error {
		return c.String(nethttp.StatusOK, "Healthy")
	})

	server := httpadapter.NewServer(
		app.CreateCreateCustomerCommandHandler(),
		app.CreateCreateOrderCommandHandler(),
		app.CreateDecideOrderCommandHandler(),
		app.CreateCreateShipmentCommandHandler(),
		app.CreateUpdateShipmentCommandHandler(),
		app.CreateCopyShipmentCommandHandler(),
		app.CreateDeleteShipmentCommandHandler(),
		app.CreateInspectShipmentCommandHandler(),
		app.CreateReceiveShipmentCommandHandler(),
		app.CreateCreateInvoiceCommandHandler(),
		app.CreateCreatePriceCommandHandler(),
		app.CreateListCustomersQueryHandler(),
		app.CreateListOrdersQueryHandler(),
		app.CreateListShipmentsQueryHandler(),
		app.CreateCheckShipmentCodeQueryHandler(),
		app.CreateListInvoicesQueryHandler(),
		app.CreateListPricesQueryHandler(),
		app.CreateGetCreditReportQueryHandler(),
	)
	server.RegisterRoutes(e)

	go func() {
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil && err != nethttp.ErrServerClosed {
			logger.Error("http server stopped", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("http server shutdown failed", "error", err)
	}
}
