package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/AbnerVital/7KDelivery/cmd"
	httpserver "github.com/AbnerVital/7KDelivery/internal/adapters/in/http"
	"github.com/AbnerVital/7KDelivery/internal/adapters/in/ws"
	"github.com/AbnerVital/7KDelivery/internal/adapters/out/postgres/addressrepo"
	"github.com/AbnerVital/7KDelivery/internal/adapters/out/postgres/orderrepo"
	"github.com/AbnerVital/7KDelivery/internal/adapters/out/postgres/productrepo"
	"github.com/AbnerVital/7KDelivery/internal/adapters/out/postgres/settingsrepo"
	"github.com/AbnerVital/7KDelivery/internal/adapters/out/rediscache"
	"github.com/AbnerVital/7KDelivery/internal/core/ports"
	"github.com/AbnerVital/7KDelivery/internal/pkg/auth"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	gormDB := mustConnectDB(configs)

	var statusCache ports.OrderStatusCache
	if configs.RedisAddr != "" {
		statusCache = rediscache.NewOrderStatusCache(rediscache.New(configs.RedisAddr))
	} else {
		logger.Warn("REDIS_ADDR is not set, order status caching is disabled")
	}

	hub := ws.NewHub()

	app := cmd.NewCompositionRoot(configs, gormDB, hub, statusCache, logger)

	watchdog := app.CreateStaleOrderWatchdog()
	if err := watchdog.Start(); err != nil {
		log.Fatalf("Failed to start stale order watchdog: %v", err)
	}
	defer watchdog.Stop()

	startWebServer(&app, hub, configs)
}

func getConfigs() cmd.Config {
	// A .env file is a development convenience; in containers everything
	// arrives through the environment.
	_ = godotenv.Load(".env")

	return cmd.Config{
		HTTPPort:      envOrDefault("HTTP_PORT", "8080"),
		DBHost:        envOrDefault("DB_HOST", "localhost"),
		DBPort:        envOrDefault("DB_PORT", "5432"),
		DBUser:        envOrDefault("DB_USER", "postgres"),
		DBPassword:    envOrDefault("DB_PASSWORD", "postgres"),
		DBName:        envOrDefault("DB_NAME", "storefront"),
		DBSslMode:     envOrDefault("DB_SSLMODE", "disable"),
		RedisAddr:     os.Getenv("REDIS_ADDR"),
		AuthSecret:    mustEnv("AUTH_SECRET"),
		StaleOrderAge: durationEnv("STALE_ORDER_AGE", 15*time.Minute),
	}
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func mustEnv(key string) string {
	value := os.Getenv(key)
	if value == "" {
		log.Fatalf("Required environment variable %s is not set", key)
	}
	return value
}

func durationEnv(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}

	parsed, err := time.ParseDuration(value)
	if err != nil {
		log.Fatalf("Invalid duration in %s: %v", key, err)
	}
	return parsed
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = gormDB.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
		&productrepo.ProductDTO{},
		&addressrepo.AddressDTO{},
		&settingsrepo.SettingsDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database schema: %v", err)
	}

	return gormDB
}

func startWebServer(app *cmd.CompositionRoot, hub *ws.Hub, configs cmd.Config) {
	e := echo.New()
	e.HideBanner = true

	authMiddleware := httpserver.NewAuthMiddleware(auth.NewCodec(configs.AuthSecret))

	server := httpserver.NewServer(
		app.CreateCreateOrderCommandHandler(),
		app.CreateChangeOrderStatusCommandHandler(),
		app.CreateCreateProductCommandHandler(),
		app.CreateUpdateProductCommandHandler(),
		app.CreateDeleteProductCommandHandler(),
		app.CreateCreateAddressCommandHandler(),
		app.CreateDeleteAddressCommandHandler(),
		app.CreateUpdateSettingsCommandHandler(),
		app.CreateGetOrdersQueryHandler(),
		app.CreateGetOrderQueryHandler(),
		app.CreateGetOrderStatusQueryHandler(),
		app.CreateListProductsQueryHandler(),
		app.CreateListAddressesQueryHandler(),
		app.CreateGetSettingsQueryHandler(),
		app.CreateCalculateDeliveryQuoteQueryHandler(),
		authMiddleware,
		hub,
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)))
}
