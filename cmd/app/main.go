package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"tailoring/cmd"
	httpadapter "tailoring/internal/adapters/in/http"
	"tailoring/internal/adapters/out/postgres/orderrepo"
	"tailoring/internal/adapters/out/postgres/tailorrepo"
	"tailoring/internal/generated/servers"
	"tailoring/internal/pkg/metrics"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	gormDB := mustConnectDB(configs)

	app := cmd.NewCompositionRoot(configs, gormDB, logger)
	defer func() {
		_ = app.Close()
	}()

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:               goDotEnvVariable("HTTP_PORT"),
		DBHost:                 goDotEnvVariable("DB_HOST"),
		DBPort:                 goDotEnvVariable("DB_PORT"),
		DBUser:                 goDotEnvVariable("DB_USER"),
		DBPassword:             goDotEnvVariable("DB_PASSWORD"),
		DBName:                 goDotEnvVariable("DB_NAME"),
		DBSslMode:              goDotEnvVariable("DB_SSLMODE"),
		KafkaHost:              goDotEnvVariable("KAFKA_HOST"),
		KafkaOrderChangedTopic: goDotEnvVariable("KAFKA_ORDER_CHANGED_TOPIC"),
		DepositConfirmStrict:   goDotEnvVariable("DEPOSIT_CONFIRM_STRICT"),
		StalePlacedAfterMin:    goDotEnvVariable("STALE_PLACED_AFTER_MIN"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err = gormDB.AutoMigrate(&orderrepo.OrderDTO{}, &tailorrepo.TailorDTO{}); err != nil {
		log.Fatalf("Failed to migrate database schema: %v", err)
	}

	return gormDB
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()

	httpMetrics := metrics.NewHTTPMetrics("tailoring")
	e.Use(httpMetrics.Middleware())

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/metrics", echo.WrapHandler(metrics.Handler()))

	server := httpadapter.NewServer(
		app.CreatePlaceOrderCommandHandler(),
		app.CreateAcceptOrderCommandHandler(),
		app.CreateRejectOrderCommandHandler(),
		app.CreateCancelOrderCommandHandler(),
		app.CreateConfirmDepositCommandHandler(),
		app.CreateAdvanceOrderCommandHandler(),
		app.CreateRegisterTailorCommandHandler(),
		app.CreateGetOrderQueryHandler(),
		app.CreateGetRequesterOrdersQueryHandler(),
		app.CreateGetTailorOrdersQueryHandler(),
		app.CreateFindNearbyTailorsQueryHandler(),
	)
	servers.RegisterHandlersWithBaseURL(e, server, "/api/v1")

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
