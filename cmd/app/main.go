package main

import (
	"fmt"
	"log/slog"
	"os"

	"ordering/cmd"
	httpadapter "ordering/internal/adapters/in/http"
	"ordering/internal/adapters/out/postgres/orderrepo"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	db := connectDB(configs)

	app := cmd.NewCompositionRoot(configs, db)

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	jobManager := app.CreateJobManager(logger)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, logger, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	// Absent .env is fine in containerized deployments; variables come from
	// the environment directly.
	_ = godotenv.Load(".env")

	return cmd.Config{
		HTTPPort:       os.Getenv("HTTP_PORT"),
		DBHost:         os.Getenv("DB_HOST"),
		DBPort:         os.Getenv("DB_PORT"),
		DBUser:         os.Getenv("DB_USER"),
		DBPassword:     os.Getenv("DB_PASSWORD"),
		DBName:         os.Getenv("DB_NAME"),
		DBSslMode:      os.Getenv("DB_SSLMODE"),
		AuthToken:      os.Getenv("AUTH_TOKEN"),
		PurgeSchedule:  os.Getenv("PURGE_SCHEDULE"),
		PurgeRetention: os.Getenv("PURGE_RETENTION"),
	}
}

func connectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	db, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(&orderrepo.OrderDTO{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	return db
}

func startWebServer(app *cmd.CompositionRoot, logger *slog.Logger, port string) {
	e := echo.New()
	e.HTTPErrorHandler = httpadapter.NewErrorHandler(logger)
	e.Use(httpadapter.CorrelationID())

	createHandler := app.CreateCreateOrderCommandHandler()
	updateHandler := app.CreateUpdateOrderCommandHandler()
	deleteHandler := app.CreateDeleteOrderCommandHandler()
	getHandler := app.CreateGetOrderQueryHandler()
	listHandler := app.CreateListOrdersQueryHandler()

	server := httpadapter.NewServer(
		&createHandler,
		&updateHandler,
		&deleteHandler,
		getHandler,
		listHandler,
		app.CreateTokenVerifier(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
