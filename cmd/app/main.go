package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strconv"

	"tracker/cmd"
	"tracker/internal/adapters/out/notify"
	"tracker/internal/adapters/out/postgres/historyrepo"
	"tracker/internal/adapters/out/postgres/ledgerrepo"
	"tracker/internal/adapters/out/postgres/timerrepo"
	"tracker/internal/adapters/out/postgres/transferrepo"
	"tracker/internal/adapters/out/postgres/unitrepo"
	"tracker/internal/adapters/out/roles"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB := mustConnectDB(configs)

	app := cmd.NewCompositionRoot(configs, gormDB)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	app.NotificationSink().Start(ctx)

	jobManager := app.CreateJobManager(configs)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:   goDotEnvVariable("HTTP_PORT"),
		DBHost:     goDotEnvVariable("DB_HOST"),
		DBPort:     goDotEnvVariable("DB_PORT"),
		DBUser:     goDotEnvVariable("DB_USER"),
		DBPassword: goDotEnvVariable("DB_PASSWORD"),
		DBName:     goDotEnvVariable("DB_NAME"),
		DBSslMode:  goDotEnvVariable("DB_SSLMODE"),

		VapidPublicKey:  goDotEnvVariable("VAPID_PUBLIC_KEY"),
		VapidPrivateKey: goDotEnvVariable("VAPID_PRIVATE_KEY"),
		VapidSubscriber: goDotEnvVariable("VAPID_SUBSCRIBER"),

		NotifyPoolSize:   intEnvVariable("NOTIFY_POOL_SIZE", 4),
		RoleCacheTTL:     goDotEnvVariable("ROLE_CACHE_TTL"),
		ReminderSchedule: goDotEnvVariable("REMINDER_SCHEDULE"),
		ReminderAge:      goDotEnvVariable("REMINDER_AGE"),
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

func intEnvVariable(key string, fallback int) int {
	raw := goDotEnvVariable(key)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		log.Fatalf("Error parsing %s: %v", key, err)
	}
	return value
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	err = gormDB.AutoMigrate(
		&unitrepo.UnitDTO{},
		&transferrepo.TransferDTO{},
		&ledgerrepo.RecordDTO{},
		&timerrepo.TimerDTO{},
		&historyrepo.EventDTO{},
		&notify.SubscriptionDTO{},
		&roles.UserDTO{},
	)
	if err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}

	return gormDB
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	app.CreateServer().RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
