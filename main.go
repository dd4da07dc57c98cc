package main

import (
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/afero"

	"github.com/color-game/swatchbook/api"
	"github.com/color-game/swatchbook/datastore"
	"github.com/color-game/swatchbook/migrations"
	"github.com/color-game/swatchbook/scheduler"
)

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	// Get configuration from environment
	config := api.Config{
		HTTPPort:           getEnv("HTTP_PORT", ":8080"),
		DatabaseType:       getEnv("DB_TYPE", "postgres"),
		DatabaseHost:       getEnv("DB_HOST", "localhost:5432"),
		DatabaseUser:       getEnv("DB_USER", "postgres"),
		DatabasePassword:   getEnv("DB_PASSWORD", ""),
		DatabaseName:       getEnv("DB_NAME", "swatchbook"),
		SSLMode:            getEnv("SSL_MODE", "disable"),
		MigrationsDir:      getEnv("MIGRATIONS_DIR", "migrations"),
		ColorAPIURL:        getEnv("COLOR_API_URL", scheduler.DefaultColorAPIURL),
		JwtSecret:          getEnv("JWT_SECRET", "your-secret-key-change-this"),
		JwtAccessDuration:  getEnvInt("JWT_ACCESS_DURATION", 900),     // 15 minutes
		JwtRefreshDuration: getEnvInt("JWT_REFRESH_DURATION", 604800), // 7 days
		JwtDomain:          getEnv("JWT_DOMAIN", ""),
		AllowedOrigins:     getEnvSlice("ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173"),
		DevMode:            getEnvBool("DEV_MODE", true),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		LogJSON:            getEnvBool("LOG_JSON", false),
	}

	configureLogging(config)

	// Create database connection
	connStr := datastore.BuildDBConnStr(
		config.DatabasePassword,
		config.DatabaseUser,
		config.DatabaseHost,
		config.DatabaseName,
		config.SSLMode,
	)

	dbConn, dbErr := datastore.NewDB(config.DatabaseType, connStr)
	if dbErr != nil {
		log.Fatalf("Failed to connect to database: %v", dbErr)
	}
	defer dbConn.Close()

	// Run database migrations
	if err := migrations.RunMigrations(dbConn, afero.NewOsFs(), config.MigrationsDir); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	userRepo, userRepoErr := datastore.NewUserDatabase(dbConn)
	if userRepoErr != nil {
		log.Fatalf("Failed to create user repository: %v", userRepoErr)
	}

	dailyColorRepo, dailyColorRepoErr := datastore.NewDailyColorDatabase(dbConn)
	if dailyColorRepoErr != nil {
		log.Fatalf("Failed to create daily color repository: %v", dailyColorRepoErr)
	}

	swatchRepo, swatchRepoErr := datastore.NewSwatchDatabase(dbConn)
	if swatchRepoErr != nil {
		log.Fatalf("Failed to create swatch repository: %v", swatchRepoErr)
	}

	// Start scheduler for daily color generation
	colorScheduler := scheduler.NewScheduler(dailyColorRepo, config.ColorAPIURL)
	colorScheduler.Start()
	defer colorScheduler.Stop()

	app := &api.Application{
		Config:         config,
		UserRepo:       userRepo,
		DailyColorRepo: dailyColorRepo,
		SwatchRepo:     swatchRepo,
		Generator:      colorScheduler,
	}

	mux := http.NewServeMux()

	log.Info("Swatchbook API Starting...")
	if err := app.Serve(mux); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

func configureLogging(config api.Config) {
	if config.LogJSON {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}

	level, err := log.ParseLevel(config.LogLevel)
	if err != nil {
		log.WithField("level", config.LogLevel).Warn("Unknown log level, using info")
		level = log.InfoLevel
	}
	log.SetLevel(level)
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intVal, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return intVal
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	boolVal, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return boolVal
}

func getEnvSlice(key, defaultValue string) []string {
	value := os.Getenv(key)
	if value == "" {
		value = defaultValue
	}
	return strings.Split(value, ",")
}
