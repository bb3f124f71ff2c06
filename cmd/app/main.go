package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"

	"backoffice/cmd"
	_ "backoffice/docs"
	httpadapter "backoffice/internal/adapters/in/http"
	"backoffice/internal/jobs"
)

func main() {
	configs := getConfigs()

	root, err := cmd.NewCompositionRoot(configs)
	if err != nil {
		log.Fatalf("Failed to build application: %v", err)
	}

	if err := root.SeedUsers(context.Background()); err != nil {
		log.Fatalf("Failed to seed users: %v", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	jobManager := jobs.NewJobManager(root.CreatePurgeExpiredTokensCommandHandler(), logger)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(root, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:              goDotEnvVariable("HTTP_PORT"),
		JWTSecret:             goDotEnvVariable("JWT_SECRET"),
		JWTIssuer:             goDotEnvVariable("JWT_ISSUER"),
		JWTAudience:           goDotEnvVariable("JWT_AUDIENCE"),
		AccessTokenTTLMinutes: goDotEnvIntVariable("ACCESS_TOKEN_TTL_MINUTES"),
		RefreshTokenTTLDays:   goDotEnvIntVariable("REFRESH_TOKEN_TTL_DAYS"),
		SeedAdminPassword:     goDotEnvVariable("SEED_ADMIN_PASSWORD"),
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

func goDotEnvIntVariable(key string) int {
	value, err := strconv.Atoi(goDotEnvVariable(key))
	if err != nil {
		log.Fatalf("Environment variable %s must be an integer", key)
	}
	return value
}

func startWebServer(root *cmd.CompositionRoot, port string) {
	e := echo.New()

	server := httpadapter.NewServer(root.CreateHTTPHandlers(), root.TokenIssuer())
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
