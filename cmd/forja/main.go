package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"

	"github.com/nicolasreynoso/forja/internal/api"
	"github.com/nicolasreynoso/forja/internal/cli"
	"github.com/nicolasreynoso/forja/internal/db"
)

func main() {
	_ = godotenv.Load()

	dbPath := getEnv("DB_PATH", filepath.Join("data", "forja.db"))

	if len(os.Args) > 1 {
		runCommand(dbPath, os.Args[1], os.Args[2:])
		return
	}

	location := mustLoadLocation(getEnv("TZ", "America/Argentina/Buenos_Aires"))
	time.Local = location

	secretKey := getEnv("SECRET_KEY", "change_me_in_production")
	port := getEnv("PORT", "8080")
	cookieSecure := getEnv("COOKIE_SECURE", "") == "true"

	database, err := db.OpenSQLite(dbPath)
	if err != nil {
		log.Fatalf("database init failed: %v", err)
	}

	handler := api.NewHandler(database, secretKey, location, cookieSecure)

	app := fiber.New(fiber.Config{
		AppName:               "Forja",
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(compress.New())

	api.RegisterRoutes(app, handler)

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	go func() {
		<-sigCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.Printf("server shutdown failed: %v", err)
		}
	}()

	log.Printf("Forja listening on http://0.0.0.0:%s (db: %s, tz: %s)", port, dbPath, location.String())
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}

func runCommand(dbPath string, command string, args []string) {
	var err error
	switch command {
	case "create-admin":
		if len(args) < 2 {
			log.Fatal("usage: forja create-admin <dni> <full name>")
		}
		err = cli.CreateAdmin(dbPath, args[0], strings.Join(args[1:], " "))
	case "reset-password":
		if len(args) < 1 {
			log.Fatal("usage: forja reset-password <dni>")
		}
		err = cli.ResetPassword(dbPath, args[0])
	default:
		log.Fatalf("unknown command %q (expected create-admin or reset-password)", command)
	}
	if err != nil {
		log.Fatalf("%s failed: %v", command, err)
	}
}

func mustLoadLocation(name string) *time.Location {
	location, err := time.LoadLocation(name)
	if err != nil {
		log.Printf("invalid TZ %q, falling back to UTC", name)
		return time.UTC
	}
	return location
}

func getEnv(key string, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}
