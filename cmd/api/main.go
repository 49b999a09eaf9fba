package main

import (
	"context"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/vyapardesk/billing-api/api"
	"github.com/vyapardesk/billing-api/internal/models"
)

func main() {
	infoLog := log.New(os.Stdout, "INFO\t", log.Ldate|log.Ltime)
	errorLog := log.New(os.Stderr, "ERROR\t", log.Ldate|log.Ltime|log.Lshortfile)

	if err := godotenv.Load(); err != nil {
		infoLog.Println("no .env file found, using environment")
	}

	cfg := loadConfig()

	dsn := cfg.DB.DSN
	if cfg.Env == "development" && cfg.DB.DEVDSN != "" {
		dsn = cfg.DB.DEVDSN
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := pgxpool.New(ctx, dsn)
	if err != nil {
		errorLog.Fatalln("cannot create connection pool:", err)
	}
	defer db.Close()

	if err := db.Ping(ctx); err != nil {
		errorLog.Fatalln("cannot reach database:", err)
	}
	infoLog.Println("database connection established")

	app := api.NewApplication(cfg, db, infoLog, errorLog)
	if err := app.Serve(); err != nil {
		errorLog.Fatalln(err)
	}
}

func loadConfig() models.Config {
	port, err := strconv.ParseInt(envOr("PORT", "8080"), 10, 64)
	if err != nil {
		port = 8080
	}

	return models.Config{
		Port: port,
		Env:  envOr("ENV", "development"),
		JWT: models.JWTConfig{
			SecretKey: os.Getenv("JWT_SECRET"),
			Issuer:    envOr("JWT_ISSUER", models.APPName),
			Audience:  envOr("JWT_AUDIENCE", models.APPName),
			Algorithm: "HS256",
			Expiry:    24 * time.Hour,
			Refresh:   72 * time.Hour,
		},
		DB: models.DBConfig{
			DSN:    os.Getenv("DATABASE_URL"),
			DEVDSN: os.Getenv("DEV_DATABASE_URL"),
		},
		SMS: models.SMSConfig{
			Endpoint: os.Getenv("SMS_ENDPOINT"),
			APIKey:   os.Getenv("SMS_API_KEY"),
			Sender:   envOr("SMS_SENDER", models.APPName),
		},
		GST: models.GSTConfig{
			BaseURL: os.Getenv("GST_LOOKUP_URL"),
			APIKey:  os.Getenv("GST_LOOKUP_API_KEY"),
		},
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
