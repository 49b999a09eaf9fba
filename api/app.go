package api

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/vyapardesk/billing-api/api/handlers"
	"github.com/vyapardesk/billing-api/internal/models"
)

type Application struct {
	config   models.Config
	infoLog  *log.Logger
	errorLog *log.Logger
	Handlers *handlers.Handlers
}

func NewApplication(cfg models.Config, db *pgxpool.Pool, infoLog, errorLog *log.Logger) *Application {
	return &Application{
		config:   cfg,
		infoLog:  infoLog,
		errorLog: errorLog,
		Handlers: handlers.NewHandlers(db, cfg, infoLog, errorLog),
	}
}

// Serve runs the HTTP server until SIGINT/SIGTERM, then drains in-flight
// requests for up to 30 seconds.
func (app *Application) Serve() error {
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", app.config.Port),
		Handler:      app.routes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	shutdownErr := make(chan error)
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		s := <-quit

		app.infoLog.Println("shutting down server, signal:", s.String())
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		shutdownErr <- srv.Shutdown(ctx)
	}()

	app.infoLog.Printf("starting %s server on %s (env: %s)", models.APPName, srv.Addr, app.config.Env)
	err := srv.ListenAndServe()
	if err != http.ErrServerClosed {
		return err
	}

	if err := <-shutdownErr; err != nil {
		return err
	}
	app.infoLog.Println("server stopped")
	return nil
}
