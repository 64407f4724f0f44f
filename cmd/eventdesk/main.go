package main

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	"eventdesk/config"
	_ "eventdesk/docs"
	"eventdesk/internal/adapters/email"
	"eventdesk/internal/adapters/restapi"
	deliveryhttp "eventdesk/internal/delivery/http"
	"eventdesk/internal/delivery/http/controllers"
	"eventdesk/internal/delivery/http/middleware"
	"eventdesk/internal/domain"
	"eventdesk/internal/repository/postgres"
	"eventdesk/internal/services"
)

const shutdownTimeout = 10 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	if err := run(ctx); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger := config.NewLogger()
	slog.SetDefault(logger)

	remote := restapi.NewClient(cfg.APIBaseURL, nil, cfg.RequestTimeout, logger)

	var ledger domain.OrphanRepository
	if cfg.DBUrl != "" {
		db, err := sql.Open("postgres", cfg.DBUrl)
		if err != nil {
			return err
		}
		defer db.Close()
		pingCtx, cancel := context.WithTimeout(ctx, cfg.RequestTimeout)
		err = db.PingContext(pingCtx)
		cancel()
		if err != nil {
			return err
		}
		ledger = postgres.NewOrphanRepository(db)
		logger.Info("orphan ledger enabled")
	}

	mailer := email.NewMailer(cfg.Mail, logger)
	emailService := services.NewEmailService(mailer, email.NewTemplateRenderer(), logger)
	orphans := services.NewOrphanReporter(ledger, emailService, cfg.Mail.AlertTo, logger)

	resolver := services.NewCategoryResolver(remote, logger)
	pipeline := services.NewSubmissionPipeline(remote, remote, resolver, orphans, logger, cfg.RequestTimeout)
	desk := services.NewEventDesk(remote, remote, remote, pipeline, logger, cfg.RequestTimeout)

	drafts := services.NewSessionStore[*controllers.DraftSession](cfg.SessionTTL, nil)
	views := services.NewSessionStore(cfg.SessionTTL, func(s *controllers.ViewSession) { s.View.Close() })

	mux := deliveryhttp.NewRouter(
		controllers.NewListingController(logger, desk),
		controllers.NewDraftController(logger, desk, drafts),
		controllers.NewViewController(logger, desk, views),
		controllers.NewOrphanController(logger, orphans),
	)
	handler := middleware.RequestID(middleware.LoggingMiddleware(logger, middleware.CORS(cfg.AllowedOrigins, mux)))

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting", "addr", srv.Addr, "env", cfg.Environment, "api", cfg.APIBaseURL)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
