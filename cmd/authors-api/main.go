package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"authors-api/internal/config"
	"authors-api/internal/http-server/handlers/article"
	"authors-api/internal/http-server/handlers/user"
	"authors-api/internal/http-server/handlers/users"
	"authors-api/internal/lib/jwt"
	"authors-api/internal/lib/logger"
	"authors-api/internal/lib/logger/sl"
	"authors-api/internal/mailer"
	"authors-api/internal/mailer/amqp"
	"authors-api/internal/mailer/smtp"
	articleservice "authors-api/internal/service/article"
	userservice "authors-api/internal/service/user"
	"authors-api/internal/storage/sqlite"
)

func main() {
	cfg := config.MustLoad()

	log := logger.New(cfg.Env)

	log.Debug("initializing server...", slog.String("addr", cfg.Address))

	// Init mail delivery
	transport, closeTransport, err := newTransport(log, cfg.Mailer)
	if err != nil {
		log.Error("error initializing mail transport", sl.Error(err))
		os.Exit(1)
	}
	defer closeTransport()

	// Init storage
	storage, err := sqlite.New(cfg.StoragePath)
	if err != nil {
		log.Error("error opening storage", sl.Error(err))
		closeTransport()
		os.Exit(1)
	}
	defer storage.Close()

	tokens := jwt.New(cfg.Secret, map[jwt.Purpose]time.Duration{
		jwt.PurposeAuth:   cfg.Tokens.AuthTTL,
		jwt.PurposeVerify: cfg.Tokens.VerifyTTL,
		jwt.PurposeReset:  cfg.Tokens.ResetTTL,
	})

	// Init service layer
	usrService := userservice.New(log, storage, tokens, mailer.New(cfg.Mailer.From, transport), cfg.BaseURL)
	artService := articleservice.New(log, storage)

	// Handlers and middleware
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// Init handlers
	r.Route("/users", users.New(log, usrService).Register())
	r.Group(user.New(log, usrService, cfg.Secret).Register())
	r.Route("/articles", article.New(log, artService, cfg.Secret).Register())

	srv := http.Server{
		Handler:      r,
		Addr:         cfg.Address,
		ReadTimeout:  cfg.Timeout,
		WriteTimeout: cfg.Timeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	log.Debug("server initialized", slog.String("mail_transport", cfg.Mailer.Transport))
	log.Info("server is running...")

	// Gracefully shutdown
	done := make(chan os.Signal, 1)
	signal.Notify(done, syscall.SIGTERM, syscall.SIGINT, os.Interrupt)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("error starting server", sl.Error(err))
			done <- syscall.SIGTERM
		}
	}()

	<-done

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("error stopping server", sl.Error(err))
	}

	log.Info("server stopped")
}

func newTransport(log *slog.Logger, cfg config.Mailer) (mailer.Transport, func(), error) {
	switch cfg.Transport {
	case "log", "":
		return mailer.NewLogTransport(log), func() {}, nil
	case "smtp":
		t, err := smtp.New(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.Username, cfg.SMTP.Password)
		if err != nil {
			return nil, nil, err
		}
		return t, func() {}, nil
	case "amqp":
		t, err := amqp.Dial(cfg.AMQP.URL, cfg.AMQP.Queue)
		if err != nil {
			return nil, nil, err
		}
		return t, func() {
			if err := t.Close(); err != nil {
				log.Error("error closing amqp transport", sl.Error(err))
			}
		}, nil
	default:
		return nil, nil, fmt.Errorf("unknown mail transport %q", cfg.Transport)
	}
}
