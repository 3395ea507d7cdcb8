// Command api serve a API de agendamentos do painel Unicapital.
//
// Usage:
//
//	api serve
//	api migrate --seed-email admin@unicapital.com --seed-password segredo123
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/BruksfildServices01/unicapital-scheduler/internal/config"
	dbpkg "github.com/BruksfildServices01/unicapital-scheduler/internal/db"
	"github.com/BruksfildServices01/unicapital-scheduler/internal/domain/settings"
	infraRepo "github.com/BruksfildServices01/unicapital-scheduler/internal/infra/repository"
	"github.com/BruksfildServices01/unicapital-scheduler/internal/logging"
	"github.com/BruksfildServices01/unicapital-scheduler/internal/models"
	"github.com/BruksfildServices01/unicapital-scheduler/internal/notify"
	"github.com/BruksfildServices01/unicapital-scheduler/internal/routes"
	"github.com/BruksfildServices01/unicapital-scheduler/internal/schedule"
	"github.com/BruksfildServices01/unicapital-scheduler/internal/timezone"
	"github.com/BruksfildServices01/unicapital-scheduler/internal/usecase/stats"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:           "api",
	Short:         "API de agendamentos Unicapital",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		cfg = config.Load()
		return logging.Initialize(cfg.LogLevel, cfg.LogFormat)
	},
	PersistentPostRun: func(_ *cobra.Command, _ []string) {
		logging.Sync()
	},
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runServe(cmd.Context())
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Inicia o servidor HTTP",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runServe(cmd.Context())
	},
}

var (
	seedEmail    string
	seedPassword string
	seedName     string
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Cria as tabelas e, opcionalmente, o usuário administrador",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runMigrate(cmd.Context())
	},
}

func init() {
	migrateCmd.Flags().StringVar(&seedEmail, "seed-email", "", "email do administrador a criar")
	migrateCmd.Flags().StringVar(&seedPassword, "seed-password", "", "senha do administrador (mínimo 6 caracteres)")
	migrateCmd.Flags().StringVar(&seedName, "seed-name", "Administrador", "nome do administrador")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// ======================================================
// SERVE
// ======================================================

func runServe(ctx context.Context) error {
	logger := logging.L()

	database, err := dbpkg.NewDB(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer database.Close()

	rdb, err := infraRepo.NewRedisClient(ctx, cfg.RedisURL)
	if err != nil {
		return err
	}
	defer rdb.Close()

	dispatcher := notify.NewDispatcher(logger.Named("notice"), cfg.NotifyQueueSize)
	defer dispatcher.Close()

	loc := timezone.Location(timezone.DefaultTimezone)
	sessions := schedule.NewRegistry(schedule.RegistryOptions{
		Dispatcher: dispatcher,
		Logger:     logger.Named("schedule"),
		Location:   loc,
	})

	janitorCtx, cancelJanitor := context.WithCancel(ctx)
	defer cancelJanitor()
	go sessions.RunJanitor(janitorCtx, 10*time.Minute, cfg.SessionIdleTTL)

	clients := infraRepo.NewClientGormRepository(database.Gorm)

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())

	routes.RegisterRoutes(r, routes.Dependencies{
		Config:   cfg,
		Logger:   logger,
		Users:    infraRepo.NewUserGormRepository(database.Gorm),
		Clients:  clients,
		Stats:    stats.NewGetClientStats(clients, loc, nil),
		Settings: settings.NewService(infraRepo.NewSettingsRedisRepository(rdb), logger.Named("settings")),
		Sessions: sessions,
		PingDB: func(ctx context.Context) error {
			return dbpkg.Ping(ctx, database.Pool)
		},
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server running", zap.String("addr", cfg.Addr()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("failed to start server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// ======================================================
// MIGRATE
// ======================================================

func runMigrate(ctx context.Context) error {
	logger := logging.L()

	database, err := dbpkg.NewDB(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer database.Close()

	if err := dbpkg.Migrate(database.Gorm); err != nil {
		return err
	}
	logger.Info("migrations applied")

	if seedEmail == "" {
		return nil
	}
	if len(seedPassword) < 6 {
		return errors.New("--seed-password must have at least 6 characters")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(seedPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	user := models.User{
		Name:         seedName,
		Email:        seedEmail,
		PasswordHash: string(hashed),
		Role:         "admin",
	}
	if err := infraRepo.NewUserGormRepository(database.Gorm).SaveUser(ctx, &user); err != nil {
		return err
	}

	logger.Info("admin user ready", zap.Uint("user_id", user.ID), zap.String("email", user.Email))
	return nil
}
