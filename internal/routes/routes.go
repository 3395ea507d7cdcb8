package routes

import (
	"context"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/unicapital-scheduler/internal/config"
	"github.com/BruksfildServices01/unicapital-scheduler/internal/domain/settings"
	"github.com/BruksfildServices01/unicapital-scheduler/internal/handlers"
	"github.com/BruksfildServices01/unicapital-scheduler/internal/middleware"
	"github.com/BruksfildServices01/unicapital-scheduler/internal/schedule"
)

// Dependencies reúne o que a API precisa; main monta com as implementações
// reais e os testes com fakes.
type Dependencies struct {
	Config   *config.Config
	Logger   *zap.Logger
	Users    handlers.UserStore
	Clients  handlers.ClientSearcher
	Stats    handlers.ClientStatsGetter
	Settings *settings.Service
	Sessions *schedule.Registry
	PingDB   func(ctx context.Context) error
}

func RegisterRoutes(r *gin.Engine, deps Dependencies) {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware(deps.Config.CORSOrigins...))
	r.Use(middleware.RequestLogger(logger))

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	healthHandler := handlers.NewHealthHandler(deps.PingDB, logger)
	authHandler := handlers.NewAuthHandler(deps.Users, deps.Config, logger)
	meHandler := handlers.NewMeHandler(deps.Users)

	scheduleHandler := handlers.NewScheduleHandler(deps.Sessions, logger)
	appointmentHandler := handlers.NewAppointmentHandler(deps.Sessions, logger)

	statsHandler := handlers.NewStatsHandler(deps.Stats, deps.Sessions, logger)
	clientHandler := handlers.NewClientHandler(deps.Clients, logger)
	settingsHandler := handlers.NewSettingsHandler(deps.Settings, deps.Sessions, logger)

	r.GET("/health", healthHandler.Live)
	r.GET("/health/db", healthHandler.Database)

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// 🔐 AUTH
		// ------------------------------
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// 🔐 API PRIVADA
		// ------------------------------
		secured := api.Group("/me")
		secured.Use(middleware.AuthMiddleware(deps.Config.JWTSecret))
		{
			secured.GET("", meHandler.GetMe)

			// ------------------------------
			// ABAS
			// ------------------------------
			secured.GET("/schedule", scheduleHandler.Get)
			secured.PUT("/schedule/active", scheduleHandler.SwitchTab)
			secured.POST("/schedule/tabs/:category/rename", scheduleHandler.BeginRename)
			secured.PUT("/schedule/tabs/:category/label", scheduleHandler.Rename)
			secured.PATCH("/schedule/rename", scheduleHandler.SetRenameText)
			secured.POST("/schedule/rename/commit", scheduleHandler.CommitRename)
			secured.POST("/schedule/rename/cancel", scheduleHandler.CancelRename)

			// ------------------------------
			// APPOINTMENTS
			// ------------------------------
			secured.GET("/appointments", appointmentHandler.List)
			secured.GET("/appointments/dialog", appointmentHandler.Dialog)
			secured.POST("/appointments/dialog/add", appointmentHandler.RequestAdd)
			secured.PATCH("/appointments/dialog/draft", appointmentHandler.UpdateDraft)
			secured.POST("/appointments/dialog/submit", appointmentHandler.Submit)
			secured.POST("/appointments/dialog/confirm", appointmentHandler.Confirm)
			secured.POST("/appointments/dialog/cancel", appointmentHandler.Cancel)
			secured.POST("/appointments/:id/edit", appointmentHandler.RequestEdit)
			secured.POST("/appointments/:id/delete", appointmentHandler.RequestDelete)

			// ------------------------------
			// DASHBOARD
			// ------------------------------
			secured.GET("/stats/clients", statsHandler.Clients)
			secured.GET("/clients", clientHandler.List)

			secured.GET("/settings/webhooks", settingsHandler.GetWebhooks)
			secured.PUT("/settings/webhooks", settingsHandler.SaveWebhooks)
		}
	}
}
