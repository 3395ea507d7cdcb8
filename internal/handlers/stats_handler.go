package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	domain "github.com/BruksfildServices01/unicapital-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/unicapital-scheduler/internal/httperr"
	"github.com/BruksfildServices01/unicapital-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/unicapital-scheduler/internal/middleware"
	"github.com/BruksfildServices01/unicapital-scheduler/internal/schedule"
	"github.com/BruksfildServices01/unicapital-scheduler/internal/usecase/stats"
)

type ClientStatsGetter interface {
	Execute(ctx context.Context, appointments []domain.Appointment) (stats.ClientStats, error)
}

type StatsHandler struct {
	stats    ClientStatsGetter
	sessions *schedule.Registry
	logger   *zap.Logger
}

func NewStatsHandler(uc ClientStatsGetter, sessions *schedule.Registry, logger *zap.Logger) *StatsHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StatsHandler{stats: uc, sessions: sessions, logger: logger}
}

// GET /api/me/stats/clients
func (h *StatsHandler) Clients(c *gin.Context) {
	var appointments []domain.Appointment
	err := h.sessions.Do(
		c.GetString(middleware.ContextSessionID),
		c.GetUint(middleware.ContextUserID),
		func(s *schedule.Session) error {
			appointments = s.Schedule.AllAppointments()
			return nil
		},
	)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	// consulta ao banco fora da trava da sessão
	out, err := h.stats.Execute(c.Request.Context(), appointments)
	if err != nil {
		h.logger.Error("client stats failed", zap.Error(err))
		httperr.Write(c, http.StatusInternalServerError, "failed_to_load_stats", "Erro ao atualizar estatísticas.")
		return
	}

	httpresp.OK(c, out)
}
