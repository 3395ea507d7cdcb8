package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	domain "github.com/BruksfildServices01/unicapital-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/unicapital-scheduler/internal/domain/settings"
	"github.com/BruksfildServices01/unicapital-scheduler/internal/httperr"
	"github.com/BruksfildServices01/unicapital-scheduler/internal/middleware"
	"github.com/BruksfildServices01/unicapital-scheduler/internal/schedule"
)

// sessionRunner executa o trabalho de uma requisição com a sessão travada.
type sessionRunner struct {
	sessions *schedule.Registry
	logger   *zap.Logger
}

func newSessionRunner(sessions *schedule.Registry, logger *zap.Logger) sessionRunner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return sessionRunner{sessions: sessions, logger: logger}
}

// run chama fn e responde 200 com o payload mais os avisos pendentes.
func (r sessionRunner) run(c *gin.Context, fn func(s *schedule.Session) (gin.H, error)) {
	sessionID := c.GetString(middleware.ContextSessionID)
	userID := c.GetUint(middleware.ContextUserID)

	var resp gin.H
	err := r.sessions.Do(sessionID, userID, func(s *schedule.Session) error {
		payload, err := fn(s)
		if err != nil {
			return err
		}
		if payload == nil {
			payload = gin.H{}
		}
		payload["notices"] = s.Inbox.Drain()
		resp = payload
		return nil
	})
	if err != nil {
		writeError(c, r.logger, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// writeError traduz erros de domínio em respostas HTTP.
func writeError(c *gin.Context, logger *zap.Logger, err error) {
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		httperr.Unprocessable(c, httperr.CodeValidationFailed, "Verifique os campos do agendamento.", verr.Fields)
		return
	}

	var serr *settings.ValidationError
	if errors.As(err, &serr) {
		httperr.Unprocessable(c, httperr.CodeValidationFailed, "Verifique as URLs informadas.", serr.Fields)
		return
	}

	if httperr.Business(c, err) {
		return
	}

	logger.Error("request failed",
		zap.String("path", c.FullPath()),
		zap.Error(err),
	)
	httperr.Internal(c, "internal_error", "Erro interno. Tente novamente.")
}

func parseAppointmentID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		httperr.BadRequest(c, "invalid_request", "ID de agendamento inválido.")
		return 0, false
	}
	return id, true
}
