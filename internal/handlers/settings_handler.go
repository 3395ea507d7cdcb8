package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/unicapital-scheduler/internal/domain/settings"
	"github.com/BruksfildServices01/unicapital-scheduler/internal/httperr"
	"github.com/BruksfildServices01/unicapital-scheduler/internal/middleware"
	"github.com/BruksfildServices01/unicapital-scheduler/internal/schedule"
)

type SettingsHandler struct {
	service  *settings.Service
	sessions *schedule.Registry
	logger   *zap.Logger
}

func NewSettingsHandler(service *settings.Service, sessions *schedule.Registry, logger *zap.Logger) *SettingsHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SettingsHandler{service: service, sessions: sessions, logger: logger}
}

type webhookGroupView struct {
	Title     string             `json:"title"`
	Endpoints []webhookEntryView `json:"endpoints"`
}

type webhookEntryView struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	URL   string `json:"url"`
}

func groupedWebhooks(w settings.Webhooks) []webhookGroupView {
	out := make([]webhookGroupView, 0, len(settings.Groups))
	for _, g := range settings.Groups {
		gv := webhookGroupView{Title: g.Title}
		for _, e := range g.Endpoints {
			gv.Endpoints = append(gv.Endpoints, webhookEntryView{Key: e.Key, Label: e.Label, URL: w[e.Key]})
		}
		out = append(out, gv)
	}
	return out
}

// GET /api/me/settings/webhooks
func (h *SettingsHandler) GetWebhooks(c *gin.Context) {
	userID := c.GetUint(middleware.ContextUserID)

	w, err := h.service.Webhooks(c.Request.Context(), userID)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"webhooks": w,
		"groups":   groupedWebhooks(w),
	})
}

// PUT /api/me/settings/webhooks
func (h *SettingsHandler) SaveWebhooks(c *gin.Context) {
	var req map[string]string
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Envie um objeto com as URLs.")
		return
	}

	sessionID := c.GetString(middleware.ContextSessionID)
	userID := c.GetUint(middleware.ContextUserID)

	var (
		saved   settings.Webhooks
		notices any
	)
	err := h.sessions.Do(sessionID, userID, func(s *schedule.Session) error {
		var err error
		saved, err = h.service.Save(c.Request.Context(), userID, settings.Webhooks(req), s.Inbox)
		if err != nil {
			return err
		}
		notices = s.Inbox.Drain()
		return nil
	})
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"webhooks": saved,
		"groups":   groupedWebhooks(saved),
		"notices":  notices,
	})
}
