package handlers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	domain "github.com/BruksfildServices01/unicapital-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/unicapital-scheduler/internal/httperr"
	"github.com/BruksfildServices01/unicapital-scheduler/internal/schedule"
)

type ScheduleHandler struct {
	run sessionRunner
}

func NewScheduleHandler(sessions *schedule.Registry, logger *zap.Logger) *ScheduleHandler {
	return &ScheduleHandler{run: newSessionRunner(sessions, logger)}
}

type SwitchTabRequest struct {
	Category string `json:"category" binding:"required"`
}

type RenameTextRequest struct {
	Text string `json:"text"`
}

type LabelRequest struct {
	Label string `json:"label"`
}

func scheduleView(s *schedule.Session) gin.H {
	return gin.H{"schedule": s.Schedule.Snapshot()}
}

// GET /api/me/schedule
func (h *ScheduleHandler) Get(c *gin.Context) {
	h.run.run(c, func(s *schedule.Session) (gin.H, error) {
		return scheduleView(s), nil
	})
}

// PUT /api/me/schedule/active
func (h *ScheduleHandler) SwitchTab(c *gin.Context) {
	var req SwitchTabRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Informe a categoria.")
		return
	}

	category, err := domain.ParseCategory(req.Category)
	if err != nil {
		writeError(c, h.run.logger, err)
		return
	}

	h.run.run(c, func(s *schedule.Session) (gin.H, error) {
		if err := s.Schedule.Switch(category); err != nil {
			return nil, err
		}
		return scheduleView(s), nil
	})
}

// POST /api/me/schedule/tabs/:category/rename
func (h *ScheduleHandler) BeginRename(c *gin.Context) {
	category, err := domain.ParseCategory(c.Param("category"))
	if err != nil {
		writeError(c, h.run.logger, err)
		return
	}

	h.run.run(c, func(s *schedule.Session) (gin.H, error) {
		if err := s.Schedule.BeginRename(category); err != nil {
			return nil, err
		}
		return scheduleView(s), nil
	})
}

// PATCH /api/me/schedule/rename
func (h *ScheduleHandler) SetRenameText(c *gin.Context) {
	var req RenameTextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Corpo da requisição inválido.")
		return
	}

	h.run.run(c, func(s *schedule.Session) (gin.H, error) {
		if err := s.Schedule.SetRenameText(req.Text); err != nil {
			return nil, err
		}
		return scheduleView(s), nil
	})
}

// POST /api/me/schedule/rename/commit
func (h *ScheduleHandler) CommitRename(c *gin.Context) {
	h.run.run(c, func(s *schedule.Session) (gin.H, error) {
		label, err := s.Schedule.CommitRename()
		if err != nil {
			return nil, err
		}
		out := scheduleView(s)
		out["label"] = label
		return out, nil
	})
}

// POST /api/me/schedule/rename/cancel
func (h *ScheduleHandler) CancelRename(c *gin.Context) {
	h.run.run(c, func(s *schedule.Session) (gin.H, error) {
		s.Schedule.CancelRename()
		return scheduleView(s), nil
	})
}

// PUT /api/me/schedule/tabs/:category/label
func (h *ScheduleHandler) Rename(c *gin.Context) {
	category, err := domain.ParseCategory(c.Param("category"))
	if err != nil {
		writeError(c, h.run.logger, err)
		return
	}

	var req LabelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Corpo da requisição inválido.")
		return
	}

	h.run.run(c, func(s *schedule.Session) (gin.H, error) {
		label, err := s.Schedule.Rename(category, req.Label)
		if err != nil {
			return nil, err
		}
		out := scheduleView(s)
		out["label"] = label
		return out, nil
	})
}
