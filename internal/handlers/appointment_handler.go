package handlers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	domain "github.com/BruksfildServices01/unicapital-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/unicapital-scheduler/internal/httperr"
	"github.com/BruksfildServices01/unicapital-scheduler/internal/schedule"
	ucAppointment "github.com/BruksfildServices01/unicapital-scheduler/internal/usecase/appointment"
)

// AppointmentHandler expõe o fluxo de diálogos da aba ativa da sessão.
type AppointmentHandler struct {
	run sessionRunner
}

func NewAppointmentHandler(sessions *schedule.Registry, logger *zap.Logger) *AppointmentHandler {
	return &AppointmentHandler{run: newSessionRunner(sessions, logger)}
}

func dialogView(t *schedule.Tab) gin.H {
	return gin.H{"dialog": ucAppointment.BuildDialogView(t.Coordinator)}
}

func listAndDialogView(t *schedule.Tab) gin.H {
	return gin.H{
		"list":   ucAppointment.BuildListView(t.Coordinator, t.Label),
		"dialog": ucAppointment.BuildDialogView(t.Coordinator),
	}
}

// ======================================================
// READ
// ======================================================

// GET /api/me/appointments?category=VET
func (h *AppointmentHandler) List(c *gin.Context) {
	var category domain.Category
	if raw := c.Query("category"); raw != "" {
		parsed, err := domain.ParseCategory(raw)
		if err != nil {
			writeError(c, h.run.logger, err)
			return
		}
		category = parsed
	}

	h.run.run(c, func(s *schedule.Session) (gin.H, error) {
		tab := s.Schedule.Active()
		if category != "" {
			t, err := s.Schedule.Tab(category)
			if err != nil {
				return nil, err
			}
			tab = t
		}
		return gin.H{"list": ucAppointment.BuildListView(tab.Coordinator, tab.Label)}, nil
	})
}

// GET /api/me/appointments/dialog
func (h *AppointmentHandler) Dialog(c *gin.Context) {
	h.run.run(c, func(s *schedule.Session) (gin.H, error) {
		return dialogView(s.Schedule.Active()), nil
	})
}

// ======================================================
// INTENTS
// ======================================================

// POST /api/me/appointments/dialog/add
func (h *AppointmentHandler) RequestAdd(c *gin.Context) {
	h.run.run(c, func(s *schedule.Session) (gin.H, error) {
		tab := s.Schedule.Active()
		if err := tab.Coordinator.RequestAdd(); err != nil {
			return nil, err
		}
		return dialogView(tab), nil
	})
}

// POST /api/me/appointments/:id/edit
func (h *AppointmentHandler) RequestEdit(c *gin.Context) {
	id, ok := parseAppointmentID(c)
	if !ok {
		return
	}

	h.run.run(c, func(s *schedule.Session) (gin.H, error) {
		tab := s.Schedule.Active()
		if err := tab.Coordinator.RequestEdit(id); err != nil {
			return nil, err
		}
		return dialogView(tab), nil
	})
}

// POST /api/me/appointments/:id/delete
func (h *AppointmentHandler) RequestDelete(c *gin.Context) {
	id, ok := parseAppointmentID(c)
	if !ok {
		return
	}

	h.run.run(c, func(s *schedule.Session) (gin.H, error) {
		tab := s.Schedule.Active()
		if err := tab.Coordinator.RequestDelete(id); err != nil {
			return nil, err
		}
		return dialogView(tab), nil
	})
}

// ======================================================
// DIALOG
// ======================================================

// PATCH /api/me/appointments/dialog/draft
func (h *AppointmentHandler) UpdateDraft(c *gin.Context) {
	var patch domain.DraftPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		httperr.BadRequest(c, "invalid_request", "Corpo da requisição inválido.")
		return
	}

	h.run.run(c, func(s *schedule.Session) (gin.H, error) {
		tab := s.Schedule.Active()
		if err := tab.Coordinator.UpdateDraft(patch); err != nil {
			return nil, err
		}
		return dialogView(tab), nil
	})
}

// POST /api/me/appointments/dialog/submit
func (h *AppointmentHandler) Submit(c *gin.Context) {
	h.run.run(c, func(s *schedule.Session) (gin.H, error) {
		tab := s.Schedule.Active()
		ap, err := tab.Coordinator.Submit()
		if err != nil {
			return nil, err
		}
		out := listAndDialogView(tab)
		out["appointment"] = ap
		return out, nil
	})
}

// POST /api/me/appointments/dialog/confirm
func (h *AppointmentHandler) Confirm(c *gin.Context) {
	h.run.run(c, func(s *schedule.Session) (gin.H, error) {
		tab := s.Schedule.Active()
		if err := tab.Coordinator.Confirm(); err != nil {
			return nil, err
		}
		return listAndDialogView(tab), nil
	})
}

// POST /api/me/appointments/dialog/cancel
func (h *AppointmentHandler) Cancel(c *gin.Context) {
	h.run.run(c, func(s *schedule.Session) (gin.H, error) {
		tab := s.Schedule.Active()
		if err := tab.Coordinator.Cancel(); err != nil {
			return nil, err
		}
		return dialogView(tab), nil
	})
}
