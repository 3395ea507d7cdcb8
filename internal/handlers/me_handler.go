package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/unicapital-scheduler/internal/httperr"
	infraRepo "github.com/BruksfildServices01/unicapital-scheduler/internal/infra/repository"
	"github.com/BruksfildServices01/unicapital-scheduler/internal/middleware"
)

type MeHandler struct {
	users UserStore
}

func NewMeHandler(users UserStore) *MeHandler {
	return &MeHandler{users: users}
}

func (h *MeHandler) GetMe(c *gin.Context) {
	userIDVal, exists := c.Get(middleware.ContextUserID)
	if !exists {
		httperr.Unauthorized(c, "user_not_in_context", "Autenticação necessária.")
		return
	}

	userID, ok := userIDVal.(uint)
	if !ok {
		httperr.Unauthorized(c, "invalid_user_id_type", "Autenticação necessária.")
		return
	}

	user, err := h.users.FindUserByID(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, infraRepo.ErrUserNotFound) {
			httperr.NotFound(c, "user_not_found", "Usuário não encontrado.")
			return
		}
		httperr.Internal(c, "internal_error", "Erro interno. Tente novamente.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":      userPayload(user),
		"sessionId": c.GetString(middleware.ContextSessionID),
	})
}
