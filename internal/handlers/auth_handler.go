package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/BruksfildServices01/unicapital-scheduler/internal/config"
	"github.com/BruksfildServices01/unicapital-scheduler/internal/httperr"
	infraRepo "github.com/BruksfildServices01/unicapital-scheduler/internal/infra/repository"
	"github.com/BruksfildServices01/unicapital-scheduler/internal/middleware"
	"github.com/BruksfildServices01/unicapital-scheduler/internal/models"
)

type UserStore interface {
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, id uint) (models.User, error)
}

type AuthHandler struct {
	users  UserStore
	config *config.Config
	logger *zap.Logger
	now    func() time.Time
}

func NewAuthHandler(users UserStore, cfg *config.Config, logger *zap.Logger) *AuthHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthHandler{users: users, config: cfg, logger: logger, now: time.Now}
}

// --------- Requests ---------

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// --------- Handlers ---------

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.WriteWithDetails(c, http.StatusBadRequest, "invalid_request", "Informe email e senha válidos.", err.Error())
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := h.users.FindUserByEmail(c.Request.Context(), email)
	if err != nil {
		if errors.Is(err, infraRepo.ErrUserNotFound) {
			httperr.Business(c, httperr.ErrBusiness(httperr.CodeInvalidCredentials))
			return
		}
		h.logger.Error("login lookup failed", zap.Error(err))
		httperr.Internal(c, "internal_error", "Erro interno. Tente novamente.")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		httperr.Business(c, httperr.ErrBusiness(httperr.CodeInvalidCredentials))
		return
	}

	sessionID := uuid.NewString()
	token, err := middleware.SignToken(h.config.JWTSecret, h.config.TokenTTL, user.ID, user.Role, sessionID, h.now())
	if err != nil {
		h.logger.Error("sign token failed", zap.Error(err))
		httperr.Internal(c, "failed_to_generate_token", "Não foi possível iniciar a sessão.")
		return
	}

	h.logger.Info("user logged in",
		zap.Uint("user_id", user.ID),
		zap.String("session_id", sessionID),
	)

	c.JSON(http.StatusOK, gin.H{
		"user":  userPayload(user),
		"token": token,
	})
}

func userPayload(u models.User) gin.H {
	return gin.H{
		"id":    u.ID,
		"name":  u.Name,
		"email": u.Email,
		"role":  u.Role,
	}
}
