package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/unicapital-scheduler/internal/httperr"
	"github.com/BruksfildServices01/unicapital-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/unicapital-scheduler/internal/models"
)

const clientListLimit = 200

type ClientSearcher interface {
	SearchClients(ctx context.Context, query string, limit int) ([]models.Client, error)
}

type ClientHandler struct {
	clients ClientSearcher
	logger  *zap.Logger
}

func NewClientHandler(clients ClientSearcher, logger *zap.Logger) *ClientHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ClientHandler{clients: clients, logger: logger}
}

// ======================================================
// LIST CLIENTS
// ======================================================
func (h *ClientHandler) List(c *gin.Context) {
	clients, err := h.clients.SearchClients(c.Request.Context(), c.Query("query"), clientListLimit)
	if err != nil {
		h.logger.Error("list clients failed", zap.Error(err))
		httperr.Write(c, http.StatusInternalServerError, "failed_to_list_clients", "Não foi possível carregar os clientes.")
		return
	}

	httpresp.List(c, clients)
}
