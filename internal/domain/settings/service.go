package settings

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/unicapital-scheduler/internal/notify"
)

var noticeSaved = notify.Notice{
	Title:       "Configurações salvas",
	Description: "As configurações foram salvas com sucesso.",
}

type Service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{repo: repo, logger: logger}
}

// Webhooks devolve as URLs do usuário com os padrões preenchidos.
func (s *Service) Webhooks(ctx context.Context, userID uint) (Webhooks, error) {
	saved, err := s.repo.LoadWebhooks(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load webhooks: %w", err)
	}
	return Merge(saved), nil
}

// Save valida e grava as URLs informadas. Chaves ausentes mantêm o valor atual.
func (s *Service) Save(ctx context.Context, userID uint, w Webhooks, n notify.Notifier) (Webhooks, error) {
	clean := make(Webhooks, len(w))
	for k, v := range w {
		clean[k] = strings.TrimSpace(v)
	}

	if err := Validate(clean); err != nil {
		return nil, err
	}

	if err := s.repo.SaveWebhooks(ctx, userID, clean); err != nil {
		return nil, fmt.Errorf("save webhooks: %w", err)
	}

	s.logger.Info("webhooks saved",
		zap.Uint("user_id", userID),
		zap.Int("count", len(clean)),
	)
	if n != nil {
		n.Notify(noticeSaved)
	}

	return s.Webhooks(ctx, userID)
}
