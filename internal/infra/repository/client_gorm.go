package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/unicapital-scheduler/internal/models"
	"github.com/BruksfildServices01/unicapital-scheduler/internal/usecase/stats"
)

type ClientGormRepository struct {
	db *gorm.DB
}

func NewClientGormRepository(db *gorm.DB) *ClientGormRepository {
	return &ClientGormRepository{db: db}
}

var _ stats.ClientRepository = (*ClientGormRepository)(nil)

func (r *ClientGormRepository) CountClients(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&models.Client{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("count clients: %w", err)
	}
	return n, nil
}

// CountClientsCreatedBetween conta clientes com created_at em [start, end).
func (r *ClientGormRepository) CountClientsCreatedBetween(
	ctx context.Context,
	start, end time.Time,
) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&models.Client{}).
		Where("created_at >= ? AND created_at < ?", start, end).
		Count(&n).Error
	if err != nil {
		return 0, fmt.Errorf("count clients between: %w", err)
	}
	return n, nil
}

func (r *ClientGormRepository) ListRecentClients(ctx context.Context, limit int) ([]models.Client, error) {
	var out []models.Client
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&out).Error
	if err != nil {
		return nil, fmt.Errorf("list recent clients: %w", err)
	}
	return out, nil
}

// SearchClients busca por nome, telefone ou email (vazio lista todos).
func (r *ClientGormRepository) SearchClients(ctx context.Context, query string, limit int) ([]models.Client, error) {
	var out []models.Client

	q := r.db.WithContext(ctx).Order("nome ASC")
	if query = strings.TrimSpace(query); query != "" {
		like := "%" + strings.ToLower(query) + "%"
		q = q.Where(
			"LOWER(nome) LIKE ? OR telefone LIKE ? OR LOWER(email) LIKE ?",
			like, "%"+query+"%", like,
		)
	}
	if limit > 0 {
		q = q.Limit(limit)
	}

	if err := q.Find(&out).Error; err != nil {
		return nil, fmt.Errorf("search clients: %w", err)
	}
	return out, nil
}
