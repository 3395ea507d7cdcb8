package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/unicapital-scheduler/internal/models"
)

var ErrUserNotFound = errors.New("user not found")

type UserGormRepository struct {
	db *gorm.DB
}

func NewUserGormRepository(db *gorm.DB) *UserGormRepository {
	return &UserGormRepository{db: db}
}

func (r *UserGormRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).
		Where("email = ?", strings.ToLower(strings.TrimSpace(email))).
		First(&user).Error
	return user, mapUserErr(err)
}

func (r *UserGormRepository) FindUserByID(ctx context.Context, id uint) (models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).First(&user, id).Error
	return user, mapUserErr(err)
}

// SaveUser cria o usuário ou atualiza nome, senha e papel se o email já existir.
func (r *UserGormRepository) SaveUser(ctx context.Context, user *models.User) error {
	user.Email = strings.ToLower(strings.TrimSpace(user.Email))

	var existing models.User
	err := r.db.WithContext(ctx).Where("email = ?", user.Email).First(&existing).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
			return fmt.Errorf("create user: %w", err)
		}
		return nil
	case err != nil:
		return fmt.Errorf("find user: %w", err)
	}

	user.ID = existing.ID
	err = r.db.WithContext(ctx).Model(&existing).Updates(map[string]any{
		"name":          user.Name,
		"password_hash": user.PasswordHash,
		"role":          user.Role,
	}).Error
	if err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	return nil
}

func mapUserErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrUserNotFound
	default:
		return fmt.Errorf("find user: %w", err)
	}
}
