package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"fitsphere/internal/domain"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, u *domain.User) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	var u domain.User
	tx := r.db.WithContext(ctx).First(&u, "id = ?", id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &u, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var u domain.User
	tx := r.db.WithContext(ctx).First(&u, "email = ?", email)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &u, nil
}

func (r *UserRepository) List(ctx context.Context, role domain.Role, skip, limit int) ([]domain.User, error) {
	if limit <= 0 {
		limit = 50
	}
	q := r.db.WithContext(ctx).Model(&domain.User{})
	if role != "" {
		q = q.Where("role = ?", string(role))
	}

	var out []domain.User
	tx := q.Offset(skip).Limit(limit).Find(&out)
	return out, tx.Error
}

func (r *UserRepository) CountByRole(ctx context.Context, role domain.Role) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&domain.User{}).
		Where("role = ?", string(role)).Count(&n).Error
	return n, err
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, id string) error {
	now := time.Now().UTC()
	return r.db.WithContext(ctx).Model(&domain.User{}).
		Where("id = ?", id).
		UpdateColumn("last_login", &now).Error
}
