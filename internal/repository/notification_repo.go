package repository

import (
	"context"

	"gorm.io/gorm"

	"fitsphere/internal/domain"
)

type NotificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

func (r *NotificationRepository) Create(ctx context.Context, n *domain.Notification) error {
	return r.db.WithContext(ctx).Create(n).Error
}

func (r *NotificationRepository) List(ctx context.Context, unreadOnly bool, skip, limit int) ([]domain.Notification, error) {
	q := r.db.WithContext(ctx).Model(&domain.Notification{})
	if unreadOnly {
		q = q.Where("is_read = ?", false)
	}
	if limit <= 0 {
		limit = 20
	}

	var out []domain.Notification
	tx := q.Order("created_at DESC").Offset(skip).Limit(limit).Find(&out)
	return out, tx.Error
}

func (r *NotificationRepository) MarkRead(ctx context.Context, id string) error {
	tx := r.db.WithContext(ctx).Model(&domain.Notification{}).
		Where("id = ?", id).
		UpdateColumn("is_read", true)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
