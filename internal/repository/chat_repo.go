package repository

import (
	"context"

	"gorm.io/gorm"

	"fitsphere/internal/domain"
)

type ChatRepository struct {
	db *gorm.DB
}

func NewChatRepository(db *gorm.DB) *ChatRepository {
	return &ChatRepository{db: db}
}

func (r *ChatRepository) Create(ctx context.Context, m *domain.ChatMessage) error {
	return r.db.WithContext(ctx).Create(m).Error
}

// ListForUser returns the conversation history involving the user, oldest
// first.
func (r *ChatRepository) ListForUser(ctx context.Context, userID string, skip, limit int) ([]domain.ChatMessage, error) {
	if limit <= 0 {
		limit = 50
	}
	var out []domain.ChatMessage
	tx := r.db.WithContext(ctx).
		Where("sender_id = ? OR receiver_id = ?", userID, userID).
		Order("created_at ASC").
		Offset(skip).Limit(limit).
		Find(&out)
	return out, tx.Error
}

// ListAll returns all messages, optionally narrowed to one user's
// conversation. Admin view.
func (r *ChatRepository) ListAll(ctx context.Context, userID string, skip, limit int) ([]domain.ChatMessage, error) {
	if limit <= 0 {
		limit = 100
	}
	q := r.db.WithContext(ctx).Model(&domain.ChatMessage{})
	if userID != "" {
		q = q.Where("sender_id = ? OR receiver_id = ?", userID, userID)
	}

	var out []domain.ChatMessage
	tx := q.Order("created_at ASC").Offset(skip).Limit(limit).Find(&out)
	return out, tx.Error
}

func (r *ChatRepository) MarkRead(ctx context.Context, messageID string) error {
	tx := r.db.WithContext(ctx).Model(&domain.ChatMessage{}).
		Where("id = ?", messageID).
		UpdateColumn("is_read", true)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
