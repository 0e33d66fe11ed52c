package chat

import (
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/yungbote/coursekey/internal/domain"
	"github.com/yungbote/coursekey/internal/platform/dbctx"
	"github.com/yungbote/coursekey/internal/platform/logger"
)

type ChatRepo interface {
	Create(dbc dbctx.Context, row *domain.Chat) error
	GetByID(dbc dbctx.Context, id string) (*domain.Chat, error)
	ListByUser(dbc dbctx.Context, userID string, limit int) ([]*domain.Chat, error)
}

type chatRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewChatRepo(db *gorm.DB, log *logger.Logger) ChatRepo {
	return &chatRepo{db: db, log: log.With("repo", "ChatRepo")}
}

func (r *chatRepo) Create(dbc dbctx.Context, row *domain.Chat) error {
	return dbc.Conn(r.db).Create(row).Error
}

func (r *chatRepo) GetByID(dbc dbctx.Context, id string) (*domain.Chat, error) {
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("missing chat_id")
	}
	var out domain.Chat
	if err := dbc.Conn(r.db).Where("id = ?", id).First(&out).Error; err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *chatRepo) ListByUser(dbc dbctx.Context, userID string, limit int) ([]*domain.Chat, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	var out []*domain.Chat
	if err := dbc.Conn(r.db).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
