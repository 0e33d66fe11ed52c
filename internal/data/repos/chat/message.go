package chat

import (
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/yungbote/coursekey/internal/domain"
	"github.com/yungbote/coursekey/internal/platform/dbctx"
	"github.com/yungbote/coursekey/internal/platform/logger"
)

type MessageRepo interface {
	Create(dbc dbctx.Context, row *domain.Message) error
	GetByID(dbc dbctx.Context, id string) (*domain.Message, error)
	ListByChat(dbc dbctx.Context, chatID string, limit int) ([]*domain.Message, error)
}

type messageRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewMessageRepo(db *gorm.DB, log *logger.Logger) MessageRepo {
	return &messageRepo{db: db, log: log.With("repo", "MessageRepo")}
}

func (r *messageRepo) Create(dbc dbctx.Context, row *domain.Message) error {
	return dbc.Conn(r.db).Create(row).Error
}

func (r *messageRepo) GetByID(dbc dbctx.Context, id string) (*domain.Message, error) {
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("missing message_id")
	}
	var out domain.Message
	if err := dbc.Conn(r.db).Where("id = ?", id).First(&out).Error; err != nil {
		return nil, err
	}
	return &out, nil
}

// ListByChat returns the newest limit messages in ascending time order.
func (r *messageRepo) ListByChat(dbc dbctx.Context, chatID string, limit int) ([]*domain.Message, error) {
	if strings.TrimSpace(chatID) == "" {
		return nil, fmt.Errorf("missing chat_id")
	}
	if limit <= 0 || limit > 500 {
		limit = 50
	}
	var out []*domain.Message
	if err := dbc.Conn(r.db).
		Where("chat_id = ?", chatID).
		Order("created_at DESC").
		Limit(limit).
		Find(&out).Error; err != nil {
		return nil, err
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out, nil
}
