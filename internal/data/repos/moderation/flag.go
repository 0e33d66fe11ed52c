package moderation

import (
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/yungbote/coursekey/internal/domain"
	"github.com/yungbote/coursekey/internal/platform/dbctx"
	"github.com/yungbote/coursekey/internal/platform/logger"
)

type FlagRepo interface {
	Create(dbc dbctx.Context, row *domain.Flag) error
	GetByID(dbc dbctx.Context, id string) (*domain.Flag, error)
	// ListByCourse filters by status unless status is empty.
	ListByCourse(dbc dbctx.Context, courseID, status string) ([]*domain.Flag, error)
	Resolve(dbc dbctx.Context, id string, at time.Time) error
}

type flagRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewFlagRepo(db *gorm.DB, log *logger.Logger) FlagRepo {
	return &flagRepo{db: db, log: log.With("repo", "FlagRepo")}
}

func (r *flagRepo) Create(dbc dbctx.Context, row *domain.Flag) error {
	return dbc.Conn(r.db).Create(row).Error
}

func (r *flagRepo) GetByID(dbc dbctx.Context, id string) (*domain.Flag, error) {
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("missing flag_id")
	}
	var out domain.Flag
	if err := dbc.Conn(r.db).Where("id = ?", id).First(&out).Error; err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *flagRepo) ListByCourse(dbc dbctx.Context, courseID, status string) ([]*domain.Flag, error) {
	q := dbc.Conn(r.db).Where("course_id = ?", courseID)
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var out []*domain.Flag
	if err := q.Order("created_at DESC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *flagRepo) Resolve(dbc dbctx.Context, id string, at time.Time) error {
	res := dbc.Conn(r.db).
		Model(&domain.Flag{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":      domain.FlagStatusResolved,
			"resolved_at": at,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
