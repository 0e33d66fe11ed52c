package learning

import (
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/yungbote/coursekey/internal/domain"
	"github.com/yungbote/coursekey/internal/platform/dbctx"
	"github.com/yungbote/coursekey/internal/platform/logger"
)

type CourseRepo interface {
	Create(dbc dbctx.Context, rows []*domain.Course) ([]*domain.Course, error)
	GetByID(dbc dbctx.Context, id string) (*domain.Course, error)
	GetByCode(dbc dbctx.Context, code string) (*domain.Course, error)
	List(dbc dbctx.Context, limit int) ([]*domain.Course, error)
}

type courseRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewCourseRepo(db *gorm.DB, log *logger.Logger) CourseRepo {
	return &courseRepo{db: db, log: log.With("repo", "CourseRepo")}
}

func (r *courseRepo) Create(dbc dbctx.Context, rows []*domain.Course) ([]*domain.Course, error) {
	if len(rows) == 0 {
		return []*domain.Course{}, nil
	}
	if err := dbc.Conn(r.db).Create(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// GetByID returns gorm.ErrRecordNotFound when no course has id.
func (r *courseRepo) GetByID(dbc dbctx.Context, id string) (*domain.Course, error) {
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("missing course_id")
	}
	var out domain.Course
	if err := dbc.Conn(r.db).Where("id = ?", id).First(&out).Error; err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *courseRepo) GetByCode(dbc dbctx.Context, code string) (*domain.Course, error) {
	if strings.TrimSpace(code) == "" {
		return nil, fmt.Errorf("missing course code")
	}
	var out domain.Course
	if err := dbc.Conn(r.db).Where("code = ?", code).First(&out).Error; err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *courseRepo) List(dbc dbctx.Context, limit int) ([]*domain.Course, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	var out []*domain.Course
	if err := dbc.Conn(r.db).
		Order("created_at DESC").
		Limit(limit).
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
