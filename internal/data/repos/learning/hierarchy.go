package learning

import (
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/yungbote/coursekey/internal/domain"
	"github.com/yungbote/coursekey/internal/platform/dbctx"
	"github.com/yungbote/coursekey/internal/platform/logger"
)

// ContentRepo stores the levels below a course: divisions, items, and the
// objectives and materials attached to items.
type ContentRepo interface {
	CreateDivision(dbc dbctx.Context, row *domain.Division) error
	CreateItem(dbc dbctx.Context, row *domain.Item) error
	CreateObjective(dbc dbctx.Context, row *domain.LearningObjective) error
	CreateMaterial(dbc dbctx.Context, row *domain.Material) error

	GetDivision(dbc dbctx.Context, id string) (*domain.Division, error)
	GetItem(dbc dbctx.Context, id string) (*domain.Item, error)

	ListDivisions(dbc dbctx.Context, courseID string) ([]*domain.Division, error)
	ListItems(dbc dbctx.Context, divisionIDs []string) ([]*domain.Item, error)
	ListObjectives(dbc dbctx.Context, itemIDs []string) ([]*domain.LearningObjective, error)
	ListMaterials(dbc dbctx.Context, itemIDs []string) ([]*domain.Material, error)
}

type contentRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewContentRepo(db *gorm.DB, log *logger.Logger) ContentRepo {
	return &contentRepo{db: db, log: log.With("repo", "ContentRepo")}
}

func (r *contentRepo) CreateDivision(dbc dbctx.Context, row *domain.Division) error {
	return dbc.Conn(r.db).Create(row).Error
}

func (r *contentRepo) CreateItem(dbc dbctx.Context, row *domain.Item) error {
	return dbc.Conn(r.db).Create(row).Error
}

func (r *contentRepo) CreateObjective(dbc dbctx.Context, row *domain.LearningObjective) error {
	return dbc.Conn(r.db).Create(row).Error
}

func (r *contentRepo) CreateMaterial(dbc dbctx.Context, row *domain.Material) error {
	return dbc.Conn(r.db).Create(row).Error
}

func (r *contentRepo) GetDivision(dbc dbctx.Context, id string) (*domain.Division, error) {
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("missing division_id")
	}
	var out domain.Division
	if err := dbc.Conn(r.db).Where("id = ?", id).First(&out).Error; err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *contentRepo) GetItem(dbc dbctx.Context, id string) (*domain.Item, error) {
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("missing item_id")
	}
	var out domain.Item
	if err := dbc.Conn(r.db).Where("id = ?", id).First(&out).Error; err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *contentRepo) ListDivisions(dbc dbctx.Context, courseID string) ([]*domain.Division, error) {
	var out []*domain.Division
	if err := dbc.Conn(r.db).
		Where("course_id = ?", courseID).
		Order("position ASC, created_at ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *contentRepo) ListItems(dbc dbctx.Context, divisionIDs []string) ([]*domain.Item, error) {
	var out []*domain.Item
	if len(divisionIDs) == 0 {
		return out, nil
	}
	if err := dbc.Conn(r.db).
		Where("division_id IN ?", divisionIDs).
		Order("created_at ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *contentRepo) ListObjectives(dbc dbctx.Context, itemIDs []string) ([]*domain.LearningObjective, error) {
	var out []*domain.LearningObjective
	if len(itemIDs) == 0 {
		return out, nil
	}
	if err := dbc.Conn(r.db).
		Where("item_id IN ?", itemIDs).
		Order("created_at ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *contentRepo) ListMaterials(dbc dbctx.Context, itemIDs []string) ([]*domain.Material, error) {
	var out []*domain.Material
	if len(itemIDs) == 0 {
		return out, nil
	}
	if err := dbc.Conn(r.db).
		Where("item_id IN ?", itemIDs).
		Order("created_at ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
