package user

import (
	"fmt"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/yungbote/coursekey/internal/domain"
	"github.com/yungbote/coursekey/internal/platform/dbctx"
	"github.com/yungbote/coursekey/internal/platform/logger"
)

type UserRepo interface {
	// Upsert inserts row, or refreshes display name and affiliation when the PUID
	// is already known. The stored ID is kept so references stay valid.
	Upsert(dbc dbctx.Context, row *domain.User) (*domain.User, error)
	GetByID(dbc dbctx.Context, id string) (*domain.User, error)
	GetByPUID(dbc dbctx.Context, puid string) (*domain.User, error)
}

type userRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewUserRepo(db *gorm.DB, log *logger.Logger) UserRepo {
	return &userRepo{db: db, log: log.With("repo", "UserRepo")}
}

func (r *userRepo) Upsert(dbc dbctx.Context, row *domain.User) (*domain.User, error) {
	if row == nil {
		return nil, fmt.Errorf("missing user")
	}
	err := dbc.Conn(r.db).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "puid"}},
		DoUpdates: clause.AssignmentColumns([]string{"display_name", "affiliation", "updated_at"}),
	}).Create(row).Error
	if err != nil {
		return nil, err
	}
	return r.GetByPUID(dbc, row.PUID)
}

func (r *userRepo) GetByID(dbc dbctx.Context, id string) (*domain.User, error) {
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("missing user_id")
	}
	var out domain.User
	if err := dbc.Conn(r.db).Where("id = ?", id).First(&out).Error; err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *userRepo) GetByPUID(dbc dbctx.Context, puid string) (*domain.User, error) {
	if strings.TrimSpace(puid) == "" {
		return nil, fmt.Errorf("missing puid")
	}
	var out domain.User
	if err := dbc.Conn(r.db).Where("puid = ?", puid).First(&out).Error; err != nil {
		return nil, err
	}
	return &out, nil
}
