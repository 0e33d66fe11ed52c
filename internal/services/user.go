package services

import (
	"context"
	"strings"

	"github.com/yungbote/coursekey/internal/data/repos"
	"github.com/yungbote/coursekey/internal/domain"
	"github.com/yungbote/coursekey/internal/idgen"
	"github.com/yungbote/coursekey/internal/platform/dbctx"
	"github.com/yungbote/coursekey/internal/platform/logger"
)

type UserInput struct {
	PUID        string `json:"puid"`
	DisplayName string `json:"display_name"`
	Affiliation string `json:"affiliation"`
}

type UserService interface {
	// Upsert registers the user identified by PUID. The first sighting mints the
	// ID; later calls refresh the profile and keep that ID.
	Upsert(ctx context.Context, in UserInput) (*domain.User, error)
	Get(ctx context.Context, id string) (*domain.User, error)
}

type userService struct {
	log      *logger.Logger
	userRepo repos.UserRepo
	clock    Clock
}

func NewUserService(baseLog *logger.Logger, userRepo repos.UserRepo, clock Clock) UserService {
	if clock == nil {
		clock = SystemClock
	}
	return &userService{log: baseLog.With("service", "UserService"), userRepo: userRepo, clock: clock}
}

func (s *userService) Upsert(ctx context.Context, in UserInput) (*domain.User, error) {
	id, err := idgen.UserID(in.PUID, in.DisplayName, in.Affiliation)
	if err != nil {
		return nil, mapError(err, "user")
	}
	now, _ := stampTime(s.clock, nil)
	u, err := s.userRepo.Upsert(dbctx.New(ctx), &domain.User{
		ID:          id,
		PUID:        in.PUID,
		DisplayName: in.DisplayName,
		Affiliation: in.Affiliation,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		return nil, mapError(err, "user")
	}
	if u.ID != id {
		s.log.Debug("user profile changed since id was minted", "user_id", u.ID)
	}
	return u, nil
}

func (s *userService) Get(ctx context.Context, id string) (*domain.User, error) {
	u, err := s.userRepo.GetByID(dbctx.New(ctx), strings.TrimSpace(id))
	if err != nil {
		return nil, mapError(err, "user")
	}
	return u, nil
}
