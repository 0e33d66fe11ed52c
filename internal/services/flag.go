package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/yungbote/coursekey/internal/data/repos"
	"github.com/yungbote/coursekey/internal/domain"
	"github.com/yungbote/coursekey/internal/idgen"
	"github.com/yungbote/coursekey/internal/platform/apierr"
	"github.com/yungbote/coursekey/internal/platform/ctxutil"
	"github.com/yungbote/coursekey/internal/platform/dbctx"
	"github.com/yungbote/coursekey/internal/platform/logger"
)

// ReportInput flags either a stored message (MessageID) or free-form Content.
// When both are given, Content wins for the excerpt.
type ReportInput struct {
	ReporterID string `json:"reporter_id"`
	CourseID   string `json:"course_id"`
	MessageID  string `json:"message_id,omitempty"`
	Content    string `json:"content,omitempty"`
	Reason     string `json:"reason,omitempty"`
}

type FlagService interface {
	Report(ctx context.Context, in ReportInput) (*domain.Flag, error)
	List(ctx context.Context, courseID, status string) ([]*domain.Flag, error)
	Resolve(ctx context.Context, flagID string) (*domain.Flag, error)
}

type flagService struct {
	log         *logger.Logger
	courseRepo  repos.CourseRepo
	userRepo    repos.UserRepo
	messageRepo repos.MessageRepo
	flagRepo    repos.FlagRepo
	clock       Clock
}

func NewFlagService(
	baseLog *logger.Logger,
	courseRepo repos.CourseRepo,
	userRepo repos.UserRepo,
	messageRepo repos.MessageRepo,
	flagRepo repos.FlagRepo,
	clock Clock,
) FlagService {
	if clock == nil {
		clock = SystemClock
	}
	return &flagService{
		log:         baseLog.With("service", "FlagService"),
		courseRepo:  courseRepo,
		userRepo:    userRepo,
		messageRepo: messageRepo,
		flagRepo:    flagRepo,
		clock:       clock,
	}
}

func (s *flagService) Report(ctx context.Context, in ReportInput) (*domain.Flag, error) {
	if err := requireIDs("reporter_id", in.ReporterID, "course_id", in.CourseID); err != nil {
		return nil, err
	}
	dbc := dbctx.New(ctx)
	reporter, err := s.userRepo.GetByID(dbc, in.ReporterID)
	if err != nil {
		return nil, mapError(err, "reporter")
	}
	course, err := s.courseRepo.GetByID(dbc, in.CourseID)
	if err != nil {
		return nil, mapError(err, "course")
	}

	content := in.Content
	var messageID *string
	if mid := strings.TrimSpace(in.MessageID); mid != "" {
		msg, err := s.messageRepo.GetByID(dbc, mid)
		if err != nil {
			return nil, mapError(err, "message")
		}
		if strings.TrimSpace(content) == "" {
			content = msg.Content
		}
		messageID = &msg.ID
	}
	if strings.TrimSpace(content) == "" {
		return nil, apierr.InvalidInput(fmt.Errorf("flag needs content or a message_id"))
	}

	at, _ := stampTime(s.clock, nil)
	var out *domain.Flag
	err = mint(at, false, func(at time.Time) error {
		id, err := idgen.FlagID(content, reporter.ID, course.Name, at)
		if err != nil {
			return err
		}
		row := &domain.Flag{
			ID:         id,
			CourseID:   course.ID,
			ReporterID: reporter.ID,
			MessageID:  messageID,
			Excerpt:    idgen.FlagExcerpt(content),
			Reason:     strings.TrimSpace(in.Reason),
			Status:     domain.FlagStatusUnresolved,
			CreatedAt:  at,
		}
		if err := s.flagRepo.Create(dbc, row); err != nil {
			return err
		}
		out = row
		return nil
	})
	if err != nil {
		return nil, mapError(err, "flag")
	}
	s.log.Info("flag reported", append([]interface{}{"flag_id", out.ID, "course_id", course.ID, "reporter_id", reporter.ID}, ctxutil.LogFields(ctx)...)...)
	return out, nil
}

func (s *flagService) List(ctx context.Context, courseID, status string) ([]*domain.Flag, error) {
	status = strings.ToLower(strings.TrimSpace(status))
	switch status {
	case "", domain.FlagStatusUnresolved, domain.FlagStatusResolved:
	default:
		return nil, apierr.InvalidInput(fmt.Errorf("unknown flag status %q", status))
	}
	rows, err := s.flagRepo.ListByCourse(dbctx.New(ctx), courseID, status)
	if err != nil {
		return nil, mapError(err, "flags")
	}
	return rows, nil
}

func (s *flagService) Resolve(ctx context.Context, flagID string) (*domain.Flag, error) {
	dbc := dbctx.New(ctx)
	at, _ := stampTime(s.clock, nil)
	if err := s.flagRepo.Resolve(dbc, flagID, at); err != nil {
		return nil, mapError(err, "flag")
	}
	f, err := s.flagRepo.GetByID(dbc, flagID)
	if err != nil {
		return nil, mapError(err, "flag")
	}
	return f, nil
}
