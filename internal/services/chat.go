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

type ChatService interface {
	Start(ctx context.Context, userID, courseID string) (*domain.Chat, error)
	Post(ctx context.Context, chatID, role, text string) (*domain.Message, error)
	History(ctx context.Context, chatID string, limit int) ([]*domain.Message, error)
}

type chatService struct {
	log         *logger.Logger
	userRepo    repos.UserRepo
	courseRepo  repos.CourseRepo
	chatRepo    repos.ChatRepo
	messageRepo repos.MessageRepo
	clock       Clock
}

func NewChatService(
	baseLog *logger.Logger,
	userRepo repos.UserRepo,
	courseRepo repos.CourseRepo,
	chatRepo repos.ChatRepo,
	messageRepo repos.MessageRepo,
	clock Clock,
) ChatService {
	if clock == nil {
		clock = SystemClock
	}
	return &chatService{
		log:         baseLog.With("service", "ChatService"),
		userRepo:    userRepo,
		courseRepo:  courseRepo,
		chatRepo:    chatRepo,
		messageRepo: messageRepo,
		clock:       clock,
	}
}

func (s *chatService) Start(ctx context.Context, userID, courseID string) (*domain.Chat, error) {
	if err := requireIDs("user_id", userID, "course_id", courseID); err != nil {
		return nil, err
	}
	dbc := dbctx.New(ctx)
	u, err := s.userRepo.GetByID(dbc, userID)
	if err != nil {
		return nil, mapError(err, "user")
	}
	course, err := s.courseRepo.GetByID(dbc, courseID)
	if err != nil {
		return nil, mapError(err, "course")
	}
	at, _ := stampTime(s.clock, nil)
	var out *domain.Chat
	err = mint(at, false, func(at time.Time) error {
		id, err := idgen.ChatID(u.ID, course.Name, at)
		if err != nil {
			return err
		}
		row := &domain.Chat{ID: id, UserID: u.ID, CourseID: course.ID, CreatedAt: at}
		if err := s.chatRepo.Create(dbc, row); err != nil {
			return err
		}
		out = row
		return nil
	})
	if err != nil {
		return nil, mapError(err, "chat")
	}
	s.log.Info("chat started", append([]interface{}{"chat_id", out.ID, "user_id", u.ID, "course_id", course.ID}, ctxutil.LogFields(ctx)...)...)
	return out, nil
}

func (s *chatService) Post(ctx context.Context, chatID, role, text string) (*domain.Message, error) {
	dbc := dbctx.New(ctx)
	role = strings.ToLower(strings.TrimSpace(role))
	switch role {
	case "":
		role = domain.MessageRoleUser
	case domain.MessageRoleUser, domain.MessageRoleAssistant:
	default:
		return nil, apierr.InvalidInput(fmt.Errorf("message role must be %q or %q", domain.MessageRoleUser, domain.MessageRoleAssistant))
	}
	ch, err := s.chatRepo.GetByID(dbc, chatID)
	if err != nil {
		return nil, mapError(err, "chat")
	}
	at, _ := stampTime(s.clock, nil)
	var out *domain.Message
	err = mint(at, false, func(at time.Time) error {
		id, err := idgen.MessageID(text, ch.ID, at)
		if err != nil {
			return err
		}
		row := &domain.Message{ID: id, ChatID: ch.ID, Role: role, Content: text, CreatedAt: at}
		if err := s.messageRepo.Create(dbc, row); err != nil {
			return err
		}
		out = row
		return nil
	})
	if err != nil {
		return nil, mapError(err, "message")
	}
	return out, nil
}

func (s *chatService) History(ctx context.Context, chatID string, limit int) ([]*domain.Message, error) {
	dbc := dbctx.New(ctx)
	if _, err := s.chatRepo.GetByID(dbc, chatID); err != nil {
		return nil, mapError(err, "chat")
	}
	rows, err := s.messageRepo.ListByChat(dbc, chatID, limit)
	if err != nil {
		return nil, mapError(err, "messages")
	}
	return rows, nil
}
