package app

import (
	"github.com/yungbote/coursekey/internal/data/repos"
	"github.com/yungbote/coursekey/internal/platform/logger"
	"github.com/yungbote/coursekey/internal/services"
)

type Services struct {
	IDs     services.IDService
	Course  services.CourseService
	Content services.ContentService
	User    services.UserService
	Chat    services.ChatService
	Flag    services.FlagService
}

func wireServices(log *logger.Logger, cfg Config, rs repos.Set, clients Clients) Services {
	log.Info("Wiring services...")
	clock := services.SystemClock
	return Services{
		IDs:     services.NewIDService(log, cfg.BatchConcurrency),
		Course:  services.NewCourseService(log, rs.Course, clients.CodeCache, clock),
		Content: services.NewContentService(log, rs.Course, rs.Content, clock),
		User:    services.NewUserService(log, rs.User, clock),
		Chat:    services.NewChatService(log, rs.User, rs.Course, rs.Chat, rs.Message, clock),
		Flag:    services.NewFlagService(log, rs.Course, rs.User, rs.Message, rs.Flag, clock),
	}
}
