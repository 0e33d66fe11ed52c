package repos

import (
	"gorm.io/gorm"

	"github.com/yungbote/coursekey/internal/data/repos/chat"
	"github.com/yungbote/coursekey/internal/data/repos/learning"
	"github.com/yungbote/coursekey/internal/data/repos/moderation"
	"github.com/yungbote/coursekey/internal/data/repos/user"
	"github.com/yungbote/coursekey/internal/platform/logger"
)

type CourseRepo = learning.CourseRepo
type ContentRepo = learning.ContentRepo

type UserRepo = user.UserRepo

type ChatRepo = chat.ChatRepo
type MessageRepo = chat.MessageRepo

type FlagRepo = moderation.FlagRepo

type Set struct {
	Course  CourseRepo
	Content ContentRepo
	User    UserRepo
	Chat    ChatRepo
	Message MessageRepo
	Flag    FlagRepo
}

func NewSet(db *gorm.DB, log *logger.Logger) Set {
	return Set{
		Course:  learning.NewCourseRepo(db, log),
		Content: learning.NewContentRepo(db, log),
		User:    user.NewUserRepo(db, log),
		Chat:    chat.NewChatRepo(db, log),
		Message: chat.NewMessageRepo(db, log),
		Flag:    moderation.NewFlagRepo(db, log),
	}
}
