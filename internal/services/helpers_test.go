package services

import (
	"testing"
	"time"

	"github.com/yungbote/coursekey/internal/data/cache"
	"github.com/yungbote/coursekey/internal/data/repos"
	"github.com/yungbote/coursekey/internal/data/repos/testutil"
)

var refTime = time.Date(2024, time.September, 3, 17, 30, 0, 0, time.UTC)

func fixedClock(at time.Time) Clock { return func() time.Time { return at } }

type fixture struct {
	repos   repos.Set
	codes   cache.CodeCache
	course  CourseService
	content ContentService
	users   UserService
	chats   ChatService
	flags   FlagService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := testutil.DB(t)
	log := testutil.Logger(t)
	rs := repos.NewSet(db, log)
	codes := cache.NewMemoryCodeCache(64, time.Hour)
	clock := fixedClock(refTime)
	return &fixture{
		repos:   rs,
		codes:   codes,
		course:  NewCourseService(log, rs.Course, codes, clock),
		content: NewContentService(log, rs.Course, rs.Content, clock),
		users:   NewUserService(log, rs.User, clock),
		chats:   NewChatService(log, rs.User, rs.Course, rs.Chat, rs.Message, clock),
		flags:   NewFlagService(log, rs.Course, rs.User, rs.Message, rs.Flag, clock),
	}
}
