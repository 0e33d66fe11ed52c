package app

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/coursekey/internal/http"
	httpH "github.com/yungbote/coursekey/internal/http/handlers"
	"github.com/yungbote/coursekey/internal/platform/logger"
)

type Handlers struct {
	Health  *httpH.HealthHandler
	IDs     *httpH.IDHandler
	Course  *httpH.CourseHandler
	Content *httpH.ContentHandler
	User    *httpH.UserHandler
	Chat    *httpH.ChatHandler
	Flag    *httpH.FlagHandler
}

func wireHandlers(log *logger.Logger, services Services) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Health:  httpH.NewHealthHandler(),
		IDs:     httpH.NewIDHandler(services.IDs),
		Course:  httpH.NewCourseHandler(services.Course, services.Content),
		Content: httpH.NewContentHandler(services.Content),
		User:    httpH.NewUserHandler(services.User),
		Chat:    httpH.NewChatHandler(services.Chat),
		Flag:    httpH.NewFlagHandler(services.Flag),
	}
}

func wireRouter(log *logger.Logger, cfg Config, handlers Handlers) *gin.Engine {
	serviceName := ""
	if cfg.Otel.Enabled {
		serviceName = cfg.Otel.ServiceName
	}
	return http.NewRouter(http.RouterConfig{
		Log:            log,
		ServiceName:    serviceName,
		CORSOrigins:    cfg.CORSOrigins,
		HealthHandler:  handlers.Health,
		IDHandler:      handlers.IDs,
		CourseHandler:  handlers.Course,
		ContentHandler: handlers.Content,
		UserHandler:    handlers.User,
		ChatHandler:    handlers.Chat,
		FlagHandler:    handlers.Flag,
	})
}
