package http

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	httpH "github.com/yungbote/coursekey/internal/http/handlers"
	httpMW "github.com/yungbote/coursekey/internal/http/middleware"
	"github.com/yungbote/coursekey/internal/platform/logger"
)

type RouterConfig struct {
	Log         *logger.Logger
	ServiceName string
	CORSOrigins []string

	IDHandler      *httpH.IDHandler
	CourseHandler  *httpH.CourseHandler
	ContentHandler *httpH.ContentHandler
	UserHandler    *httpH.UserHandler
	ChatHandler    *httpH.ChatHandler
	FlagHandler    *httpH.FlagHandler

	HealthHandler *httpH.HealthHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	if cfg.ServiceName != "" {
		r.Use(otelgin.Middleware(cfg.ServiceName))
	}
	r.Use(httpMW.AttachTraceContext())
	r.Use(httpMW.RequestLogger(cfg.Log))
	r.Use(httpMW.CORS(cfg.CORSOrigins...))

	// Health
	if cfg.HealthHandler != nil {
		r.GET("/healthcheck", cfg.HealthHandler.HealthCheck)
	}

	api := r.Group("/api")
	{
		// IDs (stateless)
		if cfg.IDHandler != nil {
			api.POST("/ids/hash", cfg.IDHandler.Hash)
			api.POST("/ids/preview", cfg.IDHandler.Preview)
			api.POST("/ids/batch", cfg.IDHandler.Batch)
		}

		// Courses
		if cfg.CourseHandler != nil {
			api.POST("/courses", cfg.CourseHandler.Create)
			api.GET("/courses", cfg.CourseHandler.List)
			api.GET("/courses/join/:code", cfg.CourseHandler.Join)
			api.GET("/courses/:id", cfg.CourseHandler.Get)
			api.GET("/courses/:id/tree", cfg.CourseHandler.Tree)
		}

		// Content hierarchy
		if cfg.ContentHandler != nil {
			api.POST("/courses/:id/divisions", cfg.ContentHandler.AddDivision)
			api.POST("/divisions/:id/items", cfg.ContentHandler.AddItem)
			api.POST("/items/:id/objectives", cfg.ContentHandler.AddObjective)
			api.POST("/items/:id/materials", cfg.ContentHandler.AddMaterial)
		}

		// Users
		if cfg.UserHandler != nil {
			api.POST("/users", cfg.UserHandler.Upsert)
			api.GET("/users/:id", cfg.UserHandler.Get)
		}

		// Chat
		if cfg.ChatHandler != nil {
			api.POST("/chats", cfg.ChatHandler.Start)
			api.POST("/chats/:id/messages", cfg.ChatHandler.Post)
			api.GET("/chats/:id/messages", cfg.ChatHandler.History)
		}

		// Flags
		if cfg.FlagHandler != nil {
			api.POST("/flags", cfg.FlagHandler.Report)
			api.POST("/flags/:id/resolve", cfg.FlagHandler.Resolve)
			api.GET("/courses/:id/flags", cfg.FlagHandler.List)
		}
	}

	return r
}
