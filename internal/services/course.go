package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/yungbote/coursekey/internal/data/cache"
	"github.com/yungbote/coursekey/internal/data/repos"
	"github.com/yungbote/coursekey/internal/domain"
	"github.com/yungbote/coursekey/internal/idgen"
	"github.com/yungbote/coursekey/internal/observability"
	"github.com/yungbote/coursekey/internal/platform/apierr"
	"github.com/yungbote/coursekey/internal/platform/ctxutil"
	"github.com/yungbote/coursekey/internal/platform/dbctx"
	"github.com/yungbote/coursekey/internal/platform/logger"
)

type CreateCourseInput struct {
	Name        string     `json:"name"`
	Description string     `json:"description"`
	CreatedAt   *time.Time `json:"created_at,omitempty"`
}

type CourseService interface {
	Create(ctx context.Context, in CreateCourseInput) (*domain.Course, error)
	Get(ctx context.Context, id string) (*domain.Course, error)
	// Join resolves a join code typed by a student to its course.
	Join(ctx context.Context, code string) (*domain.Course, error)
	List(ctx context.Context, limit int) ([]*domain.Course, error)
}

type courseService struct {
	log        *logger.Logger
	courseRepo repos.CourseRepo
	codes      cache.CodeCache
	clock      Clock
}

func NewCourseService(baseLog *logger.Logger, courseRepo repos.CourseRepo, codes cache.CodeCache, clock Clock) CourseService {
	if codes == nil {
		codes = cache.NewMemoryCodeCache(0, time.Hour)
	}
	if clock == nil {
		clock = SystemClock
	}
	return &courseService{
		log:        baseLog.With("service", "CourseService"),
		courseRepo: courseRepo,
		codes:      codes,
		clock:      clock,
	}
}

func (s *courseService) Create(ctx context.Context, in CreateCourseInput) (*domain.Course, error) {
	ctx, span := observability.Tracer().Start(ctx, "CourseService.Create")
	defer span.End()

	at, explicit := stampTime(s.clock, in.CreatedAt)
	var course *domain.Course
	err := mint(at, explicit, func(at time.Time) error {
		id, err := idgen.CourseID(in.Name, at)
		if err != nil {
			return err
		}
		code, err := idgen.EncodeCourseCode(id)
		if err != nil {
			return err
		}
		row := &domain.Course{
			ID:          id,
			Name:        in.Name,
			Code:        code,
			Description: strings.TrimSpace(in.Description),
			CreatedAt:   at,
			UpdatedAt:   at,
		}
		if _, err := s.courseRepo.Create(dbctx.New(ctx), []*domain.Course{row}); err != nil {
			return err
		}
		course = row
		return nil
	})
	if err != nil {
		s.log.Warn("create course failed", "course_name", in.Name, "error", err)
		return nil, mapError(err, "course")
	}
	span.SetAttributes(attribute.String("course.id", course.ID))

	if err := s.codes.Set(ctx, course.Code, course.ID); err != nil {
		s.log.Warn("course code cache set failed", "course_id", course.ID, "error", err)
	}
	s.log.Info("course created", append([]interface{}{"course_id", course.ID, "course_code", course.Code}, ctxutil.LogFields(ctx)...)...)
	return course, nil
}

func (s *courseService) Get(ctx context.Context, id string) (*domain.Course, error) {
	c, err := s.courseRepo.GetByID(dbctx.New(ctx), strings.TrimSpace(id))
	if err != nil {
		return nil, mapError(err, "course")
	}
	return c, nil
}

func (s *courseService) Join(ctx context.Context, code string) (*domain.Course, error) {
	ctx, span := observability.Tracer().Start(ctx, "CourseService.Join")
	defer span.End()

	code = idgen.NormalizeCourseCode(code)
	if !idgen.ValidCourseCode(code) {
		return nil, apierr.InvalidInput(fmt.Errorf("course code must be %d characters of 0-9 or A-Z", idgen.CodeLength))
	}
	dbc := dbctx.New(ctx)

	if id, ok, err := s.codes.Get(ctx, code); err != nil {
		s.log.Warn("course code cache get failed", "course_code", code, "error", err)
	} else if ok {
		c, err := s.courseRepo.GetByID(dbc, id)
		if err == nil {
			span.SetAttributes(attribute.Bool("cache.hit", true))
			return c, nil
		}
		// A cached code whose course is gone falls through to the code lookup.
		if err := s.codes.Delete(ctx, code); err != nil {
			s.log.Warn("course code cache delete failed", "course_code", code, "error", err)
		}
	}

	c, err := s.courseRepo.GetByCode(dbc, code)
	if err != nil {
		return nil, mapError(err, "course")
	}
	if err := s.codes.Set(ctx, c.Code, c.ID); err != nil {
		s.log.Warn("course code cache set failed", "course_id", c.ID, "error", err)
	}
	return c, nil
}

func (s *courseService) List(ctx context.Context, limit int) ([]*domain.Course, error) {
	rows, err := s.courseRepo.List(dbctx.New(ctx), limit)
	if err != nil {
		return nil, mapError(err, "courses")
	}
	return rows, nil
}
