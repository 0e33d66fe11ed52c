package services

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"

	"github.com/yungbote/coursekey/internal/idgen"
	"github.com/yungbote/coursekey/internal/observability"
	"github.com/yungbote/coursekey/internal/platform/logger"
)

// IDResult is the outcome for one spec. Code is set for courses only and
// Error carries a per-spec validation failure.
type IDResult struct {
	Index int        `json:"index"`
	Kind  idgen.Kind `json:"kind"`
	ID    string     `json:"id,omitempty"`
	Code  string     `json:"code,omitempty"`
	Error string     `json:"error,omitempty"`
}

// IDService computes IDs without touching storage.
type IDService interface {
	Hash(input string) string
	Preview(spec idgen.Spec) (IDResult, error)
	Batch(ctx context.Context, specs []idgen.Spec) ([]IDResult, error)
}

type idService struct {
	log         *logger.Logger
	concurrency int
}

func NewIDService(baseLog *logger.Logger, concurrency int) IDService {
	if concurrency <= 0 {
		concurrency = 8
	}
	return &idService{log: baseLog.With("service", "IDService"), concurrency: concurrency}
}

func (s *idService) Hash(input string) string { return idgen.Hash12(input) }

func (s *idService) Preview(spec idgen.Spec) (IDResult, error) {
	res := IDResult{Kind: spec.Kind}
	id, err := spec.ID()
	if err != nil {
		return res, mapError(err, "id")
	}
	res.ID = id
	if spec.Kind == idgen.KindCourse {
		code, err := idgen.EncodeCourseCode(id)
		if err != nil {
			return res, mapError(err, "course code")
		}
		res.Code = code
	}
	return res, nil
}

// Batch computes every spec concurrently. Invalid specs are reported in their
// result; only cancellation of ctx fails the whole batch. Results keep input order.
func (s *idService) Batch(ctx context.Context, specs []idgen.Spec) ([]IDResult, error) {
	ctx, span := observability.Tracer().Start(ctx, "IDService.Batch")
	defer span.End()
	span.SetAttributes(attribute.Int("batch.size", len(specs)))

	out := make([]IDResult, len(specs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)
	for i, spec := range specs {
		i, spec := i, spec
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, err := s.Preview(spec)
			res.Index = i
			if err != nil {
				res.Error = err.Error()
			}
			out[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
