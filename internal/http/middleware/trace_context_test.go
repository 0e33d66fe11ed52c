package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/yungbote/coursekey/internal/platform/ctxutil"
	"github.com/yungbote/coursekey/internal/platform/logger"
)

func TestAttachTraceContextKeepsIncomingRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(AttachTraceContext(), RequestLogger(logger.Nop()))

	var seen *ctxutil.TraceData
	r.GET("/x", func(c *gin.Context) {
		seen = ctxutil.GetTraceData(c.Request.Context())
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("X-Request-Id", "req-123")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if seen == nil {
		t.Fatalf("trace data: missing from request context")
	}
	if seen.RequestID != "req-123" {
		t.Fatalf("request id: want=%q got=%q", "req-123", seen.RequestID)
	}
	if seen.TraceID == "" {
		t.Fatalf("trace id: want non-empty")
	}
	if got := rec.Header().Get("X-Request-Id"); got != "req-123" {
		t.Fatalf("X-Request-Id header: want=%q got=%q", "req-123", got)
	}
	if got := rec.Header().Get("X-Trace-Id"); got != seen.TraceID {
		t.Fatalf("X-Trace-Id header: want=%q got=%q", seen.TraceID, got)
	}
}

func TestAttachTraceContextMintsRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(AttachTraceContext())
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/x", nil))

	if got := rec.Header().Get("X-Request-Id"); len(got) != 36 {
		t.Fatalf("X-Request-Id: want uuid got=%q", got)
	}
}

func TestAttachTraceContextTagsServerSpan(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rec := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(rec))

	r := gin.New()
	r.Use(otelgin.Middleware("coursekey-test", otelgin.WithTracerProvider(tp)), AttachTraceContext())
	var seen *ctxutil.TraceData
	r.POST("/api/courses", func(c *gin.Context) {
		seen = ctxutil.GetTraceData(c.Request.Context())
		c.Status(http.StatusCreated)
	})

	req := httptest.NewRequest(http.MethodPost, "/api/courses", nil)
	req.Header.Set("X-Request-Id", "req-span")
	r.ServeHTTP(httptest.NewRecorder(), req)

	spans := rec.Ended()
	if len(spans) != 1 {
		t.Fatalf("spans: want=1 got=%d", len(spans))
	}
	attrs := map[string]string{}
	for _, kv := range spans[0].Attributes() {
		attrs[string(kv.Key)] = kv.Value.Emit()
	}
	if got := attrs[attrRequestID]; got != "req-span" {
		t.Fatalf("span request id: want=%q got=%q", "req-span", got)
	}
	wantTrace := spans[0].SpanContext().TraceID().String()
	if got := attrs[attrTraceID]; got != wantTrace {
		t.Fatalf("span trace id: want=%q got=%q", wantTrace, got)
	}
	if seen == nil || seen.TraceID != wantTrace {
		t.Fatalf("context trace id: want=%q got=%+v", wantTrace, seen)
	}
}
