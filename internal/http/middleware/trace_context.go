package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/yungbote/coursekey/internal/platform/ctxutil"
)

const (
	headerTraceID   = "X-Trace-Id"
	headerRequestID = "X-Request-Id"

	attrRequestID = "coursekey.request_id"
	attrTraceID   = "coursekey.trace_id"
)

// AttachTraceContext resolves the request and trace IDs for a request, stores
// them on the request context for service logs, echoes them as response headers
// and tags the active span so a minted ID can be traced back to its request.
// It runs after otelgin so the server span already exists.
func AttachTraceContext() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		span := trace.SpanFromContext(ctx)
		td := resolveTraceData(c, span.SpanContext())

		span.SetAttributes(
			attribute.String(attrRequestID, td.RequestID),
			attribute.String(attrTraceID, td.TraceID),
		)
		c.Request = c.Request.WithContext(ctxutil.WithTraceData(ctx, td))
		c.Set("trace_id", td.TraceID)
		c.Set("request_id", td.RequestID)
		c.Writer.Header().Set(headerTraceID, td.TraceID)
		c.Writer.Header().Set(headerRequestID, td.RequestID)
		c.Next()
	}
}

// resolveTraceData prefers caller-supplied IDs, then the span's trace ID, and
// mints UUIDs for whatever is still missing.
func resolveTraceData(c *gin.Context, sc trace.SpanContext) *ctxutil.TraceData {
	td := &ctxutil.TraceData{
		RequestID: strings.TrimSpace(c.GetHeader(headerRequestID)),
		TraceID:   strings.TrimSpace(c.GetHeader(headerTraceID)),
	}
	if td.RequestID == "" {
		td.RequestID = uuid.New().String()
	}
	if td.TraceID == "" && sc.HasTraceID() {
		td.TraceID = sc.TraceID().String()
	}
	if td.TraceID == "" {
		td.TraceID = uuid.New().String()
	}
	return td
}
