package telemetry

import (
	"context"
	"errors"
	"log/slog"

	"github.com/godamri/helix-db/pkg/contextx"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// OTelHandler wraps a slog.Handler. It stamps trace ids on every record and
// copies WARN/ERROR records onto the active span.
type OTelHandler struct {
	slog.Handler
}

func NewOTelHandler(h slog.Handler) *OTelHandler {
	return &OTelHandler{Handler: h}
}

func (h *OTelHandler) Handle(ctx context.Context, r slog.Record) error {
	span := trace.SpanFromContext(ctx)

	if !span.IsRecording() {
		// No span: fall back to the id set by the trace middleware.
		if tid := contextx.GetTraceID(ctx); tid != contextx.Untriaged {
			r.AddAttrs(slog.String("trace_id", tid))
		}
		if rid := contextx.GetRequestID(ctx); rid != "" {
			r.AddAttrs(slog.String("request_id", rid))
		}
		return h.Handler.Handle(ctx, r)
	}

	sc := span.SpanContext()
	if sc.HasTraceID() {
		r.AddAttrs(slog.String("trace_id", sc.TraceID().String()))
	}
	if sc.HasSpanID() {
		r.AddAttrs(slog.String("span_id", sc.SpanID().String()))
	}

	if r.Level >= slog.LevelWarn {
		h.enrichSpan(span, r)
	}

	return h.Handler.Handle(ctx, r)
}

// enrichSpan records errors on the span and turns warnings into span events.
func (h *OTelHandler) enrichSpan(span trace.Span, r slog.Record) {
	otelAttrs := make([]attribute.KeyValue, 0, r.NumAttrs())

	var errFound error

	r.Attrs(func(a slog.Attr) bool {
		switch a.Value.Kind() {
		case slog.KindString:
			otelAttrs = append(otelAttrs, attribute.String(a.Key, a.Value.String()))
		case slog.KindInt64:
			otelAttrs = append(otelAttrs, attribute.Int64(a.Key, a.Value.Int64()))
		case slog.KindFloat64:
			otelAttrs = append(otelAttrs, attribute.Float64(a.Key, a.Value.Float64()))
		case slog.KindBool:
			otelAttrs = append(otelAttrs, attribute.Bool(a.Key, a.Value.Bool()))
		default:
			otelAttrs = append(otelAttrs, attribute.String(a.Key, a.Value.String()))
		}

		if a.Key == "error" && a.Value.Kind() == slog.KindAny {
			if e, ok := a.Value.Any().(error); ok {
				errFound = e
			}
		}
		return true
	})

	if r.Level >= slog.LevelError {
		if errFound == nil {
			errFound = errors.New(r.Message)
		}
		span.RecordError(errFound, trace.WithAttributes(otelAttrs...))
		span.SetStatus(codes.Error, r.Message)
		return
	}

	span.AddEvent("log_warning", trace.WithAttributes(
		append(otelAttrs, attribute.String("message", r.Message))...,
	))
}

func (h *OTelHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &OTelHandler{Handler: h.Handler.WithAttrs(attrs)}
}

func (h *OTelHandler) WithGroup(name string) slog.Handler {
	return &OTelHandler{Handler: h.Handler.WithGroup(name)}
}
