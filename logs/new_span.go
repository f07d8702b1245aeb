package logs

import (
	"context"
	"crypto/rand"
)

// NewSpan starts a span under ctx. An empty parent means the span that ctx carries.
type NewSpan func(ctx context.Context, parent Span, args ...any) (context.Context, Span)

func (Module) NewSpan(
	logger Logger,
) NewSpan {
	return func(ctx context.Context, parent Span, args ...any) (context.Context, Span) {

		// creator
		creatorSpan, _ := ctx.Value(SpanKey).(Span)
		if parent == "" {
			parent = creatorSpan
		}

		span := Span(rand.Text())
		ctx = context.WithValue(ctx, SpanKey, span)

		if creatorSpan != "" && creatorSpan != parent {
			args = append(args, "creator", string(creatorSpan))
		}
		if parent != "" {
			args = append(args, "parent", string(parent))
		}
		logger.InfoContext(ctx, "new span", args...)

		return ctx, span
	}
}
