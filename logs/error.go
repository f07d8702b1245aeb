package logs

import (
	"context"
	"errors"
	"fmt"
)

// WrapSpan attaches the span of ctx to err so reports can be matched to log records.
func WrapSpan(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}
	v, ok := ctx.Value(SpanKey).(Span)
	if !ok || v == "" {
		return err
	}
	return errors.Join(err, fmt.Errorf("span: %s", v))
}
