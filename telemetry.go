package subdao

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"

	"github.com/smartcontractkit/subdao/types"
)

const instrumentationName = "github.com/smartcontractkit/subdao"

func tracer() trace.Tracer {
	return otel.Tracer(instrumentationName)
}

// transitionCounter counts proposal status transitions by target status.
type transitionCounter struct {
	counter metric.Int64Counter
}

func newTransitionCounter() transitionCounter {
	counter, err := otel.Meter(instrumentationName).Int64Counter(
		"subdao.timelock.transitions",
		metric.WithDescription("Timelocked proposal status transitions"),
	)
	if err != nil {
		otel.Handle(err)
		return transitionCounter{counter: noop.Int64Counter{}}
	}

	return transitionCounter{counter: counter}
}

func (c transitionCounter) record(ctx context.Context, timelock string, status types.ProposalStatus) {
	c.counter.Add(ctx, 1, metric.WithAttributes(
		attribute.String("timelock", timelock),
		attribute.String("status", status.String()),
	))
}

// traced runs fn in a child span named name and records its error on the span.
func traced[T any](ctx context.Context, name string, fn func(context.Context) (T, error)) (T, error) {
	ctx, span := tracer().Start(ctx, name)
	defer span.End()

	v, err := fn(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}

	return v, err
}
