package set

import (
	"context"
	"iter"

	"github.com/dogmatiq/setkit/internal/telemetry"
	"go.opentelemetry.io/otel/log"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// WithTelemetry returns a [Set] that adds telemetry to s.
//
// Set operations take no context, so spans and log records are rooted in a
// background context.
func WithTelemetry[T any](
	s Set[T],
	p trace.TracerProvider,
	m metric.MeterProvider,
	l log.LoggerProvider,
) Set[T] {
	provider := telemetry.Provider{
		TracerProvider: p,
		MeterProvider:  m,
		LoggerProvider: l,
	}

	telem := provider.Recorder(
		"github.com/dogmatiq/setkit/set",
		telemetry.Type("set.impl", s),
		telemetry.String("set.handle", telemetry.HandleID()),
	)

	return &instrumentedSet[T]{
		Next:           s,
		Telemetry:      telem,
		CurrentMembers: telem.UpDownCounter("members", "{member}", "The number of members currently in the set."),
		AddedMembers:   telem.Counter("members.added", "{member}", "The number of values that have been added to the set."),
		RemovedMembers: telem.Counter("members.removed", "{member}", "The number of values that have left the set, by any means."),
		VisitedMembers: telem.Histogram("range.members_visited", "{member}", "The distribution of the number of members visited per traversal."),
	}
}

// instrumentedSet is a decorator that adds instrumentation to a [Set].
type instrumentedSet[T any] struct {
	Next      Set[T]
	Telemetry *telemetry.Recorder

	CurrentMembers telemetry.Instrument[int64]
	AddedMembers   telemetry.Instrument[int64]
	RemovedMembers telemetry.Instrument[int64]
	VisitedMembers telemetry.Instrument[int64]
}

func (s *instrumentedSet[T]) Traits() Traits[T] {
	return s.Next.Traits()
}

func (s *instrumentedSet[T]) Size() int {
	return s.Next.Size()
}

func (s *instrumentedSet[T]) IsEmpty() bool {
	return s.Next.IsEmpty()
}

func (s *instrumentedSet[T]) Has(v T) bool {
	ctx, span := s.Telemetry.StartSpan(context.Background(), "set.has")
	defer span.End()

	ok := s.Next.Has(v)

	span.SetAttributes(
		telemetry.Bool("value_present", ok),
	)

	if ok {
		s.Telemetry.Info(ctx, "set.has.ok", "value is present in set")
	} else {
		s.Telemetry.Info(ctx, "set.has.ok", "value is not present in set")
	}

	return ok
}

func (s *instrumentedSet[T]) Add(v T) (bool, error) {
	ctx, span := s.Telemetry.StartSpan(context.Background(), "set.add")
	defer span.End()

	added, err := s.Next.Add(v)
	if err != nil {
		s.Telemetry.Error(ctx, "set.add.error", err)
		return false, err
	}

	span.SetAttributes(
		telemetry.Bool("value_added", added),
	)

	if added {
		s.CurrentMembers(ctx, 1)
		s.AddedMembers(ctx, 1)
		s.Telemetry.Info(ctx, "set.add.ok", "value was added to set")
	} else {
		s.Telemetry.Info(ctx, "set.add.ok", "value was already present in set")
	}

	return added, nil
}

func (s *instrumentedSet[T]) Take(sel Selection[T]) (T, error) {
	ctx, span := s.Telemetry.StartSpan(context.Background(), "set.take")
	defer span.End()

	v, err := s.Next.Take(sel)
	if err != nil {
		s.Telemetry.Error(ctx, "set.take.error", err)
		return v, err
	}

	s.CurrentMembers(ctx, -1)
	s.RemovedMembers(ctx, 1)
	s.Telemetry.Info(ctx, "set.take.ok", "value was taken from set")

	return v, nil
}

func (s *instrumentedSet[T]) Remove(v T) (bool, error) {
	ctx, span := s.Telemetry.StartSpan(context.Background(), "set.remove")
	defer span.End()

	removed, err := s.Next.Remove(v)
	if err != nil {
		s.Telemetry.Error(ctx, "set.remove.error", err)
		return false, err
	}

	span.SetAttributes(
		telemetry.Bool("value_removed", removed),
	)

	if removed {
		s.CurrentMembers(ctx, -1)
		s.RemovedMembers(ctx, 1)
		s.Telemetry.Info(ctx, "set.remove.ok", "value was removed from set")
	} else {
		s.Telemetry.Info(ctx, "set.remove.ok", "value was not present in set")
	}

	return removed, nil
}

func (s *instrumentedSet[T]) Range(fn RangeFunc[T]) error {
	ctx, span := s.Telemetry.StartSpan(context.Background(), "set.range")
	defer span.End()

	var visited int64

	next := RangeFunc[T](nil)
	if fn != nil {
		next = func(v T) (bool, error) {
			visited++
			return fn(v)
		}
	}

	err := s.Next.Range(next)

	span.SetAttributes(
		telemetry.Int("members_visited", visited),
	)
	s.VisitedMembers(ctx, visited)

	if err != nil {
		s.Telemetry.Error(ctx, "set.range.error", err)
		return err
	}

	s.Telemetry.Info(ctx, "set.range.ok", "ranged over set")

	return nil
}

func (s *instrumentedSet[T]) All() iter.Seq[T] {
	return s.Next.All()
}

func (s *instrumentedSet[T]) Members() []T {
	return s.Next.Members()
}

func (s *instrumentedSet[T]) Clear() error {
	ctx, span := s.Telemetry.StartSpan(context.Background(), "set.clear")
	defer span.End()

	n := int64(s.Next.Size())

	if err := s.Next.Clear(); err != nil {
		s.Telemetry.Error(ctx, "set.clear.error", err)
		return err
	}

	s.CurrentMembers(ctx, -n)
	s.RemovedMembers(ctx, n)
	s.Telemetry.Info(
		ctx,
		"set.clear.ok",
		"cleared set",
		telemetry.Int("members_released", n),
	)

	return nil
}
