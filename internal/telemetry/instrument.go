package telemetry

import (
	"context"

	"go.opentelemetry.io/otel/metric"
)

// Instrument records measurements of type N against a metric.
type Instrument[N int64 | float64] func(ctx context.Context, n N, attrs ...Attr)

// Counter returns an instrument that records monotonically increasing
// measurements.
func (r *Recorder) Counter(name, unit, desc string) Instrument[int64] {
	c, err := r.meter.Int64Counter(
		name,
		metric.WithUnit(unit),
		metric.WithDescription(desc),
	)
	if err != nil {
		panic(err)
	}

	return func(ctx context.Context, n int64, attrs ...Attr) {
		c.Add(
			ctx,
			n,
			metric.WithAttributes(asAttrKeyValues(attrs)...),
		)
	}
}

// UpDownCounter returns an instrument that records measurements that may
// increase and decrease.
func (r *Recorder) UpDownCounter(name, unit, desc string) Instrument[int64] {
	c, err := r.meter.Int64UpDownCounter(
		name,
		metric.WithUnit(unit),
		metric.WithDescription(desc),
	)
	if err != nil {
		panic(err)
	}

	return func(ctx context.Context, n int64, attrs ...Attr) {
		c.Add(
			ctx,
			n,
			metric.WithAttributes(asAttrKeyValues(attrs)...),
		)
	}
}

// Histogram returns an instrument that records a distribution of
// measurements.
func (r *Recorder) Histogram(name, unit, desc string) Instrument[int64] {
	h, err := r.meter.Int64Histogram(
		name,
		metric.WithUnit(unit),
		metric.WithDescription(desc),
	)
	if err != nil {
		panic(err)
	}

	return func(ctx context.Context, n int64, attrs ...Attr) {
		h.Record(
			ctx,
			n,
			metric.WithAttributes(asAttrKeyValues(attrs)...),
		)
	}
}
