package set_test

import (
	"testing"

	. "github.com/dogmatiq/setkit/set"
	nooplog "go.opentelemetry.io/otel/log/noop"
	noopmetric "go.opentelemetry.io/otel/metric/noop"
	nooptrace "go.opentelemetry.io/otel/trace/noop"
	"pgregory.net/rapid"
)

func TestWithTelemetry(t *testing.T) {
	RunTests(
		t,
		func(t rapid.TB) Set[int] {
			next, err := New(Comparable[int]())
			if err != nil {
				t.Fatal(err)
			}

			return WithTelemetry(
				next,
				nooptrace.NewTracerProvider(),
				noopmetric.NewMeterProvider(),
				nooplog.NewLoggerProvider(),
			)
		},
	)
}
