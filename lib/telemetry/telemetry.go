package telemetry

import (
	"context"
	"errors"
	"os"

	"itunes-scraper/lib/configutil"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/trace"
	traceapi "go.opentelemetry.io/otel/trace"
)

type providers struct {
	tracer *trace.TracerProvider
	meter  *metric.MeterProvider
}

var active *providers

// Tracer returns a tracer from the globally installed provider.
func Tracer(name string) traceapi.Tracer {
	return otel.Tracer(name)
}

// searches up the filesystem from the cwd to find a file
// called telemetry.json5, once found it will then use it
// as a config to setup telemetry.
// if no such file exists anywhere, telemetry stays uninitialized
// and all instrumentation is a no-op.
func SetupFromEnv(ctx context.Context, serviceName string) error {
	config, err := configutil.ReadRecursively[config]("telemetry.json5")
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return err
	}
	return Setup(ctx, serviceName, config)
}

func Setup(ctx context.Context, serviceName string, config config) error {
	r, err := newResource(serviceName)
	if err != nil {
		return err
	}

	tracerProvider, err := newTraceProvider(ctx, r, config)
	if err != nil {
		return err
	}
	otel.SetTracerProvider(tracerProvider)

	meterProvider, err := newMetricProvider(ctx, r, config)
	if err != nil {
		return err
	}
	otel.SetMeterProvider(meterProvider)

	active = &providers{
		tracer: tracerProvider,
		meter:  meterProvider,
	}
	return nil
}

func Shutdown(ctx context.Context) error {
	if active == nil {
		return nil
	}

	errlist := []error{}
	err := active.tracer.Shutdown(ctx)
	if err != nil {
		errlist = append(errlist, err)
	}
	err = active.meter.Shutdown(ctx)
	if err != nil {
		errlist = append(errlist, err)
	}
	active = nil
	return errors.Join(errlist...)
}
