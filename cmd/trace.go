// Copyright © 2024 The ELPS authors

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime/pprof"
	"strings"
	"sync"

	octrace "go.opencensus.io/trace"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/luthersystems/lists/lang"
	"github.com/luthersystems/lists/profiler"
)

const (
	traceNone          = "none"
	traceOpenTelemetry = "otel"
	traceOpenCensus    = "opencensus"
)

// profileOptions select at most one profiler for a run.
type profileOptions struct {
	trace      string
	callgrind  string
	cpuprofile string
	only       []string
}

func (o *profileOptions) validate() error {
	switch o.trace {
	case "", traceNone, traceOpenTelemetry, traceOpenCensus:
	default:
		return fmt.Errorf("invalid trace exporter %q: expected %s, %s or %s",
			o.trace, traceNone, traceOpenTelemetry, traceOpenCensus)
	}
	n := 0
	if o.trace != "" && o.trace != traceNone {
		n++
	}
	if o.callgrind != "" {
		n++
	}
	if o.cpuprofile != "" {
		n++
	}
	if n > 1 {
		return errors.New("at most one of --trace, --callgrind and --cpuprofile may be given")
	}
	return nil
}

// startProfiling installs the selected profiler in env.  The returned
// function completes the profile and must be called once evaluation is
// finished.
func startProfiling(ctx context.Context, env *lang.Env, w io.Writer, o *profileOptions) (func() error, error) {
	if err := o.validate(); err != nil {
		return nil, err
	}
	var popts []profiler.Option
	if len(o.only) > 0 {
		popts = append(popts, profiler.WithOnly(o.only...))
	}
	switch {
	case o.trace == traceOpenTelemetry:
		return startOpenTelemetry(ctx, env, w, popts)
	case o.trace == traceOpenCensus:
		return startOpenCensus(ctx, env, w, popts)
	case o.callgrind != "":
		f, err := os.Create(o.callgrind)
		if err != nil {
			return nil, err
		}
		p := profiler.NewCallgrindProfiler(env.Runtime, f, popts...)
		if err := p.Enable(); err != nil {
			_ = f.Close()
			return nil, err
		}
		return p.Complete, nil
	case o.cpuprofile != "":
		f, err := os.Create(o.cpuprofile)
		if err != nil {
			return nil, err
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			_ = f.Close()
			return nil, err
		}
		p := profiler.NewPprofAnnotator(env.Runtime, ctx, popts...)
		if err := p.Enable(); err != nil {
			pprof.StopCPUProfile()
			_ = f.Close()
			return nil, err
		}
		return func() error {
			perr := p.Complete()
			pprof.StopCPUProfile()
			return errors.Join(perr, f.Close())
		}, nil
	}
	return func() error { return nil }, nil
}

func startOpenTelemetry(ctx context.Context, env *lang.Env, w io.Writer, popts []profiler.Option) (func() error, error) {
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(&spanPrinter{w: w}))
	prev := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)
	ctx, span := tp.Tracer(profiler.DefaultTracerName).Start(ctx, "run")
	p := profiler.NewOpenTelemetryAnnotator(env.Runtime, ctx, popts...)
	if err := p.Enable(); err != nil {
		otel.SetTracerProvider(prev)
		return nil, err
	}
	return func() error {
		perr := p.Complete()
		span.End()
		serr := tp.Shutdown(context.Background())
		otel.SetTracerProvider(prev)
		return errors.Join(perr, serr)
	}, nil
}

func startOpenCensus(ctx context.Context, env *lang.Env, w io.Writer, popts []profiler.Option) (func() error, error) {
	exp := &spanPrinter{w: w}
	octrace.RegisterExporter(exp)
	ctx, span := octrace.StartSpan(ctx, "run", octrace.WithSampler(octrace.AlwaysSample()))
	p := profiler.NewOpenCensusAnnotator(env.Runtime, ctx, popts...)
	if err := p.Enable(); err != nil {
		octrace.UnregisterExporter(exp)
		return nil, err
	}
	return func() error {
		err := p.Complete()
		span.End()
		octrace.UnregisterExporter(exp)
		return err
	}, nil
}

// spanPrinter writes one line per finished span.  It serves as both an
// OpenTelemetry SpanExporter and an OpenCensus Exporter.
type spanPrinter struct {
	mu sync.Mutex
	w  io.Writer
}

var (
	_ sdktrace.SpanExporter = &spanPrinter{}
	_ octrace.Exporter      = &spanPrinter{}
)

func (e *spanPrinter) ExportSpans(ctx context.Context, spans []sdktrace.ReadOnlySpan) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	for _, s := range spans {
		var fields []string
		for _, kv := range s.Attributes() {
			fields = append(fields, formatField(string(kv.Key), kv.Value))
		}
		if err := e.printSpan(s.Name(), s.EndTime().Sub(s.StartTime()).String(), fields); err != nil {
			return err
		}
	}
	return nil
}

func (e *spanPrinter) Shutdown(ctx context.Context) error {
	return nil
}

func (e *spanPrinter) ExportSpan(s *octrace.SpanData) {
	e.mu.Lock()
	defer e.mu.Unlock()
	var fields []string
	for _, key := range []string{"code.namespace", "code.function"} {
		if v, ok := s.Attributes[key]; ok {
			fields = append(fields, fmt.Sprintf("%s=%v", key, v))
		}
	}
	_ = e.printSpan(s.Name, s.EndTime.Sub(s.StartTime).String(), fields)
}

func (e *spanPrinter) printSpan(name, duration string, fields []string) error {
	line := "span " + name
	if len(fields) > 0 {
		line += " " + strings.Join(fields, " ")
	}
	_, err := fmt.Fprintf(e.w, "%s (%s)\n", line, duration)
	return err
}

func formatField(key string, v attribute.Value) string {
	return key + "=" + v.Emit()
}
