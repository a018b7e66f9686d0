// Copyright © 2024 The ELPS authors

package profiler

import (
	"errors"
	"fmt"
	"io"
	"runtime"
	"time"

	"github.com/luthersystems/lists/lang"
)

// Version is reported as the creator of profile output.
const Version = "1.0"

// errWriter wraps an io.Writer and captures the first write error,
// short-circuiting subsequent writes after a failure.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...interface{}) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}

func (ew *errWriter) print(s string) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprint(ew.w, s)
}

// A profiler implementation that builds Callgrind files.  The output can be
// opened in KCacheGrind or QCacheGrind.
type callgrindProfiler struct {
	profiler
	writer     io.Writer
	writeErr   error
	startTime  time.Time
	refs       map[string]int
	refCounter int
	current    *callRef
}

var _ lang.Profiler = &callgrindProfiler{}

// NewCallgrindProfiler returns a profiler which writes a callgrind profile
// to w.  If w is an io.Closer it is closed by Complete.
func NewCallgrindProfiler(runtime *lang.Runtime, w io.Writer, opts ...Option) lang.Profiler {
	p := &callgrindProfiler{writer: w}
	p.runtime = runtime
	p.applyConfigs(opts...)
	return p
}

// Represents something that got called
type callRef struct {
	start       time.Time
	prev        *callRef
	name        string
	namespace   string
	children    []*callRef
	duration    time.Duration
	startMemory uint64
}

func (p *callgrindProfiler) Enable() error {
	if p.writer == nil {
		return errors.New("no output set in profiler")
	}
	p.runtime.Profiler = p
	w := &errWriter{w: p.writer}
	w.printf("version: 1\ncreator: lists %s (Go %s)\n", Version, runtime.Version())
	w.printf("cmd: Eval\npart: 1\npositions: line\n\n")
	w.printf("events: Time_(ns) Memory_(bytes)\n\n")
	if w.err != nil {
		return w.err
	}
	p.startTime = time.Now()
	p.refs = make(map[string]int)
	p.refCounter = 0
	p.push("ENTRYPOINT", "-")
	return p.profiler.Enable()
}

func (p *callgrindProfiler) Complete() error {
	if p.current == nil {
		return errors.New("profiler not enabled")
	}
	ref := p.pop()
	if p.writeErr != nil {
		return p.writeErr
	}
	ref.duration = time.Since(ref.start)
	w := &errWriter{w: p.writer}
	w.printf("fl=%s\n", p.getRef(ref.namespace))
	w.printf("fn=%s\n", p.getRef(ref.name))
	w.printf("%d %d %d\n", 0, ref.duration, 0)
	p.writeCalls(w, ref, 0)
	w.print("\n")
	ms := &runtime.MemStats{}
	runtime.ReadMemStats(ms)
	w.printf("summary %d %d\n\n", time.Since(p.startTime).Nanoseconds(), ms.TotalAlloc)
	if w.err != nil {
		return w.err
	}
	if c, ok := p.writer.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

func (p *callgrindProfiler) getRef(name string) string {
	if ref, ok := p.refs[name]; ok {
		return fmt.Sprintf("(%d)", ref)
	}
	p.refCounter++
	p.refs[name] = p.refCounter
	return fmt.Sprintf("(%d) %s", p.refCounter, name)
}

func (p *callgrindProfiler) Start(fun *lang.Value) func() {
	if p.skipTrace(fun) {
		return func() {}
	}
	prettyLabel, _ := p.prettyFunName(fun)
	p.push(prettyLabel, Namespace(fun))
	return p.end
}

func (p *callgrindProfiler) push(name, namespace string) {
	ref := &callRef{
		name:      name,
		namespace: namespace,
		prev:      p.current,
	}
	if p.current != nil {
		p.current.children = append(p.current.children, ref)
	}
	ms := &runtime.MemStats{}
	runtime.ReadMemStats(ms)
	ref.startMemory = ms.TotalAlloc
	ref.start = time.Now()
	p.current = ref
}

func (p *callgrindProfiler) pop() *callRef {
	ref := p.current
	p.current = ref.prev
	return ref
}

func (p *callgrindProfiler) end() {
	ref := p.pop()
	if p.writeErr != nil {
		return
	}
	ref.duration = time.Since(ref.start)
	if ref.duration == 0 {
		ref.duration = 1
	}
	ms := &runtime.MemStats{}
	runtime.ReadMemStats(ms)
	memory := ms.TotalAlloc - ref.startMemory
	w := &errWriter{w: p.writer}
	w.printf("fl=%s\n", p.getRef(ref.namespace))
	w.printf("fn=%s\n", p.getRef(ref.name))
	w.printf("%d %d %d\n", 0, ref.duration, memory)
	p.writeCalls(w, ref, memory)
	w.print("\n")
	p.writeErr = w.err
}

// writeCalls outputs the functions called by ref.
func (p *callgrindProfiler) writeCalls(w *errWriter, ref *callRef, memory uint64) {
	for _, entry := range ref.children {
		w.printf("cfl=%s\n", p.getRef(entry.namespace))
		w.printf("cfn=%s\n", p.getRef(entry.name))
		w.print("calls=1 0 0\n")
		w.printf("%d %d %d\n", 0, entry.duration, memory)
	}
}
