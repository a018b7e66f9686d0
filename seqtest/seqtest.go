// Copyright © 2024 The ELPS authors

// Package seqtest runs expression sequences against fresh language
// environments and compares printed results.
package seqtest

import (
	"bytes"
	"io"
	"log"
	"os"
	"strings"
	"testing"

	"github.com/luthersystems/lists/lang"
	"github.com/luthersystems/lists/parser"
)

// MaxDepth is the call depth limit of test environments.
const MaxDepth = 5000

// TestSequence is a sequence of expressions which are evaluated sequentially
// in one environment.
type TestSequence []struct {
	Expr   string // an expression
	Result string // the printed result
	Output string // output written to Runtime.Stderr
}

// TestSuite is a set of named TestSequences.
type TestSuite []struct {
	Name string
	TestSequence
}

// NewEnv returns an initialized environment whose diagnostic output is
// written to stderr.
func NewEnv(stderr io.Writer, config ...lang.Config) (*lang.Env, error) {
	env := lang.NewEnv(nil)
	config = append([]lang.Config{
		lang.WithMaxDepth(MaxDepth),
		lang.WithReader(parser.NewReader()),
		lang.WithStderr(stderr),
	}, config...)
	if err := lang.GoError(lang.InitializeUserEnv(env, config...)); err != nil {
		return nil, err
	}
	return env, nil
}

// RunTestSuite runs each TestSequence in tests on an isolated environment.
func RunTestSuite(t *testing.T, tests TestSuite) {
	for i, test := range tests {
		log.Printf("test %d -- %s", i, test.Name)
		logger := NewLogger(t)
		var exprBuf bytes.Buffer
		env, err := NewEnv(io.MultiWriter(logger, &exprBuf))
		if err != nil {
			t.Errorf("test %d %q: %v", i, test.Name, err)
			continue
		}
		for j, expr := range test.TestSequence {
			exprBuf.Reset()
			v, err := env.Runtime.Reader.Read("test", strings.NewReader(expr.Expr))
			if err != nil {
				t.Errorf("test %d %q: expr %d: parse error: %v", i, test.Name, j, err)
				continue
			}
			if len(v) == 0 {
				t.Errorf("test %d %q: expr %d: no expression parsed", i, test.Name, j)
				continue
			}
			if len(v) != 1 {
				t.Errorf("test %d %q: expr %d: more than one expression parsed (%d)", i, test.Name, j, len(v))
				continue
			}
			result := env.Eval(v[0]).String()
			if result != expr.Result {
				t.Errorf("test %d %q: expr %d: expected result %s (got %s)", i, test.Name, j, expr.Result, result)
			}
			if exprBuf.String() != expr.Output {
				t.Errorf("test %d %q: expr %d: expected output %q (got %q)", i, test.Name, j, expr.Output, exprBuf.String())
			}
		}
		logger.Flush()
	}
}

// RunBenchmark runs a benchmark that evaluates the expressions parsed from
// source in a fresh environment on each iteration.
func RunBenchmark(b *testing.B, source string) {
	b.StopTimer()
	p := parser.NewReader()
	exprs, err := p.Read("benchmark", strings.NewReader(source))
	if err != nil {
		b.Fatalf("parse error: %v", err)
	}
	for i := 0; i < b.N; i++ {
		env, err := NewEnv(io.Discard)
		if err != nil {
			b.Fatal(err)
		}
		b.StartTimer()
		for i, expr := range exprs {
			lerr := env.Eval(expr)
			if lerr.Type == lang.TError {
				b.Fatalf("expr %d: %v", i, lerr)
			}
		}
		b.StopTimer()
	}
}

// BenchmarkParse returns a benchmark that reads the source file at path
// using readers returned by r.
func BenchmarkParse(path string, r func() lang.Reader) func(*testing.B) {
	return func(b *testing.B) {
		buf, err := os.ReadFile(path) //#nosec G304
		if err != nil {
			b.Fatalf("Unable to read source file %v: %v", path, err)
		}
		b.SetBytes(int64(len(buf)))
		for i := 0; i < b.N; i++ {
			_, err := r().Read("test", bytes.NewReader(buf))
			if err != nil {
				b.Fatalf("Parse failure: %v", err)
			}
		}
	}
}
