// Copyright © 2018 The ELPS authors

package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/luthersystems/lists/lang"
	"github.com/luthersystems/lists/repl"
)

// source is a named unit of program text.
type source struct {
	name string
	open func() (io.ReadCloser, error)
}

// RunCommand returns the run command.
func RunCommand(opts ...Option) *cobra.Command {
	cfg := newCmdConfig(opts...)
	var (
		runExpression bool
		runPrint      bool
		runExcludes   []string
		profile       profileOptions
	)
	cmd := &cobra.Command{
		Use:   "run [flags] [files...]",
		Short: "Run list programs",
		Long: `Run programs supplied via the command line or in files.

Each file is evaluated in order in a single environment, so definitions made
by one file are visible to the files after it.  A directory argument ending
in "/..." runs every .lisp file beneath it.  Evaluation stops at the first
error, which is reported on stderr, and the command exits with status 1.

Tracing:
  --trace otel         Print an OpenTelemetry span for every function call
  --trace opencensus   Print an OpenCensus span for every function call
  --callgrind FILE     Write a callgrind profile for KCacheGrind/QCacheGrind
  --cpuprofile FILE    Write a pprof CPU profile labeled by function
  --only NAME          Restrict profiling to the named functions

Examples:
  lists run -e '(foldl + 0 [1 2 3])' -p
  lists run examples/...
  lists run --trace otel --only insertion-sort sort.lisp`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := cfg.settings()
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("trace") {
				profile.trace = s.trace
			}
			srcs, err := runSources(args, runExpression, runExcludes)
			if err != nil {
				return err
			}
			stderr := cmd.ErrOrStderr()
			env, err := cfg.newEnv(s, stderr)
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			stop, err := startProfiling(ctx, env, stderr, &profile)
			if err != nil {
				return err
			}
			runErr := runAll(env, srcs, cmd.OutOrStdout(), runPrint)
			if err := stop(); err != nil {
				fmt.Fprintf(stderr, "profile: %v\n", err)
			}
			if runErr != nil {
				if err := repl.RenderError(stderr, s.color, runErr); err != nil {
					return err
				}
				return &exitError{code: 1}
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&runExpression, "expression", "e", false,
		"Interpret arguments as expressions")
	cmd.Flags().BoolVarP(&runPrint, "print", "p", false,
		"Print the value of each argument to stdout")
	cmd.Flags().StringSliceVar(&runExcludes, "exclude", nil,
		"Skip files matching a name, directory or glob pattern (repeatable)")
	cmd.Flags().StringVar(&profile.trace, "trace", traceNone,
		`Trace function calls: "none", "otel" or "opencensus"`)
	cmd.Flags().StringVar(&profile.callgrind, "callgrind", "",
		"Write a callgrind profile to the given file")
	cmd.Flags().StringVar(&profile.cpuprofile, "cpuprofile", "",
		"Write a CPU profile to the given file")
	cmd.Flags().StringSliceVar(&profile.only, "only", nil,
		"Profile only the named functions (repeatable)")
	return cmd
}

func runSources(args []string, expression bool, excludes []string) ([]source, error) {
	if expression {
		srcs := make([]source, len(args))
		for i, expr := range args {
			expr := expr
			srcs[i] = source{
				name: fmt.Sprintf("expression %d", i+1),
				open: func() (io.ReadCloser, error) {
					return io.NopCloser(strings.NewReader(expr)), nil
				},
			}
		}
		return srcs, nil
	}
	paths, err := expandArgs(args)
	if err != nil {
		return nil, err
	}
	paths = filterExcludes(paths, excludes)
	srcs := make([]source, len(paths))
	for i, path := range paths {
		path := path
		srcs[i] = source{
			name: path,
			open: func() (io.ReadCloser, error) { return os.Open(path) },
		}
	}
	return srcs, nil
}

// runAll evaluates srcs in order and returns the first error.
func runAll(env *lang.Env, srcs []source, stdout io.Writer, printValues bool) error {
	for _, src := range srcs {
		r, err := src.open()
		if err != nil {
			return err
		}
		v := env.Load(src.name, r)
		_ = r.Close()
		if err := lang.GoError(v); err != nil {
			return err
		}
		if printValues {
			fmt.Fprintln(stdout, v) //nolint:errcheck // best-effort output
		}
	}
	return nil
}
