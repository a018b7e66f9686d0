// Copyright © 2018 The ELPS authors

// Package repl implements an interactive read-eval-print loop over a lang
// environment.
package repl

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/ergochat/readline"
	"github.com/luthersystems/lists/diagnostic"
	"github.com/luthersystems/lists/lang"
	"github.com/luthersystems/lists/parser"
)

// DefaultPrompt is the prompt used when none is configured.
const DefaultPrompt = "lists> "

type config struct {
	stdin       io.ReadCloser
	stderr      io.Writer
	color       diagnostic.ColorMode
	historyFile string
	envConfig   []lang.Config
}

func newConfig(opts ...Option) *config {
	config := &config{historyFile: historyPath()}
	for _, opt := range opts {
		opt(config)
	}
	return config
}

type Option func(*config)

// WithStdin allows overriding the input to the REPL.
func WithStdin(stdin io.ReadCloser) Option {
	return func(c *config) {
		c.stdin = stdin
	}
}

// WithStderr allows overriding the output to the REPL.
func WithStderr(stderr io.Writer) Option {
	return func(c *config) {
		c.stderr = stderr
	}
}

// WithColor sets the color mode of error reports.
func WithColor(mode diagnostic.ColorMode) Option {
	return func(c *config) {
		c.color = mode
	}
}

// WithHistoryFile sets the readline history file.  An empty path disables
// history.
func WithHistoryFile(path string) Option {
	return func(c *config) {
		c.historyFile = path
	}
}

// WithEnvConfig adds configuration applied to the environment created by
// RunRepl.
func WithEnvConfig(cfgs ...lang.Config) Option {
	return func(c *config) {
		c.envConfig = append(c.envConfig, cfgs...)
	}
}

// RunRepl runs a repl in a fresh environment with the default builtins.
func RunRepl(prompt string, opts ...Option) error {
	cfg := newConfig(opts...)
	envOpts := []lang.Config{lang.WithReader(parser.NewReader())}
	if cfg.stderr != nil {
		envOpts = append(envOpts, lang.WithStderr(cfg.stderr))
	}
	envOpts = append(envOpts, cfg.envConfig...)

	env := lang.NewEnv(nil)
	rc := lang.InitializeUserEnv(env, envOpts...)
	if rc.Type == lang.TError {
		return fmt.Errorf("language initialization failure: %w", lang.GoError(rc))
	}
	return RunEnv(env, prompt, opts...)
}

// RunEnv runs a repl with env as a root environment.  RunEnv returns nil
// when the input is exhausted.
func RunEnv(env *lang.Env, prompt string, opts ...Option) error {
	if env.Parent != nil {
		return errors.New("repl environment is not a root environment")
	}
	if prompt == "" {
		prompt = DefaultPrompt
	}
	cont := continuationPrompt(prompt)

	cfg := newConfig(opts...)
	if cfg.stderr != nil {
		env.Runtime.Stderr = cfg.stderr
	}
	out := env.Runtime.Stderr

	ensureHistoryFilePermissions(cfg.historyFile)
	rlCfg := &readline.Config{
		Stdout:            out,
		Stderr:            out,
		Prompt:            prompt,
		HistoryFile:       cfg.historyFile,
		HistorySearchFold: true,
		AutoComplete:      &symbolCompleter{env: env},
	}
	if cfg.stdin != nil {
		rlCfg.Stdin = cfg.stdin
	}
	rl, err := readline.NewEx(rlCfg)
	if err != nil {
		return err
	}
	defer rl.Close() //nolint:errcheck // best-effort cleanup

	renderer := &diagnostic.Renderer{Color: cfg.color}
	var buf bytes.Buffer
	for {
		if buf.Len() == 0 {
			rl.SetPrompt(prompt)
		} else {
			rl.SetPrompt(cont)
		}
		line, err := rl.ReadSlice()
		if err == readline.ErrInterrupt {
			buf.Reset()
			continue
		}
		if err != nil {
			if len(bytes.TrimSpace(buf.Bytes())) > 0 {
				evalSource(env, renderer, buf.Bytes())
			}
			return nil
		}
		buf.Write(line)
		buf.WriteByte('\n')
		if len(bytes.TrimSpace(buf.Bytes())) == 0 {
			buf.Reset()
			continue
		}
		if incomplete(buf.Bytes()) {
			continue
		}
		evalSource(env, renderer, buf.Bytes())
		buf.Reset()
	}
}

// incomplete reports whether source ends inside an open list.
func incomplete(source []byte) bool {
	_, _, err := parser.Parse(source)
	var serr *parser.SyntaxError
	return errors.As(err, &serr) && serr.Incomplete
}

// evalSource evaluates each expression in source and prints the results.
func evalSource(env *lang.Env, renderer *diagnostic.Renderer, source []byte) {
	out := env.Runtime.Stderr
	vals, _, err := parser.Parse(source)
	if err != nil {
		var serr *parser.SyntaxError
		if errors.As(err, &serr) {
			serr.File = "stdin"
		}
		_ = renderer.Render(out, Diagnose(err))
		return
	}
	for _, expr := range vals {
		val := env.Eval(expr)
		if val.Type == lang.TError {
			_ = renderer.Render(out, Diagnose(lang.GoError(val)))
			continue
		}
		fmt.Fprintln(out, val) //nolint:errcheck // best-effort REPL output
	}
}

func continuationPrompt(prompt string) string {
	b := bytes.Repeat([]byte{' '}, len(prompt))
	return string(b)
}

func historyPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".lists_history")
}

// ensureHistoryFilePermissions creates the history file if needed and
// restricts it to the current user.
func ensureHistoryFilePermissions(path string) {
	if path == "" {
		return
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_RDONLY, 0600)
	if err != nil {
		return
	}
	_ = f.Close()
	_ = os.Chmod(path, 0600)
}
