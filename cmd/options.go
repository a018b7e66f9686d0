// Copyright © 2024 The ELPS authors

package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/viper"

	"github.com/luthersystems/lists/diagnostic"
	"github.com/luthersystems/lists/lang"
	"github.com/luthersystems/lists/parser"
)

// Option configures an exported command factory (RunCommand, ReplCommand,
// DocCommand).
type Option func(*cmdConfig)

type cmdConfig struct {
	viper     *viper.Viper
	envConfig []lang.Config
}

func newCmdConfig(opts ...Option) *cmdConfig {
	c := &cmdConfig{}
	for _, opt := range opts {
		opt(c)
	}
	if c.viper == nil {
		c.viper = viper.GetViper()
	}
	return c
}

// WithViper makes a command read its settings from v instead of the global
// viper instance.
func WithViper(v *viper.Viper) Option {
	return func(c *cmdConfig) { c.viper = v }
}

// WithEnvConfig adds configuration applied to every environment a command
// creates.  Embedders use it to install a profiler or a context.
func WithEnvConfig(config ...lang.Config) Option {
	return func(c *cmdConfig) { c.envConfig = append(c.envConfig, config...) }
}

// settings are the values shared by all commands, resolved from flags,
// the config file and the environment.
type settings struct {
	color    diagnostic.ColorMode
	maxDepth int
	maxAlloc int
	trace    string
	prompt   string
}

func (c *cmdConfig) settings() (*settings, error) {
	v := c.viper
	color, err := diagnostic.ParseColorMode(v.GetString("color"))
	if err != nil {
		return nil, err
	}
	s := &settings{
		color:    color,
		maxDepth: v.GetInt("max-depth"),
		maxAlloc: v.GetInt("max-alloc"),
		trace:    v.GetString("trace"),
		prompt:   v.GetString("prompt"),
	}
	if s.maxDepth == 0 {
		s.maxDepth = lang.DefaultMaxDepth
	}
	if s.maxAlloc == 0 {
		s.maxAlloc = lang.DefaultMaxAlloc
	}
	switch s.trace {
	case "", traceNone:
		s.trace = traceNone
	case traceOpenTelemetry, traceOpenCensus:
	default:
		return nil, fmt.Errorf("invalid trace exporter %q: expected %s, %s or %s",
			s.trace, traceNone, traceOpenTelemetry, traceOpenCensus)
	}
	return s, nil
}

// envConfigs returns the configuration for a new environment.
func (c *cmdConfig) envConfigs(s *settings, stderr io.Writer) []lang.Config {
	config := []lang.Config{
		lang.WithReader(parser.NewReader()),
		lang.WithStderr(stderr),
		lang.WithMaxDepth(s.maxDepth),
		lang.WithMaxAlloc(s.maxAlloc),
	}
	return append(config, c.envConfig...)
}

// newEnv returns an initialized root environment.
func (c *cmdConfig) newEnv(s *settings, stderr io.Writer) (*lang.Env, error) {
	env := lang.NewEnv(nil)
	rc := lang.InitializeUserEnv(env, c.envConfigs(s, stderr)...)
	if rc.Type == lang.TError {
		return nil, fmt.Errorf("initialize-user-env: %w", lang.GoError(rc))
	}
	return env, nil
}
