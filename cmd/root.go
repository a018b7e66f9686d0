// Copyright © 2018 The ELPS authors

package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/luthersystems/lists/diagnostic"
	"github.com/luthersystems/lists/lang"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "lists",
	Short: "Recursive list operations in a small expression language",
	Long: `lists evaluates expressions over a library of recursively defined list
operations: access, construction, folding, sorting, currying and a few
small record types.

Getting started:
  lists run file.lisp                Run a source file
  lists run -e '(reverse [1 2 3])'   Evaluate an expression
  lists repl                         Start an interactive REPL
  lists doc foldl                    Show documentation for a builtin
  lists doc -l                       List every builtin

Language overview:
  [1 2 3] is a literal list and (f x y) calls f.  The special forms are
  quote, if, define and lambda.  Functions are curried with curry, partial
  and flip.  Errors carry a condition such as empty-sequence or
  index-out-of-range and stop evaluation of the enclosing expression.

Configuration is read from $HOME/.lists.yaml and from LISTS_* environment
variables, e.g. LISTS_MAX_DEPTH=500.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// exitError reports a failure which has already been shown to the user.
type exitError struct {
	code int
}

func (e *exitError) Error() string {
	return fmt.Sprintf("exit status %d", e.code)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err == nil {
		return
	}
	var exit *exitError
	if errors.As(err, &exit) {
		os.Exit(exit.code)
	}
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is $HOME/.lists.yaml)")
	flags.String("color", diagnostic.ColorAuto.String(),
		`Control colored output: "auto", "always", or "never".`)
	flags.Int("max-depth", lang.DefaultMaxDepth, "Maximum depth of nested function calls.")
	flags.Int("max-alloc", lang.DefaultMaxAlloc, "Maximum number of elements a single builtin may allocate.")
	for _, name := range []string{"color", "max-depth", "max-alloc"} {
		if err := viper.BindPFlag(name, flags.Lookup(name)); err != nil {
			panic(err)
		}
	}

	rootCmd.AddCommand(RunCommand(), ReplCommand(), DocCommand())
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		// Search config in home directory with name ".lists" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigName(".lists")
	}

	viper.SetEnvPrefix("lists")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	} else if cfgFile != "" {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
