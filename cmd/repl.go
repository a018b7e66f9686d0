// Copyright © 2018 The ELPS authors

package cmd

import (
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/luthersystems/lists/repl"
)

// ReplCommand returns the repl command.
func ReplCommand(opts ...Option) *cobra.Command {
	cfg := newCmdConfig(opts...)
	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Start an interactive REPL",
		Long: `Start an interactive read-eval-print loop.

Expressions may span several lines; evaluation happens once every open list
is closed.  Line editing, tab completion of builtin names and command history
are supported via readline.  Use Ctrl-D to exit and Ctrl-C to discard the
current input.

The prompt can be set with the "prompt" key of the config file or the
LISTS_PROMPT environment variable.

Example REPL session:
  lists> (define xs [3 1 2])
  xs
  lists> (insertion-sort xs)
  [1 2 3]
  lists> ((curry +) 2)
  #<builtin curry +>
  lists> (map (partial * 10) xs)
  [30 10 20]
  lists> (nth xs 5)
  error[index-out-of-range]: nth: index 5 (length 3)`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := cfg.settings()
			if err != nil {
				return err
			}
			prompt := s.prompt
			if prompt == "" {
				prompt = filepath.Base(os.Args[0]) + "> "
			}
			ropts := []repl.Option{
				repl.WithColor(s.color),
				repl.WithStderr(cmd.ErrOrStderr()),
			}
			if in := cmd.InOrStdin(); in != io.Reader(os.Stdin) {
				ropts = append(ropts, repl.WithStdin(io.NopCloser(in)))
			}
			env, err := cfg.newEnv(s, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			return repl.RunEnv(env, prompt, ropts...)
		},
	}
	return cmd
}
