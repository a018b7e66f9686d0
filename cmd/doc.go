// Copyright © 2021 The ELPS authors

package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/wordwrap"
	"github.com/spf13/cobra"

	"github.com/luthersystems/lists/docs"
	"github.com/luthersystems/lists/lang"
)

// specialForms documents the forms evaluated by the interpreter itself.
var specialForms = map[string]struct{ usage, doc string }{
	"quote":  {"(quote expr)", "Returns expr without evaluating it.  'expr is shorthand for (quote expr)."},
	"if":     {"(if test then else)", "Evaluates then when test is true and else otherwise.  Only false and the empty list are false."},
	"define": {"(define name expr)", "Binds name to the value of expr in the current scope and returns name."},
	"lambda": {"(lambda (formals...) body...)", "Returns a function of the formal arguments which evaluates body in a new scope."},
}

// DocCommand returns the doc command.
func DocCommand(opts ...Option) *cobra.Command {
	cfg := newCmdConfig(opts...)
	var (
		docList       bool
		docGuide      bool
		docSourceFile string
	)
	cmd := &cobra.Command{
		Use:   "doc [flags] QUERY",
		Short: "Show documentation for builtins and special forms",
		Long: `Show built-in documentation for functions and special forms.

Use --guide for an introduction to the language.  Use -l to list every
builtin with a one line summary.  Use -f to load a source file first so that
functions it defines can be queried.

Examples:
  lists doc foldl                    Show docs for foldl
  lists doc lambda                   Show docs for a special form
  lists doc -l                       List all builtins
  lists doc --guide                  Read the language guide
  lists doc -f mylib.lisp my-func    Load a file, then show my-func`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if docGuide {
				_, err := io.WriteString(cmd.OutOrStdout(), docs.LangGuide)
				return err
			}
			if !docList && len(args) != 1 {
				_ = cmd.Help()
				return &exitError{code: 1}
			}
			s, err := cfg.settings()
			if err != nil {
				return err
			}
			env, err := cfg.newEnv(s, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			if docSourceFile != "" {
				if err := loadFile(env, docSourceFile); err != nil {
					return err
				}
			}
			out := bufio.NewWriter(cmd.OutOrStdout())
			defer out.Flush() //nolint:errcheck // best-effort flush on exit
			if docList {
				return renderBuiltinList(out, env.Runtime.Registry)
			}
			return renderDoc(out, env, args[0])
		},
	}
	cmd.Flags().BoolVarP(&docList, "list", "l", false,
		"List all builtins with a summary of each.")
	cmd.Flags().BoolVar(&docGuide, "guide", false,
		"Print the language guide.")
	cmd.Flags().StringVarP(&docSourceFile, "source-file", "f", "",
		"Evaluate a source file before querying documentation.")
	return cmd
}

func loadFile(env *lang.Env, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close() //nolint:errcheck // read only
	return lang.GoError(env.Load(path, f))
}

// renderBuiltinList writes the name and first sentence of every builtin.
func renderBuiltinList(w io.Writer, reg *lang.Registry) error {
	for _, name := range reg.Names() {
		b, _ := reg.Lookup(name)
		if _, err := fmt.Fprintf(w, "  %-16s %s\n", name, summary(b.Doc)); err != nil {
			return err
		}
	}
	return nil
}

// renderDoc writes documentation for query, which may name a special form,
// a function defined in env or a builtin.
func renderDoc(w io.Writer, env *lang.Env, query string) error {
	if sf, ok := specialForms[query]; ok {
		_, err := fmt.Fprintf(w, "special form %s\n%s\n", sf.usage, formatDoc(sf.doc))
		return err
	}
	v := env.Get(query)
	if err := lang.GoError(v); err != nil {
		return err
	}
	if v.Type != lang.TFun {
		_, err := fmt.Fprintf(w, "%s %s %v\n", v.Type, query, v)
		return err
	}
	if b, ok := env.Runtime.Registry.Lookup(query); ok && b.Fun == v {
		_, err := fmt.Fprintf(w, "builtin %s\n%s\n", b.Usage(), formatDoc(b.Doc))
		return err
	}
	sig := append([]string{query}, v.Fun.Formals...)
	_, err := fmt.Fprintf(w, "function (%s)\n", strings.Join(sig, " "))
	return err
}

func summary(doc string) string {
	doc = strings.TrimSpace(doc)
	if i := strings.Index(doc, ". "); i >= 0 {
		return doc[:i+1]
	}
	return doc
}

func formatDoc(doc string) string {
	return strings.TrimSuffix(indent.String(wordwrap.String(doc, 72), 2), "\n")
}
