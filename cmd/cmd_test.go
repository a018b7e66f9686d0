// Copyright © 2024 The ELPS authors

package cmd

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs c with args and returns its stdout and stderr.
func execute(t *testing.T, c *cobra.Command, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	c.SetOut(&stdout)
	c.SetErr(&stderr)
	c.SetArgs(args)
	err := c.Execute()
	return stdout.String(), stderr.String(), err
}

func testViper() *viper.Viper {
	v := viper.New()
	v.Set("color", "never")
	return v
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestRunExpression(t *testing.T) {
	stdout, stderr, err := execute(t, RunCommand(WithViper(testViper())),
		"-e", "-p", "(foldl + 0 [1 2 3])", "(map (curry *) [1 2])")
	require.NoError(t, err, stderr)
	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "6", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "[#<builtin curry *>"), lines[1])
}

func TestRunFiles(t *testing.T) {
	lib := writeFile(t, "lib.lisp", "(define sorted (lambda (xs) (insertion-sort xs)))\n")
	main := writeFile(t, "main.lisp", "(sorted [3 1 2])\n")
	stdout, _, err := execute(t, RunCommand(WithViper(testViper())), "-p", lib, main)
	require.NoError(t, err)
	assert.Equal(t, "sorted\n[1 2 3]\n", stdout)
}

func TestRunError(t *testing.T) {
	path := writeFile(t, "bad.lisp", "(define xs [1 2])\n(nth xs 9)\n(print \"unreachable\")\n")
	_, stderr, err := execute(t, RunCommand(WithViper(testViper())), path)
	var exit *exitError
	require.ErrorAs(t, err, &exit)
	assert.Equal(t, 1, exit.code)
	assert.Contains(t, stderr, "error[index-out-of-range]: nth: index 9 (length 2)")
	assert.NotContains(t, stderr, "unreachable")
}

func TestRunSyntaxError(t *testing.T) {
	path := writeFile(t, "broken.lisp", "(reverse [1 2 3]\n")
	_, stderr, err := execute(t, RunCommand(WithViper(testViper())), path)
	require.Error(t, err)
	assert.Contains(t, stderr, "error[syntax-error]: unmatched")
	assert.Contains(t, stderr, "--> "+path)
}

func TestRunMaxDepth(t *testing.T) {
	v := testViper()
	v.Set("max-depth", 50)
	_, stderr, err := execute(t, RunCommand(WithViper(v)),
		"-e", "(define loop (lambda (n) (loop (inc n))))", "(loop 0)")
	require.Error(t, err)
	assert.Contains(t, stderr, "error[stack-overflow]")
	assert.Contains(t, stderr, "50")
}

func TestRunInvalidSettings(t *testing.T) {
	v := testViper()
	v.Set("color", "sometimes")
	_, _, err := execute(t, RunCommand(WithViper(v)), "-e", "1")
	assert.ErrorContains(t, err, "invalid color mode")

	_, _, err = execute(t, RunCommand(WithViper(testViper())), "--trace", "zipkin", "-e", "1")
	assert.ErrorContains(t, err, "invalid trace exporter")

	_, _, err = execute(t, RunCommand(WithViper(testViper())),
		"--trace", "otel", "--callgrind", filepath.Join(t.TempDir(), "out"), "-e", "1")
	assert.ErrorContains(t, err, "at most one of")
}

func TestRunTraceOpenTelemetry(t *testing.T) {
	_, stderr, err := execute(t, RunCommand(WithViper(testViper())),
		"--trace", "otel", "--only", "insertion-sort", "-e", "(insertion-sort [2 1])")
	require.NoError(t, err)
	assert.Contains(t, stderr, "span insertion-sort")
	assert.Contains(t, stderr, "code.function=insertion-sort")
	assert.Contains(t, stderr, "span run")
}

func TestRunTraceFromConfig(t *testing.T) {
	v := testViper()
	v.Set("trace", "opencensus")
	_, stderr, err := execute(t, RunCommand(WithViper(v)), "-e", "(reverse [1 2])")
	require.NoError(t, err)
	assert.Contains(t, stderr, "span reverse")
	assert.Contains(t, stderr, "code.namespace=builtin")
}

func TestRunCallgrind(t *testing.T) {
	out := filepath.Join(t.TempDir(), "callgrind.out")
	_, _, err := execute(t, RunCommand(WithViper(testViper())),
		"--callgrind", out, "-e", "(map inc [1 2 3])")
	require.NoError(t, err)
	b, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(b), "events:")
	assert.Contains(t, string(b), "summary")
}

func TestRunExclude(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.lisp"), []byte("(+ 1 1)"), 0600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "scratch.lisp"), []byte("(first [])"), 0600))
	stdout, _, err := execute(t, RunCommand(WithViper(testViper())),
		"-p", "--exclude", "scratch.lisp", dir+"/...")
	require.NoError(t, err)
	assert.Equal(t, "2\n", stdout)
}

func TestDoc(t *testing.T) {
	stdout, _, err := execute(t, DocCommand(WithViper(testViper())), "nth")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(stdout, "builtin (nth list n)\n  "), stdout)

	stdout, _, err = execute(t, DocCommand(WithViper(testViper())), "lambda")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(stdout, "special form (lambda (formals...) body...)\n"), stdout)

	_, _, err = execute(t, DocCommand(WithViper(testViper())), "fnord")
	assert.ErrorContains(t, err, "unbound-symbol")
}

func TestDocGuide(t *testing.T) {
	stdout, _, err := execute(t, DocCommand(WithViper(testViper())), "--guide")
	require.NoError(t, err)
	assert.Contains(t, stdout, "## Special forms")
}

func TestDocList(t *testing.T) {
	stdout, _, err := execute(t, DocCommand(WithViper(testViper())), "-l")
	require.NoError(t, err)
	for _, name := range []string{"first", "foldl", "mat-multiply", "fit-for-service?"} {
		assert.Contains(t, stdout, "  "+name+" ")
	}
}

func TestDocSourceFile(t *testing.T) {
	path := writeFile(t, "lib.lisp", "(define add-it (lambda (x y) (+ x y)))")
	stdout, _, err := execute(t, DocCommand(WithViper(testViper())), "-f", path, "add-it")
	require.NoError(t, err)
	assert.Equal(t, "function (add-it x y)\n", stdout)
}

func TestDocCommand_DefaultFlags(t *testing.T) {
	cmd := DocCommand()
	assert.Equal(t, "doc [flags] QUERY", cmd.Use)
	for _, name := range []string{"list", "source-file", "guide"} {
		assert.NotNil(t, cmd.Flags().Lookup(name), "missing flag: %s", name)
	}
}

func TestRepl(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	inR, inW := io.Pipe()
	go func() {
		defer inW.Close() //nolint:errcheck // test cleanup
		_, _ = io.WriteString(inW, "(define xs [5 4])\n(min xs)\n")
	}()
	c := ReplCommand(WithViper(testViper()))
	c.SetIn(inR)
	_, stderr, err := execute(t, c)
	require.NoError(t, err)
	assert.Contains(t, stderr, "4\n")
}

func TestFormatDoc(t *testing.T) {
	doc := formatDoc(strings.Repeat("word ", 30))
	for _, line := range strings.Split(doc, "\n") {
		assert.True(t, strings.HasPrefix(line, "  "))
		assert.LessOrEqual(t, len(line), 74)
	}
	assert.Equal(t, "Returns x.", summary("Returns x.  Then more."))
}
