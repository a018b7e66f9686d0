// Copyright © 2024 The ELPS authors

package repl

import (
	"errors"
	"io"

	"github.com/luthersystems/lists/diagnostic"
	"github.com/luthersystems/lists/lang"
	"github.com/luthersystems/lists/parser"
)

// RenderError writes err to w as a diagnostic report.
func RenderError(w io.Writer, mode diagnostic.ColorMode, err error) error {
	r := &diagnostic.Renderer{Color: mode}
	return r.Render(w, Diagnose(err))
}

// Diagnose converts an evaluation or syntax error into a Report.  Error
// values keep their condition as the report code and syntax errors point at
// the offending line.
func Diagnose(err error) diagnostic.Report {
	rep := diagnostic.Report{Message: err.Error()}

	var serr *parser.SyntaxError
	if errors.As(err, &serr) {
		rep.Code = lang.CondSyntaxError
		rep.Message = serr.Msg
		rep.File = serr.File
		rep.Line = serr.Line
		return rep
	}

	var lerr *lang.ErrorVal
	if errors.As(err, &lerr) {
		rep.Code = lerr.Condition()
		rep.Message = lerr.Message()
		if fname := lerr.FunName(); fname != "" {
			rep.Message = fname + ": " + rep.Message
		}
		if lerr.Condition() == lang.CondUnboundSymbol {
			rep.Notes = append(rep.Notes, "run `lists doc -l` to list the builtins")
		}
	}
	return rep
}
