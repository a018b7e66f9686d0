// Copyright © 2024 The ELPS authors

package profiler

import (
	"regexp"

	"github.com/luthersystems/lists/lang"
)

// FunLabeler provides an alternative name for a function label in the trace.
type FunLabeler func(fun *lang.Value) string

// WithFunLabeler sets the labeler for tracing spans.
func WithFunLabeler(funLabeler FunLabeler) Option {
	return func(p *profiler) {
		p.funLabeler = funLabeler
	}
}

// WithNamespaceLabeler labels spans "namespace:name", e.g. "builtin:map".
func WithNamespaceLabeler() Option {
	return WithFunLabeler(func(fun *lang.Value) string {
		return Namespace(fun) + ":" + sanitizeLabel(defaultFunName(fun))
	})
}

var (
	sanitizeRegExp   = regexp.MustCompile(`[\s_]+`)
	validLabelRegExp = regexp.MustCompile(`[[:graph:]]*`)
)

// sanitizeLabel replaces runs of whitespace, which appear in the names of
// curried functions like "curry +", with underscores.
func sanitizeLabel(userLabel string) string {
	if userLabel == "" {
		return ""
	}
	userLabel = sanitizeRegExp.ReplaceAllString(userLabel, "_")
	return validLabelRegExp.FindString(userLabel)
}
