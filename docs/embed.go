// Copyright © 2024 The ELPS authors

// Package docs embeds the language reference and example programs for use by
// the CLI.
package docs

import "embed"

//go:embed lang.md
var LangGuide string

// Examples holds runnable programs under examples/.
//
//go:embed examples/*.lisp
var Examples embed.FS
