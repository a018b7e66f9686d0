// Copyright © 2024 The ELPS authors

package lang

import "io"

// Reader parses source text into unevaluated values.
type Reader interface {
	Read(name string, r io.Reader) ([]*Value, error)
}
