// Copyright © 2024 The ELPS authors

// Package diagnostic formats error reports for a terminal.  A report names
// the failure, quotes the source line it came from and lists any notes.  It
// does not depend on the language packages.
package diagnostic

// Report is a single error shown to the user.
type Report struct {
	// Code names the class of failure and is printed as error[code].
	Code    string
	Message string
	// File and Line locate the failure.  An empty File means the report has
	// no location and a zero Line means only the file is known.
	File  string
	Line  int
	Notes []string
}
