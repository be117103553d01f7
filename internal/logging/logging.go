// Package logging wires the solver's logr.Logger facade. The badger
// snapshot store takes a logr.Logger, which the c4solver CLI builds
// with New and also uses for snapshot errors; the CLI's results and
// fatal errors, and the bench tool's output, go through fmt and the
// bare log package instead.
package logging

import (
	"io"
	"log"

	"github.com/go-logr/logr"
	"github.com/go-logr/stdr"
)

// New returns a logr.Logger backed by the standard library's log
// package, writing to w with verbosity v (0 = info and above only,
// higher values enable more detail, matching stdr's convention).
func New(w io.Writer, v int) logr.Logger {
	stdr.SetVerbosity(v)
	return stdr.New(log.New(w, "", log.LstdFlags))
}

// Discard returns a logger that drops everything, for tests and
// library callers that don't want solver diagnostics.
func Discard() logr.Logger {
	return logr.Discard()
}
