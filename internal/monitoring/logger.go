// Package monitoring holds the diagnostic logger used while classifying
// receiver clusters.
package monitoring

import (
	"fmt"
	"log"
)

// Logf receives one summary line per classification run, plus warnings.
// Standard log output unless SetLogger installs something else.
var Logf func(format string, v ...interface{}) = log.Printf

// SetLogger installs f as Logf. A nil f discards all output.
func SetLogger(f func(format string, v ...interface{})) {
	if f == nil {
		Logf = func(string, ...interface{}) {}
		return
	}
	Logf = f
}

// Capture redirects Logf into the returned slice until restore is called.
// Intended for tests that assert on classifier diagnostics.
func Capture() (lines *[]string, restore func()) {
	previous := Logf
	captured := []string{}
	Logf = func(format string, v ...interface{}) {
		captured = append(captured, fmt.Sprintf(format, v...))
	}
	return &captured, func() { Logf = previous }
}
