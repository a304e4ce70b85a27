package main

import (
	"testing"
)

func TestCLIVersion(t *testing.T) {
	e := newExecutor(t, false)
	e.Run(t, "starky", "--version")
	e.checkNextLine(t, "^Starky$")
	e.checkNextLine(t, "^Version: ")
	e.checkNextLine(t, "^GoVersion: ")
	e.checkEOF(t)
}
