package main

import (
	"fmt"
	"io"
)

// runVersion prints the CLI version.
func runVersion(stdout io.Writer) int {
	fmt.Fprintln(stdout, MsgVersionPrefix+Version)
	return ExitOK
}
