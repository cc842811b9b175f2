package main

import (
	"fmt"
	"io"
)

// runHelp prints usage information.
func runHelp(stdout io.Writer) int {
	fmt.Fprint(stdout, usageText)
	return ExitOK
}

// runUnknown reports an unrecognized command and prints usage.
func runUnknown(cmd string, stderr io.Writer) int {
	fmt.Fprintln(stderr, MsgErrorPrefix+MsgUnknownCmd+cmd)
	fmt.Fprint(stderr, usageText)
	return ExitUsage
}
