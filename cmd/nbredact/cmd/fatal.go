// Copyright © 2018 One Concern

package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/pkg/errors"
)

// process exit points, replaced by mocks in tests
var (
	logFatalln = log.Fatalln
	logFatalf  = log.Fatalf
	osExit     = os.Exit
)

// command output: results go to stdout, progress and failures to stderr
var (
	infoLogger = log.New(os.Stdout, "", 0)
	errlog     = log.New(os.Stderr, "", 0)
	logStdOut  = fmt.Printf
)

// wrapFatalln stops the command, with the cause of the failure when there is one
func wrapFatalln(msg string, err error) {
	if err == nil {
		logFatalln(msg)
		return
	}
	logFatalf("%v", errors.Wrap(err, msg))
}

// wrapFatalWithCodef stops the command with a given exit code, e.g. to signal stale notebooks to a CI job
func wrapFatalWithCodef(code int, format string, args ...interface{}) {
	errlog.Printf(format, args...)
	osExit(code)
}
