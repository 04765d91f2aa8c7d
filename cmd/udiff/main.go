// Copyright ©️ Ant Group. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/antgroup/udiff/modules/term"
	"github.com/antgroup/udiff/modules/trace"
	"github.com/antgroup/udiff/pkg/version"
	"github.com/sirupsen/logrus"
)

type App struct {
	Globals
	Diff Diff `cmd:"" default:"withargs" help:"Compare two files line by line (default)"`
	Dir  Dir  `cmd:"dir" help:"Compare two directory trees"`
}

const (
	exitSame    = 0
	exitDiffer  = 1
	exitTrouble = 2
)

// errDiffer reports that the inputs differ. It carries no message.
var errDiffer = errors.New("inputs differ")

func exitCode(err error) int {
	switch {
	case err == nil:
		return exitSame
	case errors.Is(err, errDiffer):
		return exitDiffer
	default:
		return exitTrouble
	}
}

func main() {
	var app App
	ctx := kong.Parse(&app,
		kong.Name("udiff"),
		kong.Description("udiff - compare files line by line and print a unified diff"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version.GetVersionString(),
		},
		kong.Exit(func(code int) {
			if code != exitSame {
				code = exitTrouble
			}
			os.Exit(code)
		}),
	)
	logrus.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	now := time.Now()
	if app.Verbose {
		trace.EnableDebugMode()
	}
	err := ctx.Run(&app.Globals)
	if app.Verbose {
		trace.DbgPrint("time spent: %v", time.Since(now))
	}
	code := exitCode(err)
	if code == exitTrouble {
		fmt.Fprintf(os.Stderr, "udiff: %s\n", term.StderrLevel.Red(err.Error()))
	}
	os.Exit(code)
}
