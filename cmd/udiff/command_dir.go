// Copyright ©️ Ant Group. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/antgroup/udiff/modules/difflib"
	"github.com/antgroup/udiff/modules/term"
	"github.com/antgroup/udiff/pkg/dirdiff"
	"github.com/antgroup/udiff/pkg/progress"
)

type Dir struct {
	DiffFlags `embed:""`
	Jobs      int    `short:"j" name:"jobs" help:"Number of files compared concurrently" default:"0"`
	Progress  bool   `name:"progress" help:"Show progress on standard error while comparing"`
	Old       string `arg:"" name:"old" help:"Original directory" type:"existingdir"`
	New       string `arg:"" name:"new" help:"Modified directory" type:"existingdir"`
}

func (c *Dir) Run(g *Globals) error {
	s, err := c.resolve(g, stdoutIsColorTerminal())
	if err != nil {
		return err
	}
	if c.Jobs > 0 {
		s.jobs = c.Jobs
	}
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()
	return c.run(ctx, s)
}

func (c *Dir) run(ctx context.Context, s *settings) error {
	indicators := progress.NewIndicators("Comparing files ", "Compared files", 0, !c.Progress || term.StderrLevel == term.LevelNone)
	newCtx, cancel := context.WithCancel(ctx)
	indicators.Run(newCtx)
	diffs, err := dirdiff.Compare(ctx, c.Old, c.New, &dirdiff.Options{
		Diff:     s.diff,
		Text:     s.text,
		Jobs:     s.jobs,
		Dates:    s.dates,
		Progress: indicators,
	})
	cancel()
	indicators.Wait()
	if err != nil {
		return err
	}
	e := difflib.NewUnifiedEncoder(stdout).SetColor(s.color)
	for _, d := range diffs {
		if len(d.Message) != 0 {
			err = e.WriteMessage(d.Message)
		} else {
			err = e.Encode(d.Lines)
		}
		if err != nil {
			return err
		}
	}
	if len(diffs) == 0 {
		return nil
	}
	return errDiffer
}
