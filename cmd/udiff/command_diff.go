// Copyright ©️ Ant Group. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"errors"
	"fmt"

	"github.com/antgroup/udiff/modules/difflib"
	"github.com/antgroup/udiff/modules/textio"
	"github.com/antgroup/udiff/modules/trace"
	"github.com/sirupsen/logrus"
)

type Diff struct {
	DiffFlags `embed:""`
	Label     []string `name:"label" sep:"none" help:"Use LABEL instead of the file name, may be given twice" placeholder:"LABEL"`
	Stat      bool     `name:"stat" help:"Print a diffstat summary instead of the diff"`
	From      string   `arg:"" name:"from" help:"Original file, - reads standard input"`
	To        string   `arg:"" name:"to" help:"Modified file, - reads standard input"`
}

func (c *Diff) labels() (string, string, error) {
	switch len(c.Label) {
	case 0:
		return c.From, c.To, nil
	case 1:
		return c.Label[0], c.To, nil
	case 2:
		return c.Label[0], c.Label[1], nil
	}
	return "", "", errors.New("--label may be given at most twice")
}

func (c *Diff) Run(g *Globals) error {
	if c.From == textio.Stdin && c.To == textio.Stdin {
		return errors.New("standard input can only be compared once")
	}
	s, err := c.resolve(g, stdoutIsColorTerminal())
	if err != nil {
		return err
	}
	fromLabel, toLabel, err := c.labels()
	if err != nil {
		return err
	}
	return c.run(s, fromLabel, toLabel)
}

func (c *Diff) run(s *settings, fromLabel, toLabel string) error {
	tracker := trace.NewTracker(trace.IsDebugMode())
	from, err := textio.ReadFile(c.From, s.text)
	if err != nil && !errors.Is(err, textio.ErrNonTextContent) {
		return trace.Errorf("read %s: %w", c.From, err)
	}
	binary := errors.Is(err, textio.ErrNonTextContent)
	to, err := textio.ReadFile(c.To, s.text)
	if err != nil && !errors.Is(err, textio.ErrNonTextContent) {
		return trace.Errorf("read %s: %w", c.To, err)
	}
	binary = binary || errors.Is(err, textio.ErrNonTextContent)
	tracker.StepNext("read %s and %s", c.From, c.To)
	e := difflib.NewUnifiedEncoder(stdout).SetColor(s.color)
	if binary {
		logrus.Debugf("%s or %s is binary", c.From, c.To)
		if err := e.WriteMessage(fmt.Sprintf("Binary files %s and %s differ", fromLabel, toLabel)); err != nil {
			return err
		}
		return errDiffer
	}
	opts := s.diff
	opts.FromFile, opts.ToFile = fromLabel, toLabel
	if s.dates {
		opts.FromDate, opts.ToDate = textio.TimeLabel(from.ModTime), textio.TimeLabel(to.ModTime)
	}
	if c.Stat {
		return c.stat(from, to, opts)
	}
	lines, err := difflib.UnifiedDiffText(from.Content, to.Content, opts)
	if err != nil {
		return err
	}
	tracker.StepNext("diff produced %d lines", len(lines))
	if len(lines) == 0 {
		return nil
	}
	if err := e.Encode(lines); err != nil {
		return err
	}
	return errDiffer
}

func (c *Diff) stat(from, to *textio.Text, opts *difflib.Options) error {
	a := difflib.SplitLines(from.Content, opts.KeepEnds)
	b := difflib.SplitLines(to.Content, opts.KeepEnds)
	st, err := difflib.Stat(a, b, opts)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(stdout, "%s => %s | %d hunks, %d insertions(+), %d deletions(-)\n",
		opts.FromFile, opts.ToFile, st.Hunks, st.Addition, st.Deletion); err != nil {
		return err
	}
	if st.Hunks == 0 {
		return nil
	}
	return errDiffer
}
