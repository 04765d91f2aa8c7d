// Copyright ©️ Ant Group. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/antgroup/udiff/modules/difflib"
	"github.com/antgroup/udiff/modules/difflib/color"
	"github.com/antgroup/udiff/modules/term"
	"github.com/antgroup/udiff/modules/textio"
	"github.com/antgroup/udiff/pkg/config"
	"github.com/sirupsen/logrus"
)

// DiffFlags are shared by the file and directory commands. Zero values leave
// the configured setting in place.
type DiffFlags struct {
	Unified        ContextLines `short:"U" name:"unified" help:"Output NUM lines of unified context" placeholder:"NUM"`
	Color          string       `name:"color" help:"Colorize the output: auto, always or never" placeholder:"WHEN"`
	KeepEnds       bool         `name:"keep-ends" help:"Compare lines together with their line endings"`
	LineTerm       string       `name:"lineterm" help:"Terminator of every diff line: lf, crlf or none (bare lines, printed one per line)" placeholder:"TERM"`
	NoAutoJunk     bool         `name:"no-autojunk" help:"Do not treat frequent lines as junk when matching"`
	JunkBlankLines bool         `name:"junk-blank-lines" help:"Treat blank lines as junk when matching"`
	TextConv       bool         `name:"text-conv" help:"Convert non UTF-8 input to UTF-8 before comparing"`
	NoDates        bool         `name:"no-dates" help:"Do not print modification times in the file headers"`
}

// ContextLines is a -U value. It rejects negative widths and remembers
// whether it was given at all.
type ContextLines struct {
	N   int
	Set bool
}

func (c *ContextLines) Decode(ctx *kong.DecodeContext) error {
	var value string
	if err := ctx.Scan.PopValueInto("lines", &value); err != nil {
		return err
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("invalid context '%s': %w", value, difflib.ErrInvalidArgument)
	}
	if n < 0 {
		return fmt.Errorf("context %d must not be negative: %w", n, difflib.ErrInvalidArgument)
	}
	c.N, c.Set = n, true
	return nil
}

// settings is the merged result of config file and command line.
type settings struct {
	diff  *difflib.Options
	text  *textio.Options
	color color.ColorConfig
	dates bool
	jobs  int
}

func isBlank(line string) bool {
	return len(strings.TrimSpace(line)) == 0
}

func (f *DiffFlags) resolve(g *Globals, tty bool) (*settings, error) {
	cfg, err := config.Load(g.Config, g.ExpandEnv)
	if err != nil {
		return nil, err
	}
	if f.Unified.Set {
		cfg.Context = f.Unified.N
	}
	if len(f.Color) != 0 {
		cfg.Color = strings.ToLower(f.Color)
	}
	if len(f.LineTerm) != 0 {
		cfg.LineTerm = f.LineTerm
	}
	if f.KeepEnds {
		cfg.KeepEnds = true
	}
	if f.NoAutoJunk {
		cfg.AutoJunk = false
	}
	if f.TextConv {
		cfg.TextConv = true
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	lineTerm, err := config.ParseLineTerm(cfg.LineTerm)
	if err != nil {
		return nil, err
	}
	s := &settings{
		diff: &difflib.Options{
			Context:  cfg.Context,
			LineTerm: lineTerm,
			KeepEnds: cfg.KeepEnds,
			AutoJunk: cfg.AutoJunk,
		},
		text: &textio.Options{
			MaxSize:  cfg.MaxSize.Size,
			TextConv: cfg.TextConv,
		},
		dates: !f.NoDates,
		jobs:  cfg.Jobs,
	}
	if f.JunkBlankLines {
		s.diff.IsJunk = isBlank
	}
	if cfg.Color == config.ColorAlways || (cfg.Color == config.ColorAuto && tty) {
		if s.color, err = cfg.ColorConfig(); err != nil {
			return nil, err
		}
	}
	logrus.Debugf("context=%d lineterm=%q keep-ends=%v autojunk=%v color=%s", s.diff.Context, s.diff.LineTerm, s.diff.KeepEnds, s.diff.AutoJunk, cfg.Color)
	return s, nil
}

func stdoutIsColorTerminal() bool {
	return term.StdoutLevel != term.LevelNone
}
