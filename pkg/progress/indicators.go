// Copyright ©️ Ant Group. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package progress

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/antgroup/udiff/modules/term"
)

var (
	selectedSpinner = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}
	blueColorMap    = map[term.Level]string{
		term.Level256: "\x1b[36m",
		term.Level16M: "\x1b[38;2;72;198;239m",
	}
	endColorMap = map[term.Level]string{
		term.Level256: "\x1b[0m",
		term.Level16M: "\x1b[0m",
	}
)

// Indicators draws a spinner with a counter on stderr until its context is
// canceled.
type Indicators struct {
	description string
	completed   string
	quiet       bool
	current     atomic.Uint64
	total       atomic.Uint64
	out         io.Writer
	level       term.Level
	wg          sync.WaitGroup
}

func NewIndicators(description, completed string, total uint64, quiet bool) *Indicators {
	i := &Indicators{description: description, completed: completed, quiet: quiet, out: os.Stderr, level: term.StderrLevel}
	i.total.Store(total)
	return i
}

func (i *Indicators) Add(n int) {
	i.current.Add(uint64(n))
}

// SetTotal switches the counter to a percentage of n.
func (i *Indicators) SetTotal(n uint64) {
	i.total.Store(n)
}

func (i *Indicators) Wait() {
	i.wg.Wait()
}

func (i *Indicators) Run(ctx context.Context) {
	if i.quiet {
		return
	}
	i.wg.Add(1)
	go func() {
		defer i.wg.Done()
		blue := blueColorMap[i.level]
		end := endColorMap[i.level]
		startTime := time.Now()
		tick := time.NewTicker(time.Millisecond * 100)
		defer tick.Stop()
		for {
			select {
			case <-ctx.Done():
				if err := context.Cause(ctx); !errors.Is(err, context.Canceled) {
					return
				}
				current, total := i.current.Load(), i.total.Load()
				if total == 0 {
					fmt.Fprintf(i.out, "\x1b[2K\r%s, total: %d, time spent: %v%s\n",
						i.completed, current, time.Since(startTime).Truncate(time.Millisecond), end)
					return
				}
				fmt.Fprintf(i.out, "\x1b[2K\r%s: %d%% (%d/%d) completed, time spent: %v%s\n",
					i.description, 100*current/total, current, total, time.Since(startTime).Truncate(time.Millisecond), end)
				return
			case <-tick.C:
				current, total := i.current.Load(), i.total.Load()
				spinner := selectedSpinner[int(math.Round(math.Mod(float64(time.Since(startTime).Milliseconds()/100), float64(len(selectedSpinner)))))]
				if total == 0 {
					fmt.Fprintf(i.out, "\x1b[2K\r%s %s... %s%d%s", blue, spinner, i.description, current, end)
				} else {
					fmt.Fprintf(i.out, "\x1b[2K\r%s %s... %s%d%% (%d/%d)%s", blue, spinner, i.description, 100*current/total, current, total, end)
				}
			}
		}
	}()
}
