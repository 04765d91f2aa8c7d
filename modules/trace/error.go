package trace

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// Location returns "pkg.Func:line" of the caller skip frames up.
func Location(skip int) string {
	pc, _, line, ok := runtime.Caller(skip)
	if !ok {
		return "?"
	}
	fn := runtime.FuncForPC(pc)
	if fn == nil {
		return fmt.Sprintf("?:%d", line)
	}
	return fmt.Sprintf("%s:%d", filepath.Base(fn.Name()), line)
}

// Errorf formats like fmt.Errorf, %w included, and logs the error with the
// location of its caller at debug level.
func Errorf(format string, a ...any) error {
	err := fmt.Errorf(format, a...)
	logrus.WithField("caller", Location(2)).Debug(err)
	return err
}

type Tracker struct {
	debug bool
	last  time.Time
}

func NewTracker(debugMode bool) *Tracker {
	return &Tracker{debug: debugMode, last: time.Now()}
}

// StepNext prints the time spent since the previous step in debug mode.
func (t *Tracker) StepNext(format string, a ...any) {
	if !t.debug {
		return
	}
	s := fmt.Sprintf(format, a...)
	now := time.Now()
	fmt.Fprintf(os.Stderr, "\x1b[35m* %s use time: %v\x1b[0m\n", strings.Trim(s, "\n"), now.Sub(t.last))
	t.last = now
}
