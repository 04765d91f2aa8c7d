package trace

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"
	"sync/atomic"

	"github.com/antgroup/udiff/modules/term"
	"github.com/sirupsen/logrus"
)

var (
	debugMode atomic.Bool
	stderr    io.Writer = os.Stderr
)

// EnableDebugMode turns on DbgPrint output and debug level logging.
func EnableDebugMode() {
	debugMode.Store(true)
	logrus.SetLevel(logrus.DebugLevel)
}

func IsDebugMode() bool {
	return debugMode.Load()
}

func dbgFormat(level term.Level, message string) []byte {
	var buffer bytes.Buffer
	for _, s := range strings.Split(message, "\n") {
		switch level {
		case term.Level16M:
			_, _ = buffer.WriteString("\x1b[38;2;254;225;64m* ")
			_, _ = buffer.WriteString(s)
			_, _ = buffer.WriteString("\x1b[0m\n")
		case term.Level256:
			_, _ = buffer.WriteString("\x1b[33m* ")
			_, _ = buffer.WriteString(s)
			_, _ = buffer.WriteString("\x1b[0m\n")
		default:
			_, _ = buffer.WriteString("* ")
			_, _ = buffer.WriteString(s)
			_ = buffer.WriteByte('\n')
		}
	}
	return buffer.Bytes()
}

// DbgPrint writes a debug message to stderr when debug mode is on.
func DbgPrint(format string, args ...any) {
	if !IsDebugMode() {
		return
	}
	_, _ = stderr.Write(dbgFormat(term.StderrLevel, fmt.Sprintf(format, args...)))
}
