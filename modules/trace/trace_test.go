package trace

import (
	"bytes"
	"io/fs"
	"os"
	"testing"

	"github.com/antgroup/udiff/modules/term"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func TestDbgPrint(t *testing.T) {
	var buf bytes.Buffer
	stderr = &buf
	DbgPrint("hidden")
	require.Empty(t, buf.String())

	EnableDebugMode()
	DbgPrint("compare %s\nwith %s", "a.txt", "b.txt")
	require.Equal(t, "* compare a.txt\n* with b.txt\n", term.StripANSI(buf.String()))
}

func TestDbgFormat(t *testing.T) {
	require.Equal(t, "\x1b[33m* jack\x1b[0m\n", string(dbgFormat(term.Level256, "jack")))
	require.Equal(t, "* jack\n", string(dbgFormat(term.LevelNone, "jack")))
}

func TestErrorf(t *testing.T) {
	var buf bytes.Buffer
	logrus.SetOutput(&buf)
	logrus.SetLevel(logrus.DebugLevel)
	t.Cleanup(func() {
		logrus.SetOutput(os.Stderr)
		logrus.SetLevel(logrus.InfoLevel)
	})
	err := Errorf("open %s: %w", "a.txt", fs.ErrNotExist)
	require.EqualError(t, err, "open a.txt: file does not exist")
	require.ErrorIs(t, err, fs.ErrNotExist)
	require.Contains(t, buf.String(), "trace.TestErrorf:")
	require.Contains(t, buf.String(), "open a.txt")
}

func TestLocation(t *testing.T) {
	require.Regexp(t, `^trace\.TestLocation:\d+$`, Location(1))
}
