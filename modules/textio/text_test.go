package textio

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/antgroup/udiff/modules/streamio"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"
)

func TestRead(t *testing.T) {
	text, err := Read(strings.NewReader("a\nb\n"), nil)
	require.NoError(t, err)
	require.Equal(t, "a\nb\n", text.Content)
	require.Equal(t, "utf-8", text.Charset)

	text, err = Read(strings.NewReader(""), nil)
	require.NoError(t, err)
	require.Empty(t, text.Content)
}

func TestReadZstd(t *testing.T) {
	content := strings.Repeat("line of text\n", 100)
	var buf bytes.Buffer
	z := streamio.GetZstdWriter(&buf)
	_, err := z.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, streamio.PutZstdWriter(z))

	text, err := Read(&buf, nil)
	require.NoError(t, err)
	require.Equal(t, content, text.Content)
}

func TestReadBinary(t *testing.T) {
	_, err := Read(bytes.NewReader([]byte{'a', 0, 'b'}), nil)
	require.True(t, errors.Is(err, ErrNonTextContent))
}

func TestReadTooLarge(t *testing.T) {
	_, err := Read(strings.NewReader("0123456789"), &Options{MaxSize: 4})
	require.ErrorIs(t, err, ErrTooLarge)

	text, err := Read(strings.NewReader("0123"), &Options{MaxSize: 4})
	require.NoError(t, err)
	require.Equal(t, "0123", text.Content)
}

func TestReadTextConv(t *testing.T) {
	latin, err := charmap.Windows1252.NewEncoder().Bytes([]byte("café\n"))
	require.NoError(t, err)

	text, err := Read(bytes.NewReader(latin), &Options{TextConv: true})
	require.NoError(t, err)
	require.Equal(t, "café\n", text.Content)
	require.Equal(t, "windows-1252", text.Charset)

	text, err = Read(bytes.NewReader(latin), nil)
	require.NoError(t, err)
	require.Equal(t, string(latin), text.Content)
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "a.txt")
	require.NoError(t, os.WriteFile(name, []byte("hello\n"), 0o644))
	mtime := time.Date(2024, 5, 6, 7, 8, 9, 0, time.UTC)
	require.NoError(t, os.Chtimes(name, mtime, mtime))

	text, err := ReadFile(name, nil)
	require.NoError(t, err)
	require.Equal(t, name, text.Name)
	require.Equal(t, "hello\n", text.Content)
	require.True(t, mtime.Equal(text.ModTime))

	_, err = ReadFile(dir, nil)
	require.Error(t, err)
	_, err = ReadFile(filepath.Join(dir, "missing"), nil)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestTimeLabel(t *testing.T) {
	ts := time.Date(2024, 5, 6, 7, 8, 9, 123, time.FixedZone("", -7*3600))
	require.Equal(t, "2024-05-06 07:08:09.000000123 -0700", TimeLabel(ts))
}
