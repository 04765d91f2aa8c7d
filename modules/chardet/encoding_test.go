package chardet

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"
)

func TestDetect(t *testing.T) {
	require.Equal(t, UTF8, Detect([]byte("héllo wörld\n")))
	require.Equal(t, "utf-16le", Detect([]byte{0xff, 0xfe, 'a', 0}))

	latin, err := charmap.Windows1252.NewEncoder().Bytes([]byte("héllo\n"))
	require.NoError(t, err)
	require.Equal(t, "windows-1252", Detect(latin))
}

func TestDecodeFromCharset(t *testing.T) {
	latin, err := charmap.Windows1252.NewEncoder().Bytes([]byte("naïve café\n"))
	require.NoError(t, err)
	out, err := DecodeFromCharset(latin, "Windows-1252")
	require.NoError(t, err)
	require.Equal(t, "naïve café\n", string(out))

	out, err = DecodeFromCharset([]byte("plain"), "UTF-8")
	require.NoError(t, err)
	require.Equal(t, "plain", string(out))

	_, err = DecodeFromCharset([]byte("x"), "ebcdic")
	require.Error(t, err)
}
