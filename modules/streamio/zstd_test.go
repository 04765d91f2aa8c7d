package streamio

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestZstdRoundTrip(t *testing.T) {
	content := strings.Repeat("The above copyright notice and this permission notice shall be included\n", 64)
	for range 10 {
		var buf bytes.Buffer
		z := GetZstdWriter(&buf)
		_, err := io.Copy(z, strings.NewReader(content))
		require.NoError(t, err)
		require.NoError(t, PutZstdWriter(z))
		require.True(t, IsZstd(buf.Bytes()))

		d, err := GetZstdReader(&buf)
		require.NoError(t, err)
		got, err := io.ReadAll(d)
		PutZstdReader(d)
		require.NoError(t, err)
		require.Equal(t, content, string(got))
	}
	require.False(t, IsZstd([]byte("plain text")))
}

func TestReadMax(t *testing.T) {
	text := "XZXdewdieded3oifdjfrf4frewfrfreferwfgrewfreferferfdedoidqjwqdjqedo3qjhd3hqdiwqehdro3eidhewdiehdbweqdgewdgewdedewgdbe"
	b, err := ReadMax(strings.NewReader(text), 10)
	require.NoError(t, err)
	require.Equal(t, text[:10], string(b))

	b, err = GrowReadMax(strings.NewReader(text), 50, 10)
	require.NoError(t, err)
	require.Len(t, b, 50)
}
