package streamio

import (
	"bytes"
	"io"
	"sync"

	"github.com/klauspost/compress/zstd"
)

// ZstdMagic starts every zstd frame.
var ZstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}

var (
	zstdReader = sync.Pool{
		New: func() any {
			d, _ := zstd.NewReader(nil)
			return &ZstdDecoder{
				Decoder: d,
			}
		},
	}
	zstdWriter = sync.Pool{
		New: func() any {
			e, _ := zstd.NewWriter(nil)
			return &ZstdEncoder{
				Encoder: e,
			}
		},
	}
)

// IsZstd reports whether b starts with a zstd frame header.
func IsZstd(b []byte) bool {
	return bytes.HasPrefix(b, ZstdMagic)
}

type ZstdDecoder struct {
	*zstd.Decoder
}

// GetZstdReader returns a ZstdDecoder that is managed by a sync.Pool and
// reset to read from r.
//
// After use, the ZstdDecoder should be put back into the sync.Pool
// by calling PutZstdReader.
func GetZstdReader(r io.Reader) (*ZstdDecoder, error) {
	z := zstdReader.Get().(*ZstdDecoder)
	err := z.Reset(r)
	return z, err
}

// PutZstdReader puts z back into its sync.Pool.
func PutZstdReader(z *ZstdDecoder) {
	zstdReader.Put(z)
}

type ZstdEncoder struct {
	*zstd.Encoder
}

// GetZstdWriter returns a *ZstdEncoder that is managed by a sync.Pool.
// Returns a writer that is reset with w and ready for use.
//
// After use, the *ZstdEncoder should be put back into the sync.Pool
// by calling PutZstdWriter.
func GetZstdWriter(w io.Writer) *ZstdEncoder {
	z := zstdWriter.Get().(*ZstdEncoder)
	z.Reset(w)
	return z
}

// PutZstdWriter flushes w and puts it back into its sync.Pool.
func PutZstdWriter(w *ZstdEncoder) error {
	err := w.Encoder.Close()
	zstdWriter.Put(w)
	return err
}
