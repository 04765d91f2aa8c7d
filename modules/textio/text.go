// Package textio reads the inputs of a diff: files or streams that may be
// zstd compressed or stored in a legacy charset.
package textio

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"
	"unsafe"

	"github.com/antgroup/udiff/modules/chardet"
	"github.com/antgroup/udiff/modules/streamio"
)

const (
	MAX_DIFF_SIZE = 100 << 20 // MAX_DIFF_SIZE 100MiB
	sniffLen      = 8000
	// Stdin is the file name that reads standard input.
	Stdin = "-"
)

var (
	ErrNonTextContent = errors.New("non-text content")
	ErrTooLarge       = errors.New("content too large")
)

type Options struct {
	// MaxSize bounds the decoded content. Zero means MAX_DIFF_SIZE.
	MaxSize int64
	// TextConv converts non UTF-8 content to UTF-8.
	TextConv bool
}

// Text is the decoded content of one input.
type Text struct {
	Name    string
	Content string
	Charset string
	ModTime time.Time
}

func (o *Options) maxSize() int64 {
	if o == nil || o.MaxSize <= 0 {
		return MAX_DIFF_SIZE
	}
	return o.MaxSize
}

func (o *Options) textConv() bool {
	return o != nil && o.TextConv
}

// Read decodes r into a Text. zstd streams are decompressed first. Content
// with a NUL byte in its first 8000 bytes is rejected as binary.
func Read(r io.Reader, opts *Options) (*Text, error) {
	head, err := streamio.ReadMax(r, int64(len(streamio.ZstdMagic)))
	if err != nil {
		return nil, err
	}
	reader := io.MultiReader(bytes.NewReader(head), r)
	if streamio.IsZstd(head) {
		z, err := streamio.GetZstdReader(reader)
		if err != nil {
			return nil, err
		}
		defer streamio.PutZstdReader(z)
		reader = z
	}
	limit := opts.maxSize()
	content, err := streamio.GrowReadMax(reader, limit+1, sniffLen)
	if err != nil {
		return nil, err
	}
	if int64(len(content)) > limit {
		return nil, fmt.Errorf("exceeds %d bytes: %w", limit, ErrTooLarge)
	}
	if bytes.IndexByte(content[:min(len(content), sniffLen)], 0) != -1 {
		return nil, ErrNonTextContent
	}
	t := &Text{Charset: chardet.UTF8}
	if opts.textConv() {
		t.Charset = chardet.Detect(content[:min(len(content), sniffLen)])
		if content, err = chardet.DecodeFromCharset(content, t.Charset); err != nil {
			return nil, ErrNonTextContent
		}
	}
	if len(content) != 0 {
		t.Content = unsafe.String(unsafe.SliceData(content), len(content))
	}
	return t, nil
}

// ReadFile reads name, or standard input when name is "-".
func ReadFile(name string, opts *Options) (*Text, error) {
	if name == Stdin {
		t, err := Read(os.Stdin, opts)
		if err != nil {
			return nil, err
		}
		t.Name = name
		t.ModTime = time.Now()
		return t, nil
	}
	fd, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer fd.Close()
	si, err := fd.Stat()
	if err != nil {
		return nil, err
	}
	if si.IsDir() {
		return nil, fmt.Errorf("%s is a directory", name)
	}
	t, err := Read(fd, opts)
	if err != nil {
		return nil, err
	}
	t.Name = name
	t.ModTime = si.ModTime()
	return t, nil
}

// TimeLabel formats t the way diff -u prints file dates.
func TimeLabel(t time.Time) string {
	return t.Format("2006-01-02 15:04:05.000000000 -0700")
}
