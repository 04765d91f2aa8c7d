// Copyright ©️ Ant Group. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package dirdiff

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/antgroup/udiff/modules/difflib"
	"github.com/antgroup/udiff/modules/textio"
	"github.com/antgroup/udiff/modules/trace"
	"github.com/sirupsen/logrus"
	"github.com/zeebo/blake3"
	"golang.org/x/sync/errgroup"
)

const (
	DevNull = "/dev/null"
)

type Options struct {
	// Diff is the template for every file pair. Labels and dates are filled in.
	Diff *difflib.Options
	Text *textio.Options
	// Jobs bounds the number of files compared concurrently.
	Jobs int
	// Dates adds modification times to the file headers.
	Dates bool
	// Progress, when set, is told the number of paths and every finished one.
	Progress Progress
}

// Progress is implemented by progress.Indicators.
type Progress interface {
	SetTotal(n uint64)
	Add(n int)
}

// FileDiff is the result for one relative path.
type FileDiff struct {
	Path string
	// Lines is the unified diff, empty when Message is set.
	Lines []string
	// Message replaces the diff for binary content.
	Message string
}

type side struct {
	label string
	exist bool
}

func walkFiles(root string) (map[string]bool, error) {
	files := make(map[string]bool)
	err := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.Type().IsRegular() {
			return nil
		}
		rel, err := filepath.Rel(root, p)
		if err != nil {
			return err
		}
		files[filepath.ToSlash(rel)] = true
		return nil
	})
	return files, err
}

func hashFile(name string) ([]byte, error) {
	fd, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer fd.Close()
	h := blake3.New()
	if _, err := io.Copy(h, fd); err != nil {
		return nil, err
	}
	return h.Sum(nil), nil
}

func sameContent(a, b string) (bool, error) {
	ha, err := hashFile(a)
	if err != nil {
		return false, err
	}
	hb, err := hashFile(b)
	if err != nil {
		return false, err
	}
	return bytes.Equal(ha, hb), nil
}

// Compare diffs every regular file under oldDir against its counterpart
// under newDir. Files with equal content are skipped, files found on one side
// only are compared with an empty file labeled /dev/null. The result is
// sorted by path.
func Compare(ctx context.Context, oldDir, newDir string, opts *Options) ([]*FileDiff, error) {
	if opts == nil {
		opts = &Options{}
	}
	oldFiles, err := walkFiles(oldDir)
	if err != nil {
		return nil, err
	}
	newFiles, err := walkFiles(newDir)
	if err != nil {
		return nil, err
	}
	paths := make([]string, 0, len(oldFiles)+len(newFiles))
	for p := range oldFiles {
		paths = append(paths, p)
	}
	for p := range newFiles {
		if !oldFiles[p] {
			paths = append(paths, p)
		}
	}
	slices.Sort(paths)
	if opts.Progress != nil {
		opts.Progress.SetTotal(uint64(len(paths)))
	}

	results := make([]*FileDiff, len(paths))
	g, newCtx := errgroup.WithContext(ctx)
	g.SetLimit(max(opts.Jobs, 1))
	for i, p := range paths {
		g.Go(func() error {
			if err := newCtx.Err(); err != nil {
				return err
			}
			d, err := compareFile(p,
				side{label: filepath.Join(oldDir, p), exist: oldFiles[p]},
				side{label: filepath.Join(newDir, p), exist: newFiles[p]},
				opts)
			if err != nil {
				return trace.Errorf("compare %s: %w", p, err)
			}
			results[i] = d
			if opts.Progress != nil {
				opts.Progress.Add(1)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return slices.DeleteFunc(results, func(d *FileDiff) bool { return d == nil }), nil
}

func readSide(s side, opts *Options) (*textio.Text, error) {
	if !s.exist {
		return &textio.Text{Name: DevNull, ModTime: time.Unix(0, 0).UTC()}, nil
	}
	return textio.ReadFile(s.label, opts.Text)
}

func compareFile(p string, from, to side, opts *Options) (*FileDiff, error) {
	if from.exist && to.exist {
		same, err := sameContent(from.label, to.label)
		if err != nil {
			return nil, err
		}
		if same {
			logrus.Debugf("skip identical %s", p)
			return nil, nil
		}
	}
	a, errA := readSide(from, opts)
	b, errB := readSide(to, opts)
	if errors.Is(errA, textio.ErrNonTextContent) || errors.Is(errB, textio.ErrNonTextContent) {
		return &FileDiff{Path: p, Message: fmt.Sprintf("Binary files %s and %s differ", labelOf(from), labelOf(to))}, nil
	}
	if err := errors.Join(errA, errB); err != nil {
		return nil, err
	}
	do := *difflib.DefaultOptions()
	if opts.Diff != nil {
		do = *opts.Diff
	}
	do.FromFile, do.ToFile = labelOf(from), labelOf(to)
	if opts.Dates {
		do.FromDate, do.ToDate = textio.TimeLabel(a.ModTime), textio.TimeLabel(b.ModTime)
	}
	lines, err := difflib.UnifiedDiffText(a.Content, b.Content, &do)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		// equal after charset decoding
		return nil, nil
	}
	return &FileDiff{Path: p, Lines: lines}, nil
}

func labelOf(s side) string {
	if !s.exist {
		return DevNull
	}
	return s.label
}
