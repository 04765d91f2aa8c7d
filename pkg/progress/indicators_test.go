package progress

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIndicators(t *testing.T) {
	var buf bytes.Buffer
	i := NewIndicators("Comparing files", "Compared files", 0, false)
	i.out = &buf
	ctx, cancel := context.WithCancel(context.Background())
	i.Run(ctx)
	i.SetTotal(4)
	i.Add(1)
	i.Add(1)
	cancel()
	i.Wait()
	require.Contains(t, buf.String(), "Comparing files: 50% (2/4) completed")
}

func TestIndicatorsQuiet(t *testing.T) {
	var buf bytes.Buffer
	i := NewIndicators("Comparing files", "Compared files", 0, true)
	i.out = &buf
	ctx, cancel := context.WithCancel(context.Background())
	i.Run(ctx)
	i.Add(3)
	cancel()
	i.Wait()
	require.Empty(t, buf.String())
}

func TestIndicatorsFailed(t *testing.T) {
	var buf bytes.Buffer
	i := NewIndicators("Comparing files", "Compared files", 0, false)
	i.out = &buf
	ctx, cancel := context.WithCancelCause(context.Background())
	i.Run(ctx)
	cancel(errors.New("boom"))
	i.Wait()
	require.NotContains(t, buf.String(), "Compared files")
}
