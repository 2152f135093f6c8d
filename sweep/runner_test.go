package sweep

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/IngvarV8/matrix-mul/logsink"
	"github.com/IngvarV8/matrix-mul/matrix"
	"github.com/IngvarV8/matrix-mul/parallel"
)

var errWorkerLine = errors.New("worker line rejected")

// workerLineSink accepts every line except per-worker timings.
type workerLineSink struct{ logsink.Memory }

func (s *workerLineSink) Append(line string) error {
	if strings.HasPrefix(line, "Worker ") {
		return errWorkerLine
	}

	return s.Memory.Append(line)
}

func TestRunKindStrictFailureLeavesNoPendingRecords(t *testing.T) {
	cfg := Config{
		Sizes:         []int{4},
		Workers:       []int{2},
		Kinds:         []matrix.Kind{matrix.KindInt32},
		Seed:          3,
		StrictLogging: true,
	}
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	r := newRunner(cfg, &workerLineSink{}, logger)

	err := runKind[int32](context.Background(), r, 4)
	require.ErrorIs(t, err, parallel.ErrLogSink)
	require.ErrorIs(t, err, errWorkerLine)
	require.Empty(t, r.col.pending)
	require.Empty(t, r.col.snapshot())
	require.Equal(t, 2, r.rep.Dropped())
}

func TestRunKindPreviewAtDebug(t *testing.T) {
	cfg := Config{
		Sizes:   []int{3},
		Workers: []int{1, 3},
		Kinds:   []matrix.Kind{matrix.KindFloat32},
		Seed:    8,
		Preview: true,
	}
	var buf bytes.Buffer
	debug := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	r := newRunner(cfg, logsink.Discard, debug)

	require.NoError(t, runKind[float32](context.Background(), r, 3))
	require.Contains(t, buf.String(), "msg=operands")
	require.Contains(t, buf.String(), "msg=product")
	require.Len(t, r.col.snapshot(), 2)

	buf.Reset()
	quiet := slog.New(slog.NewTextHandler(&buf, nil))
	r = newRunner(cfg, logsink.Discard, quiet)
	require.NoError(t, runKind[float32](context.Background(), r, 3))
	require.NotContains(t, buf.String(), "msg=operands")
	require.NotContains(t, buf.String(), "msg=product")
}

func TestGeneratePairIsReproducible(t *testing.T) {
	a1, b1, err := generatePair[int32](5, 11)
	require.NoError(t, err)
	a2, b2, err := generatePair[int32](5, 11)
	require.NoError(t, err)
	require.True(t, a1.Equal(a2))
	require.True(t, b1.Equal(b2))
	require.False(t, a1.Equal(b1))

	_, _, err = generatePair[int32](0, 11)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}
