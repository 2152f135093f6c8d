package sweep_test

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
	"github.com/IngvarV8/matrix-mul/sweep"
)

var errDown = errors.New("down")

type downSink struct{}

func (downSink) Append(string) error { return errDown }

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
}

func smallConfig() sweep.Config {
	return sweep.Config{
		Sizes:   []int{4, 3},
		Workers: []int{1, 2, 4},
		Kinds:   []matrix.Kind{matrix.KindInt32, matrix.KindFloat32},
		Seed:    42,
	}
}

// TestRunLogsEveryMeasurement checks the line layout of a small sweep.
func TestRunLogsEveryMeasurement(t *testing.T) {
	var sink logsink.Memory

	sum, err := sweep.Run(context.Background(), smallConfig(), &sink, quietLogger())
	require.NoError(t, err)

	lines := sink.Lines()
	require.True(t, strings.HasPrefix(lines[0], "cpu: "), lines[0])
	require.Equal(t, "\nMultiplying matrices of size 4x4...", lines[1])
	// size 4: (1+1)+(2+1)+(4+1) lines per kind; size 3: w=4 is invalid.
	require.Len(t, lines, 1+(1+2*10)+(1+2*(2+3+1)))
	require.Equal(t, "\nMultiplying matrices of size 3x3...", lines[1+1+20])
	require.Contains(t, lines, parallel.InvalidConfigurationLine)

	require.Len(t, sum.Results, 10)
	require.Equal(t, 2, sum.Skipped)
	require.Zero(t, sum.Dropped)
	require.NoError(t, sum.SinkErr)
	require.NotEqual(t, sum.RunID.String(), "00000000-0000-0000-0000-000000000000")

	first := sum.Results[0]
	require.Equal(t, 4, first.Size)
	require.Equal(t, matrix.KindInt32, first.Kind)
	require.Equal(t, 1, first.Workers)
	require.Len(t, first.WorkerTimes, 1)
	require.Len(t, sum.Results[2].WorkerTimes, 4)
}

func TestRunSequentialBaseline(t *testing.T) {
	cfg := smallConfig()
	cfg.Sizes = []int{5}
	cfg.Kinds = []matrix.Kind{matrix.KindFloat32}
	cfg.Sequential = true
	cfg.SharedInputs = true
	cfg.Preview = true
	var sink logsink.Memory

	sum, err := sweep.Run(context.Background(), cfg, &sink, quietLogger())
	require.NoError(t, err)
	require.Len(t, sum.Results, 4)
	require.Zero(t, sum.Results[0].Workers) // baseline comes first
	require.Empty(t, sum.Results[0].WorkerTimes)
	require.Regexp(t, `^Total time taken for 5x5 float32 matrix multiplication: `, sink.Lines()[2])
}

func TestRunNonPositiveSize(t *testing.T) {
	cfg := smallConfig()
	cfg.Sizes = []int{0}
	cfg.Kinds = []matrix.Kind{matrix.KindInt32}
	var sink logsink.Memory

	sum, err := sweep.Run(context.Background(), cfg, &sink, quietLogger())
	require.NoError(t, err)
	require.Empty(t, sum.Results)
	require.Equal(t, 3, sum.Skipped)
}

func TestRunSinkFailures(t *testing.T) {
	cfg := smallConfig()
	cfg.Sizes = []int{2}
	cfg.Workers = []int{1}

	sum, err := sweep.Run(context.Background(), cfg, downSink{}, quietLogger())
	require.NoError(t, err) // decoupled by default
	require.Len(t, sum.Results, 2)
	require.Equal(t, 1+1+2*2, sum.Dropped)
	require.ErrorIs(t, sum.SinkErr, errDown)

	cfg.StrictLogging = true
	_, err = sweep.Run(context.Background(), cfg, downSink{}, quietLogger())
	require.ErrorIs(t, err, parallel.ErrLogSink)
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var sink logsink.Memory

	sum, err := sweep.Run(ctx, smallConfig(), &sink, quietLogger())
	require.ErrorIs(t, err, context.Canceled)
	require.Empty(t, sum.Results)
	require.Len(t, sink.Lines(), 1) // header only
}

func TestConfigValidate(t *testing.T) {
	require.NoError(t, sweep.DefaultConfig(1).Validate())

	cfg := smallConfig()
	cfg.Sizes = nil
	require.ErrorIs(t, cfg.Validate(), sweep.ErrNoSizes)

	cfg = smallConfig()
	cfg.Workers = nil
	require.ErrorIs(t, cfg.Validate(), sweep.ErrNoWorkers)

	cfg = smallConfig()
	cfg.Kinds = nil
	require.ErrorIs(t, cfg.Validate(), sweep.ErrNoKinds)

	cfg = smallConfig()
	cfg.Kinds = []matrix.Kind{matrix.Kind(9)}
	require.ErrorIs(t, cfg.Validate(), matrix.ErrUnknownKind)

	_, err := sweep.Run(context.Background(), cfg, nil, nil)
	require.ErrorIs(t, err, matrix.ErrUnknownKind)
}

func TestDefaultConfigIsACopy(t *testing.T) {
	cfg := sweep.DefaultConfig(7)
	cfg.Sizes[0] = 1
	require.Equal(t, 250, sweep.DefaultSizes[0])
	require.Equal(t, int64(7), cfg.Seed)
}

func TestCPUInfoString(t *testing.T) {
	info := sweep.CPUInfo{OS: "linux", Arch: "amd64", NumCPU: 8, GOMAXPROCS: 4, Features: []string{"avx2", "fma"}}
	require.Equal(t, "cpu: linux/amd64 cpus=8 gomaxprocs=4 features=avx2,fma", info.String())

	info.Features = nil
	require.Contains(t, info.String(), "features=none")

	detected := sweep.DetectCPU()
	require.Positive(t, detected.NumCPU)
}
