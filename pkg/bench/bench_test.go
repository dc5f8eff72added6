package bench

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oisee/rotate/pkg/rotate"
)

func TestBuildMatrixDeduplicatesFractions(t *testing.T) {
	cases := BuildMatrix([]int{4}, []float64{0, 0.25, 0.25, 0.5})
	assert.Len(t, cases, 3)
}

func TestBuildTasksExcludesBufferedByDefault(t *testing.T) {
	cases := BuildMatrix([]int{8}, []float64{0.5})
	tasks := BuildTasks(cases, rotate.Algorithms[int](), false)
	for _, tk := range tasks {
		assert.False(t, tk.Algo.Buffered, "expected buffered algorithm %q excluded", tk.Algo.Name)
	}
	assert.NotEmpty(t, tasks, "expected at least one unbuffered task")
}

func TestWorkerPoolMeasuresAllTasks(t *testing.T) {
	cases := BuildMatrix([]int{16, 64}, []float64{0, 0.5, 1})
	tasks := BuildTasks(cases, rotate.Algorithms[int](), true)

	pool := NewWorkerPool(2)
	pool.MinDuration = time.Millisecond // keep the test fast
	pool.RunTasks(context.Background(), tasks)

	require.Equal(t, len(tasks), pool.Results.Len())
	completed, measured := pool.Stats()
	assert.Equal(t, int64(len(tasks)), completed)
	assert.Greater(t, measured, int64(0))
}

func TestTableWriteTextProducesHeaderAndRows(t *testing.T) {
	table := NewTable()
	table.Add(Result{Algo: "direct", N: 16, Left: 4, Iterations: 100, NsPerOp: 12.5, BytesMoved: 128})
	var sb strings.Builder
	require.NoError(t, table.WriteText(&sb))
	out := sb.String()
	assert.Contains(t, out, "ALGO")
	assert.Contains(t, out, "direct")
}

func TestTableFastestPicksLowestNsPerOp(t *testing.T) {
	table := NewTable()
	table.Add(Result{Algo: "slow", N: 16, Left: 4, NsPerOp: 99})
	table.Add(Result{Algo: "fast", N: 16, Left: 4, NsPerOp: 1})
	fastest := table.Fastest()
	require.Len(t, fastest, 1)
	assert.Equal(t, "fast", fastest[0].Algo)
}

func TestRunResumesFromCheckpointSkippingDoneTasks(t *testing.T) {
	cfg := Config{
		Sizes:       []int{16, 32},
		Fractions:   []float64{0.5},
		NumWorkers:  2,
		MinDuration: time.Millisecond,
		Resume: &Checkpoint{
			Results: []Result{{Algo: "direct", N: 16, Left: 8, NsPerOp: 1}},
		},
	}
	table := Run(context.Background(), cfg)

	algos := 0
	for _, a := range rotate.Algorithms[int]() {
		if !a.Buffered {
			algos++
		}
	}
	// 2 sizes x 1 fraction x unbuffered algos tasks total. The resumed
	// result is seeded into the table and its task skipped, so the table
	// holds exactly one result per task (a re-timed task would add one more).
	want := 2 * algos
	require.Equal(t, want, table.Len())
}

func TestRunStopsEarlyWhenContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	table := Run(ctx, Config{
		Sizes:      []int{1 << 20},
		Fractions:  []float64{0.5},
		NumWorkers: 1,
	})
	assert.Equal(t, 0, table.Len(), "expected no tasks to complete once ctx is already canceled")
}

func TestCheckpointRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := dir + "/ckpt.gob"
	want := &Checkpoint{
		Results:        []Result{{Algo: "direct", N: 16, Left: 4, NsPerOp: 5}},
		CompletedTasks: 1,
		TotalTasks:     10,
	}
	require.NoError(t, SaveCheckpoint(path, want))
	got, err := LoadCheckpoint(path)
	require.NoError(t, err)
	assert.Equal(t, want.CompletedTasks, got.CompletedTasks)
	assert.Equal(t, want.TotalTasks, got.TotalTasks)
	assert.Len(t, got.Results, 1)
}
