package bench

import (
	"fmt"
	"io"
	"sort"
	"sync"
	"text/tabwriter"
)

// Result is one completed timing measurement: an algorithm run against a
// single (n, left) case, averaged over repeated trials to damp noise.
type Result struct {
	Algo       string
	N          int
	Left       int
	Iterations int
	NsPerOp    float64
	BytesMoved int64
}

// Table collects results from concurrent workers and reports them sorted
// for comparison, mirroring the rule table the originating search tooling
// accumulated discovered optimizations into.
type Table struct {
	mu      sync.Mutex
	results []Result
}

// NewTable creates an empty result table.
func NewTable() *Table {
	return &Table{}
}

// Add inserts a result into the table. Safe for concurrent use.
func (t *Table) Add(r Result) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.results = append(t.results, r)
}

// Len returns the number of recorded results.
func (t *Table) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.results)
}

// Results returns a copy of all results, sorted by case then by speed
// (fastest algorithm first within a case).
func (t *Table) Results() []Result {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]Result, len(t.results))
	copy(out, t.results)
	sort.Slice(out, func(i, j int) bool {
		if out[i].N != out[j].N {
			return out[i].N < out[j].N
		}
		if out[i].Left != out[j].Left {
			return out[i].Left < out[j].Left
		}
		return out[i].NsPerOp < out[j].NsPerOp
	})
	return out
}

// WriteText renders the table as aligned columns, one row per (algorithm,
// case) pair, grouped implicitly by the sort order from Results.
func (t *Table) WriteText(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "N\tLEFT\tALGO\tNS/OP\tBYTES/OP")
	for _, r := range t.Results() {
		fmt.Fprintf(tw, "%d\t%d\t%s\t%.1f\t%d\n", r.N, r.Left, r.Algo, r.NsPerOp, r.BytesMoved)
	}
	return tw.Flush()
}

// Fastest returns, for each distinct (N, Left) case, the result with the
// lowest NsPerOp - the dispatcher's implied "ideal policy" for that shape.
func (t *Table) Fastest() []Result {
	type key struct {
		n, left int
	}
	best := make(map[key]Result)
	for _, r := range t.Results() {
		k := key{r.N, r.Left}
		cur, ok := best[k]
		if !ok || r.NsPerOp < cur.NsPerOp {
			best[k] = r
		}
	}
	out := make([]Result, 0, len(best))
	for _, r := range best {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].N != out[j].N {
			return out[i].N < out[j].N
		}
		return out[i].Left < out[j].Left
	})
	return out
}
