package bench

import (
	"encoding/gob"
	"os"
)

// Checkpoint holds enough state to resume an interrupted sweep: the
// results gathered so far and how many tasks of the matrix were
// completed, so a resumed run can skip what's already timed.
type Checkpoint struct {
	Results        []Result
	CompletedTasks int
	TotalTasks     int
}

func init() {
	gob.Register(Result{})
}

// SaveCheckpoint writes sweep state to path, overwriting any existing file.
func SaveCheckpoint(path string, ckpt *Checkpoint) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return gob.NewEncoder(f).Encode(ckpt)
}

// LoadCheckpoint reads sweep state from path.
func LoadCheckpoint(path string) (*Checkpoint, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var ckpt Checkpoint
	if err := gob.NewDecoder(f).Decode(&ckpt); err != nil {
		return nil, err
	}
	return &ckpt, nil
}
