package pullpush

import (
	"bufio"
	"fmt"
	"os"
	"sync"
)

// Checkpoint records the ids of documents already processed by a run in
// a plain text file, one id per line. The format is deliberately
// operator-friendly: a stuck run can be inspected with any pager and
// reset by deleting the file.
type Checkpoint struct {
	mu   sync.Mutex
	path string
	file *os.File
}

// OpenCheckpoint opens (or creates) the checkpoint file at path in
// append mode.
func OpenCheckpoint(path string) (*Checkpoint, error) {
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("pullpush: open checkpoint %s: %w", path, err)
	}
	return &Checkpoint{path: path, file: file}, nil
}

// Path returns the location of the checkpoint file.
func (c *Checkpoint) Path() string {
	return c.path
}

// LogIDs appends ids to the checkpoint and flushes them to disk, so a
// crash directly after a successful write loses no progress.
func (c *Checkpoint) LogIDs(ids []string) error {
	if len(ids) == 0 {
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for _, id := range ids {
		if _, err := fmt.Fprintln(c.file, id); err != nil {
			return fmt.Errorf("pullpush: write checkpoint: %w", err)
		}
	}
	return c.file.Sync()
}

// SeenIDs reads back every distinct id recorded so far.
func (c *Checkpoint) SeenIDs() (map[string]struct{}, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	file, err := os.Open(c.path)
	if err != nil {
		return nil, fmt.Errorf("pullpush: read checkpoint %s: %w", c.path, err)
	}
	defer file.Close()

	seen := make(map[string]struct{})
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		if line := scanner.Text(); line != "" {
			seen[line] = struct{}{}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("pullpush: read checkpoint %s: %w", c.path, err)
	}
	return seen, nil
}

// Count returns the number of distinct ids recorded so far.
func (c *Checkpoint) Count() (int, error) {
	seen, err := c.SeenIDs()
	if err != nil {
		return 0, err
	}
	return len(seen), nil
}

// Close releases the underlying file without removing it, leaving the
// checkpoint in place for a resumed run.
func (c *Checkpoint) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.file.Close()
}

// Remove closes and deletes the checkpoint after a fully successful run.
func (c *Checkpoint) Remove() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.file.Close(); err != nil {
		return err
	}
	return os.Remove(c.path)
}
