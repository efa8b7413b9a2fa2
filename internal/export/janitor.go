package export

import (
	"context"
	"log"
	"os"
	"path/filepath"
	"time"
)

// Janitor sweeps the export directory on a ticker and removes files older
// than TTL. Exported files are one-shot downloads; nothing re-reads them
// after the response is served.
type Janitor struct {
	Dir string
	TTL time.Duration
}

func (j *Janitor) Run(ctx context.Context) {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			j.sweep()
		}
	}
}

func (j *Janitor) sweep() {
	entries, err := os.ReadDir(j.Dir)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("export janitor: %v\n", err)
		}
		return
	}

	cutoff := time.Now().Add(-j.TTL)
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		if info.ModTime().Before(cutoff) {
			if err := os.Remove(filepath.Join(j.Dir, e.Name())); err != nil {
				log.Printf("export janitor: remove %s: %v\n", e.Name(), err)
			}
		}
	}
}
