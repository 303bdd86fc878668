package docstore

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Store persists uploaded claim documents.
type Store interface {
	Save(name string, r io.Reader) error
	Remove(name string) error
}

// Disk writes documents into a flat local directory keyed by the declared
// file name. Two uploads sharing a name overwrite each other; that matches
// the persisted layout this service inherited.
type Disk struct {
	dir string
}

func NewDisk(dir string) *Disk {
	return &Disk{dir: dir}
}

func (d *Disk) Save(name string, r io.Reader) error {
	if err := os.MkdirAll(d.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create uploads directory %s: %w", d.dir, err)
	}

	// filepath.Base strips any path segments smuggled into the declared name.
	path := filepath.Join(d.dir, filepath.Base(name))

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	return f.Close()
}

func (d *Disk) Remove(name string) error {
	return os.Remove(filepath.Join(d.dir, filepath.Base(name)))
}
