// ABOUTME: File-backed KV implementation storing one file per key.
// ABOUTME: Writes go through a temp file and rename so readers never see partial slots.
package kv

import (
	"fmt"
	"os"
	"path/filepath"
)

// FileKV stores each key as a file in a single directory.
type FileKV struct {
	dir string
}

// NewFileKV creates a file-backed KV rooted at dir. The directory is
// created on first write, not here, so constructing a store against a
// fresh path never fails.
func NewFileKV(dir string) *FileKV {
	return &FileKV{dir: dir}
}

// Get reads the slot file for key. A missing file is not an error.
func (f *FileKV) Get(key string) ([]byte, bool, error) {
	data, err := os.ReadFile(f.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to read slot %s: %w", key, err)
	}
	return data, true, nil
}

// Set replaces the slot file for key atomically: the new value is written
// to a temp file in the same directory and renamed into place.
func (f *FileKV) Set(key string, data []byte) error {
	if err := os.MkdirAll(f.dir, 0750); err != nil {
		return fmt.Errorf("failed to create slot directory: %w", err)
	}

	tmp, err := os.CreateTemp(f.dir, "."+key+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp slot: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to write slot %s: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to close temp slot: %w", err)
	}

	if err := os.Rename(tmpPath, f.path(key)); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to replace slot %s: %w", key, err)
	}
	return nil
}

func (f *FileKV) path(key string) string {
	return filepath.Join(f.dir, key+".json")
}
