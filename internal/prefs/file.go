package prefs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// File stores preferences as a JSON object, rewritten atomically on each put.
type File struct {
	path string
	mu   sync.Mutex
}

// NewFile returns a backend stored as JSON at path.
func NewFile(path string) *File {
	return &File{path: path}
}

func (f *File) load() (map[string]json.RawMessage, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]json.RawMessage{}, nil
		}
		return nil, err
	}
	values := map[string]json.RawMessage{}
	if err := json.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCorruptValue, f.path, err)
	}
	return values, nil
}

func (f *File) GetBoolean(_ context.Context, key string, def bool) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	values, err := f.load()
	if err != nil {
		return def, err
	}
	raw, ok := values[key]
	if !ok {
		return def, nil
	}
	var v bool
	if err := json.Unmarshal(raw, &v); err != nil {
		return def, fmt.Errorf("%w: %s=%s", ErrCorruptValue, key, raw)
	}
	return v, nil
}

func (f *File) PutBoolean(_ context.Context, key string, value bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	values, err := f.load()
	if errors.Is(err, ErrCorruptValue) {
		// Corrupt contents are discarded on write.
		values = map[string]json.RawMessage{}
	} else if err != nil {
		return fmt.Errorf("read prefs: %w", err)
	}
	raw, _ := json.Marshal(value)
	values[key] = raw

	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return fmt.Errorf("mkdir prefs dir: %w", err)
	}
	data, err := json.MarshalIndent(values, "", "  ")
	if err != nil {
		return err
	}
	tmp := f.path + ".tmp"
	if err := writeSynced(tmp, data); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("write prefs: %w", err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		return fmt.Errorf("replace prefs: %w", err)
	}
	return nil
}

func (f *File) Close() error { return nil }

// writeSynced writes data to path and flushes it to disk before returning.
func writeSynced(path string, data []byte) error {
	out, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o600)
	if err != nil {
		return err
	}
	if _, err := out.Write(data); err != nil {
		_ = out.Close()
		return err
	}
	if err := out.Sync(); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}
