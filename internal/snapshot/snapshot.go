// Package snapshot exports and imports calculator state as checksummed YAML.
package snapshot

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/jask/jaskcalc/internal/calc"
)

const version = 1

// ErrChecksum reports a snapshot whose state does not match its checksum.
var ErrChecksum = errors.New("snapshot: checksum mismatch")

type file struct {
	Version  int        `yaml:"version"`
	Checksum string     `yaml:"checksum"`
	State    calc.State `yaml:"state"`
}

func checksum(st calc.State) (string, error) {
	data, err := yaml.Marshal(st)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%016x", xxhash.Sum64(data)), nil
}

// Save writes st to path, replacing any previous snapshot in one rename.
func Save(fs afero.Fs, path string, st calc.State) error {
	sum, err := checksum(st)
	if err != nil {
		return fmt.Errorf("snapshot: encode state: %w", err)
	}
	data, err := yaml.Marshal(file{Version: version, Checksum: sum, State: st})
	if err != nil {
		return fmt.Errorf("snapshot: encode: %w", err)
	}
	if err := fs.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := afero.WriteFile(fs, tmp, data, 0o600); err != nil {
		return err
	}
	return fs.Rename(tmp, path)
}

// Load reads the snapshot at path. A missing file yields the zero State.
func Load(fs afero.Fs, path string) (calc.State, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return calc.State{}, nil
		}
		return calc.State{}, err
	}
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return calc.State{}, fmt.Errorf("snapshot: decode %s: %w", path, err)
	}
	if f.Version != version {
		return calc.State{}, fmt.Errorf("snapshot: unsupported version %d", f.Version)
	}
	sum, err := checksum(f.State)
	if err != nil {
		return calc.State{}, err
	}
	if sum != f.Checksum {
		return calc.State{}, ErrChecksum
	}
	return f.State, nil
}
