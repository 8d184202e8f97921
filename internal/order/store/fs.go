// Package store persists mapping definitions as one JSON document per mapping
// name inside a configured directory.
//
// The contract is name-keyed, last-write-wins. Concurrent writers to the same
// name are not coordinated; a reader racing an overwrite may observe either
// record. That race is accepted, not a guarantee to fix.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/jk0601/agorder/internal/order/entity"
	"github.com/jk0601/agorder/internal/pkg/pkgerror"
)

// FSStore keeps mapping records on the local filesystem.
type FSStore struct {
	dir string
}

// NewFSStore creates the mapping directory if needed and returns the store.
func NewFSStore(dir string) (*FSStore, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, pkgerror.NewPersistence(err)
	}
	return &FSStore{dir: dir}, nil
}

// Save serializes def keyed by its name, overwriting any existing record.
func (s *FSStore) Save(ctx context.Context, def entity.MappingDefinition) error {
	path, err := s.recordPath(def.Name)
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(def, "", "  ")
	if err != nil {
		return pkgerror.NewPersistence(err)
	}

	if err := os.WriteFile(path, data, 0o640); err != nil {
		return pkgerror.NewPersistence(err)
	}

	return nil
}

// Load reads the record stored under name.
func (s *FSStore) Load(ctx context.Context, name string) (entity.MappingDefinition, error) {
	path, err := s.recordPath(name)
	if err != nil {
		return entity.MappingDefinition{}, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return entity.MappingDefinition{}, pkgerror.ErrNotFound
		}
		return entity.MappingDefinition{}, pkgerror.NewPersistence(err)
	}

	var def entity.MappingDefinition
	if err := json.Unmarshal(data, &def); err != nil {
		return entity.MappingDefinition{}, pkgerror.NewCorruptRecord(err)
	}

	return def, nil
}

// recordPath validates the mapping name and resolves its file path. Names
// that could escape the mapping directory are rejected outright.
func (s *FSStore) recordPath(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", pkgerror.NewInvalidInput(errors.New("mapping name is required"))
	}
	if strings.ContainsAny(name, `/\`) || strings.Contains(name, "..") {
		return "", pkgerror.NewInvalidInput(fmt.Errorf("invalid mapping name %q", name))
	}

	return filepath.Join(s.dir, name+".json"), nil
}
