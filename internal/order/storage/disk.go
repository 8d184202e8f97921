// Package storage is the upload/download gateway: it accepts incoming
// spreadsheet files, persists them under generated identifiers, and serves
// stored files (uploads and generated outputs) back by name.
//
// Files live flat in one directory keyed by name; no index or manifest ties
// them together beyond the naming convention. Nothing here deletes files.
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/jk0601/agorder/internal/order/entity"
	"github.com/jk0601/agorder/internal/pkg/pkgerror"
	"github.com/jk0601/agorder/internal/pkg/pkguid"
)

// MaxUploadBytes is the fixed ceiling for a single uploaded file.
const MaxUploadBytes = 10 << 20 // 10 MiB

//nolint:gochecknoglobals // fixed allow-list, read-only
var allowedExtensions = map[string]struct{}{
	".xlsx": {},
	".xls":  {},
	".csv":  {},
}

// Disk stores files on the local filesystem under a single directory.
type Disk struct {
	dir string
	id  pkguid.NumberID
}

// NewDisk creates the storage directory if needed and returns the gateway.
func NewDisk(dir string, id pkguid.NumberID) (*Disk, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, pkgerror.NewPersistence(err)
	}
	return &Disk{dir: dir, id: id}, nil
}

// Store persists content under a generated identifier, preserving the
// original extension. The identifier is the stored file name, so a file
// stored as "175442291523584.csv" is retrieved by exactly that name.
//
// Files with a disallowed extension are rejected before a single byte is
// read; oversized files are rejected without being persisted.
func (d *Disk) Store(ctx context.Context, content io.Reader, originalName string) (entity.UploadedFile, error) {
	ext := strings.ToLower(filepath.Ext(originalName))
	if _, ok := allowedExtensions[ext]; !ok {
		return entity.UploadedFile{}, pkgerror.NewUnsupportedType(
			fmt.Sprintf("unsupported file type %q: expected .xlsx, .xls or .csv", ext))
	}

	data, err := io.ReadAll(io.LimitReader(content, MaxUploadBytes+1))
	if err != nil {
		return entity.UploadedFile{}, pkgerror.NewServer(err)
	}
	if len(data) > MaxUploadBytes {
		return entity.UploadedFile{}, pkgerror.NewUnsupportedType(
			fmt.Sprintf("file exceeds the %d MiB upload limit", MaxUploadBytes>>20))
	}

	id := strconv.FormatInt(d.id.Generate(), 10) + ext
	path := filepath.Join(d.dir, id)

	if err := os.WriteFile(path, data, 0o640); err != nil {
		return entity.UploadedFile{}, pkgerror.NewPersistence(err)
	}

	return entity.UploadedFile{
		ID:           id,
		OriginalName: originalName,
		Path:         path,
		Ext:          ext,
	}, nil
}

// Open returns a reader over the stored file named name, plus its size.
func (d *Disk) Open(ctx context.Context, name string) (io.ReadCloser, int64, error) {
	path, err := d.Resolve(name)
	if err != nil {
		return nil, 0, err
	}

	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, 0, pkgerror.NewBusiness(fmt.Sprintf("file %q not found", name), pkgerror.CodeNotFound)
		}
		return nil, 0, pkgerror.NewServer(err)
	}

	info, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, 0, pkgerror.NewServer(err)
	}

	return file, info.Size(), nil
}

// Resolve validates a stored-file name and returns its absolute path inside
// the storage area. Names that could escape the directory are rejected.
func (d *Disk) Resolve(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" || strings.ContainsAny(name, `/\`) || strings.Contains(name, "..") {
		return "", pkgerror.NewInvalidInput(fmt.Errorf("invalid file name %q", name))
	}
	return filepath.Join(d.dir, name), nil
}
