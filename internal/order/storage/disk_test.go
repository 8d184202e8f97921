package storage

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/jk0601/agorder/internal/pkg/pkgerror"
	"github.com/jk0601/agorder/internal/pkg/pkguid"
)

func newTestDisk(t *testing.T) *Disk {
	t.Helper()
	gen, err := pkguid.NewSnowflake()
	if err != nil {
		t.Fatalf("NewSnowflake() err = %v", err)
	}
	disk, err := NewDisk(t.TempDir(), gen)
	if err != nil {
		t.Fatalf("NewDisk() err = %v", err)
	}
	return disk
}

func TestDiskStoreAndOpen(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	disk := newTestDisk(t)

	uploaded, err := disk.Store(ctx, strings.NewReader("id,qty\n1,5\n"), "orders.csv")
	if err != nil {
		t.Fatalf("Store() err = %v", err)
	}

	if uploaded.Ext != ".csv" {
		t.Fatalf("ext = %q, want .csv", uploaded.Ext)
	}
	if !strings.HasSuffix(uploaded.ID, ".csv") {
		t.Fatalf("identifier %q should preserve the extension", uploaded.ID)
	}
	if uploaded.OriginalName != "orders.csv" {
		t.Fatalf("original name = %q", uploaded.OriginalName)
	}

	reader, size, err := disk.Open(ctx, uploaded.ID)
	if err != nil {
		t.Fatalf("Open() err = %v", err)
	}
	defer reader.Close()

	data, err := io.ReadAll(reader)
	if err != nil {
		t.Fatalf("read stored file: %v", err)
	}
	if string(data) != "id,qty\n1,5\n" {
		t.Fatalf("stored content = %q", data)
	}
	if size != int64(len(data)) {
		t.Fatalf("size = %d, want %d", size, len(data))
	}
}

func TestDiskStoreIdentifiersAreUnique(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	disk := newTestDisk(t)

	first, err := disk.Store(ctx, strings.NewReader("a\n"), "a.csv")
	if err != nil {
		t.Fatalf("Store(first) err = %v", err)
	}
	second, err := disk.Store(ctx, strings.NewReader("b\n"), "b.csv")
	if err != nil {
		t.Fatalf("Store(second) err = %v", err)
	}

	if first.ID == second.ID {
		t.Fatalf("expected distinct identifiers, both were %q", first.ID)
	}
}

func TestDiskStoreRejectsDisallowedExtension(t *testing.T) {
	t.Parallel()

	disk := newTestDisk(t)

	_, err := disk.Store(context.Background(), strings.NewReader("%PDF-1.7"), "report.pdf")
	assertCode(t, err, pkgerror.CodeUnsupportedType)
}

func TestDiskStoreRejectsOversizedFile(t *testing.T) {
	t.Parallel()

	disk := newTestDisk(t)

	big := bytes.NewReader(make([]byte, MaxUploadBytes+1))
	_, err := disk.Store(context.Background(), big, "huge.csv")
	assertCode(t, err, pkgerror.CodeUnsupportedType)

	var perr *pkgerror.Error
	errors.As(err, &perr)
	if !strings.Contains(perr.Msg(), "10 MiB") {
		t.Fatalf("expected size-specific message, got %q", perr.Msg())
	}
}

func TestDiskOpenNotFound(t *testing.T) {
	t.Parallel()

	disk := newTestDisk(t)

	_, _, err := disk.Open(context.Background(), "never-stored.xlsx")
	assertCode(t, err, pkgerror.CodeNotFound)
}

func TestDiskResolveRejectsTraversal(t *testing.T) {
	t.Parallel()

	disk := newTestDisk(t)

	for _, name := range []string{"", "../etc/passwd", "a/b.csv", `a\b.csv`} {
		if _, err := disk.Resolve(name); err == nil {
			t.Fatalf("Resolve(%q) expected error", name)
		}
	}
}

func assertCode(t *testing.T, err error, want pkgerror.Code) {
	t.Helper()

	var perr *pkgerror.Error
	if !errors.As(err, &perr) {
		t.Fatalf("expected pkgerror.Error, got %T (%v)", err, err)
	}
	if perr.Code() != want {
		t.Fatalf("code = %v, want %v", perr.Code(), want)
	}
}
