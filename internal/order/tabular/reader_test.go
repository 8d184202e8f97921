package tabular

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/jk0601/agorder/internal/order/entity"
	"github.com/jk0601/agorder/internal/pkg/pkgerror"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "orders.csv")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write csv: %v", err)
	}
	return path
}

func TestReadPreviewCSV(t *testing.T) {
	t.Parallel()

	path := writeCSV(t, "id,qty\n1,5\n2,7\n")

	preview, err := ReadPreview(path, ".csv")
	if err != nil {
		t.Fatalf("ReadPreview() err = %v", err)
	}

	if !reflect.DeepEqual(preview.Headers, []string{"id", "qty"}) {
		t.Fatalf("headers = %#v", preview.Headers)
	}
	want := []map[string]string{
		{"id": "1", "qty": "5"},
		{"id": "2", "qty": "7"},
	}
	if !reflect.DeepEqual(preview.Rows, want) {
		t.Fatalf("rows = %#v", preview.Rows)
	}
	if preview.TotalRows != 2 {
		t.Fatalf("total rows = %d, want 2", preview.TotalRows)
	}
}

func TestReadPreviewCSVSkipsBlankLinesAndTrimsHeaders(t *testing.T) {
	t.Parallel()

	path := writeCSV(t, "\n\n id , qty \nA,1\n\nB,2\n")

	preview, err := ReadPreview(path, ".csv")
	if err != nil {
		t.Fatalf("ReadPreview() err = %v", err)
	}

	if !reflect.DeepEqual(preview.Headers, []string{"id", "qty"}) {
		t.Fatalf("headers = %#v", preview.Headers)
	}
	if len(preview.Rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(preview.Rows))
	}
}

func TestReadPreviewCSVCapsRows(t *testing.T) {
	t.Parallel()

	var sb strings.Builder
	sb.WriteString("id,qty\n")
	for i := 0; i < 50; i++ {
		fmt.Fprintf(&sb, "%d,%d\n", i, i*2)
	}

	preview, err := ReadPreview(writeCSV(t, sb.String()), ".csv")
	if err != nil {
		t.Fatalf("ReadPreview() err = %v", err)
	}

	if len(preview.Rows) != entity.PreviewRowLimit {
		t.Fatalf("expected %d rows, got %d", entity.PreviewRowLimit, len(preview.Rows))
	}
}

func TestReadPreviewCSVShortRowsGetEmptyCells(t *testing.T) {
	t.Parallel()

	preview, err := ReadPreview(writeCSV(t, "id,qty,price\n1,5\n"), ".csv")
	if err != nil {
		t.Fatalf("ReadPreview() err = %v", err)
	}

	row := preview.Rows[0]
	if len(row) != len(preview.Headers) {
		t.Fatalf("row key count = %d, want %d", len(row), len(preview.Headers))
	}
	if row["price"] != "" {
		t.Fatalf("expected empty price, got %q", row["price"])
	}
}

func TestReadPreviewCSVQuotedFields(t *testing.T) {
	t.Parallel()

	preview, err := ReadPreview(writeCSV(t, "id,item\n1,\"widget, large\"\n"), ".csv")
	if err != nil {
		t.Fatalf("ReadPreview() err = %v", err)
	}

	if got := preview.Rows[0]["item"]; got != "widget, large" {
		t.Fatalf("quoted field = %q", got)
	}
}

func TestReadAllCSVIsNotCapped(t *testing.T) {
	t.Parallel()

	var sb strings.Builder
	sb.WriteString("id\n")
	for i := 0; i < 30; i++ {
		fmt.Fprintf(&sb, "%d\n", i)
	}

	_, rows, err := ReadAll(writeCSV(t, sb.String()), ".csv")
	if err != nil {
		t.Fatalf("ReadAll() err = %v", err)
	}
	if len(rows) != 30 {
		t.Fatalf("expected 30 rows, got %d", len(rows))
	}
}

func TestReadPreviewExcelSyntheticHeaders(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "orders.xlsx")

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	if err := f.SetSheetRow(sheet, "A1", &[]any{"id", "", "price", ""}); err != nil {
		t.Fatalf("set header row: %v", err)
	}
	if err := f.SetSheetRow(sheet, "A2", &[]any{"1", "x", "9.50", "y"}); err != nil {
		t.Fatalf("set data row: %v", err)
	}
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("save workbook: %v", err)
	}

	preview, err := ReadPreview(path, ".xlsx")
	if err != nil {
		t.Fatalf("ReadPreview() err = %v", err)
	}

	want := []string{"id", "Column2", "price", "Column4"}
	if !reflect.DeepEqual(preview.Headers, want) {
		t.Fatalf("headers = %#v, want %#v", preview.Headers, want)
	}
	if got := preview.Rows[0]["Column2"]; got != "x" {
		t.Fatalf("synthetic column value = %q", got)
	}
}

func TestReadPreviewExcelEmptyWorkbook(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "empty.xlsx")
	f := excelize.NewFile()
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("save workbook: %v", err)
	}

	preview, err := ReadPreview(path, ".xlsx")
	if err != nil {
		t.Fatalf("ReadPreview() err = %v", err)
	}
	if len(preview.Headers) != 0 || len(preview.Rows) != 0 {
		t.Fatalf("expected empty preview, got %#v", preview)
	}
}

func TestReadPreviewUnreadableFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "broken.xlsx")
	if err := os.WriteFile(path, []byte("not a zip archive"), 0o600); err != nil {
		t.Fatalf("write file: %v", err)
	}

	_, err := ReadPreview(path, ".xlsx")
	var perr *pkgerror.Error
	if !errors.As(err, &perr) {
		t.Fatalf("expected pkgerror.Error, got %T", err)
	}
	if perr.Code() != pkgerror.CodeUnreadableFile {
		t.Fatalf("code = %v, want %v", perr.Code(), pkgerror.CodeUnreadableFile)
	}
}

func TestReadPreviewUnsupportedExtension(t *testing.T) {
	t.Parallel()

	_, err := ReadPreview("whatever.pdf", ".pdf")
	var perr *pkgerror.Error
	if !errors.As(err, &perr) {
		t.Fatalf("expected pkgerror.Error, got %T", err)
	}
	if perr.Code() != pkgerror.CodeUnsupportedType {
		t.Fatalf("code = %v, want %v", perr.Code(), pkgerror.CodeUnsupportedType)
	}
}
