// Package tabular reads uploaded spreadsheet files (CSV or Excel) into a
// header list plus header-keyed data rows.
//
// It is the leaf of the conversion pipeline: it only reads files, never
// writes, and knows nothing about mappings or templates.
package tabular

import (
	"fmt"
	"strings"

	"github.com/jk0601/agorder/internal/order/entity"
	"github.com/jk0601/agorder/internal/pkg/pkgerror"
)

// ReadPreview reads the headers and at most entity.PreviewRowLimit data rows
// of the file at path. The extension decides the parser.
func ReadPreview(path, ext string) (entity.Preview, error) {
	headers, rows, err := read(path, ext, entity.PreviewRowLimit)
	if err != nil {
		return entity.Preview{}, err
	}

	return entity.Preview{
		Headers:   headers,
		Rows:      rows,
		TotalRows: len(rows),
	}, nil
}

// ReadAll reads the headers followed by every data row of the file at path.
func ReadAll(path, ext string) ([]string, []map[string]string, error) {
	return read(path, ext, -1)
}

func read(path, ext string, limit int) ([]string, []map[string]string, error) {
	switch strings.ToLower(ext) {
	case ".csv":
		return readCSV(path, limit)
	case ".xlsx", ".xls":
		return readExcel(path, limit)
	default:
		return nil, nil, pkgerror.NewUnsupportedType(fmt.Sprintf("unsupported file extension %q", ext))
	}
}

// rowToMap builds a header-keyed row. Cells beyond the header width are
// dropped and missing trailing cells default to the empty string, so every
// row carries exactly the header's key set.
func rowToMap(headers, cells []string) map[string]string {
	row := make(map[string]string, len(headers))
	for i, header := range headers {
		if i < len(cells) {
			row[header] = cells[i]
		} else {
			row[header] = ""
		}
	}
	return row
}

func isBlankRecord(cells []string) bool {
	for _, cell := range cells {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
