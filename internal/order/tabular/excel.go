package tabular

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/jk0601/agorder/internal/pkg/pkgerror"
)

// readExcel parses the first worksheet of an Excel workbook. Row 1 is the
// header row; a blank header cell at position k becomes the synthetic label
// "Column<k>" (1-based). A negative limit reads every data row.
func readExcel(path string, limit int) ([]string, []map[string]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, nil, unreadable(err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			slog.Warn("failed to close workbook", "path", path, "error", cerr)
		}
	}()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, nil, unreadable(fmt.Errorf("workbook has no sheets"))
	}

	all, err := f.GetRows(sheet)
	if err != nil {
		return nil, nil, unreadable(err)
	}

	if len(all) == 0 {
		return []string{}, []map[string]string{}, nil
	}

	headers := make([]string, len(all[0]))
	for i, cell := range all[0] {
		if strings.TrimSpace(cell) == "" {
			headers[i] = fmt.Sprintf("Column%d", i+1)
		} else {
			headers[i] = strings.TrimSpace(cell)
		}
	}

	rows := make([]map[string]string, 0, len(all)-1)
	for _, cells := range all[1:] {
		if limit >= 0 && len(rows) >= limit {
			break
		}
		rows = append(rows, rowToMap(headers, cells))
	}

	return headers, rows, nil
}

func unreadable(err error) error {
	return pkgerror.NewUnreadableFile(err)
}
