package tabular

import (
	"encoding/csv"
	"errors"
	"io"
	"os"
	"strings"
)

// readCSV parses a comma-separated file. The first non-blank record is the
// header row (values trimmed); blank records are discarded. A negative limit
// reads every data row.
//
// Quoted fields and embedded newlines are handled by encoding/csv. Earlier
// revisions split lines by hand and documented quoting as a known gap; the
// header-row and preview-cap contracts are unchanged.
func readCSV(path string, limit int) ([]string, []map[string]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, nil, unreadable(err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	var headers []string
	rows := make([]map[string]string, 0)

	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, nil, unreadable(err)
		}

		if isBlankRecord(record) {
			continue
		}

		if headers == nil {
			headers = make([]string, len(record))
			for i, cell := range record {
				headers[i] = strings.TrimSpace(cell)
			}
			continue
		}

		if limit >= 0 && len(rows) >= limit {
			break
		}

		rows = append(rows, rowToMap(headers, record))
	}

	if headers == nil {
		headers = []string{}
	}

	return headers, rows, nil
}
