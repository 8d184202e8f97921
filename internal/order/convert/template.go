package convert

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/jk0601/agorder/internal/order/entity"
	"github.com/jk0601/agorder/internal/pkg/pkgerror"
)

// template is an open output workbook with its header row indexed by target
// field name.
type template struct {
	file    *excelize.File
	sheet   string
	columns map[string]int // lower-cased header -> 1-based column
	width   int
}

func openTemplate(path string) (*template, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, pkgerror.NewTemplateMissing(err)
		}
		return nil, pkgerror.NewServer(err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, pkgerror.NewTemplateMissing(err)
	}

	sheet := f.GetSheetName(0)
	if sheet == "" {
		f.Close()
		return nil, pkgerror.NewTemplateMissing(fmt.Errorf("template %s has no sheets", path))
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		f.Close()
		return nil, pkgerror.NewTemplateMissing(err)
	}

	columns := make(map[string]int)
	width := 0
	if len(rows) > 0 {
		width = len(rows[0])
		for i, header := range rows[0] {
			header = strings.ToLower(strings.TrimSpace(header))
			if header == "" {
				continue
			}
			if _, exists := columns[header]; !exists {
				columns[header] = i + 1
			}
		}
	}

	return &template{file: f, sheet: sheet, columns: columns, width: width}, nil
}

// resolveRules assigns each mapping rule the template column its target falls
// in. Targets the template does not carry are appended after the last header
// column, with the header cell written once.
func (t *template) resolveRules(rules []entity.FieldRule) ([]resolvedRule, error) {
	resolved := make([]resolvedRule, 0, len(rules))

	for _, rule := range rules {
		key := strings.ToLower(strings.TrimSpace(rule.Target))
		if key == "" {
			return nil, pkgerror.NewInvalidInput(fmt.Errorf("mapping rule for source %q has no target", rule.Source))
		}

		col, ok := t.columns[key]
		if !ok {
			t.width++
			col = t.width
			t.columns[key] = col

			cell, err := excelize.CoordinatesToCellName(col, 1)
			if err != nil {
				return nil, pkgerror.NewServer(err)
			}
			if err := t.file.SetCellValue(t.sheet, cell, rule.Target); err != nil {
				return nil, pkgerror.NewServer(err)
			}
		}

		resolved = append(resolved, resolvedRule{FieldRule: rule, col: col})
	}

	return resolved, nil
}
