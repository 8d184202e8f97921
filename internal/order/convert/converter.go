// Package convert applies a mapping definition to a full source file and
// writes the mapped values into a copy of an output template.
package convert

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/jk0601/agorder/internal/order/entity"
	"github.com/jk0601/agorder/internal/order/tabular"
	"github.com/jk0601/agorder/internal/pkg/pkgerror"
)

// Convert reads every row of the source file, maps it through mapping's
// rules, and saves the populated template copy at outputPath.
//
// A row that fails a required rule is recorded in the error list with its
// 1-based data-row index and skipped; it never aborts the batch. A missing
// template or unopenable source is batch-fatal with no partial output. The
// template file on disk is never mutated.
func Convert(sourcePath, ext, templatePath, outputPath string, mapping entity.MappingDefinition) (entity.ConversionResult, error) {
	if _, err := os.Stat(sourcePath); err != nil {
		return entity.ConversionResult{}, pkgerror.NewSourceUnreadable(err)
	}

	_, rows, err := tabular.ReadAll(sourcePath, ext)
	if err != nil {
		return entity.ConversionResult{}, pkgerror.NewSourceUnreadable(err)
	}

	tpl, err := openTemplate(templatePath)
	if err != nil {
		return entity.ConversionResult{}, err
	}
	defer func() {
		if cerr := tpl.file.Close(); cerr != nil {
			slog.Warn("failed to close template workbook", "path", templatePath, "error", cerr)
		}
	}()

	resolved, err := tpl.resolveRules(mapping.Rules)
	if err != nil {
		return entity.ConversionResult{}, err
	}

	result := entity.ConversionResult{FileName: filepath.Base(outputPath)}

	for i, row := range rows {
		values, rowErr := mapRow(row, resolved, i+1)
		if rowErr != nil {
			result.RowErrors = append(result.RowErrors, *rowErr)
			continue
		}

		outRow := result.ProcessedRows + 2 // row 1 holds the template headers
		for _, value := range values {
			cell, err := excelize.CoordinatesToCellName(value.col, outRow)
			if err != nil {
				return entity.ConversionResult{}, pkgerror.NewServer(err)
			}
			if err := tpl.file.SetCellValue(tpl.sheet, cell, value.text); err != nil {
				return entity.ConversionResult{}, pkgerror.NewServer(err)
			}
		}
		result.ProcessedRows++
	}

	if err := tpl.file.SaveAs(outputPath); err != nil {
		return entity.ConversionResult{}, pkgerror.NewPersistence(err)
	}

	return result, nil
}

type resolvedRule struct {
	entity.FieldRule
	col int
}

type cellValue struct {
	col  int
	text string
}

// mapRow resolves every rule against one source row. It returns either the
// full set of cell writes for the row or a single row error; partial rows are
// never emitted.
func mapRow(row map[string]string, rules []resolvedRule, rowIndex int) ([]cellValue, *entity.RowError) {
	values := make([]cellValue, 0, len(rules))

	for _, rule := range rules {
		raw, ok := row[rule.Source]
		if rule.Required && (!ok || strings.TrimSpace(raw) == "") {
			return nil, &entity.RowError{
				Row:    rowIndex,
				Reason: fmt.Sprintf("missing required field %q", rule.Source),
			}
		}

		values = append(values, cellValue{col: rule.col, text: rule.Apply(raw)})
	}

	return values, nil
}
