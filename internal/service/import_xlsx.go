package service

import (
	"errors"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ── workbook reading ──
//
// Every bulk importer reads the first worksheet of an uploaded .xlsx file.
// Importers see raw string cells and apply their own column rules.

var ErrImportInvalidFile = errors.New("could not read workbook")

// readWorkbookRows returns the rows of the first worksheet, header row
// included. Cell values come back as strings exactly as excelize renders
// them.
func readWorkbookRows(r io.Reader) ([][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, ErrImportInvalidFile
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrImportInvalidFile
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, ErrImportInvalidFile
	}
	return rows, nil
}

// cellAt returns the trimmed cell at idx, tolerating short rows.
func cellAt(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// normalizeHeader lowercases a header cell and joins its words with
// underscores, so "Task Name", "task name" and "task_name" all key the same
// column.
func normalizeHeader(h string) string {
	return strings.Join(strings.Fields(strings.ToLower(strings.TrimSpace(h))), "_")
}

// headerIndex maps normalized header names to their column positions.
func headerIndex(header []string) map[string]int {
	idx := make(map[string]int, len(header))
	for i, h := range header {
		if key := normalizeHeader(h); key != "" {
			if _, seen := idx[key]; !seen {
				idx[key] = i
			}
		}
	}
	return idx
}
