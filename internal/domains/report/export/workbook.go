// Package export renders report views as xlsx workbooks.
//
// Two layouts are supported. Row-object sheets take their header row from
// the column names and fill one row per record. Grid sheets are written
// row by row as given, which suits reports made of several sections.
package export

import (
	"fmt"

	"hms/shared/constant"

	"github.com/xuri/excelize/v2"
)

const (
	defaultColumnWidth = 18
	dash               = "-"
)

type File struct {
	Name    string
	Content []byte
}

func (File) ContentType() string {
	return constant.ContentTypeXLSX
}

// Record is one row of a row-object sheet keyed by column name. Missing
// columns are left blank.
type Record map[string]any

func writeRecords(name, sheet string, columns []string, records []Record) (File, error) {
	grid := make([][]any, 0, len(records)+1)

	header := make([]any, len(columns))
	for i, column := range columns {
		header[i] = column
	}

	grid = append(grid, header)

	for _, record := range records {
		row := make([]any, len(columns))
		for i, column := range columns {
			row[i] = record[column]
		}

		grid = append(grid, row)
	}

	return writeGrid(name, sheet, grid, len(columns), 1)
}

// writeGrid writes rows as given. Rows listed in boldRows (1-based) get a bold font.
func writeGrid(name, sheet string, grid [][]any, width int, boldRows ...int) (file File, err error) {
	f := excelize.NewFile()
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close workbook: %w", cerr)
		}
	}()

	if err = f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		return file, fmt.Errorf("failed to name sheet: %w", err)
	}

	for i, row := range grid {
		if len(row) == 0 {
			continue
		}

		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return file, fmt.Errorf("failed to address row %d: %w", i+1, err)
		}

		if err = f.SetSheetRow(sheet, cell, &row); err != nil {
			return file, fmt.Errorf("failed to write row %d: %w", i+1, err)
		}
	}

	if width > 0 {
		last, err := excelize.ColumnNumberToName(width)
		if err != nil {
			return file, fmt.Errorf("failed to address column %d: %w", width, err)
		}

		if err = f.SetColWidth(sheet, "A", last, defaultColumnWidth); err != nil {
			return file, fmt.Errorf("failed to size columns: %w", err)
		}
	}

	if len(boldRows) > 0 {
		style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
		if err != nil {
			return file, fmt.Errorf("failed to create header style: %w", err)
		}

		for _, row := range boldRows {
			if err = f.SetRowStyle(sheet, row, row, style); err != nil {
				return file, fmt.Errorf("failed to style row %d: %w", row, err)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return file, fmt.Errorf("failed to write workbook: %w", err)
	}

	return File{Name: name, Content: buf.Bytes()}, nil
}

func orDash(value string) string {
	if value == "" {
		return dash
	}

	return value
}
