package model

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/extrame/xls"
	"github.com/xuri/excelize/v2"
)

const (
	extXLS = ".xls"

	templateSheet = "Template"
	xlsCharset    = "utf-8"
)

var (
	ErrNoSheet          = errors.New("엑셀 파일에 시트가 없습니다.")
	ErrUnsupportedSheet = errors.New("xlsx 또는 xls 파일만 업로드할 수 있습니다.")
)

// ReadFirstSheet returns the cell text of the first worksheet. Legacy .xls files go through
// extrame/xls, everything else through excelize.
func ReadFirstSheet(fileName string, data []byte) ([][]string, error) {
	switch strings.ToLower(filepath.Ext(fileName)) {
	case extXLS:
		return readXLS(data)
	case ".xlsx", ".xlsm":
		return readXLSX(data)
	default:
		return nil, ErrUnsupportedSheet
	}
}

func readXLSX(data []byte) ([][]string, error) {
	file, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer func() { _ = file.Close() }()

	sheet := file.GetSheetName(0)
	if sheet == "" {
		return nil, ErrNoSheet
	}

	rows, err := file.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read rows: %w", err)
	}

	return rows, nil
}

func readXLS(data []byte) ([][]string, error) {
	workbook, err := xls.OpenReader(bytes.NewReader(data), xlsCharset)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}

	sheet := workbook.GetSheet(0)
	if sheet == nil {
		return nil, ErrNoSheet
	}

	rows := make([][]string, 0, int(sheet.MaxRow)+1)

	for i := 0; i <= int(sheet.MaxRow); i++ {
		row := sheet.Row(i)
		if row == nil {
			rows = append(rows, nil)

			continue
		}

		cells := make([]string, 0, row.LastCol())
		for col := range row.LastCol() {
			cells = append(cells, row.Col(col))
		}

		rows = append(rows, cells)
	}

	return rows, nil
}

// Template builds an empty workbook carrying only the import header.
func Template() ([]byte, error) {
	file := excelize.NewFile()
	defer func() { _ = file.Close() }()

	if err := file.SetSheetName(file.GetSheetName(0), templateSheet); err != nil {
		return nil, fmt.Errorf("failed to name template sheet: %w", err)
	}

	style, err := file.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E6F3FF"}, Pattern: 1},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	if err = file.SetSheetRow(templateSheet, "A1", &Header); err != nil {
		return nil, fmt.Errorf("failed to write header: %w", err)
	}

	last, err := excelize.CoordinatesToCellName(len(Header), 1)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve header range: %w", err)
	}

	if err = file.SetCellStyle(templateSheet, "A1", last, style); err != nil {
		return nil, fmt.Errorf("failed to style header: %w", err)
	}

	buf, err := file.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write template: %w", err)
	}

	return buf.Bytes(), nil
}
