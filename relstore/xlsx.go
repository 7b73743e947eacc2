package relstore

import (
	"errors"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// readXLSX reads helper,helped[,effect] rows from one sheet, skipping the
// header row and blank rows. sheet == "" selects the first sheet.
func readXLSX(src string, r io.Reader, sheet string) (dataset, error) {
	var ds dataset

	f, err := excelize.OpenReader(r)
	if err != nil {
		return ds, &LoadError{Source: src, Err: fmt.Errorf("%w: opening XLSX: %v", ErrUnreadable, err)}
	}
	defer f.Close()

	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return ds, &LoadError{Source: src, Err: fmt.Errorf("%w: workbook has no sheets", ErrUnreadable)}
		}
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return ds, &LoadError{Source: src, Field: sheet, Err: fmt.Errorf("%w: %v", ErrUnreadable, err)}
	}
	if len(rows) == 0 {
		return ds, &LoadError{Source: src, Field: sheet, Err: errors.Join(ErrUnreadable, errors.New("sheet is empty"))}
	}

	num := 0
	for _, row := range rows[1:] {
		if blank(row) {
			continue
		}
		num++
		rec, err := rowRecord(src, num, row)
		if err != nil {
			return ds, err
		}
		ds.records = append(ds.records, rec)
	}

	return ds, nil
}
