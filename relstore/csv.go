package relstore

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
)

// readCSV parses helper,helped[,effect] rows, skipping the header row and
// blank lines.
func readCSV(src string, r io.Reader) (dataset, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	var ds dataset
	header := true
	num := 0
	for {
		cols, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return ds, &LoadError{Source: src, Record: num + 1, Err: fmt.Errorf("%w: %v", ErrUnreadable, err)}
		}
		if header {
			header = false
			continue
		}
		if blank(cols) {
			continue
		}
		num++
		rec, err := rowRecord(src, num, cols)
		if err != nil {
			return ds, err
		}
		ds.records = append(ds.records, rec)
	}

	return ds, nil
}
