package report

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/bitmark-inc/covid-stats-api/schema"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ParseCSV converts a daily report into rows keyed by the header line
func ParseCSV(raw []byte) ([]schema.ReportRow, error) {
	r := csv.NewReader(bytes.NewReader(bytes.TrimPrefix(raw, utf8BOM)))
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	header, err := r.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("%w: empty document", ErrParseFailed)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrParseFailed, err)
	}

	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	rows := make([]schema.ReportRow, 0)
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrParseFailed, err)
		}

		row := make(schema.ReportRow, len(header))
		for i, name := range header {
			if i < len(record) {
				row[name] = record[i]
			} else {
				row[name] = ""
			}
		}
		rows = append(rows, row)
	}

	return rows, nil
}
