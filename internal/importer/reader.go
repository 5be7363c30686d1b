package importer

import (
	"encoding/csv"
	"errors"
	"io"
	"strings"
)

// ErrNotTabular is returned when no CSV structure can be found in the
// input at all. It is the only failure an import surfaces to the caller;
// every row-level problem degrades to a skip count instead.
var ErrNotTabular = errors.New("input contains no tabular data")

// preambleScanLines bounds how far into a file the header search looks.
// Bank exports prepend a human-readable summary block of a few lines
// before the real header row.
const preambleScanLines = 15

// ReadRows tokenizes a CSV export into header-keyed rows, stripping any
// non-tabular preamble first. The header row is found by scanning the
// leading lines for one that starts with a date column.
func ReadRows(text string) ([]Row, error) {
	lines := strings.Split(text, "\n")
	start := 0
	for i := 0; i < len(lines) && i < preambleScanLines; i++ {
		ll := strings.ToLower(strings.ReplaceAll(lines[i], `"`, ""))
		if strings.HasPrefix(ll, "date,") &&
			(strings.Contains(ll, "description") || strings.Contains(ll, "action")) {
			start = i
			break
		}
	}

	reader := csv.NewReader(strings.NewReader(strings.Join(lines[start:], "\n")))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, ErrNotTabular
	}
	for i := range header {
		header[i] = strings.TrimSpace(strings.TrimPrefix(header[i], "\ufeff"))
	}

	var rows []Row
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// A single mangled line is a row-level problem, keep going.
			continue
		}
		if isBlankRecord(record) {
			continue
		}
		rows = append(rows, NewRow(header, record))
	}
	if len(rows) == 0 {
		return nil, ErrNotTabular
	}
	return rows, nil
}

func isBlankRecord(record []string) bool {
	for _, v := range record {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
