package recipient

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dmitrymomot/npsmail/pkg/survey"
)

// CSV column names. Column order in the file does not matter.
const (
	ColumnID          = "customer_id"
	ColumnName        = "name"
	ColumnEmail       = "email"
	ColumnInstallDate = "install_date"
)

var requiredColumns = []string{ColumnID, ColumnEmail}

// LoadCSV reads recipients from CSV with a header row.
// customer_id and email are required; name and install_date are optional.
// Blank lines are skipped and cells are trimmed.
func LoadCSV(r io.Reader) ([]survey.Recipient, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: empty file", ErrInvalidCSV)
	}
	if err != nil {
		return nil, errors.Join(ErrInvalidCSV, err)
	}

	index := make(map[string]int, len(header))
	for i, col := range header {
		col = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(col, "\ufeff")))
		index[col] = i
	}
	for _, col := range requiredColumns {
		if _, ok := index[col]; !ok {
			return nil, fmt.Errorf("%w: missing column %q", ErrInvalidCSV, col)
		}
	}

	cell := func(row []string, col string) string {
		i, ok := index[col]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	var out []survey.Recipient
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, errors.Join(ErrInvalidCSV, err)
		}

		rec := survey.Recipient{
			ID:          cell(row, ColumnID),
			Name:        cell(row, ColumnName),
			Email:       cell(row, ColumnEmail),
			InstallDate: cell(row, ColumnInstallDate),
		}
		if rec.ID == "" || rec.Email == "" {
			line, _ := reader.FieldPos(0)
			return nil, fmt.Errorf("%w: line %d: customer_id and email are required", ErrInvalidCSV, line)
		}
		out = append(out, rec)
	}

	return out, nil
}

// LoadCSVFile reads recipients from the CSV file at path.
func LoadCSVFile(path string) ([]survey.Recipient, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return LoadCSV(f)
}
