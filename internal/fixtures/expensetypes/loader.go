// Package expensetypes ships the default expense types offered to new
// installations.
package expensetypes

import (
	_ "embed"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

//go:embed expense_types.csv
var defaultCSV string

// Load reads expense type names from the CSV at path, or from the embedded
// defaults when path is empty. Blank and repeated names are skipped.
func Load(path string) ([]string, error) {
	if path == "" {
		return parse(strings.NewReader(defaultCSV))
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = f.Close() }()
	return parse(f)
}

func parse(r io.Reader) ([]string, error) {
	csvReader := csv.NewReader(r)
	csvReader.FieldsPerRecord = -1
	records, err := csvReader.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 || len(records[0]) == 0 || strings.TrimSpace(strings.ToLower(records[0][0])) != "name" {
		return nil, errors.New("invalid CSV format: expected a name header")
	}

	seen := make(map[string]struct{}, len(records))
	names := make([]string, 0, len(records)-1)
	for _, rec := range records[1:] {
		if len(rec) == 0 {
			continue
		}
		name := strings.TrimSpace(rec[0])
		if name == "" {
			continue
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	return names, nil
}
