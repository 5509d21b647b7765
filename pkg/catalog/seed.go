package catalog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
	"go.uber.org/multierr"

	"droscher.com/BeerBase/pkg/model"
)

const xlsxExtension = ".xlsx"

// RowError describes a seed row that could not be turned into a beer. Row is the line of the CSV file
// or the row of the sheet where the record starts, counting from 1 with the header.
type RowError struct {
	Row int
	Err error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("row %d: %v", e.Row, e.Err)
}

func (e *RowError) Unwrap() error {
	return e.Err
}

// rowSource yields raw seed rows, header included, with the line each row starts on.
type rowSource interface {
	Next() ([]string, int, error)
}

type csvSource struct {
	reader *csv.Reader
}

func newCSVSource(r io.Reader) *csvSource {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	return &csvSource{reader: reader}
}

func (s *csvSource) Next() ([]string, int, error) {
	row, err := s.reader.Read()
	if err != nil {
		var parseErr *csv.ParseError
		if errors.As(err, &parseErr) {
			return nil, parseErr.StartLine, err
		}

		return nil, 0, err
	}

	line, _ := s.reader.FieldPos(0)

	return row, line, nil
}

type sheetSource struct {
	rows [][]string
	next int
}

func (s *sheetSource) Next() ([]string, int, error) {
	if s.next >= len(s.rows) {
		return nil, 0, io.EOF
	}

	row := s.rows[s.next]
	s.next++

	return row, s.next, nil
}

func openSheetSource(path string) (*sheetSource, error) {
	workbook, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrIO, path, err)
	}
	defer workbook.Close()

	sheets := workbook.GetSheetList()
	if len(sheets) == 0 {
		return &sheetSource{}, nil
	}

	rows, err := workbook.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrIO, path, err)
	}

	return &sheetSource{rows: rows}, nil
}

func isSpreadsheet(path string) bool {
	return strings.EqualFold(filepath.Ext(path), xlsxExtension)
}

func openCSV(path string) (*os.File, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrIO, path, err)
	}

	return file, nil
}

// parseRows reads every data row of the source. Rows that fail are collected instead of stopping
// the scan so the caller sees all of them at once.
func parseRows(source rowSource) ([]model.Beer, []*RowError, error) {
	var (
		beers  []model.Beer
		failed []*RowError
	)

	if _, _, err := source.Next(); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil, nil
		}

		return nil, nil, fmt.Errorf("%w: header: %w", ErrIO, err)
	}

	for {
		row, line, err := source.Next()
		if errors.Is(err, io.EOF) {
			break
		}

		var parseErr *csv.ParseError

		switch {
		case errors.As(err, &parseErr):
			failed = append(failed, &RowError{Row: line, Err: fmt.Errorf("%w: %w", ErrParse, err)})

			continue
		case err != nil:
			return nil, nil, fmt.Errorf("%w: %w", ErrIO, err)
		}

		if isBlank(row) {
			continue
		}

		beer, err := parseRow(row)
		if err != nil {
			failed = append(failed, &RowError{Row: line, Err: err})

			continue
		}

		beers = append(beers, beer)
	}

	return beers, failed, nil
}

func parseRow(row []string) (model.Beer, error) {
	if len(row) > len(model.Fields) {
		return model.Beer{}, fmt.Errorf("%w: %d fields, want at most %d", ErrParse, len(row), len(model.Fields))
	}

	record := make(model.Record, len(model.Fields))

	for index, field := range model.Fields {
		if index >= len(row) {
			break
		}

		value, err := coerce(field, row[index])
		if err != nil {
			return model.Beer{}, fmt.Errorf("%w: %s: %w", ErrParse, field, err)
		}

		record[field] = value
	}

	beer, err := model.BeerFromRecord(record)
	if err != nil {
		return model.Beer{}, fmt.Errorf("%w: %w", ErrParse, err)
	}

	return beer, nil
}

func coerce(field, raw string) (any, error) {
	trimmed := strings.TrimSpace(raw)

	switch field {
	case model.FieldABV, model.FieldIBU:
		if trimmed == "" {
			return nil, nil
		}

		return parseFloat(trimmed)
	case model.FieldSize:
		return parseFloat(trimmed)
	case model.FieldBeerID, model.FieldBreweryID:
		return strconv.ParseInt(trimmed, 10, 64)
	default:
		return raw, nil
	}
}

func parseFloat(raw string) (float64, error) {
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, err
	}

	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, fmt.Errorf("%q is not a finite number", raw)
	}

	return value, nil
}

func isBlank(row []string) bool {
	for _, field := range row {
		if strings.TrimSpace(field) != "" {
			return false
		}
	}

	return true
}

func combineRowErrors(failed []*RowError) error {
	var combined error

	for _, rowErr := range failed {
		combined = multierr.Append(combined, rowErr)
	}

	return combined
}
