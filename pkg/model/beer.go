package model

import (
	"errors"
	"fmt"
	"math"
)

const (
	FieldABV       = "abv"
	FieldIBU       = "ibu"
	FieldBeerID    = "beer_id"
	FieldName      = "name"
	FieldStyle     = "style"
	FieldBreweryID = "brewery_id"
	FieldSize      = "size"
)

// Fields lists the record keys in seed file column order.
var Fields = []string{FieldABV, FieldIBU, FieldBeerID, FieldName, FieldStyle, FieldBreweryID, FieldSize}

var ErrInvalidRecord = errors.New("invalid beer record")

type Beer struct {
	BeerID    int64    `gorm:"primaryKey;autoIncrement:false"`
	Name      string   `gorm:"not null"`
	Style     string   `gorm:"not null"`
	BreweryID int64    `gorm:"not null"`
	Size      float64  `gorm:"not null"`
	ABV       *float64 `gorm:"column:abv"`
	IBU       *float64 `gorm:"column:ibu"`
}

func (Beer) TableName() string {
	return "beers"
}

// Record is the flat representation of a beer handed to the API layer.
type Record map[string]any

func (b Beer) ToRecord() Record {
	record := Record{
		FieldABV:       nil,
		FieldIBU:       nil,
		FieldBeerID:    b.BeerID,
		FieldName:      b.Name,
		FieldStyle:     b.Style,
		FieldBreweryID: b.BreweryID,
		FieldSize:      b.Size,
	}

	if b.ABV != nil {
		record[FieldABV] = *b.ABV
	}

	if b.IBU != nil {
		record[FieldIBU] = *b.IBU
	}

	return record
}

// BeerFromRecord is the inverse of ToRecord. Every key except abv and ibu is required.
func BeerFromRecord(record Record) (Beer, error) {
	var (
		beer Beer
		err  error
	)

	if beer.ABV, err = optionalFloat(record, FieldABV); err != nil {
		return Beer{}, err
	}

	if beer.IBU, err = optionalFloat(record, FieldIBU); err != nil {
		return Beer{}, err
	}

	if beer.BeerID, err = requiredInt(record, FieldBeerID); err != nil {
		return Beer{}, err
	}

	if beer.Name, err = requiredString(record, FieldName); err != nil {
		return Beer{}, err
	}

	if beer.Style, err = requiredString(record, FieldStyle); err != nil {
		return Beer{}, err
	}

	if beer.BreweryID, err = requiredInt(record, FieldBreweryID); err != nil {
		return Beer{}, err
	}

	size, err := optionalFloat(record, FieldSize)
	if err != nil {
		return Beer{}, err
	}

	if size == nil {
		return Beer{}, fmt.Errorf("%w: %s is required", ErrInvalidRecord, FieldSize)
	}

	beer.Size = *size

	return beer, nil
}

func optionalFloat(record Record, field string) (*float64, error) {
	value, ok := record[field]
	if !ok || value == nil {
		return nil, nil //nolint:nilnil // absent is a valid value
	}

	var number float64

	switch typed := value.(type) {
	case float64:
		number = typed
	case *float64:
		if typed == nil {
			return nil, nil //nolint:nilnil // absent is a valid value
		}

		number = *typed
	case float32:
		number = float64(typed)
	case int:
		number = float64(typed)
	case int64:
		number = float64(typed)
	default:
		return nil, fmt.Errorf("%w: %s has type %T, want a number", ErrInvalidRecord, field, value)
	}

	if math.IsNaN(number) || math.IsInf(number, 0) {
		return nil, fmt.Errorf("%w: %s must be finite", ErrInvalidRecord, field)
	}

	return &number, nil
}

func requiredInt(record Record, field string) (int64, error) {
	value, ok := record[field]
	if !ok || value == nil {
		return 0, fmt.Errorf("%w: %s is required", ErrInvalidRecord, field)
	}

	switch typed := value.(type) {
	case int64:
		return typed, nil
	case int:
		return int64(typed), nil
	case int32:
		return int64(typed), nil
	case float64:
		if typed != math.Trunc(typed) {
			return 0, fmt.Errorf("%w: %s must be an integer, got %v", ErrInvalidRecord, field, typed)
		}

		if typed < math.MinInt64 || typed >= math.MaxInt64 {
			return 0, fmt.Errorf("%w: %s out of range, got %v", ErrInvalidRecord, field, typed)
		}

		return int64(typed), nil
	default:
		return 0, fmt.Errorf("%w: %s has type %T, want an integer", ErrInvalidRecord, field, value)
	}
}

func requiredString(record Record, field string) (string, error) {
	value, ok := record[field]
	if !ok || value == nil {
		return "", fmt.Errorf("%w: %s is required", ErrInvalidRecord, field)
	}

	str, ok := value.(string)
	if !ok {
		return "", fmt.Errorf("%w: %s has type %T, want a string", ErrInvalidRecord, field, value)
	}

	return str, nil
}
