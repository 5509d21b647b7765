package model

// BeerFilter selects beers matching any of its set fields. Nil fields are ignored.
type BeerFilter struct {
	ABV       *float64
	IBU       *float64
	BeerID    *int64
	Name      *string
	Style     *string
	BreweryID *int64
	Size      *float64
}

func (f BeerFilter) IsEmpty() bool {
	return f.ABV == nil && f.IBU == nil && f.BeerID == nil && f.Name == nil &&
		f.Style == nil && f.BreweryID == nil && f.Size == nil
}

// Conditions returns the set fields as column/value pairs in seed column order.
func (f BeerFilter) Conditions() []Condition {
	conditions := make([]Condition, 0, len(Fields))

	if f.ABV != nil {
		conditions = append(conditions, Condition{Column: FieldABV, Value: *f.ABV})
	}

	if f.IBU != nil {
		conditions = append(conditions, Condition{Column: FieldIBU, Value: *f.IBU})
	}

	if f.BeerID != nil {
		conditions = append(conditions, Condition{Column: FieldBeerID, Value: *f.BeerID})
	}

	if f.Name != nil {
		conditions = append(conditions, Condition{Column: FieldName, Value: *f.Name})
	}

	if f.Style != nil {
		conditions = append(conditions, Condition{Column: FieldStyle, Value: *f.Style})
	}

	if f.BreweryID != nil {
		conditions = append(conditions, Condition{Column: FieldBreweryID, Value: *f.BreweryID})
	}

	if f.Size != nil {
		conditions = append(conditions, Condition{Column: FieldSize, Value: *f.Size})
	}

	return conditions
}

type Condition struct {
	Column string
	Value  any
}
