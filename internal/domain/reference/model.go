package reference

import "github.com/shopspring/decimal"

// Item is one normalized reference record: a material with its unit cost,
// or a person with their project rate. Immutable snapshot per read.
type Item struct {
	Name  string          `json:"name"`
	Value decimal.Decimal `json:"value"`
}

// Dataset describes how a reference table projects into items. Columns are
// 1-based. A zero CategoryColumn means no category filtering.
type Dataset struct {
	Table          string
	NameColumn     int
	ValueColumn    int
	CategoryColumn int
	CategoryFilter string
	HeaderRows     int
}
