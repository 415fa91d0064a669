package ledger

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/tallyworks/shopledger/internal/domain/item"
)

// Item is the data written into one ledger row. Dimensions applies to
// fabrication items, Quantity to generic ones.
type Item struct {
	Description string
	Dimensions  string
	Quantity    float64
	TotalPrice  decimal.Decimal
}

// Row layouts per kind. This is the only place column positions are
// hard-coded; everything else goes through the encode/decode pair below.
//
//	Fabrication: blank, displayID, description, dimensions, blank, totalPrice, editMarker
//	Generic:     description, quantity, blank, totalPrice, editMarker
const (
	fabDisplayIDColumn = 2
	fabPriceColumn     = 6
	fabMarkerColumn    = 7
	fabColumnCount     = 7

	genPriceColumn  = 4
	genMarkerColumn = 5
	genColumnCount  = 5
)

// editMarkerText is the placeholder value in the edit-marker column; the
// cell's note carries the log ID.
const editMarkerText = "edit"

func encodeRow(kind item.Kind, it Item, displayID string) ([]any, error) {
	price, _ := it.TotalPrice.Float64()
	switch kind {
	case item.KindFabrication:
		return []any{"", displayID, it.Description, it.Dimensions, "", price, editMarkerText}, nil
	case item.KindGeneric:
		return []any{it.Description, it.Quantity, "", price, editMarkerText}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
}

// displayIDAt reads the fabrication display ID cell of an existing row.
func displayIDAt(row []any) string {
	if len(row) < fabDisplayIDColumn {
		return ""
	}
	id, _ := row[fabDisplayIDColumn-1].(string)
	return id
}

func priceColumn(kind item.Kind) int {
	if kind == item.KindFabrication {
		return fabPriceColumn
	}
	return genPriceColumn
}

func markerColumn(kind item.Kind) int {
	if kind == item.KindFabrication {
		return fabMarkerColumn
	}
	return genMarkerColumn
}
