package reference

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/tallyworks/shopledger/internal/workspace"
)

// Built-in dataset names.
const (
	DatasetMaterials = "materials"
	DatasetPersonnel = "personnel"
)

// Service reads reference tables into normalized items.
type Service struct {
	ws       workspace.Workspace
	datasets map[string]Dataset
	logger   *slog.Logger
}

// NewService creates a reference data service with the built-in datasets.
func NewService(ws workspace.Workspace, logger *slog.Logger) *Service {
	return &Service{
		ws: ws,
		datasets: map[string]Dataset{
			DatasetMaterials: {
				Table:          "Materials",
				NameColumn:     2,
				ValueColumn:    10,
				CategoryColumn: 5,
				CategoryFilter: "FABRICATION",
				HeaderRows:     1,
			},
			DatasetPersonnel: {
				Table:       "Personnel",
				NameColumn:  1,
				ValueColumn: 3,
				HeaderRows:  1,
			},
		},
		logger: logger,
	}
}

// Dataset projects the named dataset into items. A missing source table
// degrades to an empty result; an unregistered name is an error.
func (s *Service) Dataset(ctx context.Context, name string) ([]Item, error) {
	ds, ok := s.datasets[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownDataset, name)
	}

	rows, err := s.ws.ReadTable(ctx, ds.Table)
	if err != nil {
		if errors.Is(err, workspace.ErrTableNotFound) {
			if s.logger != nil {
				s.logger.Warn("reference table missing", "dataset", name, "table", ds.Table)
			}
			return []Item{}, nil
		}
		return nil, fmt.Errorf("reading %s: %w", ds.Table, err)
	}

	items := make([]Item, 0, len(rows))
	for i, row := range rows {
		if i < ds.HeaderRows {
			continue
		}
		itm, ok := projectRow(ds, row)
		if !ok {
			continue
		}
		items = append(items, itm)
	}
	return items, nil
}

func projectRow(ds Dataset, row []any) (Item, bool) {
	name := strings.TrimSpace(cellString(row, ds.NameColumn))
	if name == "" {
		return Item{}, false
	}

	if ds.CategoryColumn > 0 {
		category := cellString(row, ds.CategoryColumn)
		if !strings.Contains(category, ds.CategoryFilter) {
			return Item{}, false
		}
	}

	return Item{Name: name, Value: parseMoney(cell(row, ds.ValueColumn))}, true
}

// parseMoney accepts numeric cells or currency strings like "$1,540.16".
// Unparseable or negative values come back as zero.
func parseMoney(v any) decimal.Decimal {
	switch n := v.(type) {
	case float64:
		if n < 0 {
			return decimal.Zero
		}
		return decimal.NewFromFloat(n)
	case int:
		if n < 0 {
			return decimal.Zero
		}
		return decimal.NewFromInt(int64(n))
	case string:
		cleaned := strings.NewReplacer("$", "", ",", "", " ", "").Replace(n)
		if cleaned == "" {
			return decimal.Zero
		}
		d, err := decimal.NewFromString(cleaned)
		if err != nil || d.IsNegative() {
			return decimal.Zero
		}
		return d
	default:
		return decimal.Zero
	}
}

// cell returns the 1-based column value, nil when the row is short.
func cell(row []any, col int) any {
	if col < 1 || col > len(row) {
		return nil
	}
	return row[col-1]
}

func cellString(row []any, col int) string {
	v := cell(row, col)
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}
