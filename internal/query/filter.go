package query

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"gorm.io/gorm"

	"juggle-backend/internal/model"
)

// Lookup is how a filter compares its column to the query value.
type Lookup int

const (
	// Exact is case-insensitive equality.
	Exact Lookup = iota
	// Contains is case-insensitive substring match.
	Contains
	// DecimalExact is numeric equality.
	DecimalExact
	// After keeps rows whose column is at or after the given time.
	After
	// Before keeps rows whose column is at or before the given time.
	Before
)

// Filter binds a query parameter to a column.
type Filter struct {
	Param  string
	Column string
	Lookup Lookup
}

// FilterSet is the filter specification of one collection.
type FilterSet struct {
	// Table qualifies the id ordering column and every filter column.
	Table   string
	Filters []Filter
}

// ErrInvalidFilter is returned by Apply when a parameter value cannot be parsed.
var ErrInvalidFilter = errors.New("invalid filter value")

var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

func parseTime(v string) (time.Time, error) {
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q is not a date/time", ErrInvalidFilter, v)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func (fs FilterSet) column(name string) string {
	if fs.Table == "" {
		return name
	}
	return fs.Table + "." + name
}

// Apply adds a WHERE condition for each filter present in params. Empty values are ignored.
func (fs FilterSet) Apply(db *gorm.DB, params url.Values) (*gorm.DB, error) {
	for _, f := range fs.Filters {
		raw := strings.TrimSpace(params.Get(f.Param))
		if raw == "" {
			continue
		}
		col := fs.column(f.Column)

		switch f.Lookup {
		case Exact:
			db = db.Where(fmt.Sprintf("LOWER(%s) = LOWER(?)", col), raw)
		case Contains:
			db = db.Where(fmt.Sprintf("%s ILIKE ?", col), "%"+likeEscaper.Replace(raw)+"%")
		case DecimalExact:
			r, err := model.ParseRate(raw)
			if err != nil {
				return nil, fmt.Errorf("%w: %q is not a rate", ErrInvalidFilter, raw)
			}
			db = db.Where(fmt.Sprintf("%s = ?", col), r.String())
		case After:
			t, err := parseTime(raw)
			if err != nil {
				return nil, err
			}
			db = db.Where(fmt.Sprintf("%s >= ?", col), t)
		case Before:
			t, err := parseTime(raw)
			if err != nil {
				return nil, err
			}
			db = db.Where(fmt.Sprintf("%s <= ?", col), t)
		default:
			return nil, fmt.Errorf("%w: unknown lookup for %s", ErrInvalidFilter, f.Param)
		}
	}
	return db, nil
}
