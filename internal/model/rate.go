package model

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// RatePlaces is the number of fraction digits every Rate is stored and rendered with.
const RatePlaces = 3

// rateMaxIntDigits matches numeric(20,3).
const rateMaxIntDigits = 17

// Inputs outside these bounds are rejected before rounding.
const (
	rateMaxInputLen = 64
	rateMinExponent = -32
)

// ErrRateTooLarge is returned for values that do not fit numeric(20,3).
var ErrRateTooLarge = fmt.Errorf("Ensure that there are no more than %d digits before the decimal point.", rateMaxIntDigits)

// RateError is returned when a JSON value cannot be decoded into a Rate.
type RateError struct {
	Msg string
}

func (e *RateError) Error() string { return e.Msg }

var errRateInvalid = &RateError{Msg: "A valid number is required."}

var errRateMalformed = errors.New("rate is too long or too precise")

// Rate is a daily rate with exactly three fraction digits. It is accepted from JSON as a
// string or a number and always rendered as a string, e.g. 22.45 becomes "22.450".
type Rate struct {
	d decimal.Decimal
}

// NewRate rounds d to RatePlaces.
func NewRate(d decimal.Decimal) Rate {
	return Rate{d: d.Round(RatePlaces)}
}

// ParseRate parses s as a decimal and rounds it to RatePlaces. Exponent notation is accepted
// only while the value stays within numeric(20,3) reach.
func ParseRate(s string) (Rate, error) {
	s = strings.TrimSpace(s)
	if len(s) > rateMaxInputLen {
		return Rate{}, errRateMalformed
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Rate{}, err
	}
	if d.IsZero() {
		return NewRate(decimal.Zero), nil
	}
	switch exp := d.Exponent(); {
	case exp > rateMaxIntDigits:
		return Rate{}, ErrRateTooLarge
	case exp < rateMinExponent:
		return Rate{}, errRateMalformed
	}
	r := NewRate(d)
	if err := r.Check(); err != nil {
		return Rate{}, err
	}
	return r, nil
}

// MustParseRate is ParseRate for literals known to be valid.
func MustParseRate(s string) Rate {
	r, err := ParseRate(s)
	if err != nil {
		panic(err)
	}
	return r
}

// String renders the rate with exactly RatePlaces fraction digits.
func (r Rate) String() string { return r.d.StringFixed(RatePlaces) }

// Equal compares numerically.
func (r Rate) Equal(o Rate) bool { return r.d.Equal(o.d) }

// Check reports whether r fits numeric(20,3).
func (r Rate) Check() error {
	intPart := r.d.Abs().Truncate(0).String()
	if len(intPart) > rateMaxIntDigits {
		return ErrRateTooLarge
	}
	return nil
}

// MarshalJSON implements json.Marshaler.
func (r Rate) MarshalJSON() ([]byte, error) {
	return []byte(`"` + r.String() + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (r *Rate) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "null" {
		return errRateInvalid
	}
	s = strings.Trim(s, `"`)
	if s == "" {
		return errRateInvalid
	}
	parsed, err := ParseRate(s)
	if err != nil {
		if errors.Is(err, ErrRateTooLarge) {
			return &RateError{Msg: err.Error()}
		}
		return errRateInvalid
	}
	*r = parsed
	return nil
}

// Value implements driver.Valuer.
func (r Rate) Value() (driver.Value, error) {
	return r.String(), nil
}

// Scan implements sql.Scanner.
func (r *Rate) Scan(value interface{}) error {
	var d decimal.Decimal
	if err := d.Scan(value); err != nil {
		return err
	}
	r.d = d.Round(RatePlaces)
	return nil
}

// GormDataType sets the column type used by migrations.
func (Rate) GormDataType() string {
	return "numeric(20,3)"
}
