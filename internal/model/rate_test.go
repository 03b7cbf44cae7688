package model

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRate_JSONRoundTrip(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{`"22.45"`, `"22.450"`},
		{`22.45`, `"22.450"`},
		{`22`, `"22.000"`},
		{`"0.1235"`, `"0.124"`},
		{`"-3.5"`, `"-3.500"`},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			var r Rate
			require.NoError(t, json.Unmarshal([]byte(tt.in), &r))

			out, err := json.Marshal(r)
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(out))
		})
	}
}

func TestRate_UnmarshalInvalid(t *testing.T) {
	for _, in := range []string{
		`"abc"`, `""`, `null`, `true`, `"123456789012345678.1"`,
		`"1e20000000"`, `"1e-20000000"`, `1e2000000000`, `"1e18"`,
	} {
		var r Rate
		err := json.Unmarshal([]byte(in), &r)

		var rateErr *RateError
		assert.ErrorAs(t, err, &rateErr, in)
	}
}

func TestParseRate_Exponent(t *testing.T) {
	r, err := ParseRate("2.245e1")
	require.NoError(t, err)
	assert.Equal(t, "22.450", r.String())

	r, err = ParseRate("0e99999999")
	require.NoError(t, err)
	assert.Equal(t, "0.000", r.String())

	_, err = ParseRate("1e20000000")
	assert.ErrorIs(t, err, ErrRateTooLarge)

	start := time.Now()
	_, err = ParseRate("1e-20000000")
	assert.Error(t, err)
	assert.Less(t, time.Since(start), time.Second)

	_, err = ParseRate("0." + strings.Repeat("0", 70) + "1")
	assert.Error(t, err)
}

func TestRate_InsideInput(t *testing.T) {
	var in JobInput
	require.NoError(t, json.Unmarshal([]byte(`{"title":"Dev","daily_rate_range":"22.45"}`), &in))
	require.NotNil(t, in.DailyRateRange)
	assert.Equal(t, "22.450", in.DailyRateRange.String())
	assert.Nil(t, in.Skills)
}

func TestRate_SQL(t *testing.T) {
	v, err := MustParseRate("1.5").Value()
	require.NoError(t, err)
	assert.Equal(t, "1.500", v)

	var r Rate
	require.NoError(t, r.Scan([]byte("99.990")))
	assert.True(t, r.Equal(NewRate(decimal.RequireFromString("99.99"))))
	assert.Equal(t, "numeric(20,3)", r.GormDataType())
}
