package money_test

import (
	"encoding/json"
	"testing"

	"github.com/jhaabhiiishek/finmanBackend/pkg/money"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    money.Amount
		wantErr error
	}{
		{name: "whole", input: "200", want: 20000},
		{name: "cents", input: "12.5", want: 1250},
		{name: "two places", input: "0.01", want: 1},
		{name: "negative", input: "-3.25", want: -325},
		{name: "too precise", input: "1.005", wantErr: money.ErrTooPrecise},
		{name: "not a number", input: "ten", wantErr: money.ErrInvalidAmount},
		{name: "overflow", input: "99999999999999999999", wantErr: money.ErrOutOfRange},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := money.Parse(tc.input)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestAmount_Decimal(t *testing.T) {
	a := money.Amount(80000)
	assert.True(t, a.Decimal().Equal(decimal.NewFromInt(800)))
	assert.Equal(t, "800.00", a.String())
	assert.Equal(t, "-0.05", money.Amount(-5).String())
}

func TestAmount_JSON(t *testing.T) {
	type body struct {
		Amount money.Amount `json:"amount"`
	}

	var in body
	require.NoError(t, json.Unmarshal([]byte(`{"amount":200}`), &in))
	assert.Equal(t, money.Amount(20000), in.Amount)

	require.NoError(t, json.Unmarshal([]byte(`{"amount":"19.99"}`), &in))
	assert.Equal(t, money.Amount(1999), in.Amount)

	assert.Error(t, json.Unmarshal([]byte(`{"amount":1.234}`), &in))
	assert.Error(t, json.Unmarshal([]byte(`{"amount":"abc"}`), &in))

	out, err := json.Marshal(body{Amount: 80000})
	require.NoError(t, err)
	assert.JSONEq(t, `{"amount":800}`, string(out))

	out, err = json.Marshal(body{Amount: 1050})
	require.NoError(t, err)
	assert.JSONEq(t, `{"amount":10.5}`, string(out))
}
