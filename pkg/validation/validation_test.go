package validation

import (
	"errors"
	"testing"

	goValidator "github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type priced struct {
	Price decimal.Decimal `validate:"gt=0"`
	Qty   int64           `validate:"gt=0"`
}

func TestNew_DecimalFields(t *testing.T) {
	v := New()

	tests := []struct {
		name      string
		in        priced
		wantField string
	}{
		{name: "valid", in: priced{Price: decimal.RequireFromString("0.0001"), Qty: 1}},
		{name: "far below float64 range", in: priced{Price: decimal.RequireFromString("1e-400"), Qty: 1}},
		{name: "far above float64 range", in: priced{Price: decimal.RequireFromString("1e400"), Qty: 1}},
		{name: "tiny negative price", in: priced{Price: decimal.RequireFromString("-1e-400"), Qty: 1}, wantField: "Price"},
		{name: "zero price", in: priced{Price: decimal.Zero, Qty: 1}, wantField: "Price"},
		{name: "negative price", in: priced{Price: decimal.NewFromInt(-5), Qty: 1}, wantField: "Price"},
		{name: "zero qty", in: priced{Price: decimal.NewFromInt(5)}, wantField: "Qty"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(tt.in)
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}
			var verrs goValidator.ValidationErrors
			require.True(t, errors.As(err, &verrs))
			require.Len(t, verrs, 1)
			assert.Equal(t, tt.wantField, verrs[0].Field())
		})
	}
}
