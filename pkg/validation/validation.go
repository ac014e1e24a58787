package validation

import (
	"reflect"

	goValidator "github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// New returns a validator that understands decimal.Decimal fields, so
// `validate:"gt=0"` works on prices and fractions.
func New() *goValidator.Validate {
	v := goValidator.New()
	v.RegisterCustomTypeFunc(decimalValue, decimal.Decimal{})
	return v
}

// decimalValue exposes only the sign of a decimal (-1, 0 or 1), so tags on
// decimal fields must compare against 0.
func decimalValue(field reflect.Value) interface{} {
	d, ok := field.Interface().(decimal.Decimal)
	if !ok {
		return nil
	}
	return d.Sign()
}
