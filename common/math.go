package common

import (
	"math"

	"github.com/shopspring/decimal"
)

// Round rounds half away from zero.
// https://stackoverflow.com/questions/18390266/how-can-we-truncate-float64-type-to-a-particular-precision
func Round(num float64) int {
	return int(num + math.Copysign(0.5, num))
}

// DecimalToFixed rounds num to precision decimal places, routed through a
// decimal so 0.1-style representation artifacts don't leak into the result.
func DecimalToFixed(num float64, precision int) float64 {
	out, _ := decimal.NewFromFloat(num).Round(int32(precision)).Float64()
	return out
}
