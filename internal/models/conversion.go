package models

import "currency-converter/internal"

// Conversion is the outcome of one successful conversion request.
type Conversion struct {
	From internal.CurrencyCode
	To   internal.CurrencyCode
	In   float64
	Out  float64
}
