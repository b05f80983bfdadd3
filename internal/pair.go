package internal

import (
	"fmt"
	"math"
)

// Pair is a fixed-rate conversion from Base to Quote.
type Pair struct {
	Base  CurrencyCode
	Quote CurrencyCode
	Rate  float64
}

func NewPair(base, quote CurrencyCode, rate float64) (Pair, error) {
	if !base.IsSupported() {
		return Pair{}, fmt.Errorf("unsupported currency %q", base)
	}
	if !quote.IsSupported() {
		return Pair{}, fmt.Errorf("unsupported currency %q", quote)
	}
	if base == quote {
		return Pair{}, fmt.Errorf("base and quote must be different: %s", base)
	}
	if math.IsNaN(rate) || math.IsInf(rate, 0) || rate <= 0 {
		return Pair{}, fmt.Errorf("rate %s/%s must be a positive number, got %v", base, quote, rate)
	}
	return Pair{Base: base, Quote: quote, Rate: rate}, nil
}
