package internal_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"currency-converter/internal"
)

func TestCurrencyCode_IsSupported(t *testing.T) {
	for _, ccy := range []internal.CurrencyCode{internal.EUR, internal.USD, internal.GBP} {
		assert.True(t, ccy.IsSupported(), ccy.String())
	}
	assert.False(t, internal.CurrencyCode("RUB").IsSupported())
	assert.False(t, internal.CurrencyCode("eur").IsSupported())
}

func TestNewPair(t *testing.T) {
	p, err := internal.NewPair(internal.EUR, internal.USD, 1.16)
	require.NoError(t, err)
	assert.Equal(t, internal.EUR, p.Base)
	assert.Equal(t, internal.USD, p.Quote)
	assert.Equal(t, 1.16, p.Rate)

	tests := []struct {
		name  string
		base  internal.CurrencyCode
		quote internal.CurrencyCode
		rate  float64
	}{
		{name: "zero rate", base: internal.EUR, quote: internal.USD, rate: 0},
		{name: "negative rate", base: internal.EUR, quote: internal.USD, rate: -1},
		{name: "nan rate", base: internal.EUR, quote: internal.USD, rate: math.NaN()},
		{name: "infinite rate", base: internal.EUR, quote: internal.USD, rate: math.Inf(1)},
		{name: "same currency", base: internal.USD, quote: internal.USD, rate: 1},
		{name: "unsupported base", base: "JPY", quote: internal.USD, rate: 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := internal.NewPair(tt.base, tt.quote, tt.rate)
			assert.Error(t, err)
		})
	}
}
