package internal

type CurrencyCode string

const (
	EUR CurrencyCode = "EUR"
	USD CurrencyCode = "USD"
	GBP CurrencyCode = "GBP"
)

var supportedSet = map[CurrencyCode]struct{}{
	EUR: {}, USD: {}, GBP: {},
}

func (c CurrencyCode) IsSupported() bool {
	_, ok := supportedSet[c]
	return ok
}

func (c CurrencyCode) String() string { return string(c) }
