package conversion

import (
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"currency-converter/internal"
	"currency-converter/internal/models"
)

const decimals = 2

// Rates holds the fixed exchange rates the service converts with.
type Rates struct {
	EURToUSD float64
	USDToGBP float64
}

type Service struct {
	eurToUSD internal.Pair
	usdToGBP internal.Pair
}

func New(r Rates) (*Service, error) {
	eurToUSD, err := internal.NewPair(internal.EUR, internal.USD, r.EURToUSD)
	if err != nil {
		return nil, fmt.Errorf("eur to usd: %w", err)
	}
	usdToGBP, err := internal.NewPair(internal.USD, internal.GBP, r.USDToGBP)
	if err != nil {
		return nil, fmt.Errorf("usd to gbp: %w", err)
	}
	return &Service{eurToUSD: eurToUSD, usdToGBP: usdToGBP}, nil
}

func (s *Service) EURToUSD(amount string) (models.Conversion, error) {
	return convertPair(s.eurToUSD, amount)
}

func (s *Service) USDToGBP(amount string) (models.Conversion, error) {
	return convertPair(s.usdToGBP, amount)
}

func convertPair(p internal.Pair, amount string) (models.Conversion, error) {
	out, err := Convert(amount, p.Rate)
	if err != nil {
		return models.Conversion{}, err
	}
	// Convert already accepted amount.
	in, _ := parseAmount(amount)
	return models.Conversion{
		From: p.Base,
		To:   p.Quote,
		In:   in,
		Out:  out,
	}, nil
}

// Convert parses amount and multiplies it by rate. The product is not rounded.
func Convert(amount string, rate float64) (float64, error) {
	v, err := parseAmount(amount)
	if err != nil {
		return 0, err
	}
	return v * rate, nil
}

// FormatResult renders "<in> <labelIn> = <out> <labelOut>" with in in its
// shortest decimal form and out rounded to two decimals.
func FormatResult(labelIn string, in float64, labelOut string, out float64) string {
	return fmt.Sprintf("%s %s = %s %s", formatAmount(in), labelIn, formatFixed(out, decimals), labelOut)
}

func Format(c models.Conversion) string {
	return FormatResult(c.From.String(), c.In, c.To.String(), c.Out)
}

// Plain notation is used for magnitudes in [1e-6, 1e21), exponent
// notation outside of it.
const (
	minPlainExp = -6
	maxPlainExp = 21
)

// formatAmount prints the shortest decimal that round-trips to v.
func formatAmount(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	if v == 0 {
		return "0"
	}

	d := decimal.NewFromFloat(v)
	sign := ""
	if d.Sign() < 0 {
		sign = "-"
	}
	digits := new(big.Int).Abs(d.Coefficient()).String()
	exp := int(d.Exponent())
	for len(digits) > 1 && digits[len(digits)-1] == '0' {
		digits = digits[:len(digits)-1]
		exp++
	}

	// v = 0.<digits> * 10^n
	k := len(digits)
	n := k + exp

	switch {
	case k <= n && n <= maxPlainExp:
		return sign + digits + strings.Repeat("0", n-k)
	case 0 < n && n <= maxPlainExp:
		return sign + digits[:n] + "." + digits[n:]
	case minPlainExp < n && n <= 0:
		return sign + "0." + strings.Repeat("0", -n) + digits
	}

	mantissa := digits[:1]
	if k > 1 {
		mantissa += "." + digits[1:]
	}
	e := n - 1
	expSign := "+"
	if e < 0 {
		expSign = "-"
		e = -e
	}
	return sign + mantissa + "e" + expSign + strconv.Itoa(e)
}

// formatFixed rounds the exact binary value of v to places decimals.
func formatFixed(v float64, places int) string {
	if math.Abs(v) >= 1e21 || math.IsNaN(v) || math.IsInf(v, 0) {
		return formatAmount(v)
	}
	if v == 0 {
		// drops the sign of -0
		v = 0
	}
	return strconv.FormatFloat(v, 'f', places, 64)
}
