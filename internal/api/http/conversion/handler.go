package conversion

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"currency-converter/internal/models"
	conversionsvc "currency-converter/internal/service/conversion"
)

const (
	EURToUSDPath = "/convert-eur-to-usd"
	USDToGBPPath = "/convert-usd-to-gbp"

	// The two endpoints answer with different wording on purpose; clients
	// match on these strings.
	InvalidEURMessage = "Montant invalide sale con met un nombre positif"
	InvalidUSDMessage = "Montant invalide: doit être un nombre positif"
)

type Converter interface {
	EURToUSD(amount string) (models.Conversion, error)
	USDToGBP(amount string) (models.Conversion, error)
}

type Handler struct {
	svc Converter
}

func New(svc Converter) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Register(r chi.Router) {
	r.Get(EURToUSDPath, h.eurToUSD)
	r.Get(USDToGBPPath, h.usdToGBP)
}

// eurToUSD godoc
// @Summary Convert EUR to USD
// @Description Multiplies the amount by the fixed EUR/USD rate.
// @Tags conversion
// @Produce plain
// @Param eur query string true "Amount in EUR, non-negative"
// @Success 200 {string} string "100 EUR = 116.00 USD"
// @Failure 400 {string} string "Montant invalide sale con met un nombre positif"
// @Router /convert-eur-to-usd [get]
func (h *Handler) eurToUSD(w http.ResponseWriter, r *http.Request) {
	c, err := h.svc.EURToUSD(r.URL.Query().Get("eur"))
	if err != nil {
		writeText(w, http.StatusBadRequest, InvalidEURMessage)
		return
	}
	writeText(w, http.StatusOK, conversionsvc.Format(c))
}

// usdToGBP godoc
// @Summary Convert USD to GBP
// @Description Multiplies the amount by the fixed USD/GBP rate.
// @Tags conversion
// @Produce plain
// @Param usd query string true "Amount in USD, non-negative"
// @Success 200 {string} string "100 USD = 73.00 GBP"
// @Failure 400 {string} string "Montant invalide: doit être un nombre positif"
// @Router /convert-usd-to-gbp [get]
func (h *Handler) usdToGBP(w http.ResponseWriter, r *http.Request) {
	c, err := h.svc.USDToGBP(r.URL.Query().Get("usd"))
	if err != nil {
		writeText(w, http.StatusBadRequest, InvalidUSDMessage)
		return
	}
	writeText(w, http.StatusOK, conversionsvc.Format(c))
}

func writeText(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}
