package handler

import (
	"net/http"
	"strconv"
)

// PortfolioSummary returns the fleet-wide totals and the monthly
// origination histogram. ?year= selects the histogram year.
func (h *Handler) PortfolioSummary(w http.ResponseWriter, r *http.Request) {
	year := 0
	if raw := r.URL.Query().Get("year"); raw != "" {
		y, err := strconv.Atoi(raw)
		if err != nil {
			h.respondJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid year"})
			return
		}
		year = y
	}
	summary, err := h.svc.PortfolioSummary(year)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, summary)
}

// UpdateTreasury replaces the treasury figures wholesale
func (h *Handler) UpdateTreasury(w http.ResponseWriter, r *http.Request) {
	var req struct {
		CashOnHand     string `json:"cash_on_hand"`
		PartnerCapital string `json:"partner_capital"`
	}
	if !h.decode(w, r, &req) {
		return
	}
	figures, err := h.svc.UpdateTreasuryFigures(req.CashOnHand, req.PartnerCapital)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, figures)
}
