package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"
)

// ListCredits returns every credit with derived status and counts
func (h *Handler) ListCredits(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.ListCredits()
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, list)
}

// CreateCredit creates a new credit for a client
func (h *Handler) CreateCredit(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ClientID     int64  `json:"client_id"`
		Principal    string `json:"principal"`
		InterestRate string `json:"interest_rate"`
		Installments string `json:"installments"`
		StartDate    string `json:"start_date"`
		EndDate      string `json:"end_date"`
	}
	if !h.decode(w, r, &req) {
		return
	}
	credit, err := h.svc.CreateCredit(req.ClientID, req.Principal, req.InterestRate, req.Installments, req.StartDate, req.EndDate)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusCreated, credit)
}

// CreditDetail returns a credit with its schedule and payments
func (h *Handler) CreditDetail(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.respondJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid credit id"})
		return
	}
	detail, err := h.svc.CreditDetail(id)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, detail)
}

// DeleteCredit removes a credit together with its payments
func (h *Handler) DeleteCredit(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.respondJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid credit id"})
		return
	}
	if err := h.svc.DeleteCredit(id); err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusNoContent, nil)
}

// CreditsReport streams the portfolio PDF
func (h *Handler) CreditsReport(w http.ResponseWriter, r *http.Request) {
	pdf, err := h.svc.CreditsReport()
	if err != nil {
		h.respondError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=credits_%s.pdf", time.Now().Format("20060102_150405")))
	w.Write(pdf)
}

// PostPayment records a payment against a credit
func (h *Handler) PostPayment(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.respondJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid credit id"})
		return
	}
	var req struct {
		Amount string `json:"amount"`
		Date   string `json:"date"`
	}
	if !h.decode(w, r, &req) {
		return
	}
	payment, err := h.svc.PostPayment(id, req.Amount, req.Date)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusCreated, payment)
}

// ReversePayment cancels the payment on the given date
func (h *Handler) ReversePayment(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.respondJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid credit id"})
		return
	}
	date := mux.Vars(r)["date"]
	if err := h.svc.ReversePayment(id, date); err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusNoContent, nil)
}
