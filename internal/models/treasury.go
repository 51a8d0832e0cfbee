package models

import "time"

// TreasuryFigures holds the cash-on-hand and partner-capital amounts.
// Only the most recent row (highest id) is current; no history is kept.
type TreasuryFigures struct {
	ID             int64     `json:"id"`
	CashOnHand     string    `json:"cash_on_hand"`
	PartnerCapital string    `json:"partner_capital"`
	UpdatedAt      time.Time `json:"updated_at"`
}
