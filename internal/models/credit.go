package models

// Credit represents a loan in the system.
//
// Numeric and date columns are stored as text: the book predates this
// service and carries values in mixed formats ("1,500.50", "1500,50",
// "15/03/2024"). Callers normalize them through the money and dates
// packages before use.
type Credit struct {
	ID            int64  `json:"id"`
	ClientID      int64  `json:"client_id"`
	Principal     string `json:"principal"`
	InterestRate  string `json:"interest_rate"`
	Total         string `json:"total"`
	OriginalTotal string `json:"original_total"`
	Installments  string `json:"installments"`
	StartDate     string `json:"start_date"`
	EndDate       string `json:"end_date"`
}
