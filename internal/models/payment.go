package models

// PaymentStatusPaid is the status marker written on every posted payment.
const PaymentStatusPaid = "Paid"

// Payment represents a payment posted against a credit
type Payment struct {
	ID       int64  `json:"id"`
	ClientID int64  `json:"client_id"`
	CreditID int64  `json:"credit_id"`
	Amount   string `json:"amount"`
	Date     string `json:"date"`
	Status   string `json:"status"`
}
