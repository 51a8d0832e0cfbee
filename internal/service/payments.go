package service

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/EnriqueVilledaGarcia/Financiera-App/internal/dates"
	"github.com/EnriqueVilledaGarcia/Financiera-App/internal/ledger"
	"github.com/EnriqueVilledaGarcia/Financiera-App/internal/models"
	"github.com/EnriqueVilledaGarcia/Financiera-App/internal/money"
)

// PostPayment records a payment against a credit and decreases its
// running total, clamping at zero so an overpayment is absorbed.
//
// Two concurrent postings on the same credit can read the same running
// total; the per-operation transaction is the only isolation guarantee.
func (s *Service) PostPayment(creditID int64, amountRaw, dateRaw string) (*models.Payment, error) {
	amount, ok := parsePositive(amountRaw)
	if !ok {
		return nil, invalid("amount", "must be a positive amount")
	}

	credit, err := s.repo.FindCreditByID(creditID)
	if err != nil {
		return nil, err
	}

	current, _ := parseAmount(credit.Total)
	newTotal := ledger.ApplyPayment(current, amount)

	payment := &models.Payment{
		ClientID: credit.ClientID,
		CreditID: credit.ID,
		Amount:   amount.String(),
		Date:     canonicalDate(dateRaw),
		Status:   models.PaymentStatusPaid,
	}
	if err := s.repo.PostPayment(payment, newTotal.String()); err != nil {
		return nil, err
	}

	s.log.Infof("Payment of %s posted on credit %d, remaining %s", payment.Amount, credit.ID, newTotal)
	return payment, nil
}

// ReversePayment cancels the payment on the given date, restoring its
// amount to the credit's running total and deleting the payment row.
// When several payments share the date, the oldest one is reversed.
func (s *Service) ReversePayment(creditID int64, dateRaw string) error {
	credit, err := s.repo.FindCreditByID(creditID)
	if err != nil {
		return err
	}
	payment, err := s.repo.FindPaymentByCreditAndDate(creditID, canonicalDate(dateRaw))
	if err != nil {
		return err
	}

	current, _ := parseAmount(credit.Total)
	amount, _ := parseAmount(payment.Amount)
	restored := ledger.RestorePayment(current, amount)

	if err := s.repo.ReversePayment(payment.ID, credit.ID, restored.String()); err != nil {
		return err
	}

	s.log.Infof("Payment %d reversed on credit %d, restored total %s", payment.ID, credit.ID, restored)
	return nil
}

// canonicalDate normalizes a payment date to ISO so it matches the
// generated schedule slots by string equality. Dates that fail to parse
// are kept verbatim rather than guessed.
func canonicalDate(raw string) string {
	if d, ok := dates.Normalize(raw); ok {
		return dates.Format(d)
	}
	return strings.TrimSpace(raw)
}

// parseAmount reads a stored amount, treating unusable values as zero the
// way every legacy reader of this book did.
func parseAmount(raw string) (decimal.Decimal, bool) {
	return money.Parse(raw)
}
