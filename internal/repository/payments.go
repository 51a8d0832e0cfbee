package repository

import (
	"database/sql"
	"fmt"

	"github.com/EnriqueVilledaGarcia/Financiera-App/internal/models"
)

// PostPayment inserts a payment and writes the credit's new running total
// in one transaction.
func (r *Repository) PostPayment(payment *models.Payment, newTotal string) error {
	return r.withTx(func(tx *sql.Tx) error {
		query := `
			INSERT INTO financiera.payments (client_id, credit_id, amount, date, status)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id`
		err := tx.QueryRow(query, payment.ClientID, payment.CreditID, payment.Amount, payment.Date, payment.Status).
			Scan(&payment.ID)
		if err != nil {
			return fmt.Errorf("failed to create payment: %w", err)
		}
		return updateCreditTotal(tx, payment.CreditID, newTotal)
	})
}

// ReversePayment deletes a payment and restores the credit's running
// total in one transaction.
func (r *Repository) ReversePayment(paymentID, creditID int64, restoredTotal string) error {
	return r.withTx(func(tx *sql.Tx) error {
		res, err := tx.Exec(`DELETE FROM financiera.payments WHERE id = $1`, paymentID)
		if err != nil {
			return fmt.Errorf("failed to delete payment: %w", err)
		}
		if n, _ := res.RowsAffected(); n == 0 {
			return fmt.Errorf("payment %d: %w", paymentID, ErrNotFound)
		}
		return updateCreditTotal(tx, creditID, restoredTotal)
	})
}

func updateCreditTotal(tx *sql.Tx, creditID int64, total string) error {
	res, err := tx.Exec(`UPDATE financiera.credits SET total = $1 WHERE id = $2`, total, creditID)
	if err != nil {
		return fmt.Errorf("failed to update credit total: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("credit %d: %w", creditID, ErrNotFound)
	}
	return nil
}

// ListPaymentsByCredit retrieves a credit's payments ordered by id
func (r *Repository) ListPaymentsByCredit(creditID int64) ([]models.Payment, error) {
	query := `
		SELECT id, client_id, credit_id, amount, date, status
		FROM financiera.payments
		WHERE credit_id = $1
		ORDER BY id`
	rows, err := r.db.Query(query, creditID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	defer rows.Close()

	var payments []models.Payment
	for rows.Next() {
		var p models.Payment
		if err := rows.Scan(&p.ID, &p.ClientID, &p.CreditID, &p.Amount, &p.Date, &p.Status); err != nil {
			return nil, fmt.Errorf("failed to scan payment: %w", err)
		}
		payments = append(payments, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read payments: %w", err)
	}
	return payments, nil
}

// FindPaymentByCreditAndDate retrieves the oldest payment on a credit for
// the given date. Duplicate dates resolve to the lowest id.
func (r *Repository) FindPaymentByCreditAndDate(creditID int64, date string) (*models.Payment, error) {
	payment := &models.Payment{}
	query := `
		SELECT id, client_id, credit_id, amount, date, status
		FROM financiera.payments
		WHERE credit_id = $1 AND date = $2
		ORDER BY id
		LIMIT 1`
	err := r.db.QueryRow(query, creditID, date).
		Scan(&payment.ID, &payment.ClientID, &payment.CreditID, &payment.Amount, &payment.Date, &payment.Status)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("payment on credit %d dated %s: %w", creditID, date, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find payment: %w", err)
	}
	return payment, nil
}
