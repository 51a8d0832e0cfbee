package repository

import (
	"database/sql"
	"fmt"

	"github.com/EnriqueVilledaGarcia/Financiera-App/internal/models"
)

// CreateCredit creates a new credit in the database
func (r *Repository) CreateCredit(credit *models.Credit) error {
	query := `
		INSERT INTO financiera.credits
			(client_id, principal, interest_rate, total, original_total, installments, start_date, end_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`
	err := r.db.QueryRow(query,
		credit.ClientID, credit.Principal, credit.InterestRate, credit.Total,
		credit.OriginalTotal, credit.Installments, credit.StartDate, credit.EndDate).
		Scan(&credit.ID)
	if err != nil {
		return fmt.Errorf("failed to create credit: %w", err)
	}
	return nil
}

// ListCredits retrieves all credits ordered by id
func (r *Repository) ListCredits() ([]models.Credit, error) {
	query := `
		SELECT id, client_id, principal, interest_rate, total, original_total, installments, start_date, end_date
		FROM financiera.credits
		ORDER BY id`
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to list credits: %w", err)
	}
	defer rows.Close()

	var credits []models.Credit
	for rows.Next() {
		var c models.Credit
		if err := rows.Scan(&c.ID, &c.ClientID, &c.Principal, &c.InterestRate, &c.Total,
			&c.OriginalTotal, &c.Installments, &c.StartDate, &c.EndDate); err != nil {
			return nil, fmt.Errorf("failed to scan credit: %w", err)
		}
		credits = append(credits, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read credits: %w", err)
	}
	return credits, nil
}

// FindCreditByID retrieves a credit by id
func (r *Repository) FindCreditByID(id int64) (*models.Credit, error) {
	credit := &models.Credit{}
	query := `
		SELECT id, client_id, principal, interest_rate, total, original_total, installments, start_date, end_date
		FROM financiera.credits
		WHERE id = $1`
	err := r.db.QueryRow(query, id).
		Scan(&credit.ID, &credit.ClientID, &credit.Principal, &credit.InterestRate, &credit.Total,
			&credit.OriginalTotal, &credit.Installments, &credit.StartDate, &credit.EndDate)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("credit %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find credit: %w", err)
	}
	return credit, nil
}

// DeleteCredit removes a credit and its payments in a single transaction
func (r *Repository) DeleteCredit(id int64) error {
	return r.withTx(func(tx *sql.Tx) error {
		if _, err := tx.Exec(`DELETE FROM financiera.payments WHERE credit_id = $1`, id); err != nil {
			return fmt.Errorf("failed to delete credit payments: %w", err)
		}
		res, err := tx.Exec(`DELETE FROM financiera.credits WHERE id = $1`, id)
		if err != nil {
			return fmt.Errorf("failed to delete credit: %w", err)
		}
		if n, _ := res.RowsAffected(); n == 0 {
			return fmt.Errorf("credit %d: %w", id, ErrNotFound)
		}
		return nil
	})
}
